package blackjack

import (
	"arcade_backend/internal/game/cards"
	"arcade_backend/internal/model"

	"github.com/shopspring/decimal"
)

var (
	naturalRate = decimal.RequireFromString("1.5")
	charlieRate = int64(3)
)

// Settle итог руки и сумма к начислению поверх уже списанной ставки
func Settle(player, dealer cards.Hand, stake int64) (model.BlackjackOutcome, int64) {
	playerNatural, dealerNatural := cards.IsNatural(player), cards.IsNatural(dealer)
	switch {
	case playerNatural && dealerNatural:
		return model.OutcomePush, stake
	case playerNatural:
		return model.OutcomeNatural, stake + decimal.NewFromInt(stake).Mul(naturalRate).Floor().IntPart()
	case dealerNatural:
		return model.OutcomeDealerNatural, 0
	case cards.IsBust(player):
		return model.OutcomeBust, 0
	case len(player) >= charlieCards:
		return model.OutcomeCharlie, stake + stake*charlieRate
	case cards.IsBust(dealer):
		return model.OutcomeDealerBust, stake * 2
	}

	pt, _ := cards.BlackjackTotal(player)
	dt, _ := cards.BlackjackTotal(dealer)
	switch {
	case pt > dt:
		return model.OutcomeWin, stake * 2
	case pt == dt:
		return model.OutcomePush, stake
	default:
		return model.OutcomeLose, 0
	}
}
