package baccarat

import (
	"arcade_backend/internal/game/cards"
	"arcade_backend/internal/game/table"
	"arcade_backend/internal/model"
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

const (
	TargetPlayer = "player"
	TargetBanker = "banker"
	TargetTie    = "tie"
)

var (
	// Банкир платит 0.95 к 1 (5% комиссии)
	bankerWinRate = decimal.RequireFromString("0.95")
	// Ничья 8 к 1
	tieWinRate = int64(8)
)

func ValidateTarget(target string) error {
	switch target {
	case TargetPlayer, TargetBanker, TargetTie:
		return nil
	}
	return errors.Wrapf(model.ErrInvalidBet, "unknown baccarat target %q", target)
}

// Deal раздача и расчёт раунда
func (s *serv) Deal(ctx context.Context, userID int64) (*model.Resolution[model.BaccaratOutcome], error) {
	return table.Resolve(ctx, s.table, userID, func() model.BaccaratOutcome {
		return Play(s.newShoe())
	}, Payout, describe)
}

// Play раздаёт по две карты и добирает третьи.
// Упрощение правил: банкир берёт третью карту при своих очках <= 5 и очках игрока < 8,
// таблица запрета добора по третьей карте игрока не применяется
func Play(shoe *cards.Shoe) model.BaccaratOutcome {
	player := cards.Hand{shoe.Draw()}
	banker := cards.Hand{shoe.Draw()}
	player = append(player, shoe.Draw())
	banker = append(banker, shoe.Draw())

	pp, bp := cards.BaccaratPoint(player), cards.BaccaratPoint(banker)
	natural := pp >= 8 || bp >= 8

	if !natural {
		if pp <= 5 {
			player = append(player, shoe.Draw())
		}
		if bp <= 5 && pp < 8 {
			banker = append(banker, shoe.Draw())
		}
	}

	out := model.BaccaratOutcome{
		Player:      player,
		Banker:      banker,
		PlayerPoint: cards.BaccaratPoint(player),
		BankerPoint: cards.BaccaratPoint(banker),
	}
	switch {
	case out.PlayerPoint > out.BankerPoint:
		out.Winner = TargetPlayer
	case out.BankerPoint > out.PlayerPoint:
		out.Winner = TargetBanker
	default:
		out.Winner = TargetTie
	}
	return out
}

// Payout при ничьей ставки на игрока и банкира возвращаются
func Payout(out model.BaccaratOutcome) table.Payout {
	return func(target string, stake int64) int64 {
		if out.Winner == TargetTie {
			switch target {
			case TargetTie:
				return stake + stake*tieWinRate
			case TargetPlayer, TargetBanker:
				return stake
			}
			return 0
		}
		if target != out.Winner {
			return 0
		}
		if target == TargetBanker {
			win := decimal.NewFromInt(stake).Mul(bankerWinRate).Floor().IntPart()
			return stake + win
		}
		return stake * 2
	}
}

func describe(out model.BaccaratOutcome) string {
	return fmt.Sprintf("%s %d:%d", out.Winner, out.PlayerPoint, out.BankerPoint)
}
