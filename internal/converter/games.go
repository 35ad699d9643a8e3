package converter

import (
	"arcade_backend/internal/api/dto/baccarat"
	"arcade_backend/internal/api/dto/blackjack"
	"arcade_backend/internal/api/dto/dice"
	"arcade_backend/internal/api/dto/reels"
	"arcade_backend/internal/api/dto/roulette"
	"arcade_backend/internal/model"
)

func ToRouletteSpinResponse(res *model.Resolution[model.Segment]) roulette.SpinResponse {
	return roulette.SpinResponse{
		RoundID: res.RoundID,
		Number:  res.Outcome.Number,
		Color:   string(res.Outcome.Color),
		Bets:    res.Bets,
		Payout:  res.Payout,
		Balance: res.Balance,
	}
}

func ToDiceRollResponse(res *model.Resolution[model.DiceOutcome]) dice.RollResponse {
	return dice.RollResponse{
		RoundID: res.RoundID,
		Faces:   res.Outcome,
		Bets:    res.Bets,
		Payout:  res.Payout,
		Balance: res.Balance,
	}
}

func ToBaccaratDealResponse(res *model.Resolution[model.BaccaratOutcome]) baccarat.DealResponse {
	return baccarat.DealResponse{
		RoundID:     res.RoundID,
		Player:      res.Outcome.Player.Strings(),
		Banker:      res.Outcome.Banker.Strings(),
		PlayerPoint: res.Outcome.PlayerPoint,
		BankerPoint: res.Outcome.BankerPoint,
		Winner:      res.Outcome.Winner,
		Bets:        res.Bets,
		Payout:      res.Payout,
		Balance:     res.Balance,
	}
}

func ToReelsSpinResponse(res *model.Resolution[model.ReelOutcome]) reels.SpinResponse {
	var stake int64
	for _, s := range res.Bets {
		stake += s
	}
	wins := make([]reels.LineWin, len(res.Outcome.LineWins))
	for i, w := range res.Outcome.LineWins {
		wins[i] = reels.LineWin{
			Line:       w.Line,
			Symbol:     w.Symbol,
			Multiplier: w.Multiplier,
			Payout:     w.Payout,
		}
	}
	return reels.SpinResponse{
		RoundID:  res.RoundID,
		Grid:     res.Outcome.Grid,
		LineWins: wins,
		Stake:    stake,
		Payout:   res.Payout,
		Balance:  res.Balance,
	}
}

func ToHandResponse(h *model.BlackjackHand) blackjack.HandResponse {
	return blackjack.HandResponse{
		RoundID:     h.RoundID,
		Phase:       string(h.Phase),
		Player:      h.Player.Strings(),
		Dealer:      h.Dealer.Strings(),
		DealerDraws: h.DealerDraws.Strings(),
		PlayerTotal: h.PlayerTotal,
		DealerTotal: h.DealerTotal,
		Stake:       h.Stake,
		Doubled:     h.Doubled,
		Outcome:     string(h.Outcome),
		Payout:      h.Payout,
		Balance:     h.Balance,
	}
}
