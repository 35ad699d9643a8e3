package dice

import (
	"arcade_backend/internal/game/table"
	"arcade_backend/internal/model"
	"context"
	"strings"

	"github.com/pkg/errors"
)

// Symbols алфавит граней
var Symbols = [6]string{"gourd", "crab", "fish", "prawn", "rooster", "deer"}

func ValidateTarget(target string) error {
	for _, sym := range Symbols {
		if sym == target {
			return nil
		}
	}
	return errors.Wrapf(model.ErrInvalidBet, "unknown dice symbol %q", target)
}

// Roll бросок трёх независимых кубиков, символы могут повторяться
func (s *serv) Roll(ctx context.Context, userID int64) (*model.Resolution[model.DiceOutcome], error) {
	return table.Resolve(ctx, s.table, userID, s.draw, Payout, describe)
}

func (s *serv) draw() model.DiceOutcome {
	var out model.DiceOutcome
	for i := range out {
		out[i] = Symbols[s.rng.Intn(len(Symbols))]
	}
	return out
}

// Payout ставка + ставка * число совпадений. Без совпадений - 0, ставка уже списана
func Payout(out model.DiceOutcome) table.Payout {
	return func(target string, stake int64) int64 {
		matches := int64(0)
		for _, face := range out {
			if face == target {
				matches++
			}
		}
		if matches == 0 {
			return 0
		}
		return stake + stake*matches
	}
}

func describe(out model.DiceOutcome) string {
	return strings.Join(out[:], " ")
}
