package reels

import (
	"arcade_backend/internal/config"
	"arcade_backend/internal/game/table"
	"arcade_backend/internal/model"
	"arcade_backend/internal/repository"
	"arcade_backend/internal/rng"
	"arcade_backend/internal/service"
	"context"
	"fmt"

	"github.com/pkg/errors"
)

type serv struct {
	table   *table.Table
	history repository.HistoryRepository
	rng     rng.Source

	symbols     []string
	weights     []int
	multipliers map[string]int
}

// NewReelsService фруктовый слот 3x3 с пятью линиями. Веса и множители символов из конфига
func NewReelsService(
	ledger repository.LedgerRepository,
	history repository.HistoryRepository,
	src rng.Source,
	cfg config.ReelsConfig,
) (service.ReelsService, error) {
	s := &serv{
		table:       table.New(model.GameReels, ledger, history, validateTarget),
		history:     history,
		rng:         src,
		multipliers: make(map[string]int),
	}

	total := 0
	for _, sym := range cfg.ReelSymbols() {
		if sym.Name == "" || sym.Weight < 0 || sym.Multiplier < 0 {
			return nil, fmt.Errorf("invalid reel symbol %+v", sym)
		}
		if _, dup := s.multipliers[sym.Name]; dup {
			return nil, fmt.Errorf("duplicate reel symbol %q", sym.Name)
		}
		s.symbols = append(s.symbols, sym.Name)
		s.weights = append(s.weights, sym.Weight)
		s.multipliers[sym.Name] = sym.Multiplier
		total += sym.Weight
	}
	if total <= 0 {
		return nil, errors.New("reel weights must sum to a positive number")
	}

	return s, nil
}

func (s *serv) History(ctx context.Context, userID int64) ([]model.RoundRecord, error) {
	return s.history.List(ctx, model.GameReels, userID)
}

// У слота одна цель ставки: все линии сразу
const targetLines = "lines"

func validateTarget(target string) error {
	if target != targetLines {
		return errors.Wrapf(model.ErrInvalidBet, "unknown reels target %q", target)
	}
	return nil
}
