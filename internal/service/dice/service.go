package dice

import (
	"arcade_backend/internal/game/table"
	"arcade_backend/internal/model"
	"arcade_backend/internal/repository"
	"arcade_backend/internal/rng"
	"arcade_backend/internal/service"
	"context"
)

type serv struct {
	table   *table.Table
	history repository.HistoryRepository
	rng     rng.Source
}

// NewDiceService три кубика с шестью символами, ставки на символы
func NewDiceService(
	ledger repository.LedgerRepository,
	history repository.HistoryRepository,
	src rng.Source,
) service.DiceService {
	return &serv{
		table:   table.New(model.GameDice, ledger, history, ValidateTarget),
		history: history,
		rng:     src,
	}
}

func (s *serv) PlaceBet(ctx context.Context, userID int64, target string, amount int64) (*table.Snapshot, error) {
	return s.table.PlaceBet(ctx, userID, target, amount)
}

func (s *serv) History(ctx context.Context, userID int64) ([]model.RoundRecord, error) {
	return s.history.List(ctx, model.GameDice, userID)
}
