package baccarat

import (
	"arcade_backend/internal/game/cards"
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
	// newShoe колода на раунд, в тестах подменяется заранее разложенной
	newShoe func() *cards.Shoe
}

// NewBaccaratService баккара со ставками на игрока, банкира и ничью
func NewBaccaratService(
	ledger repository.LedgerRepository,
	history repository.HistoryRepository,
	src rng.Source,
) service.BaccaratService {
	return &serv{
		table:   table.New(model.GameBaccarat, ledger, history, ValidateTarget),
		history: history,
		newShoe: func() *cards.Shoe { return cards.NewShoe(src, 8) },
	}
}

func (s *serv) PlaceBet(ctx context.Context, userID int64, target string, amount int64) (*table.Snapshot, error) {
	return s.table.PlaceBet(ctx, userID, target, amount)
}

func (s *serv) History(ctx context.Context, userID int64) ([]model.RoundRecord, error) {
	return s.history.List(ctx, model.GameBaccarat, userID)
}
