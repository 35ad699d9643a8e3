package roulette

import (
	"arcade_backend/internal/game/table"
	"arcade_backend/internal/model"
	"context"
	"fmt"
)

// Spin запускает колесо. Исход не зависит от ставок
func (s *serv) Spin(ctx context.Context, userID int64) (*model.Resolution[model.Segment], error) {
	return table.Resolve(ctx, s.table, userID, s.draw, Payout, describe)
}

func (s *serv) draw() model.Segment {
	return SegmentOf(s.rng.Intn(wheelSize))
}

func describe(seg model.Segment) string {
	return fmt.Sprintf("%d %s", seg.Number, seg.Color)
}
