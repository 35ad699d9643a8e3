package service

import (
	"arcade_backend/internal/game/table"
	"arcade_backend/internal/model"
	"context"
)

type RouletteService interface {
	PlaceBet(ctx context.Context, userID int64, target string, amount int64) (*table.Snapshot, error)
	Spin(ctx context.Context, userID int64) (*model.Resolution[model.Segment], error)
	History(ctx context.Context, userID int64) ([]model.RoundRecord, error)
}

type DiceService interface {
	PlaceBet(ctx context.Context, userID int64, target string, amount int64) (*table.Snapshot, error)
	Roll(ctx context.Context, userID int64) (*model.Resolution[model.DiceOutcome], error)
	History(ctx context.Context, userID int64) ([]model.RoundRecord, error)
}

type BaccaratService interface {
	PlaceBet(ctx context.Context, userID int64, target string, amount int64) (*table.Snapshot, error)
	Deal(ctx context.Context, userID int64) (*model.Resolution[model.BaccaratOutcome], error)
	History(ctx context.Context, userID int64) ([]model.RoundRecord, error)
}

type ReelsService interface {
	Spin(ctx context.Context, userID int64, betPerLine int64) (*model.Resolution[model.ReelOutcome], error)
	History(ctx context.Context, userID int64) ([]model.RoundRecord, error)
}

type BlackjackService interface {
	Deal(ctx context.Context, userID int64, bet int64) (*model.BlackjackHand, error)
	Hit(ctx context.Context, userID int64) (*model.BlackjackHand, error)
	Stand(ctx context.Context, userID int64) (*model.BlackjackHand, error)
	Double(ctx context.Context, userID int64) (*model.BlackjackHand, error)
	State(ctx context.Context, userID int64) (*model.BlackjackHand, error)
	History(ctx context.Context, userID int64) ([]model.RoundRecord, error)
}

type AuthService interface {
	Register(ctx context.Context, user *model.User) (*model.AuthData, error)
	Login(ctx context.Context, login, password string) (*model.AuthData, error)
	Refresh(ctx context.Context, sessionID, refreshToken string) (newAccessToken string, err error)
	Logout(ctx context.Context, sessionID string) error
}

type WalletService interface {
	GetBalance(ctx context.Context, userID int64) (int64, error)
}

type FeedService interface {
	List(ctx context.Context, limit uint64) ([]model.FeedItem, error)
	Post(ctx context.Context, userID int64, title, content string, tags []string) (*model.FeedItem, error)
}

type FortuneService interface {
	Draw(ctx context.Context, userID int64, question string) (*model.FortuneReading, error)
}

// HeartbeatService бот, который периодически публикует новости в ленту
type HeartbeatService interface {
	Run(ctx context.Context, session model.BotSession) error
	Tick(ctx context.Context, session model.BotSession) model.HeartbeatDecision
}
