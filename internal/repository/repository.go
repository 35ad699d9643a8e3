package repository

import (
	"arcade_backend/internal/model"
	"context"
	"time"
)

// LedgerRepository баланс очков пользователя. Списание и начисление атомарны на стороне хранилища
type LedgerRepository interface {
	Balance(ctx context.Context, userID int64) (int64, error)
	Debit(ctx context.Context, userID, amount int64, reason string) (int64, error)
	Credit(ctx context.Context, userID, amount int64, reason string) (int64, error)
}

type AuthRepository interface {
	CreateSession(ctx context.Context, session *model.Session) error
	GetRefreshTokenBySessionID(ctx context.Context, sessionID string) (refreshToken string, err error)
	DeleteSession(ctx context.Context, sessionID string) error
	GetUserBySessionID(ctx context.Context, sessionID string) (*model.User, error)
}

type UserRepository interface {
	CreateUser(ctx context.Context, user *model.User) (id int64, err error)
	GetUserByLogin(ctx context.Context, login string) (*model.User, error)
}

type FeedRepository interface {
	Insert(ctx context.Context, item *model.FeedItem) error
	// LatestByTitlePrefix время последней записи с заголовком, начинающимся с prefix.
	// found = false, если таких записей нет
	LatestByTitlePrefix(ctx context.Context, prefix string) (at time.Time, found bool, err error)
	List(ctx context.Context, limit uint64) ([]model.FeedItem, error)
}

// HistoryRepository скользящая лента последних раундов пользователя в игре
type HistoryRepository interface {
	Push(ctx context.Context, rec model.RoundRecord) error
	List(ctx context.Context, game string, userID int64) ([]model.RoundRecord, error)
}

// HeartbeatCacheRepository локальный кэш меток времени бота. Не источник истины
type HeartbeatCacheRepository interface {
	Get(ctx context.Context, key string) (at time.Time, found bool, err error)
	Set(ctx context.Context, key string, at time.Time) error
}
