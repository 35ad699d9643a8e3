// Package heartbeat бот ленты. Раз в интервал проверяет, когда был последний автоматический пост,
// и если прошёл кулдаун, просит разведчика найти новость и публикует её.
//
// Источник истины о последнем посте - лента в БД. Локальный кэш нужен только как запасной вариант
// при недоступной БД и как оптимистичная блокировка между экземплярами. Гарантии единственного поста нет.
package heartbeat

import (
	"arcade_backend/internal/model"
	"arcade_backend/internal/repository"
	"arcade_backend/internal/rng"
	"arcade_backend/internal/service"
	"context"
	"errors"
	"sync"
	"time"
	"unicode/utf8"
)

// Ключи локального кэша
const (
	keyClaim    = "heartbeat:claim"
	keyLastEmit = "heartbeat:last_emit"
)

// maxTitleRunes предел заголовка записи ленты вместе с префиксом бота
const maxTitleRunes = 120

// Scout находит новость по теме. nil без ошибки - ничего не найдено
type Scout interface {
	Scout(ctx context.Context, topic, category string) (*model.ScoutReport, error)
}

// Publisher рассылка новой записи подписчикам ленты
type Publisher interface {
	Publish(item model.FeedItem)
}

type Options struct {
	Interval     time.Duration
	InitialDelay time.Duration
	Cooldown     time.Duration
	TitlePrefix  string
	Topics       []model.Topic
}

type serv struct {
	feed  repository.FeedRepository
	cache repository.HeartbeatCacheRepository
	scout Scout
	pub   Publisher
	rng   rng.Source
	opts  Options

	now func() time.Time
	// inFlight не даёт тикам наслаиваться друг на друга
	inFlight sync.Mutex
}

func NewHeartbeatService(
	feed repository.FeedRepository,
	cache repository.HeartbeatCacheRepository,
	scout Scout,
	pub Publisher,
	src rng.Source,
	opts Options,
) (service.HeartbeatService, error) {
	if opts.Interval <= 0 || opts.Cooldown <= 0 {
		return nil, errors.New("heartbeat interval and cooldown must be positive")
	}
	if len(opts.Topics) == 0 {
		return nil, errors.New("heartbeat needs at least one topic")
	}
	if utf8.RuneCountInString(opts.TitlePrefix) >= maxTitleRunes {
		return nil, errors.New("heartbeat title prefix leaves no room for the title")
	}

	return &serv{
		feed:  feed,
		cache: cache,
		scout: scout,
		pub:   pub,
		rng:   src,
		opts:  opts,
		now:   time.Now,
	}, nil
}
