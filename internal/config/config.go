package config

import (
	"arcade_backend/internal/model"
	"time"

	"github.com/joho/godotenv"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

// ReelSymbol символ слота: вес выпадения и множитель линии
type ReelSymbol struct {
	Name       string `yaml:"name"`
	Weight     int    `yaml:"weight"`
	Multiplier int    `yaml:"multiplier"`
}

type ReelsConfig interface {
	ReelSymbols() []ReelSymbol
}

// TopicsConfig темы для автоматических постов бота
type TopicsConfig interface {
	Topics() []model.Topic
}

type HTTPConfig interface {
	Address() string
}

type PGConfig interface {
	DSN() string
	MaxConns() int32
}

type JWTConfig interface {
	AccessTokenSecretKey() []byte
	AccessTokenDuration() time.Duration
	RefreshTokenDuration() time.Duration
}

// RedisConfig необязательный. Без адреса история раундов хранится в памяти
type RedisConfig interface {
	Enabled() bool
	Addr() string
	Password() string
	DB() int
}

type LLMConfig interface {
	Endpoint() string
	APIKey() string
	Model() string
	Timeout() time.Duration
}

type HeartbeatConfig interface {
	Interval() time.Duration
	InitialDelay() time.Duration
	Cooldown() time.Duration
	// BotLogin пользователь, от имени которого бот пишет в ленту. Пустой - бот выключен
	BotLogin() string
	TitlePrefix() string
	// CachePath файл sqlite для локального кэша. Пустой - кэш в памяти
	CachePath() string
}
