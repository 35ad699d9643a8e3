package env

import (
	"arcade_backend/internal/config"
	"fmt"
	"os"
	"time"
)

const (
	heartbeatIntervalEnvName     = "HEARTBEAT_INTERVAL"
	heartbeatInitialDelayEnvName = "HEARTBEAT_INITIAL_DELAY"
	heartbeatCooldownEnvName     = "HEARTBEAT_COOLDOWN"
	heartbeatBotLoginEnvName     = "HEARTBEAT_BOT_LOGIN"
	heartbeatTitlePrefixEnvName  = "HEARTBEAT_TITLE_PREFIX"
	heartbeatCachePathEnvName    = "HEARTBEAT_CACHE_PATH"

	defaultHeartbeatInterval     = time.Minute
	defaultHeartbeatInitialDelay = 10 * time.Second
	defaultHeartbeatCooldown     = 15 * time.Minute
	defaultHeartbeatTitlePrefix  = "[Bot] "
)

type heartbeatConfig struct {
	interval     time.Duration
	initialDelay time.Duration
	cooldown     time.Duration
	botLogin     string
	titlePrefix  string
	cachePath    string
}

func NewHeartbeatConfig() (config.HeartbeatConfig, error) {
	interval, err := durationOr(heartbeatIntervalEnvName, defaultHeartbeatInterval)
	if err != nil {
		return nil, err
	}
	initialDelay, err := durationOr(heartbeatInitialDelayEnvName, defaultHeartbeatInitialDelay)
	if err != nil {
		return nil, err
	}
	cooldown, err := durationOr(heartbeatCooldownEnvName, defaultHeartbeatCooldown)
	if err != nil {
		return nil, err
	}
	if interval <= 0 || cooldown <= 0 {
		return nil, fmt.Errorf("heartbeat interval and cooldown must be positive")
	}

	prefix := os.Getenv(heartbeatTitlePrefixEnvName)
	if len(prefix) == 0 {
		prefix = defaultHeartbeatTitlePrefix
	}

	return &heartbeatConfig{
		interval:     interval,
		initialDelay: initialDelay,
		cooldown:     cooldown,
		botLogin:     os.Getenv(heartbeatBotLoginEnvName),
		titlePrefix:  prefix,
		cachePath:    os.Getenv(heartbeatCachePathEnvName),
	}, nil
}

func durationOr(name string, def time.Duration) (time.Duration, error) {
	raw := os.Getenv(name)
	if len(raw) == 0 {
		return def, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", name, err)
	}
	return d, nil
}

func (cfg *heartbeatConfig) Interval() time.Duration {
	return cfg.interval
}

func (cfg *heartbeatConfig) InitialDelay() time.Duration {
	return cfg.initialDelay
}

func (cfg *heartbeatConfig) Cooldown() time.Duration {
	return cfg.cooldown
}

func (cfg *heartbeatConfig) BotLogin() string {
	return cfg.botLogin
}

func (cfg *heartbeatConfig) TitlePrefix() string {
	return cfg.titlePrefix
}

func (cfg *heartbeatConfig) CachePath() string {
	return cfg.cachePath
}
