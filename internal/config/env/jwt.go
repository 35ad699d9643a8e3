package env

import (
	"arcade_backend/internal/config"
	"fmt"
	"os"
	"time"
)

const (
	refreshTokenDurationEnvName = "REFRESH_TOKEN_DURATION"
	accessTokenKeyEnvName       = "ACCESS_TOKEN"
	accessTokenDurationEnvName  = "ACCESS_TOKEN_DURATION"

	defaultAccessTokenDuration  = 15 * time.Minute
	defaultRefreshTokenDuration = 30 * 24 * time.Hour
)

type jwtConfig struct {
	refreshTokenDuration time.Duration
	accessTokenSecretKey []byte
	accessTokenDuration  time.Duration
}

// NewJWTConfig секрет обязателен, сроки жизни токенов по умолчанию 15m и 30 дней
func NewJWTConfig() (config.JWTConfig, error) {
	secret := os.Getenv(accessTokenKeyEnvName)
	if len(secret) == 0 {
		return nil, fmt.Errorf("%s is not set", accessTokenKeyEnvName)
	}

	access, err := durationOr(accessTokenDurationEnvName, defaultAccessTokenDuration)
	if err != nil {
		return nil, err
	}
	refresh, err := durationOr(refreshTokenDurationEnvName, defaultRefreshTokenDuration)
	if err != nil {
		return nil, err
	}
	if access <= 0 || refresh <= 0 {
		return nil, fmt.Errorf("token durations must be positive")
	}
	if refresh < access {
		return nil, fmt.Errorf("refresh token must outlive access token")
	}

	return &jwtConfig{
		accessTokenSecretKey: []byte(secret),
		refreshTokenDuration: refresh,
		accessTokenDuration:  access,
	}, nil
}

func (j *jwtConfig) AccessTokenSecretKey() []byte {
	return j.accessTokenSecretKey
}

func (j *jwtConfig) RefreshTokenDuration() time.Duration {
	return j.refreshTokenDuration
}

func (j *jwtConfig) AccessTokenDuration() time.Duration {
	return j.accessTokenDuration
}
