package env

import (
	"arcade_backend/internal/config"
	"fmt"
	"os"
	"strconv"
)

const (
	pgDSNEnvName      = "PG_DSN"
	pgMaxConnsEnvName = "PG_MAX_CONNS"

	defaultPGMaxConns = 10
)

type pgConfig struct {
	dsn      string
	maxConns int32
}

func NewPGConfig() (config.PGConfig, error) {
	dsn := os.Getenv(pgDSNEnvName)
	if len(dsn) == 0 {
		return nil, fmt.Errorf("%s is not set", pgDSNEnvName)
	}

	maxConns := int32(defaultPGMaxConns)
	if raw := os.Getenv(pgMaxConnsEnvName); len(raw) > 0 {
		n, err := strconv.ParseInt(raw, 10, 32)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid %s: %q", pgMaxConnsEnvName, raw)
		}
		maxConns = int32(n)
	}

	return &pgConfig{dsn: dsn, maxConns: maxConns}, nil
}

func (cfg *pgConfig) DSN() string {
	return cfg.dsn
}

func (cfg *pgConfig) MaxConns() int32 {
	return cfg.maxConns
}
