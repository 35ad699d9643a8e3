// Package file игровые таблицы из config.yaml: символы слота и темы для бота
package file

import (
	"arcade_backend/internal/config"
	"arcade_backend/internal/model"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type gamesFile struct {
	Reels struct {
		Symbols []config.ReelSymbol `yaml:"symbols"`
	} `yaml:"reels"`
	Heartbeat struct {
		Topics []model.Topic `yaml:"topics"`
	} `yaml:"heartbeat"`
}

type reelsConfig struct {
	symbols []config.ReelSymbol
}

type topicsConfig struct {
	topics []model.Topic
}

func load(path string) (*gamesFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read games config: %w", err)
	}
	var f gamesFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse games config: %w", err)
	}
	return &f, nil
}

func NewReelsConfig(path string) (config.ReelsConfig, error) {
	f, err := load(path)
	if err != nil {
		return nil, err
	}
	if len(f.Reels.Symbols) == 0 {
		return nil, fmt.Errorf("reels symbols not found in %s", path)
	}
	return &reelsConfig{symbols: f.Reels.Symbols}, nil
}

func NewTopicsConfig(path string) (config.TopicsConfig, error) {
	f, err := load(path)
	if err != nil {
		return nil, err
	}
	if len(f.Heartbeat.Topics) == 0 {
		return nil, fmt.Errorf("heartbeat topics not found in %s", path)
	}
	return &topicsConfig{topics: f.Heartbeat.Topics}, nil
}

func (c *reelsConfig) ReelSymbols() []config.ReelSymbol {
	return c.symbols
}

func (c *topicsConfig) Topics() []model.Topic {
	return c.topics
}
