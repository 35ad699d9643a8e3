package model

import "time"

// FeedItem запись ленты сообщества
type FeedItem struct {
	ID         string
	Title      string
	Content    string
	AuthorID   int64
	Tags       []string
	SourceName string
	SourceURL  string
	CreatedAt  time.Time
}

// ScoutReport ответ разведчика новостей
type ScoutReport struct {
	Title      string `json:"title"`
	Summary    string `json:"summary"`
	SourceName string `json:"source_name"`
	SourceURL  string `json:"source_url"`
}

// Topic пара тема/категория для автоматического поста
type Topic struct {
	Name     string `yaml:"name"`
	Category string `yaml:"category"`
}

// BotSession сессия, от имени которой бот подписывает записи
type BotSession struct {
	UserID int64
}

// HeartbeatDecision итог одного тика бота
type HeartbeatDecision string

const (
	HeartbeatNoSession    HeartbeatDecision = "no_session"
	HeartbeatBusy         HeartbeatDecision = "busy"
	HeartbeatClaimed      HeartbeatDecision = "claimed"
	HeartbeatCooldown     HeartbeatDecision = "cooldown"
	HeartbeatScoutEmpty   HeartbeatDecision = "scout_empty"
	HeartbeatInsertFailed HeartbeatDecision = "insert_failed"
	HeartbeatEmitted      HeartbeatDecision = "emitted"
)
