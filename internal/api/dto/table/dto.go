// Package table общие DTO для игр со ставками на несколько целей
package table

import "time"

type BetRequest struct {
	Target string `json:"target"` // Цель ставки: число, цвет, символ, сторона
	Amount int64  `json:"amount"` // > 0
}

type SnapshotResponse struct {
	RoundID string           `json:"round_id"`
	Phase   string           `json:"phase"`
	Bets    map[string]int64 `json:"bets"`
	Total   int64            `json:"total"`
	Balance int64            `json:"balance"` // Баланс после списания
}

type RoundRecord struct {
	RoundID string    `json:"round_id"`
	Outcome string    `json:"outcome"`
	Stake   int64     `json:"stake"`
	Payout  int64     `json:"payout"`
	Net     int64     `json:"net"`
	At      time.Time `json:"at"`
}

type HistoryResponse struct {
	Rounds []RoundRecord `json:"rounds"`
}
