package model

import "time"

// Названия игр, используются в истории, метриках и причинах проводок леджера
const (
	GameBlackjack = "blackjack"
	GameBaccarat  = "baccarat"
	GameRoulette  = "roulette"
	GameDice      = "dice"
	GameReels     = "reels"
)

// RoundRecord запись о сыгранном раунде для ленты истории
type RoundRecord struct {
	RoundID string
	Game    string
	UserID  int64
	Outcome string // Короткое текстовое описание исхода
	Stake   int64
	Payout  int64
	At      time.Time
}

// Net выигрыш за вычетом ставки
func (r RoundRecord) Net() int64 {
	return r.Payout - r.Stake
}

// Resolution итог розыгрыша многоставочной игры
type Resolution[O any] struct {
	RoundID string
	Bets    map[string]int64
	Outcome O
	Payout  int64
	Balance int64
}
