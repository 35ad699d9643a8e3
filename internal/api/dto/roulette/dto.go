package roulette

type SpinResponse struct {
	RoundID string           `json:"round_id"`
	Number  int              `json:"number"` // 0-36
	Color   string           `json:"color"`  // red | black | green
	Bets    map[string]int64 `json:"bets"`
	Payout  int64            `json:"payout"`
	Balance int64            `json:"balance"`
}
