package dice

type RollResponse struct {
	RoundID string           `json:"round_id"`
	Faces   [3]string        `json:"faces"`
	Bets    map[string]int64 `json:"bets"`
	Payout  int64            `json:"payout"`
	Balance int64            `json:"balance"`
}
