package reels

type SpinRequest struct {
	BetPerLine int64 `json:"bet_per_line"` // Ставка на каждую из 5 линий
}

type LineWin struct {
	Line       int    `json:"line"` // 1-5
	Symbol     string `json:"symbol"`
	Multiplier int    `json:"multiplier"`
	Payout     int64  `json:"payout"`
}

type SpinResponse struct {
	RoundID  string       `json:"round_id"`
	Grid     [3][3]string `json:"grid"` // [барабан][строка]
	LineWins []LineWin    `json:"line_wins"`
	Stake    int64        `json:"stake"`
	Payout   int64        `json:"payout"`
	Balance  int64        `json:"balance"`
}
