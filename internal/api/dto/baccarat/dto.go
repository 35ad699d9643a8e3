package baccarat

type DealResponse struct {
	RoundID     string           `json:"round_id"`
	Player      []string         `json:"player"` // Карты вида "10H", "KS"
	Banker      []string         `json:"banker"`
	PlayerPoint int              `json:"player_point"`
	BankerPoint int              `json:"banker_point"`
	Winner      string           `json:"winner"` // player | banker | tie
	Bets        map[string]int64 `json:"bets"`
	Payout      int64            `json:"payout"`
	Balance     int64            `json:"balance"`
}
