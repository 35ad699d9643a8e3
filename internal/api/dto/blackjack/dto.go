package blackjack

type DealRequest struct {
	Bet int64 `json:"bet"`
}

type HandResponse struct {
	RoundID     string   `json:"round_id"`
	Phase       string   `json:"phase"`
	Player      []string `json:"player"`
	Dealer      []string `json:"dealer"` // Пока ходит игрок, только открытая карта
	DealerDraws []string `json:"dealer_draws"`
	PlayerTotal int      `json:"player_total"`
	DealerTotal int      `json:"dealer_total"`
	Stake       int64    `json:"stake"`
	Doubled     bool     `json:"doubled"`
	Outcome     string   `json:"outcome,omitempty"`
	Payout      int64    `json:"payout"`
	Balance     int64    `json:"balance"`
}
