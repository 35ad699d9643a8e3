package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	roundsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "game_rounds_total",
			Help: "Resolved rounds by game and result",
		},
		[]string{"game", "result"},
	)

	stakeTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "game_stake_points_total",
			Help: "Points staked per game",
		},
		[]string{"game"},
	)

	payoutTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "game_payout_points_total",
			Help: "Points credited back per game",
		},
		[]string{"game"},
	)
)

// RecordRound учёт сыгранного раунда. result: win | push | lose
func RecordRound(game string, stake, payout int64) {
	result := "lose"
	switch {
	case payout > stake:
		result = "win"
	case payout == stake && stake > 0:
		result = "push"
	}
	roundsTotal.WithLabelValues(game, result).Inc()
	stakeTotal.WithLabelValues(game).Add(float64(stake))
	payoutTotal.WithLabelValues(game).Add(float64(payout))
}
