package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	heartbeatTicks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "heartbeat_ticks_total",
			Help: "Bot heartbeat ticks by decision",
		},
		[]string{"decision"},
	)

	heartbeatDegraded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "heartbeat_degraded_reads_total",
			Help: "Ticks where the remote timestamp read failed and the local cache was used",
		},
	)
)

func RecordHeartbeat(decision string) {
	heartbeatTicks.WithLabelValues(decision).Inc()
}

func RecordHeartbeatDegraded() {
	heartbeatDegraded.Inc()
}
