package pagination

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus metrics for cursor traversal.
var (
	recordsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "booking_records_total",
		Help: "Total records delivered to consumers by endpoint",
	}, []string{"endpoint"})

	sequencesCompletedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "booking_sequences_completed_total",
		Help: "Total endpoint traversals that ran to natural exhaustion",
	}, []string{"endpoint"})
)
