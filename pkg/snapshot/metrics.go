package snapshot

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// pagesWrittenTotal tracks pages persisted per endpoint.
	pagesWrittenTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "booking_snapshot_pages_written_total",
			Help: "Total number of snapshot pages written",
		},
		[]string{"endpoint"},
	)

	// bytesWrittenTotal tracks payload bytes persisted per endpoint.
	bytesWrittenTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "booking_snapshot_bytes_written_total",
			Help: "Total number of snapshot payload bytes written",
		},
		[]string{"endpoint"},
	)
)
