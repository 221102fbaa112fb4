package source

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// pagesFetchedTotal tracks successful page fetches by strategy.
	pagesFetchedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "booking_pages_fetched_total",
			Help: "Total number of pages fetched by source and endpoint",
		},
		[]string{"source", "endpoint"},
	)

	// fetchErrorsTotal tracks failed page fetches by strategy.
	fetchErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "booking_fetch_errors_total",
			Help: "Total number of failed page fetches by source and endpoint",
		},
		[]string{"source", "endpoint"},
	)

	// degradedReadsTotal tracks page files that existed but could not be
	// read and were served as empty pages.
	degradedReadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "booking_degraded_reads_total",
			Help: "Total number of unreadable page files served as empty pages",
		},
		[]string{"endpoint"},
	)
)
