// Package metrics provides the centralized Prometheus metrics registry for
// the booking.com client. All metrics are defined in their respective
// packages (pagination, source, transport, snapshot) to maintain modularity
// and avoid circular dependencies.
//
// This package provides documentation and reference for all available metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Registry is the default Prometheus registry used by the client.
// All metrics are automatically registered via promauto in their respective packages.
var Registry = prometheus.DefaultRegisterer

// Metrics Documentation
//
// Pagination Metrics (pkg/pagination):
//   - booking_records_total{endpoint} (Counter): Records delivered to consumers
//   - booking_sequences_completed_total{endpoint} (Counter): Traversals that ran to natural exhaustion
//
// Source Metrics (pkg/source):
//   - booking_pages_fetched_total{source, endpoint} (Counter): Pages fetched by strategy and endpoint
//   - booking_fetch_errors_total{source, endpoint} (Counter): Failed page fetches
//   - booking_degraded_reads_total{endpoint} (Counter): Unreadable page files served as empty pages
//
// Transport Metrics (pkg/transport):
//   - booking_requests_total{endpoint, status} (Counter): Provider requests by endpoint and HTTP status
//   - booking_request_duration_seconds{endpoint} (Histogram): Provider request duration
//
// Snapshot Metrics (pkg/snapshot):
//   - booking_snapshot_pages_written_total{endpoint} (Counter): Pages persisted by the mirror
//   - booking_snapshot_bytes_written_total{endpoint} (Counter): Payload bytes persisted by the mirror
//
// Example Prometheus Queries:
//
//   # Records per second by endpoint
//   rate(booking_records_total[5m])
//
//   # Degraded read rate (should be zero on a healthy snapshot)
//   rate(booking_degraded_reads_total[5m])
//
//   # Provider error rate
//   sum(rate(booking_requests_total{status!~"2.."}[5m]))
//
//   # P95 provider latency
//   histogram_quantile(0.95, rate(booking_request_duration_seconds_bucket[5m]))
