package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Resultados posibles de una llamada al proveedor
const (
	OutcomeSuccess     = "success"
	OutcomeHTTPError   = "http_error"
	OutcomeUnreachable = "unreachable"
	OutcomeMalformed   = "malformed"
)

var (
	UpstreamRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "upstream_requests_total",
			Help: "Total number of income statement requests sent to the data provider",
		},
		[]string{"outcome"},
	)

	UpstreamDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "upstream_request_duration_seconds",
			Help:    "Duration of data provider requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"outcome"},
	)

	ReportRecordsReturned = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "report_records_returned",
			Help:    "Number of records returned by /fetch_data after filtering",
			Buckets: []float64{0, 1, 2, 5, 10, 20, 50},
		},
	)

	ReportFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "report_failures_total",
			Help: "Total number of failed /fetch_data requests by error code",
		},
		[]string{"error_code"},
	)
)
