package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Result label values
const (
	ResultSuccess  = "success"
	ResultConflict = "conflict"
	ResultDenied   = "denied"
	ResultNotFound = "not_found"
	ResultError    = "error"
)

var (
	SignupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_signups_total",
			Help: "Total number of signup attempts by result",
		},
		[]string{"result"},
	)

	SigninsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_signins_total",
			Help: "Total number of signin attempts by result",
		},
		[]string{"result"},
	)

	AccessTokensIssued = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "auth_access_tokens_issued_total",
			Help: "Total number of access tokens issued",
		},
	)

	AuthenticationFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_authentication_failures_total",
			Help: "Total number of rejected bearer tokens by reason",
		},
		[]string{"reason"},
	)

	TaskOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "task_operations_total",
			Help: "Total number of task operations by operation and result",
		},
		[]string{"operation", "result"},
	)

	HTTPRequestDurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
)
