package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "quizroom"

var (
	// HTTPRequests counts served requests by route template.
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	HTTPDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// AuthAttempts counts sign-in/sign-up/refresh calls; outcome is "success" or an error category.
	AuthAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "auth_attempts_total",
			Help:      "Total number of authentication attempts",
		},
		[]string{"action", "outcome"},
	)

	Submissions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "quiz_submissions_total",
			Help:      "Total number of quiz attempt submissions",
		},
		[]string{"trigger", "status"},
	)

	ActiveSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "quiz_sessions_active",
			Help:      "Number of quiz sessions currently in memory",
		},
	)

	DashboardLoads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dashboard_loads_total",
			Help:      "Total number of dashboard loads by resulting status",
		},
		[]string{"status"},
	)

	// BackendQueryDuration times the grouped backend fetches of a screen.
	BackendQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "backend_fetch_duration_seconds",
			Help:      "Duration of grouped backend fetches per screen",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"screen"},
	)
)

// ObserveSince records the time elapsed since start for a screen fetch.
func ObserveSince(screen string, start time.Time) {
	BackendQueryDuration.WithLabelValues(screen).Observe(time.Since(start).Seconds())
}
