package utils

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP Metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path"},
	)

	ActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_active_requests",
			Help: "Current number of active HTTP requests",
		},
	)

	// Database Metrics
	DBOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "db_operation_duration_seconds",
			Help:    "Duration of database operations",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"operation", "collection"},
	)

	// Authentication Metrics
	AuthAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_attempts_total",
			Help: "Total number of authentication attempts",
		},
		[]string{"status", "type"}, // success/failure, login/register/2fa
	)

	// Gamification Metrics
	XPAwardedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "xp_awarded_total",
			Help: "Total XP awarded by action kind",
		},
		[]string{"action"},
	)

	StreakEvaluations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "streak_evaluations_total",
			Help: "Login streak evaluations by outcome",
		},
		[]string{"outcome"}, // same_day, consecutive, weekly_bonus, broken
	)

	// Guest sync metrics
	SyncOutcomes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "guest_sync_total",
			Help: "Guest data merge attempts by outcome",
		},
		[]string{"outcome"}, // committed, partially_failed, empty
	)

	// Error Metrics
	ErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "errors_total",
			Help: "Total number of errors by component and type",
		},
		[]string{"component", "type"},
	)
)

// TrackDBOperation tracks database operation duration
func TrackDBOperation(operation, collection string) *prometheus.Timer {
	return prometheus.NewTimer(DBOperationDuration.WithLabelValues(operation, collection))
}

// TrackAuthAttempt records authentication attempts
func TrackAuthAttempt(status, authType string) {
	AuthAttempts.WithLabelValues(status, authType).Inc()
}

// TrackXPAwarded records XP granted for an action
func TrackXPAwarded(action string, amount int) {
	XPAwardedTotal.WithLabelValues(action).Add(float64(amount))
}

// TrackStreakOutcome records the branch a streak evaluation took
func TrackStreakOutcome(outcome string) {
	StreakEvaluations.WithLabelValues(outcome).Inc()
}

// TrackSyncOutcome records the outcome of a guest data merge
func TrackSyncOutcome(outcome string) {
	SyncOutcomes.WithLabelValues(outcome).Inc()
}

// TrackError increments the error counter by component and type
func TrackError(component, errorType string) {
	ErrorsTotal.WithLabelValues(component, errorType).Inc()
}
