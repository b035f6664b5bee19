package utils

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// Counter: total HTTP requests
	ReqCount = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "app_http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// Histogram: request duration
	ReqDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "app_request_duration_seconds",
			Help: "Request duration seconds",
		},
		[]string{"method", "path"},
	)

	// Counter: application errors by handler and type
	ErrorCount = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "app_errors_total",
			Help: "Total app errors",
		},
		[]string{"handler", "type"},
	)

	// Gamification counters
	CompletionsRecorded = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "app_completions_recorded_total",
			Help: "Habit completions that granted rewards",
		},
	)

	CompletionsReverted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "app_completions_reverted_total",
			Help: "Habit completions reverted",
		},
	)

	XPGranted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "app_xp_granted_total",
			Help: "Total XP granted across all users",
		},
	)

	AchievementsUnlocked = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "app_achievements_unlocked_total",
			Help: "Achievements unlocked by type",
		},
		[]string{"type"},
	)

	PersistFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "app_game_state_persist_failures_total",
			Help: "Game state writes that failed and stayed memory-only",
		},
	)
)

func InitMetrics() {
	prometheus.MustRegister(
		ReqCount, ReqDuration, ErrorCount,
		CompletionsRecorded, CompletionsReverted,
		XPGranted, AchievementsUnlocked, PersistFailures,
	)
}
