// Package metrics provides Prometheus metrics for the pacer daemon:
// counters and gauges for the task store and its persistence writes.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ─── Tasks ──────────────────────────────────────────────────────────────────

// TasksCreated tracks created tasks by kind (timed / open_ended).
var TasksCreated = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "pacer",
	Name:      "tasks_created_total",
	Help:      "Total tasks created.",
}, []string{"kind"})

// TasksCompleted tracks completed tasks by how they completed.
var TasksCompleted = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "pacer",
	Name:      "tasks_completed_total",
	Help:      "Total tasks completed.",
}, []string{"cause"}) // "timeout" or "manual"

// TasksRunning tracks tasks currently in the RUNNING state.
var TasksRunning = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: "pacer",
	Name:      "tasks_running",
	Help:      "Tasks currently accruing time.",
})

// ─── Engine ─────────────────────────────────────────────────────────────────

// TicksTotal counts clock ticks applied to the store.
var TicksTotal = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "pacer",
	Name:      "ticks_total",
	Help:      "Clock ticks applied to the task store.",
})

// SaveFailures counts persistence writes that failed.
var SaveFailures = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "pacer",
	Name:      "save_failures_total",
	Help:      "Collection saves that returned an error.",
})

// SaveLatency tracks collection save duration in seconds.
var SaveLatency = promauto.NewHistogram(prometheus.HistogramOpts{
	Namespace: "pacer",
	Name:      "save_latency_seconds",
	Help:      "Collection save duration in seconds.",
	Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
})

// NotificationsSent counts completion notifications handed to the notifier.
var NotificationsSent = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "pacer",
	Name:      "notifications_sent_total",
	Help:      "Completion notifications dispatched.",
})
