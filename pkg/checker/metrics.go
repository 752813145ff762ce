package checker

import "github.com/zeromicro/go-zero/core/metric"

var (
	checksDone = metric.NewCounterVec(&metric.CounterVecOpts{
		Namespace: "plat_emailguard",
		Subsystem: "checker",
		Name:      "checks_total",
		Help:      "Total check jobs completed",
		Labels:    []string{"source", "valid"},
	})

	checksFailed = metric.NewCounterVec(&metric.CounterVecOpts{
		Namespace: "plat_emailguard",
		Subsystem: "checker",
		Name:      "checks_failed_total",
		Help:      "Total check jobs failed permanently",
		Labels:    []string{"source", "reason"},
	})

	checkDuration = metric.NewHistogramVec(&metric.HistogramVecOpts{
		Namespace: "plat_emailguard",
		Subsystem: "checker",
		Name:      "duration_seconds",
		Help:      "Check job duration in seconds",
		Labels:    []string{"source"},
		Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
	})

	qualityScore = metric.NewGaugeVec(&metric.GaugeVecOpts{
		Namespace: "plat_emailguard",
		Subsystem: "checker",
		Name:      "last_quality_score",
		Help:      "Quality score of the most recent check",
		Labels:    []string{"source"},
	})

	queueDepth = metric.NewGaugeVec(&metric.GaugeVecOpts{
		Namespace: "plat_emailguard",
		Subsystem: "queue",
		Name:      "depth",
		Help:      "Current queue depth by status",
		Labels:    []string{"status"},
	})
)
