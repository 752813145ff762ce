package emailsafe

import "github.com/zeromicro/go-zero/core/metric"

var (
	validationsTotal = metric.NewCounterVec(&metric.CounterVecOpts{
		Namespace: "plat_emailguard",
		Subsystem: "pipeline",
		Name:      "validations_total",
		Help:      "Total documents run through the validation pipeline",
		Labels:    []string{"valid"},
	})

	issuesFound = metric.NewCounterVec(&metric.CounterVecOpts{
		Namespace: "plat_emailguard",
		Subsystem: "pipeline",
		Name:      "issues_total",
		Help:      "Issues reported by the read-only analyzers",
		Labels:    []string{"analyzer"},
	})

	fallbacksServed = metric.NewCounterVec(&metric.CounterVecOpts{
		Namespace: "plat_emailguard",
		Subsystem: "pipeline",
		Name:      "fallbacks_total",
		Help:      "Fallback documents served instead of caller input",
		Labels:    []string{"reason"},
	})
)

// recordValidation updates pipeline counters. Metrics are ambient: recording
// never changes a result.
func recordValidation(valid bool, compatIssues, accessIssues int) {
	if valid {
		validationsTotal.Inc("true")
	} else {
		validationsTotal.Inc("false")
	}
	for i := 0; i < compatIssues; i++ {
		issuesFound.Inc("compatibility")
	}
	for i := 0; i < accessIssues; i++ {
		issuesFound.Inc("accessibility")
	}
}
