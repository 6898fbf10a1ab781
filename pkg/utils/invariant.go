// Invariants are conditions in code that must be true; otherwise, there is a bug in code.
// Think of what you'd `panic()` on, but you don't want to crash the caller just because of that violation.
// If an invariant is violated, a log error is recorded and a monitoring counter is incremented.
// It is still up to the caller to handle the erroneous case, e.g. by returning early.
//
// Do not use invariants for conditions that depend on user input; for example, a list position that is out of range
// is a normal error. But a list whose chain is shorter than a length the same call just measured,
// or two list headers sharing a chain, is an invariant violation.

package utils

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	promclient "github.com/prometheus/client_model/go"
)

var invariantsMetric = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "invariants_total",
	Help: "The total number of invariant violations",
}, []string{
	"module", // The module in which this invariant occurred.
	"type",   // The type of the invariant that occurred.
})

// RaiseInvariant records a violation of `invariantType` inside `module`. It panics in test builds.
func RaiseInvariant(module, invariantType, msg string, args ...any) {
	invariantsMetric.WithLabelValues(module, invariantType).Inc()
	slog.With("invariant", invariantType, "module", module).Error(msg, args...)
	if IsTestMode {
		panic("invariant violated: " + invariantType)
	}
}

// GetMetricValue returns the current value of invariant metric with labels `module` and `invariantType`.
func GetMetricValue(module, invariantType string) int {
	return CounterValue(invariantsMetric.WithLabelValues(module, invariantType))
}

// CounterValue reads the current value of the given `counter`; returns 0 if it cannot be read.
func CounterValue(counter prometheus.Counter) int {
	var metric = &promclient.Metric{}
	if err := counter.Write(metric); err != nil {
		slog.Error(err.Error())
		return 0
	}
	return int(metric.Counter.GetValue())
}
