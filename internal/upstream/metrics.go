package upstream

import (
	"sync/atomic"
	"time"
)

type callOp int

const (
	opPricing callOp = iota
	opProjects
	opTemplates
)

// Metrics tracks upstream call counts and latency.
type Metrics struct {
	calls         int64
	errors        int64
	latency       int64 // Total latency in nanoseconds
	pricingCalls  int64
	projectCalls  int64
	templateCalls int64
}

var globalMetrics = &Metrics{}

// GetMetrics returns the current metrics snapshot.
func GetMetrics() Metrics {
	return Metrics{
		calls:         atomic.LoadInt64(&globalMetrics.calls),
		errors:        atomic.LoadInt64(&globalMetrics.errors),
		latency:       atomic.LoadInt64(&globalMetrics.latency),
		pricingCalls:  atomic.LoadInt64(&globalMetrics.pricingCalls),
		projectCalls:  atomic.LoadInt64(&globalMetrics.projectCalls),
		templateCalls: atomic.LoadInt64(&globalMetrics.templateCalls),
	}
}

// ResetMetrics resets all metrics (useful for testing).
func ResetMetrics() {
	atomic.StoreInt64(&globalMetrics.calls, 0)
	atomic.StoreInt64(&globalMetrics.errors, 0)
	atomic.StoreInt64(&globalMetrics.latency, 0)
	atomic.StoreInt64(&globalMetrics.pricingCalls, 0)
	atomic.StoreInt64(&globalMetrics.projectCalls, 0)
	atomic.StoreInt64(&globalMetrics.templateCalls, 0)
}

func recordUpstreamCall(op callOp, duration time.Duration, err error) {
	atomic.AddInt64(&globalMetrics.calls, 1)
	atomic.AddInt64(&globalMetrics.latency, duration.Nanoseconds())
	if err != nil {
		atomic.AddInt64(&globalMetrics.errors, 1)
	}

	switch op {
	case opPricing:
		atomic.AddInt64(&globalMetrics.pricingCalls, 1)
	case opProjects:
		atomic.AddInt64(&globalMetrics.projectCalls, 1)
	case opTemplates:
		atomic.AddInt64(&globalMetrics.templateCalls, 1)
	}
}

// Calls returns the total number of upstream calls.
func (m Metrics) Calls() int64 { return m.calls }

// Errors returns the number of failed upstream calls.
func (m Metrics) Errors() int64 { return m.errors }

// AverageLatency returns the average call latency in milliseconds.
func (m Metrics) AverageLatency() float64 {
	if m.calls == 0 {
		return 0
	}
	avgNs := float64(m.latency) / float64(m.calls)
	return avgNs / 1e6
}

// ErrorRate returns the error rate as a percentage.
func (m Metrics) ErrorRate() float64 {
	if m.calls == 0 {
		return 0
	}
	return float64(m.errors) / float64(m.calls) * 100
}
