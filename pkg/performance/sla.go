package performance

import "github.com/opscart/cicd-perf-suite/pkg/models"

const (
	// SLALatencyThreshold is the highest passing p95 latency in milliseconds
	SLALatencyThreshold = 50.0
	// SLAFailureRateThreshold is the highest passing failure rate in percent
	SLAFailureRateThreshold = 1.0
)

// EvaluateSLA classifies a test by its p95 latency and failure rate
func EvaluateSLA(p95Latency, failureRate float64) models.SLAStatus {
	if p95Latency <= SLALatencyThreshold && failureRate <= SLAFailureRateThreshold {
		return models.SLAPass
	}
	return models.SLAFail
}
