package performance

import (
	"fmt"
	"math"

	"github.com/opscart/cicd-perf-suite/pkg/models"
	"github.com/opscart/cicd-perf-suite/pkg/synth"
)

// Result builds the detailed result for testID. A test started through the
// store contributes its own users, duration and, once completed, its final
// latency and failure rate. Everything else, and unknown ids entirely, is
// fabricated.
func (s *Store) Result(testID string) models.TestResult {
	result := FabricateResult(s.src, testID)

	test, found := s.Get(testID)
	if !found {
		return result
	}

	if users, ok := asInt(test.Users); ok {
		result.Users = users
	}
	if duration, ok := test.Duration.(string); ok && duration != "" {
		result.Duration = duration
	}
	if test.Status == models.TestCompleted && test.P95Latency != nil && test.FailureRate != nil {
		result.P95Latency = *test.P95Latency
		result.FailureRate = *test.FailureRate
		if result.ResponseTimes.Median > result.P95Latency {
			result.ResponseTimes.Median = result.P95Latency
		}
		clampAverage(&result.ResponseTimes, result.P95Latency)
		result.SLAStatus = EvaluateSLA(result.P95Latency, result.FailureRate)
	}

	return result
}

// FabricateResult produces an internally consistent result: min <= median <= p95 <= max,
// median <= average <= 0.95*p95 + 0.05*max and the SLA verdict follows from p95
// and failure rate.
func FabricateResult(src *synth.Source, testID string) models.TestResult {
	p95 := src.UniformRound(25, 55, 1)
	failureRate := src.UniformRound(0.1, 1.5, 2)

	result := models.TestResult{
		TestID:        testID,
		P95Latency:    p95,
		FailureRate:   failureRate,
		TotalRequests: src.IntRange(10000, 50000),
		SLAStatus:     EvaluateSLA(p95, failureRate),
		ResponseTimes: models.ResponseTimes{
			Min:     src.UniformRound(10, 20, 1),
			Max:     src.UniformRound(80, 150, 1),
			Median:  src.UniformRound(25, math.Min(40, p95), 1),
			Average: src.UniformRound(30, 45, 1),
		},
		Throughput: src.IntRange(800, 2000),
		Users:      src.IntRange(50, 200),
		Duration:   fmt.Sprintf("%dm", src.IntRange(2, 10)),
	}
	clampAverage(&result.ResponseTimes, p95)

	return result
}

// MaxAverage is the largest mean a sample can have given its p95 and max:
// at most 5% of requests lie above p95, none above max.
func MaxAverage(p95, maxLatency float64) float64 {
	return 0.95*p95 + 0.05*maxLatency
}

// clampAverage keeps the average between the median and MaxAverage, rounded
// down to one decimal so the bound still holds after rounding.
func clampAverage(rt *models.ResponseTimes, p95 float64) {
	upper := math.Floor(MaxAverage(p95, rt.Max)*10+1e-6) / 10
	if upper < rt.Median {
		upper = rt.Median
	}
	if rt.Average > upper {
		rt.Average = upper
	}
	if rt.Average < rt.Median {
		rt.Average = rt.Median
	}
}

func asInt(value interface{}) (int, bool) {
	switch v := value.(type) {
	case int:
		if v < 0 || v > math.MaxInt32 {
			return 0, false
		}
		return v, true
	case int64:
		if v < 0 || v > math.MaxInt32 {
			return 0, false
		}
		return int(v), true
	case float64:
		if v != math.Trunc(v) || v < 0 || v > math.MaxInt32 {
			return 0, false
		}
		return int(v), true
	default:
		return 0, false
	}
}
