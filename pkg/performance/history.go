package performance

import (
	"fmt"
	"time"

	"github.com/opscart/cicd-perf-suite/pkg/models"
	"github.com/opscart/cicd-perf-suite/pkg/synth"
)

var historyStatuses = []models.TestStatus{
	models.TestCompleted,
	models.TestRunning,
	models.TestFailed,
}

// History fabricates count historical test summaries. Every call regenerates
// all entries.
func History(src *synth.Source, count int, now time.Time) []models.TestSummary {
	tests := make([]models.TestSummary, 0, count)

	for i := 0; i < count; i++ {
		p95 := src.UniformRound(20, 80, 1)
		failureRate := src.UniformRound(0.1, 5.0, 2)

		tests = append(tests, models.TestSummary{
			ID:          fmt.Sprintf("test_%d", i),
			Name:        fmt.Sprintf("Load Test %d", i+1),
			Status:      synth.Pick(src, historyStatuses),
			Users:       src.IntRange(10, 500),
			Duration:    fmt.Sprintf("%dm", src.IntRange(1, 10)),
			P95Latency:  p95,
			FailureRate: failureRate,
			SLAStatus:   EvaluateSLA(p95, failureRate),
			Timestamp:   now.AddDate(0, 0, -src.IntRange(0, 30)),
		})
	}

	return tests
}
