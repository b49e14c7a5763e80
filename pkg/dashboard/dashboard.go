package dashboard

import (
	"github.com/opscart/cicd-perf-suite/pkg/models"
	"github.com/opscart/cicd-perf-suite/pkg/synth"
)

// Generate produces a fresh set of dashboard statistics. Nothing is read from
// or written to shared state.
func Generate(src *synth.Source) models.DashboardStats {
	lastBuild := models.BuildFailed
	if src.Float64() > 0.2 {
		lastBuild = models.BuildSuccess
	}

	return models.DashboardStats{
		Performance: models.PerformanceStats{
			P95Latency:  src.UniformRound(30, 60, 1),
			FailureRate: src.UniformRound(0.1, 2.0, 2),
			TotalTests:  src.IntRange(50, 200),
			Throughput:  src.IntRange(1000, 5000),
		},
		Prioritization: models.PrioritizationStats{
			APFDImprovement:  src.UniformRound(30, 50, 1),
			PrioritizedTests: src.IntRange(20, 100),
			ModelAccuracy:    src.UniformRound(75, 92, 1),
		},
		Optimization: models.OptimizationStats{
			ResourceSavings: src.UniformRound(20, 30, 1),
			CostSavings:     src.UniformRound(100, 500, 2),
			OptimizedPods:   src.IntRange(5, 20),
		},
		Pipeline: models.PipelineStats{
			SuccessRate:     src.UniformRound(85, 95, 1),
			LastBuildStatus: lastBuild,
			ActiveBuilds:    src.IntRange(0, 3),
		},
	}
}
