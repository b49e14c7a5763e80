package recommender

import (
	"fmt"

	"github.com/opscart/cicd-perf-suite/pkg/models"
	"github.com/opscart/cicd-perf-suite/pkg/synth"
)

// Recommender suggests right-sized CPU and memory allocations for the
// simulated containers
type Recommender struct {
	namespace string

	// Usage ranges of the simulated containers
	minCurrentCPU, maxCurrentCPU       int
	minCurrentMemory, maxCurrentMemory int

	// Suggested allocation as a fraction of current
	cpuFactorLow, cpuFactorHigh       float64
	memoryFactorLow, memoryFactorHigh float64

	// Floors for suggestions
	minCPU    int64
	minMemory int64

	src *synth.Source
}

func New(src *synth.Source, namespace string) *Recommender {
	if namespace == "" {
		namespace = "default"
	}
	return &Recommender{
		namespace:        namespace,
		minCurrentCPU:    200,
		maxCurrentCPU:    800,
		minCurrentMemory: 256,
		maxCurrentMemory: 1024,
		cpuFactorLow:     0.6,
		cpuFactorHigh:    0.8,
		memoryFactorLow:  0.7,
		memoryFactorHigh: 0.85,
		minCPU:           100, // 100m minimum
		minMemory:        128, // 128MB minimum
		src:              src,
	}
}

// Recommend generates fresh recommendations for count containers
func (r *Recommender) Recommend(count int) []models.Recommendation {
	recommendations := make([]models.Recommendation, 0, count)
	for i := 0; i < count; i++ {
		workload := models.Workload{
			Namespace: r.namespace,
			Pod:       fmt.Sprintf("app-pod-%d", i),
			Container: fmt.Sprintf("container-%d", i),
		}

		currentCPU := int64(r.src.IntRange(r.minCurrentCPU, r.maxCurrentCPU))
		suggestedCPU := int64(float64(currentCPU) * r.src.Uniform(r.cpuFactorLow, r.cpuFactorHigh))

		currentMemory := int64(r.src.IntRange(r.minCurrentMemory, r.maxCurrentMemory))
		suggestedMemory := int64(float64(currentMemory) * r.src.Uniform(r.memoryFactorLow, r.memoryFactorHigh))

		recommendations = append(recommendations, r.Analyze(workload, currentCPU, suggestedCPU, currentMemory, suggestedMemory))
	}
	return recommendations
}

// Analyze applies the floors to a raw suggestion and derives the savings
func (r *Recommender) Analyze(workload models.Workload, currentCPU, suggestedCPU, currentMemory, suggestedMemory int64) models.Recommendation {
	if suggestedCPU < r.minCPU {
		suggestedCPU = r.minCPU
	}
	if suggestedMemory < r.minMemory {
		suggestedMemory = r.minMemory
	}

	rec := models.Recommendation{
		Workload:            workload,
		CurrentCPU:          currentCPU,
		CurrentMemory:       currentMemory,
		SuggestedCPU:        suggestedCPU,
		SuggestedMemory:     suggestedMemory,
		CPUSaving:           currentCPU - suggestedCPU,
		MemorySaving:        currentMemory - suggestedMemory,
		CPUSavingPercent:    savingPercent(currentCPU-suggestedCPU, currentCPU),
		MemorySavingPercent: savingPercent(currentMemory-suggestedMemory, currentMemory),
	}
	applyQuantities(&rec)

	return rec
}

func savingPercent(saving, current int64) float64 {
	if current == 0 {
		return 0
	}
	return synth.Round(float64(saving)/float64(current)*100, 1)
}
