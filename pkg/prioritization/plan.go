package prioritization

import (
	"fmt"
	"sort"
	"sync"

	"github.com/opscart/cicd-perf-suite/pkg/models"
	"github.com/opscart/cicd-perf-suite/pkg/synth"
)

// RiskLevelFor buckets a failure probability
func RiskLevelFor(failureProbability float64) models.RiskLevel {
	if failureProbability > 0.7 {
		return models.RiskHigh
	} else if failureProbability > 0.4 {
		return models.RiskMedium
	}
	return models.RiskLow
}

// Planner owns the prioritized test plan. The full plan is generated on first
// use and kept for the life of the process.
type Planner struct {
	plan     []models.PlanEntry
	planSize int
	visible  int
	mutex    sync.Mutex

	src *synth.Source
}

func NewPlanner(src *synth.Source, size, visible int) *Planner {
	if visible > size {
		visible = size
	}
	return &Planner{
		planSize: size,
		visible:  visible,
		src:      src,
	}
}

// Top returns the highest-priority entries of the plan, generating it if needed
func (p *Planner) Top() []models.PlanEntry {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	if p.plan == nil {
		p.plan = p.generate()
	}

	sort.SliceStable(p.plan, func(i, j int) bool {
		return p.plan[i].Priority < p.plan[j].Priority
	})

	n := p.visible
	if n > len(p.plan) {
		n = len(p.plan)
	}
	top := make([]models.PlanEntry, n)
	copy(top, p.plan[:n])
	return top
}

// size reports how many entries the cached plan holds (0 before first use)
func (p *Planner) size() int {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	return len(p.plan)
}

func (p *Planner) generate() []models.PlanEntry {
	plan := make([]models.PlanEntry, 0, p.planSize)
	for i := 0; i < p.planSize; i++ {
		probability := p.src.UniformRound(0.1, 0.9, 3)
		plan = append(plan, models.PlanEntry{
			ID:                 fmt.Sprintf("test_%d", i),
			TestCase:           fmt.Sprintf("Test API Endpoint %d", i+1),
			FailureProbability: probability,
			Priority:           i + 1,
			EstimatedDuration:  p.src.IntRange(5, 60),
			RiskLevel:          RiskLevelFor(probability),
		})
	}
	return plan
}
