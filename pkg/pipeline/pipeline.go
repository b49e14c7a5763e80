package pipeline

import (
	"fmt"
	"time"

	"github.com/opscart/cicd-perf-suite/pkg/models"
	"github.com/opscart/cicd-perf-suite/pkg/synth"
)

// Name of the simulated pipeline
const Name = "main"

var triggers = []string{"user@example.com", "jenkins", "webhook"}

// Status fabricates the current pipeline state
func Status(src *synth.Source, now time.Time) models.PipelineStatus {
	status := models.BuildFailed
	if src.Float64() > 0.2 {
		status = models.BuildSuccess
	}

	return models.PipelineStatus{
		LastBuild: models.Build{
			ID:          fmt.Sprintf("build_%d", src.IntRange(1000, 9999)),
			Status:      status,
			Duration:    src.IntRange(120, 600),
			Timestamp:   now,
			TriggeredBy: synth.Pick(src, triggers),
			Pipeline:    Name,
		},
		QueueLength:  src.IntRange(0, 5),
		ActiveBuilds: src.IntRange(0, 2),
		SuccessRate:  src.UniformRound(85, 95, 1),
	}
}
