package recommender

import (
	"fmt"

	"k8s.io/apimachinery/pkg/api/resource"

	"github.com/opscart/cicd-perf-suite/pkg/models"
)

// CPUQuantity renders millicores as a Kubernetes quantity, e.g. "320m"
func CPUQuantity(millicores int64) string {
	return resource.NewMilliQuantity(millicores, resource.DecimalSI).String()
}

// MemoryQuantity renders mebibytes as a binary Kubernetes quantity, e.g. "512Mi"
func MemoryQuantity(mebibytes int64) string {
	return resource.NewQuantity(mebibytes*1024*1024, resource.BinarySI).String()
}

// GenerateCommand creates the kubectl command applying a recommendation
func GenerateCommand(rec models.Recommendation) string {
	if rec.CPUSaving <= 0 && rec.MemorySaving <= 0 {
		return ""
	}

	return fmt.Sprintf(
		"kubectl set resources pod %s -c %s -n %s --requests=cpu=%s,memory=%s",
		rec.Pod,
		rec.Container,
		rec.Namespace,
		rec.SuggestedCPURequest,
		rec.SuggestedMemoryRequest,
	)
}

func applyQuantities(rec *models.Recommendation) {
	rec.CPURequest = CPUQuantity(rec.CurrentCPU)
	rec.MemoryRequest = MemoryQuantity(rec.CurrentMemory)
	rec.SuggestedCPURequest = CPUQuantity(rec.SuggestedCPU)
	rec.SuggestedMemoryRequest = MemoryQuantity(rec.SuggestedMemory)
	rec.Command = GenerateCommand(*rec)
}
