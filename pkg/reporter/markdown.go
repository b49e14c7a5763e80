package reporter

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// GenerateMarkdown creates a Markdown report
func GenerateMarkdown(report *Report, writer io.Writer) error {
	var b strings.Builder

	b.WriteString("# Resource Optimization Report\n\n")
	fmt.Fprintf(&b, "- **Namespace:** %s\n", report.Namespace)
	fmt.Fprintf(&b, "- **Generated:** %s\n\n", report.GeneratedAt.Format(time.RFC3339))

	b.WriteString("## Summary\n\n")
	b.WriteString("| Metric | Value |\n|---|---|\n")
	fmt.Fprintf(&b, "| Containers analyzed | %d |\n", report.WorkloadCount)
	fmt.Fprintf(&b, "| Optimization opportunities | %d |\n", report.OptimizableCount)
	fmt.Fprintf(&b, "| CPU saving | %dm of %dm |\n", report.TotalCPUSaving, report.TotalCurrentCPU)
	fmt.Fprintf(&b, "| Memory saving | %dMi of %dMi |\n", report.TotalMemorySaving, report.TotalCurrentMemory)
	fmt.Fprintf(&b, "| Average CPU saving | %.1f%% |\n", report.AvgCPUSavingPercent)
	fmt.Fprintf(&b, "| Average memory saving | %.1f%% |\n\n", report.AvgMemorySavingPercent)

	if len(report.Recommendations) == 0 {
		b.WriteString("No recommendations.\n")
	} else {
		b.WriteString("## Recommendations\n\n")
		b.WriteString("| Pod | Container | CPU | Memory | Saving |\n|---|---|---|---|---|\n")
		for _, rec := range report.Recommendations {
			fmt.Fprintf(&b, "| %s | %s | %s → %s | %s → %s | %.1f%% CPU, %.1f%% memory |\n",
				rec.Pod, rec.Container,
				rec.CPURequest, rec.SuggestedCPURequest,
				rec.MemoryRequest, rec.SuggestedMemoryRequest,
				rec.CPUSavingPercent, rec.MemorySavingPercent)
		}

		b.WriteString("\n## Commands\n\n```bash\n")
		for _, rec := range report.Recommendations {
			if rec.Command != "" {
				b.WriteString(rec.Command + "\n")
			}
		}
		b.WriteString("```\n")
	}

	if _, err := io.WriteString(writer, b.String()); err != nil {
		return fmt.Errorf("failed to write markdown report: %w", err)
	}
	return nil
}
