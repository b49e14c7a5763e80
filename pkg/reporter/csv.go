package reporter

import (
	"encoding/csv"
	"fmt"
	"io"
)

// GenerateCSV creates a CSV report
func GenerateCSV(report *Report, writer io.Writer) error {
	w := csv.NewWriter(writer)

	header := []string{
		"Namespace",
		"Pod",
		"Container",
		"Current CPU (m)",
		"Current Memory (Mi)",
		"Suggested CPU (m)",
		"Suggested Memory (Mi)",
		"CPU Saving (%)",
		"Memory Saving (%)",
		"Command",
	}
	if err := w.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, rec := range report.Recommendations {
		row := []string{
			rec.Namespace,
			rec.Pod,
			rec.Container,
			fmt.Sprintf("%d", rec.CurrentCPU),
			fmt.Sprintf("%d", rec.CurrentMemory),
			fmt.Sprintf("%d", rec.SuggestedCPU),
			fmt.Sprintf("%d", rec.SuggestedMemory),
			fmt.Sprintf("%.1f", rec.CPUSavingPercent),
			fmt.Sprintf("%.1f", rec.MemorySavingPercent),
			rec.Command,
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	summary := [][]string{
		{},
		{"SUMMARY"},
		{"Total Containers", fmt.Sprintf("%d", report.WorkloadCount)},
		{"Optimization Opportunities", fmt.Sprintf("%d", report.OptimizableCount)},
		{"Total CPU Saving (m)", fmt.Sprintf("%d", report.TotalCPUSaving)},
		{"Total Memory Saving (Mi)", fmt.Sprintf("%d", report.TotalMemorySaving)},
		{"Average CPU Saving (%)", fmt.Sprintf("%.1f", report.AvgCPUSavingPercent)},
		{"Average Memory Saving (%)", fmt.Sprintf("%.1f", report.AvgMemorySavingPercent)},
	}
	if err := w.WriteAll(summary); err != nil {
		return fmt.Errorf("failed to write CSV summary: %w", err)
	}

	return nil
}
