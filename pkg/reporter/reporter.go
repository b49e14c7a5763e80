package reporter

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/opscart/cicd-perf-suite/pkg/models"
	"github.com/opscart/cicd-perf-suite/pkg/synth"
)

// ReportFormat represents the output format
type ReportFormat string

const (
	FormatHTML     ReportFormat = "html"
	FormatMarkdown ReportFormat = "markdown"
	FormatCSV      ReportFormat = "csv"
	FormatJSON     ReportFormat = "json"
	FormatYAML     ReportFormat = "yaml"
)

// Report contains all data for generating an optimization report
type Report struct {
	Namespace       string
	GeneratedAt     time.Time
	Recommendations []models.Recommendation

	WorkloadCount    int
	OptimizableCount int // recommendations that carry a command

	TotalCurrentCPU    int64
	TotalSuggestedCPU  int64
	TotalCPUSaving     int64
	TotalCurrentMemory int64
	TotalMemorySaving  int64

	AvgCPUSavingPercent    float64
	AvgMemorySavingPercent float64
}

// Reporter generates optimization reports
type Reporter struct {
	format ReportFormat
}

// New creates a new reporter
func New(format ReportFormat) *Reporter {
	return &Reporter{
		format: format,
	}
}

// ParseFormat validates a user supplied format name
func ParseFormat(name string) (ReportFormat, error) {
	switch f := ReportFormat(name); f {
	case FormatHTML, FormatMarkdown, FormatCSV, FormatJSON, FormatYAML:
		return f, nil
	case "md":
		return FormatMarkdown, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported report format: %s", name)
	}
}

// Generate builds a report from recommendations
func (r *Reporter) Generate(recommendations []models.Recommendation, namespace string, generatedAt time.Time) *Report {
	report := &Report{
		Namespace:       namespace,
		GeneratedAt:     generatedAt,
		Recommendations: recommendations,
	}

	calculateStats(report)

	return report
}

// Write renders report in the reporter's format
func (r *Reporter) Write(report *Report, w io.Writer) error {
	switch r.format {
	case FormatCSV:
		return GenerateCSV(report, w)
	case FormatMarkdown:
		return GenerateMarkdown(report, w)
	case FormatHTML:
		return GenerateHTML(report, w)
	case FormatJSON, FormatYAML:
		return Encode(w, r.format, report.Recommendations)
	default:
		return fmt.Errorf("unsupported report format: %s", r.format)
	}
}

func calculateStats(report *Report) {
	var cpuPercent, memPercent float64

	for _, rec := range report.Recommendations {
		report.WorkloadCount++
		if rec.Command != "" {
			report.OptimizableCount++
		}

		report.TotalCurrentCPU += rec.CurrentCPU
		report.TotalSuggestedCPU += rec.SuggestedCPU
		report.TotalCPUSaving += rec.CPUSaving
		report.TotalCurrentMemory += rec.CurrentMemory
		report.TotalMemorySaving += rec.MemorySaving

		cpuPercent += rec.CPUSavingPercent
		memPercent += rec.MemorySavingPercent
	}

	if report.WorkloadCount > 0 {
		n := float64(report.WorkloadCount)
		report.AvgCPUSavingPercent = synth.Round(cpuPercent/n, 1)
		report.AvgMemorySavingPercent = synth.Round(memPercent/n, 1)
	}
}

// Encode writes any payload as indented JSON or YAML
func Encode(w io.Writer, format ReportFormat, payload any) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(payload); err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
		return nil
	case FormatYAML:
		// Round-trip through JSON so YAML keys match the API field names
		raw, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		var generic any
		if err := json.Unmarshal(raw, &generic); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}

		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(generic); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported encoding: %s", format)
	}
}
