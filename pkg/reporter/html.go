package reporter

import (
	"fmt"
	"html/template"
	"io"
)

const htmlTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <title>Resource Optimization Report - {{.Namespace}}</title>
    <style>
        body { font-family: -apple-system, 'Segoe UI', Roboto, Arial, sans-serif; background: #f5f7fa; color: #333; padding: 20px; }
        .container { max-width: 1200px; margin: 0 auto; background: white; border-radius: 8px; box-shadow: 0 2px 8px rgba(0, 0, 0, 0.1); }
        .header { background: linear-gradient(135deg, #326ce5 0%, #1a4d8f 100%); color: white; padding: 24px; border-radius: 8px 8px 0 0; }
        .stats { display: grid; grid-template-columns: repeat(4, 1fr); gap: 16px; padding: 24px; }
        .stat { background: #f8f9fa; border-radius: 6px; padding: 16px; }
        .stat .value { font-size: 1.6em; font-weight: bold; color: #326ce5; }
        table { width: 100%; border-collapse: collapse; }
        th, td { padding: 10px 24px; text-align: left; border-bottom: 1px solid #eee; }
        th { background: #f8f9fa; }
        code { font-size: 0.85em; }
    </style>
</head>
<body>
<div class="container">
    <div class="header">
        <h1>Resource Optimization Report</h1>
        <p>Namespace: {{.Namespace}} · Generated {{.GeneratedAt.Format "2006-01-02 15:04:05 MST"}}</p>
    </div>
    <div class="stats">
        <div class="stat"><div>Containers</div><div class="value">{{.WorkloadCount}}</div></div>
        <div class="stat"><div>Opportunities</div><div class="value">{{.OptimizableCount}}</div></div>
        <div class="stat"><div>Avg CPU saving</div><div class="value">{{printf "%.1f" .AvgCPUSavingPercent}}%</div></div>
        <div class="stat"><div>Avg memory saving</div><div class="value">{{printf "%.1f" .AvgMemorySavingPercent}}%</div></div>
    </div>
    <table>
        <thead>
            <tr><th>Pod</th><th>Container</th><th>CPU</th><th>Memory</th><th>Command</th></tr>
        </thead>
        <tbody>
        {{range .Recommendations}}
            <tr>
                <td>{{.Pod}}</td>
                <td>{{.Container}}</td>
                <td>{{.CPURequest}} → {{.SuggestedCPURequest}} ({{printf "%.1f" .CPUSavingPercent}}%)</td>
                <td>{{.MemoryRequest}} → {{.SuggestedMemoryRequest}} ({{printf "%.1f" .MemorySavingPercent}}%)</td>
                <td>{{if .Command}}<code>{{.Command}}</code>{{else}}-{{end}}</td>
            </tr>
        {{end}}
        </tbody>
    </table>
</div>
</body>
</html>
`

var reportTemplate = template.Must(template.New("report").Parse(htmlTemplate))

// GenerateHTML creates an HTML report
func GenerateHTML(report *Report, writer io.Writer) error {
	if err := reportTemplate.Execute(writer, report); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	return nil
}
