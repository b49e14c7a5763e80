package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/opscart/cicd-perf-suite/pkg/config"
	"github.com/opscart/cicd-perf-suite/pkg/dashboard"
	"github.com/opscart/cicd-perf-suite/pkg/performance"
	"github.com/opscart/cicd-perf-suite/pkg/pipeline"
	"github.com/opscart/cicd-perf-suite/pkg/prioritization"
	"github.com/opscart/cicd-perf-suite/pkg/recommender"
	"github.com/opscart/cicd-perf-suite/pkg/reporter"
	"github.com/opscart/cicd-perf-suite/pkg/synth"
)

type snapshotFunc func(c *config.Config, src *synth.Source, now time.Time) any

var snapshots = map[string]snapshotFunc{
	"dashboard": func(_ *config.Config, src *synth.Source, _ time.Time) any {
		return dashboard.Generate(src)
	},
	"tests": func(c *config.Config, src *synth.Source, now time.Time) any {
		return performance.History(src, c.HistorySize, now)
	},
	"plan": func(c *config.Config, src *synth.Source, _ time.Time) any {
		return prioritization.NewPlanner(src, c.PlanSize, c.PlanVisible).Top()
	},
	"prioritization": func(_ *config.Config, src *synth.Source, _ time.Time) any {
		return prioritization.Summary(src)
	},
	"optimization": func(c *config.Config, src *synth.Source, _ time.Time) any {
		return recommender.New(src, c.Namespace).Recommend(c.ContainerCount)
	},
	"pipeline": func(_ *config.Config, src *synth.Source, now time.Time) any {
		return pipeline.Status(src, now)
	},
}

const snapshotKinds = "dashboard|tests|plan|prioritization|optimization|pipeline"

func snapshotNames() []string {
	names := make([]string, 0, len(snapshots))
	for name := range snapshots {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	if err := applyFlags(cmd); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return writeSnapshot(cmd.OutOrStdout(), args[0], snapshotOutput, synth.NewRandom(), time.Now())
}

func writeSnapshot(w io.Writer, kind, output string, src *synth.Source, now time.Time) error {
	generate, ok := snapshots[strings.ToLower(kind)]
	if !ok {
		return fmt.Errorf("unknown snapshot %q, expected one of: %s", kind, strings.Join(snapshotNames(), ", "))
	}

	format, err := reporter.ParseFormat(output)
	if err != nil {
		return err
	}
	if format != reporter.FormatJSON && format != reporter.FormatYAML {
		return fmt.Errorf("snapshot output must be json or yaml, got %s", output)
	}

	return reporter.Encode(w, format, generate(cfg, src, now))
}

func runReport(cmd *cobra.Command, args []string) error {
	if err := applyFlags(cmd); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	format, err := reporter.ParseFormat(reportFormat)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if reportOutput != "" {
		file, err := os.Create(reportOutput)
		if err != nil {
			return fmt.Errorf("failed to create report file: %w", err)
		}
		defer file.Close()
		out = file
	}

	if err := writeReport(out, format, synth.NewRandom(), time.Now()); err != nil {
		return err
	}

	if reportOutput != "" {
		fmt.Fprintf(cmd.ErrOrStderr(), "[INFO] Report written to %s\n", reportOutput)
	}
	return nil
}

func writeReport(w io.Writer, format reporter.ReportFormat, src *synth.Source, now time.Time) error {
	recommendations := recommender.New(src, cfg.Namespace).Recommend(cfg.ContainerCount)

	r := reporter.New(format)
	report := r.Generate(recommendations, cfg.Namespace, now)
	if err := r.Write(report, w); err != nil {
		return fmt.Errorf("failed to generate report: %w", err)
	}
	return nil
}
