package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/opscart/cicd-perf-suite/pkg/api"
	"github.com/opscart/cicd-perf-suite/pkg/config"
	"github.com/opscart/cicd-perf-suite/pkg/logging"
	"github.com/opscart/cicd-perf-suite/pkg/metrics"
	"github.com/opscart/cicd-perf-suite/pkg/synth"
)

var (
	// Server flags
	host      string
	port      int
	logLevel  string
	logFormat string
	verbose   bool

	// Snapshot flags
	snapshotOutput string

	// Report flags
	reportFormat string
	reportOutput string

	// Global config
	cfg *config.Config
)

func main() {
	var err error
	cfg, err = config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "[ERROR] invalid environment: %v\n", err)
		os.Exit(1)
	}

	var rootCmd = &cobra.Command{
		Use:           "perf-suite",
		Short:         "CI/CD performance suite backend",
		Long:          `Serve the CI/CD performance dashboard API: load tests, test prioritization, resource optimization and pipeline status.`,
		RunE:          runServe,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", cfg.LogFormat, "Log format: text, json")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API (default)",
		RunE:  runServe,
	}
	for _, c := range []*cobra.Command{rootCmd, serveCmd} {
		c.Flags().StringVar(&host, "host", cfg.Host, "Listen host")
		c.Flags().IntVarP(&port, "port", "p", cfg.Port, "Listen port")
	}

	snapshotCmd := &cobra.Command{
		Use:       "snapshot <" + snapshotKinds + ">",
		Short:     "Print one endpoint payload without starting the server",
		Args:      cobra.ExactArgs(1),
		ValidArgs: snapshotNames(),
		RunE:      runSnapshot,
	}
	snapshotCmd.Flags().StringVarP(&snapshotOutput, "output", "o", "json", "Output format: json, yaml")

	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Generate a resource optimization report",
		RunE:  runReport,
	}
	reportCmd.Flags().StringVar(&reportFormat, "format", "markdown", "Report format: markdown, csv, html, json, yaml")
	reportCmd.Flags().StringVar(&reportOutput, "output", "", "Output file for report (default: stdout)")

	rootCmd.AddCommand(serveCmd, snapshotCmd, reportCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "[ERROR] %v\n", err)
		os.Exit(1)
	}
}

// applyFlags folds command line overrides into the loaded configuration
func applyFlags(cmd *cobra.Command) error {
	flags := cmd.Flags()
	if flags.Changed("host") {
		cfg.Host = host
	}
	if flags.Changed("port") {
		cfg.Port = port
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = logFormat
	}
	if verbose {
		cfg.LogLevel = logrus.DebugLevel.String()
	}
	return cfg.Validate()
}

func runServe(cmd *cobra.Command, args []string) error {
	if err := applyFlags(cmd); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger := logging.New(cfg.LogLevel, cfg.LogFormat)

	var m *metrics.Metrics
	if cfg.MetricsEnabled {
		m = metrics.New()
	}

	service := api.NewService(api.Options{
		Config:  cfg,
		Logger:  logger,
		Source:  synth.NewRandom(),
		Metrics: m,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.WithFields(logrus.Fields{
		"address": cfg.Address(),
		"metrics": cfg.MetricsEnabled,
		"gzip":    cfg.GzipEnabled,
	}).Info("Starting CI/CD performance suite backend")

	if err := service.Server().Run(ctx, cfg.Address(), cfg.ShutdownTimeout); err != nil {
		logger.WithError(err).Error("Server stopped with error")
		return err
	}

	logger.Info("Server stopped")
	return nil
}
