package config

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	// Server
	Host            string        `env:"HOST" envDefault:"0.0.0.0"`
	Port            int           `env:"PORT" envDefault:"5000"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	GzipEnabled     bool          `env:"GZIP_ENABLED" envDefault:"false"`

	// CORS
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"` // text, json

	// Metrics
	MetricsEnabled bool   `env:"METRICS_ENABLED" envDefault:"true"`
	MetricsPath    string `env:"METRICS_PATH" envDefault:"/metrics"`

	// Synthetic data shape
	HistorySize    int    `env:"HISTORY_SIZE" envDefault:"10"`
	PlanSize       int    `env:"PLAN_SIZE" envDefault:"50"`
	PlanVisible    int    `env:"PLAN_VISIBLE" envDefault:"20"`
	ContainerCount int    `env:"CONTAINER_COUNT" envDefault:"8"`
	Namespace      string `env:"NAMESPACE" envDefault:"default"`
}

var envFiles = []string{".env", ".env.local"}

// MaxPlanVisible is the most test plan entries the API ever returns
const MaxPlanVisible = 20

// NewConfig creates a new configuration with defaults, overridden by
// .env files and the process environment. A variable that cannot be parsed
// falls back to its own default; the others are kept.
func NewConfig() *Config {
	_ = loadEnvFiles(envFiles)
	cfg, _ := parseLenient(env.ToMap(os.Environ()))
	return cfg
}

// Load reads the configuration and reports parse failures.
func Load() (*Config, error) {
	if err := loadEnvFiles(envFiles); err != nil {
		return nil, fmt.Errorf("failed to load env files: %w", err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}

// parseLenient parses environ, dropping every variable that fails on its own.
// It returns the names of the dropped variables.
func parseLenient(environ map[string]string) (*Config, []string) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, env.Options{Environment: environ}); err == nil {
		return cfg, nil
	}

	kept := make(map[string]string, len(environ))
	var dropped []string
	for key, value := range environ {
		single := &Config{}
		if err := env.ParseWithOptions(single, env.Options{Environment: map[string]string{key: value}}); err != nil {
			dropped = append(dropped, key)
			continue
		}
		kept[key] = value
	}
	sort.Strings(dropped)

	cfg = &Config{}
	_ = env.ParseWithOptions(cfg, env.Options{Environment: kept})
	return cfg, dropped
}

func loadEnvFiles(files []string) error {
	existing := make([]string, 0, len(files))
	for _, file := range files {
		if _, err := os.Stat(file); err == nil {
			existing = append(existing, file)
		}
	}
	if len(existing) == 0 {
		return nil
	}
	return godotenv.Load(existing...)
}

// Address returns the listen address
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Validate checks if configuration is valid
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", c.Port)
	}
	if c.HistorySize < 1 {
		return fmt.Errorf("history size must be at least 1")
	}
	if c.PlanSize < 1 {
		return fmt.Errorf("plan size must be at least 1")
	}
	if c.PlanVisible < 1 || c.PlanVisible > c.PlanSize {
		return fmt.Errorf("plan visible must be between 1 and plan size (%d), got %d", c.PlanSize, c.PlanVisible)
	}
	if c.PlanVisible > MaxPlanVisible {
		return fmt.Errorf("plan visible must be at most %d, got %d", MaxPlanVisible, c.PlanVisible)
	}
	if c.ContainerCount < 1 {
		return fmt.Errorf("container count must be at least 1")
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("log format must be text or json, got %q", c.LogFormat)
	}
	if c.MetricsEnabled && !strings.HasPrefix(c.MetricsPath, "/") {
		return fmt.Errorf("metrics path must start with /")
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("shutdown timeout must be positive")
	}
	return nil
}
