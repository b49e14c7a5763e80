package config

import (
	"os"
	"strings"
	"testing"
	"time"
)

func TestNewConfigDefaults(t *testing.T) {
	// Clear any existing env vars
	os.Unsetenv("PORT")
	os.Unsetenv("HOST")
	os.Unsetenv("CORS_ALLOWED_ORIGINS")
	os.Unsetenv("PLAN_SIZE")

	cfg := NewConfig()

	if cfg.Port != 5000 {
		t.Errorf("Expected default port 5000, got %d", cfg.Port)
	}

	if cfg.Host != "0.0.0.0" {
		t.Errorf("Expected default host 0.0.0.0, got %s", cfg.Host)
	}

	if len(cfg.AllowedOrigins) != 1 || cfg.AllowedOrigins[0] != "*" {
		t.Errorf("Expected all origins allowed, got %v", cfg.AllowedOrigins)
	}

	if cfg.PlanSize != 50 || cfg.PlanVisible != 20 {
		t.Errorf("Expected plan 50/20, got %d/%d", cfg.PlanSize, cfg.PlanVisible)
	}

	if cfg.HistorySize != 10 {
		t.Errorf("Expected history size 10, got %d", cfg.HistorySize)
	}

	if cfg.ContainerCount != 8 {
		t.Errorf("Expected 8 containers, got %d", cfg.ContainerCount)
	}

	if cfg.ShutdownTimeout != 10*time.Second {
		t.Errorf("Expected shutdown timeout 10s, got %v", cfg.ShutdownTimeout)
	}

	if cfg.Address() != "0.0.0.0:5000" {
		t.Errorf("Expected address 0.0.0.0:5000, got %s", cfg.Address())
	}
}

func TestConfigFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000,https://dashboard.example.com")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("SHUTDOWN_TIMEOUT", "30s")

	cfg := NewConfig()

	if cfg.Port != 8080 {
		t.Errorf("Expected port 8080 from env, got %d", cfg.Port)
	}

	if len(cfg.AllowedOrigins) != 2 || cfg.AllowedOrigins[1] != "https://dashboard.example.com" {
		t.Errorf("Expected two origins from env, got %v", cfg.AllowedOrigins)
	}

	if cfg.LogFormat != "json" {
		t.Errorf("Expected json log format, got %s", cfg.LogFormat)
	}

	if cfg.ShutdownTimeout != 30*time.Second {
		t.Errorf("Expected shutdown timeout 30s, got %v", cfg.ShutdownTimeout)
	}
}

func TestValidation(t *testing.T) {
	tests := []struct {
		name          string
		setupConfig   func(*Config)
		expectError   bool
		errorContains string
	}{
		{
			name:        "valid default config",
			setupConfig: func(c *Config) {},
			expectError: false,
		},
		{
			name: "port too low",
			setupConfig: func(c *Config) {
				c.Port = 0
			},
			expectError:   true,
			errorContains: "between 1 and 65535",
		},
		{
			name: "port too high",
			setupConfig: func(c *Config) {
				c.Port = 70000
			},
			expectError:   true,
			errorContains: "between 1 and 65535",
		},
		{
			name: "visible larger than plan",
			setupConfig: func(c *Config) {
				c.PlanVisible = 60
			},
			expectError:   true,
			errorContains: "plan visible",
		},
		{
			name: "no containers",
			setupConfig: func(c *Config) {
				c.ContainerCount = 0
			},
			expectError:   true,
			errorContains: "container count",
		},
		{
			name: "unknown log format",
			setupConfig: func(c *Config) {
				c.LogFormat = "xml"
			},
			expectError:   true,
			errorContains: "log format",
		},
		{
			name: "relative metrics path",
			setupConfig: func(c *Config) {
				c.MetricsPath = "metrics"
			},
			expectError:   true,
			errorContains: "metrics path",
		},
		{
			name: "metrics disabled ignores path",
			setupConfig: func(c *Config) {
				c.MetricsEnabled = false
				c.MetricsPath = ""
			},
			expectError: false,
		},
		{
			name: "valid edge case - visible equals size",
			setupConfig: func(c *Config) {
				c.PlanSize = MaxPlanVisible
				c.PlanVisible = MaxPlanVisible
			},
			expectError: false,
		},
		{
			name: "visible above response cap",
			setupConfig: func(c *Config) {
				c.PlanVisible = MaxPlanVisible + 1
			},
			expectError:   true,
			errorContains: "at most 20",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.setupConfig(cfg)

			err := cfg.Validate()

			if tt.expectError && err == nil {
				t.Errorf("Expected error but got none")
			}

			if !tt.expectError && err != nil {
				t.Errorf("Expected no error but got: %v", err)
			}

			if tt.expectError && err != nil && tt.errorContains != "" {
				if !strings.Contains(err.Error(), tt.errorContains) {
					t.Errorf("Expected error containing '%s', got '%s'",
						tt.errorContains, err.Error())
				}
			}
		})
	}
}

func TestInvalidEnvValues(t *testing.T) {
	t.Setenv("PORT", "invalid")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://dashboard.example.com")
	t.Setenv("LOG_FORMAT", "json")

	if _, err := Load(); err == nil {
		t.Error("Expected Load to report an unparsable port")
	}

	cfg := NewConfig()

	// Only the bad variable falls back to its default
	if cfg.Port != 5000 {
		t.Errorf("Expected fallback to default 5000, got %d", cfg.Port)
	}
	if len(cfg.AllowedOrigins) != 1 || cfg.AllowedOrigins[0] != "https://dashboard.example.com" {
		t.Errorf("Expected origins from env to survive, got %v", cfg.AllowedOrigins)
	}
	if cfg.LogFormat != "json" {
		t.Errorf("Expected json log format to survive, got %s", cfg.LogFormat)
	}
}

func TestParseLenientReportsDropped(t *testing.T) {
	cfg, dropped := parseLenient(map[string]string{
		"PORT":             "8080",
		"PLAN_SIZE":        "lots",
		"SHUTDOWN_TIMEOUT": "soon",
		"NAMESPACE":        "staging",
		"UNRELATED":        "value",
	})

	if len(dropped) != 2 || dropped[0] != "PLAN_SIZE" || dropped[1] != "SHUTDOWN_TIMEOUT" {
		t.Errorf("Expected PLAN_SIZE and SHUTDOWN_TIMEOUT dropped, got %v", dropped)
	}
	if cfg.Port != 8080 || cfg.Namespace != "staging" {
		t.Errorf("Expected valid values kept, got port=%d namespace=%s", cfg.Port, cfg.Namespace)
	}
	if cfg.PlanSize != 50 || cfg.ShutdownTimeout != 10*time.Second {
		t.Errorf("Expected defaults for dropped values, got %d/%v", cfg.PlanSize, cfg.ShutdownTimeout)
	}

	if _, dropped := parseLenient(map[string]string{"PORT": "8080"}); dropped != nil {
		t.Errorf("Expected nothing dropped, got %v", dropped)
	}
}
