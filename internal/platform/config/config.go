// Package config loads process configuration from the environment, optionally
// seeded from a .env file for local runs.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
)

// DefaultEnvFile is read when Load is called without explicit files.
const DefaultEnvFile = ".env"

// Config holds the server settings. PORT follows the Cloud Run contract.
type Config struct {
	Port        int    `env:"PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	DocsEnabled bool   `env:"DOCS_ENABLED" envDefault:"true"`
	ProjectID   string `env:"GOOGLE_CLOUD_PROJECT"`

	Timeouts TimeoutConfig
	Metrics  MetricsConfig
}

// TimeoutConfig holds http.Server and shutdown timeouts.
type TimeoutConfig struct {
	Read       time.Duration `env:"READ_TIMEOUT" envDefault:"5s"`
	ReadHeader time.Duration `env:"READ_HEADER_TIMEOUT" envDefault:"2s"`
	Write      time.Duration `env:"WRITE_TIMEOUT" envDefault:"10s"`
	Idle       time.Duration `env:"IDLE_TIMEOUT" envDefault:"60s"`
	Shutdown   time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// MetricsConfig controls the private Prometheus listener.
type MetricsConfig struct {
	Enabled bool   `env:"METRICS_ENABLED" envDefault:"false"`
	Port    int    `env:"METRICS_PORT" envDefault:"9090"`
	Path    string `env:"METRICS_PATH" envDefault:"/metrics"`
}

// HealthcheckConfig is what cmd/healthcheck needs.
type HealthcheckConfig struct {
	URL     string        `env:"HEALTHCHECK_URL" envDefault:"http://localhost:8080/healthz"`
	Timeout time.Duration `env:"HEALTHCHECK_TIMEOUT" envDefault:"2s"`
}

// Load reads the given env files (DefaultEnvFile when none are given), then
// parses and validates Config. Missing files are ignored; variables already
// set in the environment win over file values.
func Load(files ...string) (*Config, error) {
	if err := loadEnvFiles(files); err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.ProjectID == "" {
		cfg.ProjectID = firstNonEmpty(
			os.Getenv("GCP_PROJECT"),
			os.Getenv("GCLOUD_PROJECT"),
			os.Getenv("PROJECT_ID"),
		)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// LoadHealthcheck parses HealthcheckConfig from the environment.
func LoadHealthcheck() (*HealthcheckConfig, error) {
	cfg := &HealthcheckConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse healthcheck config: %w", err)
	}
	if cfg.URL == "" {
		return nil, errors.New("HEALTHCHECK_URL must not be empty")
	}
	if cfg.Timeout <= 0 {
		return nil, fmt.Errorf("HEALTHCHECK_TIMEOUT must be positive, got %s", cfg.Timeout)
	}
	return cfg, nil
}

// Validate checks ranges and cross-field constraints.
func (c *Config) Validate() error {
	var errs []error
	if err := validPort("PORT", c.Port); err != nil {
		errs = append(errs, err)
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("LOG_LEVEL %q is not a valid level", c.LogLevel))
	}

	timeouts := []struct {
		name  string
		value time.Duration
	}{
		{"READ_TIMEOUT", c.Timeouts.Read},
		{"READ_HEADER_TIMEOUT", c.Timeouts.ReadHeader},
		{"WRITE_TIMEOUT", c.Timeouts.Write},
		{"IDLE_TIMEOUT", c.Timeouts.Idle},
		{"SHUTDOWN_TIMEOUT", c.Timeouts.Shutdown},
	}
	for _, t := range timeouts {
		if t.value <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %s", t.name, t.value))
		}
	}

	if c.Metrics.Enabled {
		if err := validPort("METRICS_PORT", c.Metrics.Port); err != nil {
			errs = append(errs, err)
		} else if c.Metrics.Port == c.Port {
			errs = append(errs, fmt.Errorf("METRICS_PORT must differ from PORT (%d)", c.Port))
		}
		if !strings.HasPrefix(c.Metrics.Path, "/") {
			errs = append(errs, fmt.Errorf("METRICS_PATH %q must start with /", c.Metrics.Path))
		}
	}
	return errors.Join(errs...)
}

// Addr is the listen address for the public server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func validPort(name string, port int) error {
	if port < 1 || port > 65535 {
		return fmt.Errorf("%s must be between 1 and 65535, got %d", name, port)
	}
	return nil
}

func loadEnvFiles(files []string) error {
	if len(files) == 0 {
		files = []string{DefaultEnvFile}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("failed to load env file %s: %w", f, err)
		}
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
