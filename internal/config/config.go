// Package config loads quizpack settings from a YAML file and the
// environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the complete service configuration.
type Config struct {
	// Addr is the HTTP listen address, e.g. ":8000".
	Addr string `yaml:"addr"`

	// CatalogPath points at a YAML/JSON catalog file. Empty means the
	// built-in catalog.
	CatalogPath string `yaml:"catalog"`

	// DBPath is the SQLite attempt log. Empty disables the log.
	DBPath string `yaml:"db"`

	// ShutdownTimeout bounds graceful HTTP shutdown.
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`

	Log     LogConfig     `yaml:"log"`
	Answers AnswersConfig `yaml:"answers"`
}

// LogConfig controls the logger.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// AnswersConfig controls answer comparison.
type AnswersConfig struct {
	Normalize bool `yaml:"normalize"` // trim + case-fold before comparing
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Addr:            ":8000",
		ShutdownTimeout: 10 * time.Second,
		Log:             LogConfig{Level: "info"},
	}
}

// Load reads configuration from a YAML file and applies environment
// overrides. An empty path or a missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			// Defaults.
		case err != nil:
			return nil, fmt.Errorf("read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config: %w", err)
			}
		}
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// applyEnvOverrides lets the environment win over the file. PORT is the
// platform convention and is overridden by QUIZPACK_ADDR.
func (c *Config) applyEnvOverrides() {
	if p := strings.TrimSpace(os.Getenv("PORT")); p != "" {
		c.Addr = ":" + p
	}
	c.Addr = getEnv("QUIZPACK_ADDR", c.Addr)
	c.CatalogPath = getEnv("QUIZPACK_CATALOG", c.CatalogPath)
	c.DBPath = getEnv("QUIZPACK_DB", c.DBPath)
	c.Log.Level = getEnv("QUIZPACK_LOG_LEVEL", c.Log.Level)
}

// Validate reports configuration that cannot be served.
func (c *Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Addr) == "" {
		errs = append(errs, errors.New("addr is empty"))
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("unknown log level %q", c.Log.Level))
	}
	if c.ShutdownTimeout < 0 {
		errs = append(errs, fmt.Errorf("shutdown_timeout must be >= 0, got %s", c.ShutdownTimeout))
	}
	return errors.Join(errs...)
}

func getEnv(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}
