package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	envLogLevel = "OSSHEALTH_LOG_LEVEL"
	envTimeout  = "OSSHEALTH_TIMEOUT"
	envRoot     = "OSSHEALTH_ROOT"
)

// Loader merges configuration coming from environment variables and CLI flags.
type Loader struct {
	// Getenv defaults to os.Getenv.
	Getenv func(string) string
}

// RuntimeConfig contains the fully merged settings for an audit run.
type RuntimeConfig struct {
	LogLevel string
	// Timeout bounds each external command; zero disables it.
	Timeout time.Duration
	// Root re-roots every host path; empty audits the live system.
	Root string
}

// Overrides captures values coming from env vars or CLI flags.
type Overrides struct {
	LogLevel   string
	Timeout    time.Duration
	TimeoutSet bool
	Root       string
}

// DefaultRuntimeConfig returns the baseline configuration when no overrides are provided.
func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		LogLevel: "warn",
	}
}

// Load resolves the final runtime configuration.
func (l Loader) Load(override Overrides) (RuntimeConfig, error) {
	cfg := DefaultRuntimeConfig()

	envOv, err := overridesFromEnv(l.getenv())
	if err != nil {
		return cfg, err
	}
	cfg.apply(envOv)
	cfg.apply(override)

	return cfg, nil
}

// Validate ensures the merged settings are usable.
func (c RuntimeConfig) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}

	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative (got %s)", c.Timeout)
	}

	if c.Root != "" && !filepath.IsAbs(c.Root) {
		return errors.New("root must be an absolute path")
	}

	return nil
}

// Level parses LogLevel.
func (c RuntimeConfig) Level() (logrus.Level, error) {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.WarnLevel, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}

func (c *RuntimeConfig) apply(src Overrides) {
	if src.LogLevel != "" {
		c.LogLevel = src.LogLevel
	}

	if src.TimeoutSet {
		c.Timeout = src.Timeout
	}

	if src.Root != "" {
		c.Root = src.Root
	}
}

func (l Loader) getenv() func(string) string {
	if l.Getenv != nil {
		return l.Getenv
	}
	return os.Getenv
}

func overridesFromEnv(getenv func(string) string) (Overrides, error) {
	ov := Overrides{}

	if value := strings.TrimSpace(getenv(envLogLevel)); value != "" {
		ov.LogLevel = value
	}

	if value := strings.TrimSpace(getenv(envTimeout)); value != "" {
		timeout, err := ParseTimeout(value)
		if err != nil {
			return ov, fmt.Errorf("%s: %w", envTimeout, err)
		}
		ov.Timeout = timeout
		ov.TimeoutSet = true
	}

	if value := strings.TrimSpace(getenv(envRoot)); value != "" {
		ov.Root = value
	}

	return ov, nil
}

// ParseTimeout accepts a Go duration ("90s") or a bare number of seconds ("90").
func ParseTimeout(value string) (time.Duration, error) {
	if secs, err := strconv.Atoi(value); err == nil {
		return time.Duration(secs) * time.Second, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid timeout %q", value)
	}
	return d, nil
}
