// Package config holds the run configuration of the dpkit command, parsed
// from an optional dpkit.yaml file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/dpkit/crossing"
	"github.com/katalvlaran/dpkit/subsequence"
)

// Config represents the top-level configuration structure parsed from dpkit.yaml.
type Config struct {
	// Logging configures the command's structured logger.
	Logging LoggingConfig `yaml:"logging"`
	// Subsequence configures the `lds` command.
	Subsequence SubsequenceConfig `yaml:"subsequence"`
	// Crossing configures the `crossing` command.
	Crossing CrossingConfig `yaml:"crossing"`
}

// LoggingConfig configures logging behavior.
type LoggingConfig struct {
	// Level is the log level (debug, info, warn, error).
	Level string `yaml:"level"`
	// Format is the handler format (text, json).
	Format string `yaml:"format"`
}

// SubsequenceConfig controls random sequence generation and brute-force use.
type SubsequenceConfig struct {
	Size       int   `yaml:"size"`
	Seed       int64 `yaml:"seed"`
	MaxElement int   `yaml:"max_element"`
	// BruteForceLimit is the largest size still cross-checked by brute force.
	BruteForceLimit int `yaml:"brute_force_limit"`
}

// CrossingConfig controls random grid generation and brute-force use.
type CrossingConfig struct {
	Rows           int   `yaml:"rows"`
	Columns        int   `yaml:"columns"`
	ThicketPercent int   `yaml:"thicket_percent"`
	Seed           int64 `yaml:"seed"`
	// BruteForceLimit is the largest step count still cross-checked by brute force.
	BruteForceLimit int `yaml:"brute_force_limit"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Logging: LoggingConfig{Level: "info", Format: "text"},
		Subsequence: SubsequenceConfig{
			Size:            20,
			MaxElement:      100,
			BruteForceLimit: 20,
		},
		Crossing: CrossingConfig{
			Rows:            8,
			Columns:         8,
			ThicketPercent:  20,
			BruteForceLimit: 20,
		},
	}
}

// Load reads a YAML file over Default. An empty path returns Default.
// Unknown keys are rejected.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes YAML over Default and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	// An empty document decodes to io.EOF and keeps the defaults.
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := Validate(&cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks the configuration for invalid values.
func Validate(cfg *Config) error {
	if _, err := ParseLevel(cfg.Logging.Level); err != nil {
		return err
	}
	switch strings.ToLower(cfg.Logging.Format) {
	case "text", "json":
		// ok
	default:
		return fmt.Errorf("invalid logging format: %s (allowed: text, json)", cfg.Logging.Format)
	}

	s := cfg.Subsequence
	if s.Size < 0 {
		return fmt.Errorf("subsequence.size must be non-negative, got %d", s.Size)
	}
	if s.MaxElement < 0 {
		return fmt.Errorf("subsequence.max_element must be non-negative, got %d", s.MaxElement)
	}
	if s.BruteForceLimit < 0 || s.BruteForceLimit > subsequence.MaxBruteForceLength {
		return fmt.Errorf("subsequence.brute_force_limit must be within [0,%d], got %d", subsequence.MaxBruteForceLength, s.BruteForceLimit)
	}

	c := cfg.Crossing
	if c.Rows < 1 || c.Columns < 1 {
		return fmt.Errorf("crossing grid must be at least 1×1, got %d×%d", c.Rows, c.Columns)
	}
	if c.ThicketPercent < 0 || c.ThicketPercent > 100 {
		return fmt.Errorf("crossing.thicket_percent must be within [0,100], got %d", c.ThicketPercent)
	}
	if c.BruteForceLimit < 0 || c.BruteForceLimit > crossing.MaxBruteForceSteps {
		return fmt.Errorf("crossing.brute_force_limit must be within [0,%d], got %d", crossing.MaxBruteForceSteps, c.BruteForceLimit)
	}

	return nil
}

// ParseLevel maps debug, info, warn or error (any case) to a slog.Level.
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid logging level: %s (allowed: debug, info, warn, error)", level)
	}
}
