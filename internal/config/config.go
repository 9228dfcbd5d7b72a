// Package config provides contrastzone configuration with environment support.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/jmylchreest/contrastzone/internal/colour"
)

// Environment variables read by WithEnvConfig.
const (
	EnvRatio        = "CONTRASTZONE_RATIO"
	EnvTransform    = "CONTRASTZONE_TRANSFORM"
	EnvAnyReference = "CONTRASTZONE_ANY_REFERENCE"
	EnvWorkers      = "CONTRASTZONE_WORKERS"
	EnvHues         = "CONTRASTZONE_HUES"
)

// Config holds settings shared by every command.
type Config struct {
	// RequiredRatio is the contrast threshold separating accessible colours.
	RequiredRatio float64

	// Transform names the colour transform applied to background candidates.
	// Empty means each command's own default.
	Transform string

	// AnyReference lifts the white background / black foreground restriction.
	AnyReference bool

	// Workers bounds parallel hue analysis.
	Workers int

	// Hues are the hues the verify command analyses.
	Hues []float64
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		RequiredRatio: colour.RatioAA,
		Workers:       4,
		Hues:          defaultHues(),
	}
}

func defaultHues() []float64 {
	hues := make([]float64, 0, 12)
	for h := 0; h < 360; h += 30 {
		hues = append(hues, float64(h))
	}
	return hues
}

// Validate checks the configuration for invalid values.
func (c Config) Validate() error {
	var errs []error
	if err := colour.ValidateRatio(c.RequiredRatio); err != nil {
		errs = append(errs, err)
	}
	if c.Transform != "" {
		if _, err := colour.LookupTransform(c.Transform); err != nil {
			errs = append(errs, err)
		}
	}
	if c.Workers < 1 {
		errs = append(errs, fmt.Errorf("workers must be at least 1, got %d", c.Workers))
	}
	for _, h := range c.Hues {
		if err := colour.ValidateHue(h); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// TransformOr resolves the configured transform, falling back to name when
// none is configured.
func (c Config) TransformOr(name string) (colour.Transform, error) {
	if c.Transform != "" {
		name = c.Transform
	}
	return colour.LookupTransform(name)
}

// Builder provides a fluent interface for constructing a Config.
type Builder struct {
	config Config
	lookup func(string) (string, bool)
}

// NewBuilder creates a new Config builder starting from Default.
func NewBuilder() *Builder {
	return &Builder{config: Default()}
}

// WithConfig replaces the base configuration.
func (b *Builder) WithConfig(config Config) *Builder {
	b.config = config
	return b
}

// WithEnvConfig loads overrides from the process environment.
func (b *Builder) WithEnvConfig() *Builder {
	return b.WithEnvLookup(os.LookupEnv)
}

// WithEnvLookup loads overrides through lookup instead of the process
// environment (useful for testing).
func (b *Builder) WithEnvLookup(lookup func(string) (string, bool)) *Builder {
	b.lookup = lookup
	return b
}

// Build applies environment overrides and validates the result.
func (b *Builder) Build() (Config, error) {
	config := b.config

	if b.lookup != nil {
		if err := applyEnv(&config, b.lookup); err != nil {
			return Config{}, err
		}
	}

	if err := config.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return config, nil
}

func applyEnv(config *Config, lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvRatio); ok && v != "" {
		ratio, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return fmt.Errorf("failed to parse %s: %w", EnvRatio, err)
		}
		config.RequiredRatio = ratio
	}
	if v, ok := lookup(EnvTransform); ok && v != "" {
		config.Transform = strings.TrimSpace(v)
	}
	if v, ok := lookup(EnvAnyReference); ok && v != "" {
		anyRef, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("failed to parse %s: %w", EnvAnyReference, err)
		}
		config.AnyReference = anyRef
	}
	if v, ok := lookup(EnvWorkers); ok && v != "" {
		workers, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("failed to parse %s: %w", EnvWorkers, err)
		}
		config.Workers = workers
	}
	if v, ok := lookup(EnvHues); ok && v != "" {
		hues, err := ParseHues(v)
		if err != nil {
			return fmt.Errorf("failed to parse %s: %w", EnvHues, err)
		}
		config.Hues = hues
	}
	return nil
}

// ParseHues parses a comma-separated hue list. Empty entries are skipped.
func ParseHues(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	result := make([]float64, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}
		h, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid hue %q: %w", trimmed, err)
		}
		result = append(result, h)
	}
	return result, nil
}
