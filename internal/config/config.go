// Package config provides the layered tool configuration for gohsjoint.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/alexiusacademia/gohsjoint/internal/cidect"
	"github.com/alexiusacademia/gohsjoint/internal/stress"
	"gopkg.in/yaml.v3"
)

// Config represents the complete gohsjoint configuration
type Config struct {
	Fatigue       FatigueConfig       `yaml:"fatigue"`
	Magnification MagnificationConfig `yaml:"magnification"`
	TJoint        TJointConfig        `yaml:"t_joint"`
	Sweep         SweepConfig         `yaml:"sweep"`
}

// FatigueConfig configures the stress check
type FatigueConfig struct {
	// SigmaMax is the allowable hot-spot stress in MPa
	SigmaMax float64 `yaml:"sigma_max"`
	// Strategy is combined, components or hotspot (empty = per joint kind)
	Strategy string `yaml:"strategy"`
	// Manually selected out-of-plane SCFs
	SCFChordOP float64 `yaml:"scf_chord_op"`
	SCFBraceOP float64 `yaml:"scf_brace_op"`
}

// MagnificationConfig overrides the secondary bending factors
type MagnificationConfig struct {
	Chord         float64 `yaml:"chord"`
	BraceGap      float64 `yaml:"brace_gap"`
	BraceOverlap  float64 `yaml:"brace_overlap"`
	BraceCircular float64 `yaml:"brace_circular"`
	// TJoint replaces both T-joint factors; 0 applies the chord/brace rule
	TJoint float64 `yaml:"t_joint"`
}

// TJointConfig configures T-joint chord parameters
type TJointConfig struct {
	// Fixity is the chord end fixity C, 0 pinned to 1 fixed
	Fixity *float64 `yaml:"fixity"`
}

// SweepConfig configures catalog sweeps
type SweepConfig struct {
	// Workers bounds concurrent evaluations (0 = number of CPUs)
	Workers int `yaml:"workers"`
	// Standard filters the built-in catalog, e.g. "EN" or "AS"
	Standard string `yaml:"standard"`
}

// DefaultConfig returns a Config with the CIDECT-8 defaults
func DefaultConfig() *Config {
	fixity := cidect.DefaultFixity
	m := stress.DefaultMagnification()
	return &Config{
		Fatigue: FatigueConfig{
			SigmaMax:   24,
			Strategy:   "",
			SCFChordOP: 2,
			SCFBraceOP: 2,
		},
		Magnification: MagnificationConfig{
			Chord:         m.Chord,
			BraceGap:      m.BraceGap,
			BraceOverlap:  m.BraceOverlap,
			BraceCircular: m.BraceCircular,
			TJoint:        m.TJoint,
		},
		TJoint: TJointConfig{
			Fixity: &fixity,
		},
		Sweep: SweepConfig{
			Workers:  0, // runtime.NumCPU
			Standard: "EN",
		},
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if !(c.Fatigue.SigmaMax > 0) {
		return fmt.Errorf("fatigue.sigma_max must be positive")
	}
	if _, err := stress.ParseStrategy(c.Fatigue.Strategy); err != nil {
		return fmt.Errorf("fatigue.strategy: %w", err)
	}
	if c.Fatigue.SCFChordOP < 0 || c.Fatigue.SCFBraceOP < 0 {
		return fmt.Errorf("fatigue out-of-plane SCFs must not be negative")
	}
	if err := c.StressMagnification().Validate(); err != nil {
		return fmt.Errorf("magnification: %w", err)
	}
	if c.TJoint.Fixity != nil && (*c.TJoint.Fixity < 0 || *c.TJoint.Fixity > 1) {
		return fmt.Errorf("t_joint.fixity must be between 0 and 1")
	}
	if c.Sweep.Workers < 0 {
		return fmt.Errorf("sweep.workers must not be negative")
	}
	return nil
}

// StressMagnification converts the magnification section for the stress package
func (c *Config) StressMagnification() stress.Magnification {
	return stress.Magnification{
		Chord:         c.Magnification.Chord,
		BraceGap:      c.Magnification.BraceGap,
		BraceOverlap:  c.Magnification.BraceOverlap,
		BraceCircular: c.Magnification.BraceCircular,
		TJoint:        c.Magnification.TJoint,
	}
}

// StressOptions builds the superposition options, converting σ_max to Pa
func (c *Config) StressOptions() (stress.Options, error) {
	strategy, err := stress.ParseStrategy(c.Fatigue.Strategy)
	if err != nil {
		return stress.Options{}, err
	}
	return stress.Options{
		SigmaMax:      c.Fatigue.SigmaMax * 1e6,
		Strategy:      strategy,
		Magnification: c.StressMagnification(),
	}, nil
}

// Fixity returns the configured T-joint chord end fixity
func (c *Config) Fixity() float64 {
	if c.TJoint.Fixity == nil {
		return cidect.DefaultFixity
	}
	return *c.TJoint.Fixity
}

// Workers returns the effective sweep concurrency
func (c *Config) Workers() int {
	if c.Sweep.Workers > 0 {
		return c.Sweep.Workers
	}
	return runtime.NumCPU()
}

// LoadFromFile loads configuration from a YAML file
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := &Config{}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Merge merges another config into this one (other takes precedence for non-zero values)
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	// Fatigue
	if other.Fatigue.SigmaMax != 0 {
		c.Fatigue.SigmaMax = other.Fatigue.SigmaMax
	}
	if other.Fatigue.Strategy != "" {
		c.Fatigue.Strategy = other.Fatigue.Strategy
	}
	if other.Fatigue.SCFChordOP != 0 {
		c.Fatigue.SCFChordOP = other.Fatigue.SCFChordOP
	}
	if other.Fatigue.SCFBraceOP != 0 {
		c.Fatigue.SCFBraceOP = other.Fatigue.SCFBraceOP
	}

	// Magnification
	if other.Magnification.Chord != 0 {
		c.Magnification.Chord = other.Magnification.Chord
	}
	if other.Magnification.BraceGap != 0 {
		c.Magnification.BraceGap = other.Magnification.BraceGap
	}
	if other.Magnification.BraceOverlap != 0 {
		c.Magnification.BraceOverlap = other.Magnification.BraceOverlap
	}
	if other.Magnification.BraceCircular != 0 {
		c.Magnification.BraceCircular = other.Magnification.BraceCircular
	}
	if other.Magnification.TJoint != 0 {
		c.Magnification.TJoint = other.Magnification.TJoint
	}

	// T-joint, nil keeps the current fixity so 0 (pinned) can be set explicitly
	if other.TJoint.Fixity != nil {
		f := *other.TJoint.Fixity
		c.TJoint.Fixity = &f
	}

	// Sweep
	if other.Sweep.Workers != 0 {
		c.Sweep.Workers = other.Sweep.Workers
	}
	if other.Sweep.Standard != "" {
		c.Sweep.Standard = other.Sweep.Standard
	}
}
