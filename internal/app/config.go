package app

import (
	"errors"
	"fmt"

	"github.com/vk/stnsched/internal/env"
	"github.com/vk/stnsched/internal/scheduler"
)

// Run modes.
const (
	ModeEDF    = "edf"
	ModeReplay = "replay"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	InstancePath string // file or directory with instances
	SolutionDir  string // expert solutions for legacy tables

	Mode        string
	RobotPolicy string

	Proximity      float64
	Discount       float64
	PenaltyPerTask float64
	HorizonPerTask float64
	Gamma          float64
	Workers        int

	TracePath string
	LogFormat string
	LogLevel  string
}

// DefaultConfig returns a configuration with every tunable at its default.
func DefaultConfig() Config {
	opts := env.DefaultOptions()
	return Config{
		Mode:           ModeEDF,
		RobotPolicy:    scheduler.PolicyAverage.String(),
		Proximity:      opts.Proximity,
		Discount:       opts.Discount,
		PenaltyPerTask: opts.PenaltyPerTask,
		HorizonPerTask: opts.HorizonPerTask,
		Gamma:          0.99,
		Workers:        opts.Workers,
		LogFormat:      "json",
		LogLevel:       "info",
	}
}

// NewConfig validates cfg and returns a copy.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.InstancePath == "" {
		return nil, errors.New("InstancePath is a required configuration field and cannot be empty")
	}
	if cfg.Mode != ModeEDF && cfg.Mode != ModeReplay {
		return nil, fmt.Errorf("invalid mode %q: must be '%s' or '%s'", cfg.Mode, ModeEDF, ModeReplay)
	}
	if _, err := scheduler.ParsePolicy(cfg.RobotPolicy); err != nil {
		return nil, err
	}
	if cfg.Gamma < 0 || cfg.Gamma > 1 {
		return nil, fmt.Errorf("gamma must be in [0, 1], got %g", cfg.Gamma)
	}
	if err := cfg.EnvOptions().Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// EnvOptions extracts the environment tuning.
func (c *Config) EnvOptions() env.Options {
	return env.Options{
		Proximity:      c.Proximity,
		Discount:       c.Discount,
		PenaltyPerTask: c.PenaltyPerTask,
		HorizonPerTask: c.HorizonPerTask,
		Workers:        c.Workers,
	}
}

// Policy returns the parsed robot policy. NewConfig has already validated it.
func (c *Config) Policy() scheduler.Policy {
	p, _ := scheduler.ParsePolicy(c.RobotPolicy)
	return p
}
