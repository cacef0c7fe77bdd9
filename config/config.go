package config

import (
	"fmt"
	"os"
	"runtime"
	"strconv"

	"gopkg.in/yaml.v3"

	"duel/game"
)

// Config holds all simulator configuration.
type Config struct {
	Duel       game.Rules `yaml:"duel"`
	Simulation struct {
		Trials      int    `yaml:"trials"`
		Goroutines  int    `yaml:"goroutines"`
		Seed        uint64 `yaml:"seed"`
		LogEvery    int    `yaml:"log_every"`
		SampleEvery int    `yaml:"sample_every"`
	} `yaml:"simulation"`
	Results struct {
		Dir        string `yaml:"dir"`
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"results"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides and defaults. A missing file is fine - defaults apply.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("DUEL_TRIALS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Simulation.Trials = n
		}
	}
	if v := os.Getenv("DUEL_GOROUTINES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Simulation.Goroutines = n
		}
	}
	if v := os.Getenv("DUEL_SEED"); v != "" {
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			cfg.Simulation.Seed = n
		}
	}
	if v := os.Getenv("DUEL_SQLITE_PATH"); v != "" {
		cfg.Results.SQLitePath = v
	}
	if v := os.Getenv("DUEL_RESULTS_DIR"); v != "" {
		cfg.Results.Dir = v
	}

	// Defaults
	standard := game.NewStandardRules()
	if cfg.Duel.InitialHealth == 0 {
		cfg.Duel.InitialHealth = standard.InitialHealth
	}
	if cfg.Duel.InitialMana == 0 {
		cfg.Duel.InitialMana = standard.InitialMana
	}
	if cfg.Duel.PassiveManaGain == 0 {
		cfg.Duel.PassiveManaGain = standard.PassiveManaGain
	}
	if cfg.Duel.ConcentrateGain == 0 {
		cfg.Duel.ConcentrateGain = standard.ConcentrateGain
	}
	if cfg.Simulation.Trials == 0 {
		cfg.Simulation.Trials = 1_000_000
	}
	if cfg.Simulation.Goroutines == 0 {
		cfg.Simulation.Goroutines = runtime.NumCPU()
	}
	if cfg.Simulation.LogEvery == 0 {
		cfg.Simulation.LogEvery = 100_000
	}

	return cfg, nil
}

// Validate checks that the configuration can drive a run.
func (c *Config) Validate() error {
	if c.Duel.InitialHealth <= 0 {
		return fmt.Errorf("duel.initial_health must be positive")
	}
	if c.Duel.InitialMana < 0 {
		return fmt.Errorf("duel.initial_mana must not be negative")
	}
	if c.Duel.PassiveManaGain < 0 {
		return fmt.Errorf("duel.passive_mana_gain must not be negative")
	}
	if c.Duel.ConcentrateGain < 0 {
		return fmt.Errorf("duel.concentrate_gain must not be negative")
	}
	if c.Simulation.Trials <= 0 {
		return fmt.Errorf("simulation.trials must be positive")
	}
	if c.Simulation.Goroutines <= 0 {
		return fmt.Errorf("simulation.goroutines must be positive")
	}
	return nil
}
