package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/r-4spberry/markevy/internal/intent"
	"github.com/r-4spberry/markevy/internal/sim"
)

// Config is the root configuration for a simulation run.
type Config struct {
	// Seed for the simulation's random source. Zero means derive one from
	// the wall clock at startup.
	Seed int64 `yaml:"seed"`
	// TickInterval is how much real time one simulated day takes. The
	// clock is owned by the host binary, not the core.
	TickInterval time.Duration `yaml:"tick_interval"`
	Sim          SimConfig     `yaml:"sim"`
}

// SimConfig mirrors sim.Config in file form.
type SimConfig struct {
	Traders              int     `yaml:"traders"`
	InitialCash          float64 `yaml:"initial_cash"`
	InitialShares        uint    `yaml:"initial_shares"`
	CompaniesPerCategory int     `yaml:"companies_per_category"`
	DayZeroPrice         float64 `yaml:"day_zero_price"`
	NoiseStdDev          float64 `yaml:"noise_std_dev"`
}

// Default returns the built-in configuration.
func Default() *Config {
	simDefaults := sim.DefaultConfig()
	return &Config{
		TickInterval: time.Second,
		Sim: SimConfig{
			Traders:              simDefaults.Traders,
			InitialCash:          simDefaults.InitialCash,
			InitialShares:        simDefaults.InitialShares,
			CompaniesPerCategory: simDefaults.CompaniesPerCategory,
			DayZeroPrice:         simDefaults.DayZeroPrice,
			NoiseStdDev:          simDefaults.Intent.NoiseStdDev,
		},
	}
}

// Load reads a YAML config file and expands ${VAR} environment variables.
// An empty path yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parse config yaml: %w", err)
	}

	return cfg, nil
}

// LoadAndValidate loads config and validates it.
func LoadAndValidate(path string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

// Validate rejects configurations the simulation cannot start from.
func (c *Config) Validate() error {
	if c.TickInterval <= 0 {
		return fmt.Errorf("tick_interval must be positive, got %s", c.TickInterval)
	}
	if c.Sim.Traders <= 0 {
		return fmt.Errorf("sim.traders must be positive, got %d", c.Sim.Traders)
	}
	if c.Sim.CompaniesPerCategory <= 0 {
		return fmt.Errorf("sim.companies_per_category must be positive, got %d", c.Sim.CompaniesPerCategory)
	}
	if c.Sim.InitialCash < 0 {
		return fmt.Errorf("sim.initial_cash must not be negative, got %v", c.Sim.InitialCash)
	}
	if c.Sim.DayZeroPrice < 0 {
		return fmt.Errorf("sim.day_zero_price must not be negative, got %v", c.Sim.DayZeroPrice)
	}
	if c.Sim.NoiseStdDev <= 0 {
		return fmt.Errorf("sim.noise_std_dev must be positive, got %v", c.Sim.NoiseStdDev)
	}
	return nil
}

// SimConfig converts the file form into the simulation's constructor form.
func (c *Config) SimConfig() sim.Config {
	return sim.Config{
		Traders:              c.Sim.Traders,
		InitialCash:          c.Sim.InitialCash,
		InitialShares:        c.Sim.InitialShares,
		CompaniesPerCategory: c.Sim.CompaniesPerCategory,
		DayZeroPrice:         c.Sim.DayZeroPrice,
		Intent:               intent.Config{NoiseStdDev: c.Sim.NoiseStdDev},
	}
}
