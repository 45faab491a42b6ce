// Package config loads and validates a backtest run configuration from a
// YAML (or JSON) file.
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mrosset/stratlab/backtest"
	"github.com/mrosset/stratlab/strategy"
)

// Config describes one backtest run end to end.
type Config struct {
	Account  AccountConfig `json:"account" yaml:"account"`
	Strategy strategy.Spec `json:"strategy" yaml:"strategy"`
	Sizing   SizingConfig  `json:"sizing" yaml:"sizing"`
	Journal  JournalConfig `json:"journal" yaml:"journal"`
}

// AccountConfig names the run and sets the capital model.
type AccountConfig struct {
	Name       string  `json:"name" yaml:"name"`
	Ticker     string  `json:"ticker" yaml:"ticker"`
	Capital    float64 `json:"capital" yaml:"capital"`
	Commission float64 `json:"commission" yaml:"commission"`
}

// SizingConfig selects the position-sizing policy by key.
type SizingConfig struct {
	Method string  `json:"method" yaml:"method"`
	Value  float64 `json:"value" yaml:"value"`
}

// JournalConfig selects where run records land.
type JournalConfig struct {
	Type       string `json:"type" yaml:"type"` // "sqlite", "csv", or "none"
	DBPath     string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
	RunsFile   string `json:"runs_file,omitempty" yaml:"runs_file,omitempty"`
	TradesFile string `json:"trades_file,omitempty" yaml:"trades_file,omitempty"`
}

// LoadFromFile loads configuration from a file, trying YAML first and falling
// back to JSON, then validates it.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		if jsonErr := json.Unmarshal(data, cfg); jsonErr != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Validate checks every fail-fast condition the engines would otherwise trip
// over mid-run.
func (c *Config) Validate() error {
	if c.Account.Capital <= 0 {
		return fmt.Errorf("account.capital must be positive")
	}
	if c.Account.Commission < 0 || c.Account.Commission >= 1 {
		return fmt.Errorf("account.commission must be in [0,1)")
	}
	if _, err := c.Strategy.Build(); err != nil {
		return fmt.Errorf("strategy: %w", err)
	}
	if _, err := backtest.ParseSizingMethod(c.Sizing.Method); err != nil {
		return fmt.Errorf("sizing: %w", err)
	}
	if c.Sizing.Value <= 0 {
		return fmt.Errorf("sizing.value must be positive")
	}
	switch c.Journal.Type {
	case "sqlite":
		if c.Journal.DBPath == "" {
			return fmt.Errorf("journal.db_path required for sqlite journal")
		}
	case "csv":
		if c.Journal.RunsFile == "" || c.Journal.TradesFile == "" {
			return fmt.Errorf("journal runs_file and trades_file required for csv journal")
		}
	case "", "none":
	default:
		return fmt.Errorf("journal.type must be 'sqlite', 'csv', or 'none'")
	}
	return nil
}

// SizingPolicy converts the validated sizing block to the engine's policy type.
func (c *Config) SizingPolicy() (backtest.Sizing, error) {
	method, err := backtest.ParseSizingMethod(c.Sizing.Method)
	if err != nil {
		return backtest.Sizing{}, err
	}
	return backtest.Sizing{Method: method, Value: c.Sizing.Value}, nil
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		Account: AccountConfig{
			Name:       "backtest",
			Ticker:     "SPY",
			Capital:    100000,
			Commission: 0.001,
		},
		Strategy: strategy.Spec{
			Kind:    strategy.KindMACross,
			MACross: &strategy.MACrossParams{Short: 20, Long: 50},
		},
		Sizing: SizingConfig{
			Method: "fixed_dollar",
			Value:  10000,
		},
		Journal: JournalConfig{
			Type:   "sqlite",
			DBPath: "./stratlab.sqlite",
		},
	}
}
