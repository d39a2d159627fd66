package config

import (
	"fmt"
	"os"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/bankist-dev/bankist/internal/numeric"
)

// Index policies for the movement list number label.
const (
	IndexOriginal = "original" // insertion position, stable under sorting
	IndexRank     = "rank"     // position in the displayed order
)

// Config represents the top-level bankist.yaml configuration.
type Config struct {
	Display DisplayConfig `yaml:"display"`
	Log     LogConfig     `yaml:"log"`
	Seed    SeedConfig    `yaml:"seed"`
	Audit   AuditConfig   `yaml:"audit"`
}

// DisplayConfig controls how amounts and movements are rendered.
type DisplayConfig struct {
	Currency     string          `yaml:"currency"`
	ExchangeRate decimal.Decimal `yaml:"exchange_rate"` // display units per ledger unit
	Index        string          `yaml:"index"`
	Sorted       bool            `yaml:"sorted"`
}

// LogConfig controls CLI logging.
type LogConfig struct {
	Level string `yaml:"level"`
}

// SeedConfig points at the initial account set. Empty means built-in.
type SeedConfig struct {
	Path string `yaml:"path,omitempty"`
}

// AuditConfig enables the operation audit trail. Empty means disabled.
type AuditConfig struct {
	Path string `yaml:"path,omitempty"`
}

// Load reads a bankist.yaml file from disk. Fields missing from the file
// keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config matching the original app: rupee display at a
// fixed rate of 89.5.
func Default() *Config {
	return &Config{
		Display: DisplayConfig{
			Currency:     "INR",
			ExchangeRate: decimal.RequireFromString("89.5"),
			Index:        IndexOriginal,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Validate checks field values.
func (c *Config) Validate() error {
	if c.Display.Currency == "" {
		return fmt.Errorf("display.currency is empty")
	}
	if money.GetCurrency(c.Display.Currency) == nil {
		return fmt.Errorf("display.currency %q is not a known ISO 4217 code", c.Display.Currency)
	}
	if !numeric.InRange(c.Display.ExchangeRate) {
		return fmt.Errorf("display.exchange_rate is out of range")
	}
	if !c.Display.ExchangeRate.IsPositive() {
		return fmt.Errorf("display.exchange_rate must be positive, got %s", c.Display.ExchangeRate)
	}
	switch c.Display.Index {
	case IndexOriginal, IndexRank:
	default:
		return fmt.Errorf("display.index must be %q or %q, got %q", IndexOriginal, IndexRank, c.Display.Index)
	}
	return nil
}
