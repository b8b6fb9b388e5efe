// Package config loads and validates the pocketbook configuration file.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	money "github.com/Rhymond/go-money"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/rustyeddy/pocketbook/ledger"
)

// Store types.
const (
	StoreRemote = "remote"
	StoreSQLite = "sqlite"
)

// Config represents the complete application configuration
type Config struct {
	Store   StoreConfig   `json:"store" yaml:"store"`
	Display DisplayConfig `json:"display" yaml:"display"`
	Trading TradingConfig `json:"trading" yaml:"trading"`
	Log     LogConfig     `json:"log" yaml:"log"`
}

// StoreConfig selects the record store
type StoreConfig struct {
	Type    string `json:"type" yaml:"type"` // "remote" or "sqlite"
	URL     string `json:"url,omitempty" yaml:"url,omitempty"`
	DBPath  string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
	Timeout string `json:"timeout,omitempty" yaml:"timeout,omitempty"` // e.g. "30s"
}

// ParseTimeout converts the timeout string to a time.Duration. Empty means
// the client default.
func (s StoreConfig) ParseTimeout() (time.Duration, error) {
	if s.Timeout == "" {
		return 0, nil
	}
	return time.ParseDuration(s.Timeout)
}

// DisplayConfig controls how the timeline is presented
type DisplayConfig struct {
	UTCOffsetHours float64 `json:"utc_offset_hours" yaml:"utc_offset_hours"`
	Currency       string  `json:"currency" yaml:"currency"`
	Color          bool    `json:"color" yaml:"color"`
	Pretty         bool    `json:"pretty" yaml:"pretty"` // render markdown through glamour
}

// Offset returns the display shift as a duration.
func (d DisplayConfig) Offset() time.Duration {
	return time.Duration(d.UTCOffsetHours * float64(time.Hour))
}

// TradingConfig contains trade entry parameters
type TradingConfig struct {
	CommissionPerLot float64 `json:"commission_per_lot" yaml:"commission_per_lot"`
}

// LogConfig configures the zap logger
type LogConfig struct {
	Level       string `json:"level" yaml:"level"`
	Development bool   `json:"development" yaml:"development"`
}

// ZapLevel parses Level.
func (l LogConfig) ZapLevel() (zapcore.Level, error) {
	return zapcore.ParseLevel(l.Level)
}

// LedgerOptions returns the timeline options described by c.
func (c *Config) LedgerOptions() ledger.Options {
	return ledger.Options{Offset: c.Display.Offset()}
}

// LoadFromFile loads configuration from a file (YAML or JSON)
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		cfg = Default()
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile saves configuration to a file (JSON or YAML based on extension)
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}

	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	switch c.Store.Type {
	case StoreRemote:
		if c.Store.URL == "" {
			return fmt.Errorf("store.url required for remote type")
		}
	case StoreSQLite:
		if c.Store.DBPath == "" {
			return fmt.Errorf("store.db_path required for sqlite type")
		}
	default:
		return fmt.Errorf("store.type must be 'remote' or 'sqlite'")
	}
	if d, err := c.Store.ParseTimeout(); err != nil || d < 0 {
		return fmt.Errorf("store.timeout must be a non-negative duration")
	}
	if c.Display.UTCOffsetHours < -14 || c.Display.UTCOffsetHours > 14 {
		return fmt.Errorf("display.utc_offset_hours must be between -14 and 14")
	}
	if c.Display.Currency == "" {
		return fmt.Errorf("display.currency is required")
	}
	if money.GetCurrency(c.Display.Currency) == nil {
		return fmt.Errorf("unknown currency: %s", c.Display.Currency)
	}
	if c.Trading.CommissionPerLot < 0 {
		return fmt.Errorf("trading.commission_per_lot must not be negative")
	}
	if _, err := c.Log.ZapLevel(); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	return nil
}

// Default returns a configuration with sensible defaults
func Default() *Config {
	return &Config{
		Store: StoreConfig{
			Type:    StoreSQLite,
			DBPath:  "./pocketbook.db",
			Timeout: "30s",
		},
		Display: DisplayConfig{
			UTCOffsetHours: ledger.DefaultOffset.Hours(),
			Currency:       "USD",
			Color:          true,
		},
		Trading: TradingConfig{
			CommissionPerLot: ledger.DefaultCommissionPerLot,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
