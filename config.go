package daykeep

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config tunes where data lives and how the price feed caches. Flags win
// over the DAYKEEP_DATA_DIR environment variable, which wins over the
// config file, which wins over the defaults.
type Config struct {
	DataDir string `yaml:"data_dir"`
	Ledger  string `yaml:"ledger"`

	PriceCacheSeconds  int `yaml:"price_cache_seconds"`
	PriceRetries       int `yaml:"price_retries"`
	MarketCacheSeconds int `yaml:"market_cache_seconds"`
	MarketRetries      int `yaml:"market_retries"`

	DefaultView string `yaml:"default_view"` // month, week or year
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		DataDir:            ".",
		Ledger:             "daykeep.jsonl",
		PriceCacheSeconds:  30,
		PriceRetries:       2,
		MarketCacheSeconds: 300,
		MarketRetries:      1,
		DefaultView:        "month",
	}
}

// LoadConfig reads a yaml config file over the defaults. A missing file
// yields the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// defaults
	case err != nil:
		return cfg, fmt.Errorf("read config file %q: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config file %q: %w", path, err)
		}
	}
	if dir := os.Getenv("DAYKEEP_DATA_DIR"); dir != "" {
		cfg.DataDir = dir
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %q: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configuration values.
func (c Config) Validate() error {
	if c.Ledger == "" {
		return fmt.Errorf("ledger is required")
	}
	if c.PriceCacheSeconds < 0 || c.MarketCacheSeconds < 0 {
		return fmt.Errorf("cache windows must not be negative")
	}
	if c.PriceRetries < 0 || c.MarketRetries < 0 {
		return fmt.Errorf("retry counts must not be negative")
	}
	if _, err := ParseCalendarView(c.DefaultView); err != nil {
		return err
	}
	return nil
}

// LedgerPath returns the resolved path of the JSONL store snapshot.
func (c Config) LedgerPath() string { return filepath.Join(c.DataDir, c.Ledger) }

// PrefsPath returns the resolved path of the preference file.
func (c Config) PrefsPath() string { return filepath.Join(c.DataDir, "prefs.json") }

// NewPriceServiceFrom returns a PriceService tuned by the configuration.
func NewPriceServiceFrom(c Config) *PriceService {
	s := NewPriceService()
	s.QuoteTTL = time.Duration(c.PriceCacheSeconds) * time.Second
	s.QuoteRetries = c.PriceRetries
	s.MarketTTL = time.Duration(c.MarketCacheSeconds) * time.Second
	s.MarketRetries = c.MarketRetries
	return s
}
