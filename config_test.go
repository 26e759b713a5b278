package daykeep

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFile(t *testing.T) {
	t.Setenv("DAYKEEP_DATA_DIR", "")
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "daykeep.yaml")
	require.NoError(t, os.WriteFile(path, []byte("data_dir: /tmp/from-file"), 0644))

	t.Setenv("DAYKEEP_DATA_DIR", "/tmp/from-env")
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/from-env", cfg.DataDir)
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("DAYKEEP_DATA_DIR", "")
	path := filepath.Join(t.TempDir(), "daykeep.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
data_dir: /tmp/daykeep
ledger: my.jsonl
price_cache_seconds: 60
default_view: week
`), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/daykeep", cfg.DataDir)
	assert.Equal(t, "my.jsonl", cfg.Ledger)
	assert.Equal(t, 60, cfg.PriceCacheSeconds)
	assert.Equal(t, "week", cfg.DefaultView)
	// Unset keys keep their defaults.
	assert.Equal(t, 300, cfg.MarketCacheSeconds)

	assert.Equal(t, filepath.Join("/tmp/daykeep", "my.jsonl"), cfg.LedgerPath())
	assert.Equal(t, filepath.Join("/tmp/daykeep", "prefs.json"), cfg.PrefsPath())
}

func TestLoadConfigInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"bad view", "default_view: fortnight"},
		{"negative cache", "price_cache_seconds: -1"},
		{"negative retries", "market_retries: -1"},
		{"empty ledger", `ledger: ""`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "daykeep.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.yaml), 0644))

			_, err := LoadConfig(path)
			assert.Error(t, err)
		})
	}
}

func TestNewPriceServiceFrom(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PriceCacheSeconds = 45
	cfg.PriceRetries = 3
	cfg.MarketCacheSeconds = 600

	s := NewPriceServiceFrom(cfg)
	assert.Equal(t, 45*time.Second, s.QuoteTTL)
	assert.Equal(t, 3, s.QuoteRetries)
	assert.Equal(t, 10*time.Minute, s.MarketTTL)
	assert.Equal(t, 1, s.MarketRetries)
}
