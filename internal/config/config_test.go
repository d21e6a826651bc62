package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()

	assert.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Server.Host)
	assert.Equal(t, defaultPatrimonioURL, cfg.Data.PatrimonioURL)
	assert.Equal(t, []string{defaultEstoqueURL, defaultEstoqueAlt}, cfg.Data.EstoqueURLs)
	assert.Equal(t, 5*time.Minute, cfg.Data.CacheTTL)
	assert.Equal(t, 15*time.Second, cfg.Data.FetchTimeout)
	assert.Empty(t, cfg.Data.RefreshCron)
	assert.False(t, cfg.Sheets.Enabled())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_HOST", ":9090")
	t.Setenv("PATRIMONIO_URL", "https://example.com/assets")
	t.Setenv("ESTOQUE_CSV_URL", "https://example.com/stock.csv")
	t.Setenv("ESTOQUE_FALLBACK_URLS", "https://a.example.com/a.csv, https://b.example.com/b.csv")
	t.Setenv("CACHE_TTL", "1h")
	t.Setenv("REFRESH_CRON", "*/10 * * * *")

	cfg, err := Load()

	assert.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Server.Host)
	assert.Equal(t, "https://example.com/assets", cfg.Data.PatrimonioURL)
	assert.Equal(t, []string{
		"https://example.com/stock.csv",
		"https://a.example.com/a.csv",
		"https://b.example.com/b.csv",
	}, cfg.Data.EstoqueURLs)
	assert.Equal(t, time.Hour, cfg.Data.CacheTTL)
	assert.Equal(t, "*/10 * * * *", cfg.Data.RefreshCron)
}

func TestLoadRejectsBadDurations(t *testing.T) {
	t.Setenv("CACHE_TTL", "sempre")
	_, err := Load()
	assert.Error(t, err)
}

func TestSheetsEnabled(t *testing.T) {
	assert.False(t, SheetsConfig{SpreadsheetID: "abc"}.Enabled())
	assert.False(t, SheetsConfig{CredentialsJSON: "{}"}.Enabled())
	assert.True(t, SheetsConfig{SpreadsheetID: "abc", CredentialsJSON: "{}"}.Enabled())
	assert.True(t, SheetsConfig{SpreadsheetID: "abc", CredentialsPath: "/tmp/creds.json"}.Enabled())
}

func TestValidate(t *testing.T) {
	cfg := &Config{
		Data: DataConfig{
			PatrimonioURL: "https://example.com",
			EstoqueURLs:   []string{"https://example.com/stock.csv"},
			CacheTTL:      time.Minute,
			FetchTimeout:  time.Second,
		},
	}
	assert.NoError(t, cfg.Validate())

	cfg.Data.PatrimonioURL = ""
	assert.Error(t, cfg.Validate())
}
