package config

import (
	"errors"
	"os"
	"strings"
	"time"
)

// Defaults point at the published municipal sheets; every value can be
// overridden through the environment.
const (
	defaultPatrimonioURL = "https://script.google.com/macros/s/AKfycbypxSVE9syiII4H4DumAfxWEgFm1AE7qLpuQgqHTNLMi4B7I8dWF0Het7V2Cd4_aL58Mg/exec"
	defaultEstoqueURL    = "https://docs.google.com/spreadsheets/d/e/2PACX-1vRtgMcUrrMlaEW0BvLD1466J1geRMzLkv6iZ5QpdY53BH6bc38SMinDvC1C-iI9RKHIcWqTjRf4ccdk/pub?output=csv"
	defaultEstoqueAlt    = "https://docs.google.com/spreadsheets/d/e/2PACX-1vRtgMcUrrMlaEW0BvLD1466J1geRMzLkv6iZ5QpdY53BH6bc38SMinDvC1C-iI9RKHIcWqTjRf4ccdk/pub?gid=0&single=true&output=csv"
)

// Config is the full runtime configuration surface.
type Config struct {
	Server ServerConfig
	Data   DataConfig
	Sheets SheetsConfig
}

// ServerConfig holds HTTP server related options.
type ServerConfig struct {
	Host string
}

// DataConfig holds the dataset endpoints and load-cycle tuning.
type DataConfig struct {
	PatrimonioURL string
	// EstoqueURLs is the ordered candidate list for the stock CSV: the
	// primary endpoint followed by mirror fallbacks.
	EstoqueURLs  []string
	CacheDir     string
	CacheTTL     time.Duration
	FetchTimeout time.Duration
	// RefreshCron re-runs the load cycle in the background when set.
	RefreshCron string
}

// SheetsConfig enables the optional authenticated Sheets API asset source.
type SheetsConfig struct {
	CredentialsJSON string
	CredentialsPath string
	SpreadsheetID   string
	ReadRange       string
}

// Enabled reports whether the Sheets API source is configured.
func (c SheetsConfig) Enabled() bool {
	return c.SpreadsheetID != "" && (c.CredentialsJSON != "" || c.CredentialsPath != "")
}

// Load materializes the configuration from the environment.
func Load() (*Config, error) {
	estoqueURLs := []string{
		getenvWithDefault("ESTOQUE_CSV_URL", defaultEstoqueURL),
	}
	if raw := getenvWithDefault("ESTOQUE_FALLBACK_URLS", defaultEstoqueAlt); raw != "" {
		for _, u := range strings.Split(raw, ",") {
			if u = strings.TrimSpace(u); u != "" {
				estoqueURLs = append(estoqueURLs, u)
			}
		}
	}

	cacheDir := os.Getenv("CACHE_DIR")
	if cacheDir == "" {
		cacheDir = os.TempDir() + string(os.PathSeparator) + "patrimonio-cache"
	}

	cacheTTL, err := time.ParseDuration(getenvWithDefault("CACHE_TTL", "5m"))
	if err != nil {
		return nil, errors.New("CACHE_TTL must be a valid duration")
	}
	fetchTimeout, err := time.ParseDuration(getenvWithDefault("FETCH_TIMEOUT", "15s"))
	if err != nil {
		return nil, errors.New("FETCH_TIMEOUT must be a valid duration")
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: getenvWithDefault("APP_HOST", ":8080"),
		},
		Data: DataConfig{
			PatrimonioURL: getenvWithDefault("PATRIMONIO_URL", defaultPatrimonioURL),
			EstoqueURLs:   estoqueURLs,
			CacheDir:      cacheDir,
			CacheTTL:      cacheTTL,
			FetchTimeout:  fetchTimeout,
			RefreshCron:   os.Getenv("REFRESH_CRON"),
		},
		Sheets: SheetsConfig{
			CredentialsJSON: os.Getenv("GOOGLE_SHEETS_CREDENTIALS_JSON"),
			CredentialsPath: os.Getenv("GOOGLE_SHEETS_CREDENTIALS_PATH"),
			SpreadsheetID:   os.Getenv("PATRIMONIO_SPREADSHEET_ID"),
			ReadRange:       getenvWithDefault("PATRIMONIO_SHEET_RANGE", "A1:I999"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate ensures required fields are populated.
func (c *Config) Validate() error {
	if c.Data.PatrimonioURL == "" {
		return errors.New("PATRIMONIO_URL must be provided")
	}
	if len(c.Data.EstoqueURLs) == 0 {
		return errors.New("ESTOQUE_CSV_URL must be provided")
	}
	if c.Data.CacheTTL <= 0 {
		return errors.New("CACHE_TTL must be positive")
	}
	if c.Data.FetchTimeout <= 0 {
		return errors.New("FETCH_TIMEOUT must be positive")
	}
	return nil
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
