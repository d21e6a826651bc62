package models

import "time"

// Snapshot is the read-only view of the loaded datasets handed to consumers.
// The loader replaces the whole snapshot at each state transition; consumers
// never see a partially mutated one.
type Snapshot struct {
	Assets      []AssetRecord `json:"assets"`
	Stock       []StockRecord `json:"stock"`
	Loading     bool          `json:"loading"`
	OfflineMode bool          `json:"offline_mode"`
	Error       string        `json:"error,omitempty"`
	LastUpdate  time.Time     `json:"last_update"`
	// Source labels where each dataset currently comes from: "cache",
	// "demo" or "network".
	AssetSource string `json:"asset_source"`
	StockSource string `json:"stock_source"`
	CycleID     string `json:"cycle_id"`
}
