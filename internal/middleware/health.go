package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"patrimonio/internal/loader"
)

// HealthStatus reports process health plus dataset freshness.
type HealthStatus struct {
	Status      string    `json:"status"`
	LastChecked time.Time `json:"last_checked"`
	Uptime      string    `json:"uptime"`
	Version     string    `json:"version"`
	OfflineMode bool      `json:"offline_mode"`
	LastUpdate  time.Time `json:"last_update"`
	AssetSource string    `json:"asset_source"`
	StockSource string    `json:"stock_source"`
}

var (
	healthMutex      sync.Mutex
	startTime        = time.Now()
	version          = "1.0.0"
	lastResponse     *HealthStatus
	lastResponseTime time.Time
	cacheDuration    = 5 * time.Second
)

// HealthCheckHandler serves /health, caching the computed payload briefly
// so probes cannot hammer the snapshot lock.
func HealthCheckHandler(loaderSvc *loader.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		healthMutex.Lock()
		defer healthMutex.Unlock()

		if lastResponse != nil && time.Since(lastResponseTime) < cacheDuration {
			c.JSON(http.StatusOK, lastResponse)
			return
		}

		snap := loaderSvc.Snapshot()
		status := &HealthStatus{
			Status:      "ok",
			LastChecked: time.Now(),
			Uptime:      time.Since(startTime).String(),
			Version:     version,
			OfflineMode: snap.OfflineMode,
			LastUpdate:  snap.LastUpdate,
			AssetSource: snap.AssetSource,
			StockSource: snap.StockSource,
		}

		lastResponse = status
		lastResponseTime = time.Now()
		c.JSON(http.StatusOK, status)
	}
}

// SetVersion overrides the reported version and invalidates the cache.
func SetVersion(v string) {
	healthMutex.Lock()
	defer healthMutex.Unlock()
	version = v
	lastResponse = nil
}
