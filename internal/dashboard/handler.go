package dashboard

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"patrimonio/internal/export"
	"patrimonio/internal/loader"
	"patrimonio/internal/views"
	"patrimonio/pkg/models"
)

// Handler exposes the datasets, derived views and exports over HTTP.
type Handler struct {
	loader *loader.Service
	logger *zap.Logger
}

func NewHandler(loaderSvc *loader.Service, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{loader: loaderSvc, logger: logger}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api")

	api.GET("/assets", h.getAssets)
	api.GET("/assets/summary", h.getSummary)
	api.GET("/assets/grouped", h.getGrouped)
	api.GET("/assets/units", h.getUnits)
	api.GET("/assets/needs", h.getNeeds)
	api.GET("/assets/report", h.getUnitReport)
	api.GET("/stock", h.getStock)
	api.GET("/status", h.getStatus)
	api.POST("/refresh", h.refresh)

	api.GET("/export/assets.csv", h.exportAssetsCSV)
	api.GET("/export/assets.xlsx", h.exportAssetsXLSX)
	api.GET("/export/stock.csv", h.exportStockCSV)
	api.GET("/export/needs.txt", h.exportNeedsReport)
	api.GET("/export/summary.png", h.exportSummaryChart)
}

func filterFromQuery(c *gin.Context) views.Filter {
	return views.Filter{
		Service:  c.Query("service"),
		Unit:     c.Query("unit"),
		State:    c.Query("state"),
		Search:   c.Query("search"),
		Donation: c.Query("donation"),
	}
}

func (h *Handler) filteredAssets(c *gin.Context) []models.AssetRecord {
	snap := h.loader.Snapshot()
	return views.Apply(snap.Assets, filterFromQuery(c))
}

func (h *Handler) getAssets(c *gin.Context) {
	items := h.filteredAssets(c)
	c.JSON(http.StatusOK, gin.H{
		"items": items,
		"count": len(items),
	})
}

func (h *Handler) getSummary(c *gin.Context) {
	snap := h.loader.Snapshot()
	c.JSON(http.StatusOK, views.Summarize(snap.Assets))
}

func (h *Handler) getGrouped(c *gin.Context) {
	snap := h.loader.Snapshot()
	groups := views.GroupByDescription(snap.Assets, views.GroupFilter{
		Category: c.Query("category"),
		Search:   c.Query("search"),
		Unit:     c.Query("unit"),
		State:    c.Query("state"),
	})
	c.JSON(http.StatusOK, gin.H{
		"groups": groups,
		"count":  len(groups),
	})
}

func (h *Handler) getUnits(c *gin.Context) {
	snap := h.loader.Snapshot()
	services, units := views.UnitsOverview(snap.Assets)
	c.JSON(http.StatusOK, gin.H{
		"by_service": services,
		"by_unit":    units,
	})
}

func (h *Handler) getNeeds(c *gin.Context) {
	snap := h.loader.Snapshot()
	results := views.FilterNeeds(views.AnalyzeNeeds(snap.Assets), c.DefaultQuery("filter", views.NeedsFilterTodos))
	c.JSON(http.StatusOK, gin.H{
		"units": results,
		"count": len(results),
	})
}

func (h *Handler) getUnitReport(c *gin.Context) {
	unit := c.Query("unit")
	if unit == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter 'unit' is required"})
		return
	}

	snap := h.loader.Snapshot()
	items := views.Apply(snap.Assets, views.Filter{Unit: unit})
	report := views.BuildUnitReport(items)
	if report == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no assets found for unit " + unit})
		return
	}
	c.JSON(http.StatusOK, report)
}

func (h *Handler) getStock(c *gin.Context) {
	snap := h.loader.Snapshot()
	items := filterStock(snap.Stock, c.Query("search"), c.Query("unit"))
	c.JSON(http.StatusOK, gin.H{
		"items": items,
		"count": len(items),
	})
}

func (h *Handler) getStatus(c *gin.Context) {
	snap := h.loader.Snapshot()
	c.JSON(http.StatusOK, gin.H{
		"loading":      snap.Loading,
		"offline_mode": snap.OfflineMode,
		"error":        snap.Error,
		"last_update":  snap.LastUpdate,
		"asset_source": snap.AssetSource,
		"stock_source": snap.StockSource,
		"asset_count":  len(snap.Assets),
		"stock_count":  len(snap.Stock),
		"cycle_id":     snap.CycleID,
	})
}

// refresh purges the cache and reloads in the background; clients follow
// progress through /api/status.
func (h *Handler) refresh(c *gin.Context) {
	go h.loader.Refresh(context.Background())
	c.JSON(http.StatusAccepted, gin.H{"status": "refreshing"})
}

func (h *Handler) exportAssetsCSV(c *gin.Context) {
	items := h.filteredAssets(c)
	c.Header("Content-Disposition", `attachment; filename="inventario.csv"`)
	c.Header("Content-Type", "text/csv; charset=utf-8")
	if err := export.WriteAssetsCSV(c.Writer, items); err != nil {
		h.logger.Error("asset csv export failed", zap.Error(err))
	}
}

func (h *Handler) exportAssetsXLSX(c *gin.Context) {
	items := h.filteredAssets(c)
	c.Header("Content-Disposition", `attachment; filename="inventario.xlsx"`)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := export.WriteAssetsXLSX(c.Writer, items); err != nil {
		h.logger.Error("asset xlsx export failed", zap.Error(err))
	}
}

func (h *Handler) exportStockCSV(c *gin.Context) {
	snap := h.loader.Snapshot()
	items := filterStock(snap.Stock, c.Query("search"), c.Query("unit"))
	c.Header("Content-Disposition", `attachment; filename="estoque.csv"`)
	c.Header("Content-Type", "text/csv; charset=utf-8")
	if err := export.WriteStockCSV(c.Writer, items); err != nil {
		h.logger.Error("stock csv export failed", zap.Error(err))
	}
}

func (h *Handler) exportNeedsReport(c *gin.Context) {
	snap := h.loader.Snapshot()
	results := views.FilterNeeds(views.AnalyzeNeeds(snap.Assets), c.DefaultQuery("filter", views.NeedsFilterTodos))
	c.Header("Content-Disposition", `attachment; filename="relatorio_necessidades.txt"`)
	c.Header("Content-Type", "text/plain; charset=utf-8")
	if err := export.WriteNeedsReport(c.Writer, results); err != nil {
		h.logger.Error("needs report export failed", zap.Error(err))
	}
}

func (h *Handler) exportSummaryChart(c *gin.Context) {
	snap := h.loader.Snapshot()
	summary := views.Summarize(snap.Assets)
	c.Header("Content-Disposition", `attachment; filename="dashboard-chart.png"`)
	c.Header("Content-Type", "image/png")
	if err := export.WriteSummaryChartPNG(c.Writer, summary); err != nil {
		h.logger.Error("summary chart export failed", zap.Error(err))
	}
}
