// Package loader orchestrates one load cycle: cache hydrate,
// optimistic demo fallback, best-effort network refresh, cache write-back.
// Every path leaves both datasets non-empty; the dashboard is never served
// an empty or failed state.
package loader

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"patrimonio/internal/cache"
	"patrimonio/internal/demo"
	"patrimonio/internal/ingest"
	"patrimonio/internal/source"
	"patrimonio/pkg/models"
)

// Dataset source labels exposed in the snapshot.
const (
	SourceCache   = "cache"
	SourceDemo    = "demo"
	SourceNetwork = "network"
)

const connectivityError = "Erro de Conectividade: não foi possível acessar as planilhas do Google. " +
	"Verifique se a planilha está pública e acessível. " +
	"Sistema funcionando com dados de demonstração."

const systemError = "Erro no Sistema: falha inesperada durante o carregamento. " +
	"Sistema funcionando com dados de demonstração para garantir funcionalidade completa."

// Service owns the canonical datasets. Consumers only ever see read-only
// snapshot copies; the single mutation channel is Load/Refresh.
type Service struct {
	cache        *cache.Store
	assetSources []source.Source
	stockSources []source.Source
	cacheTTL     time.Duration
	logger       *zap.Logger

	mu   sync.RWMutex
	snap models.Snapshot
}

func NewService(store *cache.Store, assetSources, stockSources []source.Source, cacheTTL time.Duration, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		cache:        store,
		assetSources: assetSources,
		stockSources: stockSources,
		cacheTTL:     cacheTTL,
		logger:       logger,
		snap:         models.Snapshot{Loading: true},
	}
}

// Snapshot returns a read-only copy of the current state.
func (s *Service) Snapshot() models.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snap
	snap.Assets = append([]models.AssetRecord(nil), s.snap.Assets...)
	snap.Stock = append([]models.StockRecord(nil), s.snap.Stock...)
	return snap
}

// Load runs one full cycle. The optimistic cache/demo state is published
// (and Loading cleared) before any network attempt starts; the asset and
// stock fetches then proceed concurrently with each other, each walking its
// own candidate list sequentially.
func (s *Service) Load(ctx context.Context) {
	cycleID := uuid.NewString()
	logger := s.logger.With(zap.String("cycle", cycleID))
	logger.Info("starting load cycle")

	defer func() {
		if r := recover(); r != nil {
			logger.Error("load cycle panicked, forcing demo datasets", zap.Any("panic", r))
			s.mutate(func(snap *models.Snapshot) {
				snap.Assets = ingest.Normalize(demo.PatrimonioRows())
				snap.Stock = demo.EstoqueRows()
				snap.OfflineMode = true
				snap.Error = systemError
				snap.Loading = false
				snap.AssetSource = SourceDemo
				snap.StockSource = SourceDemo
				snap.LastUpdate = time.Now()
			})
		}
	}()

	s.mutate(func(snap *models.Snapshot) {
		snap.Loading = true
		snap.Error = ""
		snap.CycleID = cycleID
	})

	// cache-hydrate / optimistic-render: each dataset resolves on its own.
	var cachedAssetRows []models.SheetRow
	assetCacheHit := s.cache.Get(cache.KeyPatrimonio, &cachedAssetRows) && len(cachedAssetRows) > 0

	var cachedStock []models.StockRecord
	stockCacheHit := s.cache.Get(cache.KeyEstoque, &cachedStock) && len(cachedStock) > 0

	s.mutate(func(snap *models.Snapshot) {
		if assetCacheHit {
			logger.Info("asset dataset hydrated from cache", zap.Int("rows", len(cachedAssetRows)))
			snap.Assets = ingest.Normalize(cachedAssetRows)
			snap.OfflineMode = false
			snap.AssetSource = SourceCache
		} else {
			logger.Info("no asset cache, using demo dataset")
			snap.Assets = ingest.Normalize(demo.PatrimonioRows())
			snap.OfflineMode = true
			snap.AssetSource = SourceDemo
		}
		if stockCacheHit {
			logger.Info("stock dataset hydrated from cache", zap.Int("rows", len(cachedStock)))
			snap.Stock = cachedStock
			snap.StockSource = SourceCache
		} else {
			logger.Info("no stock cache, using demo dataset")
			snap.Stock = demo.EstoqueRows()
			snap.StockSource = SourceDemo
		}
		snap.LastUpdate = time.Now()
		// The UI is unblocked here, before any network result.
		snap.Loading = false
	})

	// network-attempt: the two datasets do not block one another.
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		s.refreshAssets(ctx, logger, assetCacheHit)
	}()
	go func() {
		defer wg.Done()
		s.refreshStock(ctx, logger)
	}()
	wg.Wait()

	logger.Info("load cycle finished")
}

// Refresh purges both cache entries unconditionally and re-runs the cycle,
// so the optimistic phase serves demo data until the network answers.
func (s *Service) Refresh(ctx context.Context) {
	s.logger.Info("manual refresh requested, purging cache")
	s.cache.Purge(cache.KeyPatrimonio)
	s.cache.Purge(cache.KeyEstoque)
	s.Load(ctx)
}

func (s *Service) refreshAssets(ctx context.Context, logger *zap.Logger, hadCache bool) {
	rows, err := source.FetchFirst(ctx, s.assetSources, logger)
	if err != nil {
		logger.Warn("fresh asset data unavailable", zap.Error(err))
		if !hadCache {
			// Demo data stays in place; only now is an error surfaced.
			s.mutate(func(snap *models.Snapshot) {
				snap.OfflineMode = true
				snap.Error = connectivityError
			})
		}
		return
	}

	s.cache.Put(cache.KeyPatrimonio, rows, s.cacheTTL)
	s.mutate(func(snap *models.Snapshot) {
		snap.Assets = ingest.Normalize(rows)
		snap.OfflineMode = false
		snap.Error = ""
		snap.AssetSource = SourceNetwork
		snap.LastUpdate = time.Now()
	})
	logger.Info("asset dataset replaced with fresh data", zap.Int("rows", len(rows)))
}

func (s *Service) refreshStock(ctx context.Context, logger *zap.Logger) {
	rows, err := source.FetchFirst(ctx, s.stockSources, logger)
	if err != nil {
		// No demo/error distinction for stock: whatever was set stands.
		logger.Warn("fresh stock data unavailable", zap.Error(err))
		return
	}

	s.cache.Put(cache.KeyEstoque, rows, s.cacheTTL)
	s.mutate(func(snap *models.Snapshot) {
		snap.Stock = rows
		snap.StockSource = SourceNetwork
	})
	logger.Info("stock dataset replaced with fresh data", zap.Int("rows", len(rows)))
}

func (s *Service) mutate(fn func(*models.Snapshot)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.snap)
}
