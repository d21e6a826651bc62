// Package source implements the prioritized data-source protocol: an
// ordered list of candidate sources, each tried in sequence until one
// yields a validly shaped, non-empty row set.
package source

import (
	"context"
	"errors"

	"go.uber.org/zap"

	custom_error "patrimonio/pkg/errors"
	"patrimonio/pkg/models"
)

// Source fetches raw spreadsheet rows from one upstream endpoint.
type Source interface {
	Name() string
	Fetch(ctx context.Context) ([]models.SheetRow, error)
}

// ErrAllSourcesFailed means every candidate was exhausted without a usable
// payload.
var ErrAllSourcesFailed = errors.New("all data sources failed")

// FetchFirst queries sources strictly in order and returns the first
// non-empty result. A failing candidate never aborts the sequence; its
// classified error is logged and the next candidate is tried.
func FetchFirst(ctx context.Context, sources []Source, logger *zap.Logger) ([]models.SheetRow, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	for i, src := range sources {
		logger.Info("trying data source",
			zap.Int("attempt", i+1),
			zap.Int("total", len(sources)),
			zap.String("source", src.Name()),
		)

		rows, err := src.Fetch(ctx)
		if err != nil {
			logger.Warn("data source failed",
				zap.String("source", src.Name()),
				zap.Error(custom_error.WrapFetchError(src.Name(), err)),
			)
			continue
		}
		if len(rows) == 0 {
			logger.Warn("data source returned no rows", zap.String("source", src.Name()))
			continue
		}

		logger.Info("data source succeeded",
			zap.String("source", src.Name()),
			zap.Int("rows", len(rows)),
		)
		return rows, nil
	}

	return nil, ErrAllSourcesFailed
}
