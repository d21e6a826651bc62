package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"patrimonio/internal/loader"
)

// Scheduler re-runs the load cycle on a cron schedule so cached data is
// refreshed even without anyone pressing "Atualizar". It does not purge the
// cache; only a manual refresh does that.
type Scheduler struct {
	cron     *cron.Cron
	schedule string
	loader   *loader.Service
	logger   *zap.Logger
}

func New(schedule string, loaderSvc *loader.Service, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scheduler{
		cron:     cron.New(),
		schedule: schedule,
		loader:   loaderSvc,
		logger:   logger,
	}
}

func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.schedule, s.reload); err != nil {
		return err
	}
	s.logger.Info("background refresh scheduled", zap.String("cron", s.schedule))
	s.cron.Start()
	return nil
}

func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	s.cron.Stop()
}

func (s *Scheduler) reload() {
	s.logger.Info("scheduled reload starting")
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()
	s.loader.Load(ctx)
}
