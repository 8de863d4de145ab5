package articles

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Refresher keeps the article cache warm on a cron schedule.
type Refresher struct {
	provider *CachingProvider
	timeout  time.Duration
	cron     *cron.Cron
}

func NewRefresher(provider *CachingProvider, timeout time.Duration) *Refresher {
	return &Refresher{
		provider: provider,
		timeout:  timeout,
		cron:     cron.New(),
	}
}

// Start schedules the refresh job on spec and starts the scheduler.
func (r *Refresher) Start(spec string) error {
	if _, err := r.cron.AddFunc(spec, r.run); err != nil {
		return err
	}
	r.cron.Start()
	zap.L().Info("article refresher started", zap.String("spec", spec))
	return nil
}

// Stop waits for a running refresh to finish.
func (r *Refresher) Stop() {
	<-r.cron.Stop().Done()
}

func (r *Refresher) run() {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	articles, err := r.provider.Refresh(ctx, RecentCount)
	if err != nil {
		zap.L().Error("article refresh failed", zap.Error(err))
		return
	}
	zap.L().Debug("article cache refreshed", zap.Int("count", len(articles)))
}
