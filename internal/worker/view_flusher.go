// Package worker holds background jobs that run alongside the HTTP server.
package worker

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/Kenji-One/tikd-api/internal/repository"
	"github.com/Kenji-One/tikd-api/pkg/logger"
)

// ViewFlusher periodically moves hot view counts from Redis into the
// tracking_links table so listed view totals stay close to live.
type ViewFlusher struct {
	views    repository.ViewCounter
	linkRepo repository.TrackingLinkRepository
	interval time.Duration
}

// NewViewFlusher creates a new ViewFlusher
func NewViewFlusher(views repository.ViewCounter, linkRepo repository.TrackingLinkRepository, interval time.Duration) *ViewFlusher {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &ViewFlusher{views: views, linkRepo: linkRepo, interval: interval}
}

// Run flushes on a ticker until the context is cancelled. A final flush runs
// on shutdown so counts drained from Redis are not lost.
func (f *ViewFlusher) Run(ctx context.Context) {
	ticker := time.NewTicker(f.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			f.flush(flushCtx)
			cancel()
			return
		case <-ticker.C:
			f.flush(ctx)
		}
	}
}

func (f *ViewFlusher) flush(ctx context.Context) {
	ids, err := f.views.PendingIDs(ctx)
	if err != nil {
		logger.WarnCtx(ctx, "list pending view counters failed", zap.Error(err))
		return
	}

	for _, id := range ids {
		count, err := f.views.Drain(ctx, id)
		if err != nil {
			logger.WarnCtx(ctx, "drain view counter failed",
				zap.String("link_id", id), zap.Error(err))
			continue
		}
		if count == 0 {
			continue
		}
		if err := f.linkRepo.IncrementViews(ctx, id, count); err != nil {
			// The drained count is lost if this write fails. Logged loudly
			// so it shows up; views are a best-effort metric.
			logger.ErrorCtx(ctx, "persist view count failed",
				zap.String("link_id", id), zap.Int64("count", count), zap.Error(err))
		}
	}
}
