package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"dish-studio/internal/pkg/config"
)

type Sweeper interface {
	Sweep(ctx context.Context, limit int32) (int, error)
}

// ReclaimLoop periodically returns lapsed reservations to the ledger.
type ReclaimLoop struct {
	sweeper  Sweeper
	interval time.Duration
	batch    int32

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewReclaimLoop(sweeper Sweeper, cfg config.Config) *ReclaimLoop {
	return &ReclaimLoop{
		sweeper:  sweeper,
		interval: cfg.Slot.SweepInterval,
		batch:    cfg.Slot.SweepBatchSize,
	}
}

func (l *ReclaimLoop) Start(ctx context.Context) {
	ctx, l.cancel = context.WithCancel(ctx)
	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		ticker := time.NewTicker(l.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				l.RunOnce(ctx)
			}
		}
	}()
}

func (l *ReclaimLoop) Stop() {
	if l.cancel != nil {
		l.cancel()
	}
	l.wg.Wait()
}

func (l *ReclaimLoop) RunOnce(ctx context.Context) int {
	n, err := l.sweeper.Sweep(ctx, l.batch)
	if err != nil && ctx.Err() == nil {
		slog.ErrorContext(ctx, "reclaim sweep failed", "error", err)
	}
	if n > 0 {
		slog.InfoContext(ctx, "reclaimed expired reservations", "count", n)
	}
	return n
}
