// Package scheduler runs recurring background tasks, such as the periodic
// posting refresh.
package scheduler

import (
	"context"
	"time"

	"go.uber.org/zap"
)

type Task func(ctx context.Context) error

// Every runs task immediately and then on each tick until ctx is done.
// Task errors are logged, never fatal.
func Every(ctx context.Context, interval time.Duration, name string, logger *zap.Logger, task Task) {
	t := time.NewTicker(interval)
	defer t.Stop()

	if err := task(ctx); err != nil {
		logger.Error("task failed", zap.String("task", name), zap.Error(err))
	}

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if err := task(ctx); err != nil {
				logger.Error("task failed", zap.String("task", name), zap.Error(err))
			}
		}
	}
}
