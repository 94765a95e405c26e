// Package jobs hosts background maintenance tasks driven by a cron scheduler.
package jobs

import (
	"context"
	"log/slog"
	"time"

	"board/internal/domain/lifecycle"
	"board/internal/domain/repository"
	"board/internal/errors"

	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

// Expired token records are dead weight: verification already fails closed on
// expiry, so purging them is housekeeping, not a security boundary.
const tokenPurgeSchedule = "17 3 * * *"

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Logger    *slog.Logger
	TokenRepo repository.TokenRepository
}

// Scheduler owns the cron instance so its lifetime can follow the app's.
type Scheduler struct {
	cron   *cron.Cron
	logger *slog.Logger
}

// New builds the scheduler, registers the maintenance jobs and hooks it into
// the application lifecycle.
func New(params Params) (*Scheduler, error) {
	c := cron.New(cron.WithLocation(time.UTC))

	scheduler := &Scheduler{
		cron:   c,
		logger: params.Logger,
	}

	if _, err := c.AddFunc(tokenPurgeSchedule, func() {
		scheduler.purgeExpiredTokens(params.TokenRepo)
	}); err != nil {
		return nil, errors.Wrap(err, "failed to register token purge job")
	}

	params.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			c.Start()

			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			stopped := c.Stop()
			select {
			case <-stopped.Done():
				return nil
			case <-stopCtx.Done():
				return stopCtx.Err()
			}
		},
	})

	return scheduler, nil
}

func (s *Scheduler) purgeExpiredTokens(tokenRepo repository.TokenRepository) {
	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	removed, err := tokenRepo.DeleteExpired(ctx, time.Now().UTC())
	if err != nil {
		s.logger.ErrorContext(ctx, "token purge failed", slog.Any("error", err))

		return
	}

	if removed > 0 {
		s.logger.InfoContext(ctx, "purged expired tokens", slog.Int64("removed", removed))
	}
}
