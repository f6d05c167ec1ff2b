// Package jobs runs scheduled maintenance.
package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

type NotificationPurger interface {
	PurgeRead(ctx context.Context, cutoff time.Time) (int64, error)
}

// Retention deletes read notifications older than a fixed age.
type Retention struct {
	purger NotificationPurger
	maxAge time.Duration
	log    *slog.Logger
	now    func() time.Time
}

func NewRetention(purger NotificationPurger, days int, log *slog.Logger) *Retention {
	if log == nil {
		log = slog.Default()
	}
	return &Retention{
		purger: purger,
		maxAge: time.Duration(days) * 24 * time.Hour,
		log:    log,
		now:    time.Now,
	}
}

func (r *Retention) Run(ctx context.Context) (int64, error) {
	cutoff := r.now().Add(-r.maxAge)
	n, err := r.purger.PurgeRead(ctx, cutoff)
	if err != nil {
		r.log.Error("notification purge failed", slog.Any("err", err))
		return 0, err
	}
	r.log.Info("notification purge done",
		slog.Int64("deleted", n),
		slog.Time("cutoff", cutoff),
	)
	return n, nil
}

type Scheduler struct {
	cron *cron.Cron
}

// Start registers the retention job on spec (standard cron or a
// descriptor like @daily) and starts the scheduler.
func Start(spec string, retention *Retention) (*Scheduler, error) {
	c := cron.New()

	_, err := c.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		_, _ = retention.Run(ctx)
	})
	if err != nil {
		return nil, err
	}

	c.Start()
	return &Scheduler{cron: c}, nil
}

// Stop waits for a running job to finish or ctx to expire.
func (s *Scheduler) Stop(ctx context.Context) error {
	done := s.cron.Stop()
	select {
	case <-done.Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
