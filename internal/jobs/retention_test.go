package jobs

import (
	"context"
	"errors"
	"testing"
	"time"
)

type fakePurger struct {
	cutoff time.Time
	n      int64
	err    error
}

func (f *fakePurger) PurgeRead(_ context.Context, cutoff time.Time) (int64, error) {
	f.cutoff = cutoff
	return f.n, f.err
}

func TestRetentionRunUsesCutoff(t *testing.T) {
	now := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)
	p := &fakePurger{n: 4}
	r := NewRetention(p, 30, nil)
	r.now = func() time.Time { return now }

	n, err := r.Run(context.Background())
	if err != nil || n != 4 {
		t.Fatalf("Run() = %d, %v", n, err)
	}
	if want := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC); !p.cutoff.Equal(want) {
		t.Fatalf("cutoff = %v, want %v", p.cutoff, want)
	}
}

func TestRetentionRunError(t *testing.T) {
	boom := errors.New("db down")
	r := NewRetention(&fakePurger{err: boom}, 30, nil)
	if _, err := r.Run(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("Run() error = %v", err)
	}
}

func TestStartRejectsBadSpec(t *testing.T) {
	if _, err := Start("not a schedule", NewRetention(&fakePurger{}, 30, nil)); err == nil {
		t.Fatalf("Start() accepted invalid spec")
	}

	s, err := Start("@daily", NewRetention(&fakePurger{}, 30, nil))
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := s.Stop(ctx); err != nil {
		t.Fatalf("Stop() error = %v", err)
	}
}
