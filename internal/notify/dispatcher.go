// Package notify carries admin notifications from the code that causes
// them to the places they are delivered. Producers only ever call
// Publish; sinks decide where an event ends up.
package notify

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

const (
	TypeBooking = "booking"
	TypeReview  = "review"
)

type Event struct {
	Type    string
	Title   string
	Message string
	Link    string

	// SMSTo is the customer phone for sinks that text the customer.
	SMSTo   string
	SMSBody string

	CreatedAt time.Time
}

type Publisher interface {
	Publish(ev Event)
}

type Sink interface {
	Deliver(ctx context.Context, ev Event) error
}

type Dispatcher struct {
	sinks   []Sink
	queue   chan Event
	done    chan struct{}
	log     *slog.Logger
	timeout time.Duration

	mu     sync.RWMutex
	closed bool
}

func NewDispatcher(log *slog.Logger, sinks ...Sink) *Dispatcher {
	if log == nil {
		log = slog.Default()
	}
	d := &Dispatcher{
		sinks:   sinks,
		queue:   make(chan Event, 100),
		done:    make(chan struct{}),
		log:     log,
		timeout: 10 * time.Second,
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)

	for ev := range d.queue {
		for _, s := range d.sinks {
			ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
			if err := s.Deliver(ctx, ev); err != nil {
				d.log.Error("notification delivery failed",
					slog.String("type", ev.Type),
					slog.String("title", ev.Title),
					slog.Any("err", err),
				)
			}
			cancel()
		}
	}
}

// Publish never blocks the caller: when the queue is full the event is
// dropped and logged.
func (d *Dispatcher) Publish(ev Event) {
	if ev.CreatedAt.IsZero() {
		ev.CreatedAt = time.Now()
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		d.log.Warn("notification dispatcher closed, dropping event", slog.String("title", ev.Title))
		return
	}

	select {
	case d.queue <- ev:
	default:
		d.log.Warn("notification queue full, dropping event", slog.String("title", ev.Title))
	}
}

// Close stops intake and waits until queued events are delivered or ctx
// expires.
func (d *Dispatcher) Close(ctx context.Context) error {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()

	select {
	case <-d.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
