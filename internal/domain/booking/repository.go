package booking

import (
	"context"
	"time"
)

type Repository interface {
	// -------- Lookups --------
	GetBarberName(ctx context.Context, barberID uint) (string, bool, error)
	ServiceCatalog(ctx context.Context, ids []uint) (map[uint]ServiceItem, error)

	// -------- Create --------
	WithinTx(ctx context.Context, fn func(tx TxRepository) error) error

	// -------- Read --------
	Get(ctx context.Context, id uint) (*Booking, error)
	List(ctx context.Context, f Filter) ([]Booking, error)
	ActiveSlots(ctx context.Context, barberID uint, date string) ([]string, error)

	// -------- State change --------
	UpdateStatus(ctx context.Context, id uint, status Status, at time.Time) error
	// Cancel never overwrites a completed booking; it reports
	// ErrCancelCompleted instead.
	Cancel(ctx context.Context, id uint, at time.Time) error

	// -------- Stats --------
	Summary(ctx context.Context, today string) (Summary, error)
	Daily(ctx context.Context, from, to string) ([]DayStat, error)
}

// TxRepository is the part of the repository usable inside the create
// transaction.
type TxRepository interface {
	SlotTaken(ctx context.Context, barberID uint, date, clock string) (bool, error)
	Insert(ctx context.Context, in CreateInput, at time.Time) (uint, error)
	InsertServices(ctx context.Context, bookingID uint, items []ServiceItem) error
}
