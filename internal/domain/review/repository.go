package review

import (
	"context"
	"time"
)

type Repository interface {
	WithinTx(ctx context.Context, fn func(tx TxRepository) error) error

	BarberName(ctx context.Context, barberID uint) (string, bool, error)
	Get(ctx context.Context, id uint) (*Review, error)
	List(ctx context.Context, f Filter) ([]Review, error)
	Top(ctx context.Context, minRating, limit int) ([]Review, error)
	ForBarber(ctx context.Context, barberID uint) ([]Review, error)
	Aggregate(ctx context.Context, barberID uint) (Aggregate, error)
	ExistsForBooking(ctx context.Context, bookingID uint) (bool, error)
}

// TxRepository writes a review change and the barber aggregate in the
// same transaction.
type TxRepository interface {
	ExistsForBooking(ctx context.Context, bookingID uint) (bool, error)
	Insert(ctx context.Context, in CreateInput, at time.Time) (uint, error)
	Delete(ctx context.Context, id uint) error
	Aggregate(ctx context.Context, barberID uint) (Aggregate, error)
	SetBarberRating(ctx context.Context, barberID uint, rating float64, count int64) error
}
