package review

import (
	"context"
	"strings"
	"time"

	domain "github.com/BruksfildServices01/barbershop-booking/internal/domain/review"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
	"github.com/BruksfildServices01/barbershop-booking/internal/notify"
)

const fallbackBarber = "Barber"

type CreateReview struct {
	repo   domain.Repository
	notify notify.Publisher
	now    func() time.Time
}

func NewCreateReview(repo domain.Repository, publisher notify.Publisher) *CreateReview {
	return &CreateReview{repo: repo, notify: publisher, now: time.Now}
}

// Execute stores the review and refreshes the barber's rating and
// review count in the same transaction.
func (uc *CreateReview) Execute(ctx context.Context, in domain.CreateInput) (*domain.Review, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	in.CustomerName = strings.TrimSpace(in.CustomerName)
	if in.CustomerName == "" {
		in.CustomerName = models.AnonymousCustomer
	}
	if in.Services == nil {
		in.Services = []string{}
	}

	barberName, found, err := uc.repo.BarberName(ctx, in.BarberID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, domain.ErrNoBarber
	}

	var id uint
	err = uc.repo.WithinTx(ctx, func(tx domain.TxRepository) error {
		if in.BookingID != nil {
			exists, err := tx.ExistsForBooking(ctx, *in.BookingID)
			if err != nil {
				return err
			}
			if exists {
				return domain.ErrAlreadyReviewed
			}
		}

		id, err = tx.Insert(ctx, in, uc.now())
		if err != nil {
			return err
		}
		return refreshBarber(ctx, tx, in.BarberID)
	})
	if err != nil {
		return nil, err
	}

	if barberName == "" {
		barberName = fallbackBarber
	}
	uc.notify.Publish(notify.ReviewCreated(in.CustomerName, in.Rating, barberName))

	return uc.repo.Get(ctx, id)
}

func refreshBarber(ctx context.Context, tx domain.TxRepository, barberID uint) error {
	agg, err := tx.Aggregate(ctx, barberID)
	if err != nil {
		return err
	}
	return tx.SetBarberRating(ctx, barberID, agg.Rating(), agg.Count)
}
