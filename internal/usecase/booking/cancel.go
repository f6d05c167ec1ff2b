package booking

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/barbershop-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barbershop-booking/internal/notify"
)

type CancelBooking struct {
	repo   domain.Repository
	notify notify.Publisher
	now    func() time.Time
}

func NewCancelBooking(
	repo domain.Repository,
	publisher notify.Publisher,
) *CancelBooking {
	return &CancelBooking{
		repo:   repo,
		notify: publisher,
		now:    time.Now,
	}
}

func (uc *CancelBooking) Execute(
	ctx context.Context,
	actor domain.Actor,
	id uint,
) error {

	b, err := uc.repo.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := domain.AuthorizeCancel(b, actor); err != nil {
		return err
	}

	// already cancelled
	if !b.Status.IsActive() {
		return nil
	}

	if err := uc.repo.Cancel(ctx, id, uc.now()); err != nil {
		return err
	}

	if ev, ok := notify.BookingStatusChanged(id, string(domain.StatusCancelled), b.CustomerPhone); ok {
		uc.notify.Publish(ev)
	}
	return nil
}
