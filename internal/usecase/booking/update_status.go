package booking

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/barbershop-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barbershop-booking/internal/notify"
)

// UpdateStatus is the admin transition. Any status may be set; putting
// a booking back into an active status fails when its slot has been
// taken in the meantime.
type UpdateStatus struct {
	repo   domain.Repository
	notify notify.Publisher
	now    func() time.Time
}

func NewUpdateStatus(
	repo domain.Repository,
	publisher notify.Publisher,
) *UpdateStatus {
	return &UpdateStatus{
		repo:   repo,
		notify: publisher,
		now:    time.Now,
	}
}

func (uc *UpdateStatus) Execute(
	ctx context.Context,
	id uint,
	status string,
) (*domain.Booking, error) {

	target, err := domain.ParseStatus(status)
	if err != nil {
		return nil, err
	}

	b, err := uc.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateStatus(ctx, id, target, uc.now()); err != nil {
		return nil, err
	}

	if ev, ok := notify.BookingStatusChanged(id, string(target), b.CustomerPhone); ok {
		uc.notify.Publish(ev)
	}

	return uc.repo.Get(ctx, id)
}
