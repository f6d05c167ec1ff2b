package booking

import (
	"context"

	domain "github.com/BruksfildServices01/barbershop-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
)

type BookedSlots struct {
	repo domain.Repository
}

func NewBookedSlots(repo domain.Repository) *BookedSlots {
	return &BookedSlots{repo: repo}
}

// Execute lists the times held by pending or confirmed bookings.
func (uc *BookedSlots) Execute(
	ctx context.Context,
	barberID uint,
	date string,
) ([]string, error) {

	if barberID == 0 || date == "" {
		return nil, httperr.ErrValidation("missing_params", "Parameter date dan barber_id diperlukan")
	}

	return uc.repo.ActiveSlots(ctx, barberID, date)
}
