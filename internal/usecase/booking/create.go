package booking

import (
	"context"
	"log/slog"
	"time"

	domain "github.com/BruksfildServices01/barbershop-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/notify"
)

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo   domain.Repository
	notify notify.Publisher
	now    func() time.Time
}

func NewCreateBooking(
	repo domain.Repository,
	publisher notify.Publisher,
) *CreateBooking {
	return &CreateBooking{
		repo:   repo,
		notify: publisher,
		now:    time.Now,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in domain.CreateInput,
) (*domain.Booking, error) {

	// --------------------------------------------------
	// 1. Shape
	// --------------------------------------------------
	if err := in.Validate(); err != nil {
		return nil, err
	}
	if in.PaymentMethod == "" {
		in.PaymentMethod = domain.DefaultPaymentMethod
	}

	// --------------------------------------------------
	// 2. Barber
	// --------------------------------------------------
	if _, found, err := uc.repo.GetBarberName(ctx, in.BarberID); err != nil {
		return nil, err
	} else if !found {
		return nil, domain.ErrNoBarber
	}

	// --------------------------------------------------
	// 3. Line-items completed from the catalog
	// --------------------------------------------------
	services, err := uc.resolveServices(ctx, in.Services)
	if err != nil {
		return nil, err
	}
	in.Services = services

	// --------------------------------------------------
	// 4. Slot check + insert, one transaction
	// --------------------------------------------------
	now := uc.now()
	var id uint

	err = uc.repo.WithinTx(ctx, func(tx domain.TxRepository) error {
		taken, err := tx.SlotTaken(ctx, in.BarberID, in.Date, in.Time)
		if err != nil {
			return err
		}
		if taken {
			return domain.ErrSlotTaken
		}

		id, err = tx.Insert(ctx, in, now)
		if err != nil {
			return err
		}

		return tx.InsertServices(ctx, id, in.Services)
	})
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 5. Notification (after commit)
	// --------------------------------------------------
	uc.notify.Publish(notify.BookingCreated(in.Customer.Name, in.ServiceNames()))

	// --------------------------------------------------
	// 6. Read back; the booking exists even if this fails
	// --------------------------------------------------
	created, err := uc.repo.Get(ctx, id)
	if err != nil {
		slog.WarnContext(ctx, "booking read-back failed, answering from input",
			slog.Uint64("booking_id", uint64(id)),
			slog.Any("err", err),
		)
		fallback := domain.FromInput(id, in, now)
		return &fallback, nil
	}

	return created, nil
}

func (uc *CreateBooking) resolveServices(
	ctx context.Context,
	items []domain.ServiceItem,
) ([]domain.ServiceItem, error) {

	if len(items) == 0 {
		return []domain.ServiceItem{}, nil
	}

	ids := make([]uint, 0, len(items))
	seen := make(map[uint]bool, len(items))
	for _, s := range items {
		if !seen[s.ID] {
			seen[s.ID] = true
			ids = append(ids, s.ID)
		}
	}

	catalog, err := uc.repo.ServiceCatalog(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]domain.ServiceItem, 0, len(items))
	for _, s := range items {
		known, ok := catalog[s.ID]
		if !ok {
			return nil, httperr.ErrValidation("service_not_found", "Layanan tidak ditemukan")
		}
		if s.Name == "" {
			s.Name = known.Name
		}
		if s.Price == 0 {
			s.Price = known.Price
		}
		out = append(out, s)
	}
	return out, nil
}
