package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	domain "github.com/BruksfildServices01/barbershop-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barbershop-booking/internal/testutil"
)

// Two creates that both pass the existence check still cannot both
// insert: the partial unique index rejects the second.
func TestInsertRejectsSecondActiveBookingForSlot(t *testing.T) {
	tdb := testutil.Open(t)
	repo := NewBookingSQLRepository(tdb.X)
	barber := testutil.SeedBarber(t, tdb.Gorm, "Joko")
	ctx := context.Background()

	in := domain.CreateInput{BarberID: barber.ID, Date: "2025-01-10", Time: "10:00", PaymentMethod: "Cash"}

	insert := func() error {
		return repo.WithinTx(ctx, func(tx domain.TxRepository) error {
			_, err := tx.Insert(ctx, in, time.Now())
			return err
		})
	}

	if err := insert(); err != nil {
		t.Fatalf("first insert: %v", err)
	}
	if err := insert(); !errors.Is(err, domain.ErrSlotTaken) {
		t.Fatalf("second insert error = %v, want ErrSlotTaken", err)
	}

	slots, err := repo.ActiveSlots(ctx, barber.ID, "2025-01-10")
	if err != nil || len(slots) != 1 {
		t.Fatalf("ActiveSlots() = %v, %v", slots, err)
	}
}

func TestGetMissingBooking(t *testing.T) {
	repo := NewBookingSQLRepository(testutil.Open(t).X)
	if _, err := repo.Get(context.Background(), 1); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("Get() error = %v, want ErrNotFound", err)
	}
	if err := repo.UpdateStatus(context.Background(), 1, domain.StatusConfirmed, time.Now()); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("UpdateStatus() error = %v, want ErrNotFound", err)
	}
}

func TestPlaceholders(t *testing.T) {
	if got := placeholders(3); got != "?, ?, ?" {
		t.Fatalf("placeholders(3) = %q", got)
	}
	if got := placeholders(0); got != "" {
		t.Fatalf("placeholders(0) = %q", got)
	}
}

func TestCancelLeavesCompletedBookingAlone(t *testing.T) {
	tdb := testutil.Open(t)
	repo := NewBookingSQLRepository(tdb.X)
	barber := testutil.SeedBarber(t, tdb.Gorm, "Joko")
	ctx := context.Background()

	var id uint
	err := repo.WithinTx(ctx, func(tx domain.TxRepository) error {
		var err error
		id, err = tx.Insert(ctx, domain.CreateInput{BarberID: barber.ID, Date: "2025-01-10", Time: "10:00"}, time.Now())
		return err
	})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}

	if err := repo.UpdateStatus(ctx, id, domain.StatusCompleted, time.Now()); err != nil {
		t.Fatalf("complete: %v", err)
	}
	if err := repo.Cancel(ctx, id, time.Now()); !errors.Is(err, domain.ErrCancelCompleted) {
		t.Fatalf("Cancel() error = %v, want ErrCancelCompleted", err)
	}

	b, err := repo.Get(ctx, id)
	if err != nil || b.Status != domain.StatusCompleted {
		t.Fatalf("status after cancel = %v, %v", b, err)
	}

	if err := repo.Cancel(ctx, id+1, time.Now()); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("Cancel(missing) error = %v, want ErrNotFound", err)
	}
}
