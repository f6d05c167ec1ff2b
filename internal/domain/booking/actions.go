package booking

import "github.com/BruksfildServices01/barbershop-booking/internal/httperr"

var (
	ErrNotFound  = httperr.ErrNotFound("booking_not_found", "Booking tidak ditemukan")
	ErrSlotTaken = httperr.ErrConflict("slot_taken", "Waktu tersebut sudah dibooking. Silakan pilih waktu lain.")
	ErrNoBarber  = httperr.ErrNotFound("barber_not_found", "Barber tidak ditemukan")
)

// ===============================
// Domain Actions
// ===============================

// AuthorizeCancel checks that actor may cancel b in its current state.
func AuthorizeCancel(b *Booking, actor Actor) error {
	if !actor.Admin && !actor.Owns(b) {
		return httperr.ErrForbidden("forbidden", "Anda tidak memiliki akses untuk membatalkan booking ini")
	}
	return CanCancel(b.Status)
}

func AuthorizeView(b *Booking, actor Actor) error {
	if !actor.Admin && !actor.Owns(b) {
		return httperr.ErrForbidden("forbidden", "Anda tidak memiliki akses ke booking ini")
	}
	return nil
}
