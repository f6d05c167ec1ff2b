package booking

import "github.com/BruksfildServices01/barbershop-booking/internal/httperr"

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// ===============================
// Validations
// ===============================

func ParseStatus(s string) (Status, error) {
	switch st := Status(s); st {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return st, nil
	}
	return "", httperr.ErrValidation("invalid_status", "Status tidak valid")
}

// IsActive reports whether the status holds its slot.
func (s Status) IsActive() bool {
	return s == StatusPending || s == StatusConfirmed
}

var ErrCancelCompleted = httperr.ErrValidation("booking_completed", "Booking yang sudah selesai tidak dapat dibatalkan")

// CanCancel allows cancelling anything that has not been completed.
// Cancelling twice is a no-op success.
func CanCancel(current Status) error {
	if current == StatusCompleted {
		return ErrCancelCompleted
	}
	return nil
}

func InitialStatus() Status {
	return StatusPending
}
