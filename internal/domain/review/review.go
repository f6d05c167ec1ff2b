package review

import (
	"math"
	"time"

	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
)

const (
	MinRating = 1
	MaxRating = 5

	TopMinRating = 4
	TopLimit     = 3
)

var (
	ErrNotFound        = httperr.ErrNotFound("review_not_found", "Review tidak ditemukan")
	ErrAlreadyReviewed = httperr.ErrValidation("already_reviewed", "Booking ini sudah memiliki review")
	ErrNoBarber        = httperr.ErrNotFound("barber_not_found", "Barber tidak ditemukan")
)

type BarberRef struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
}

type Review struct {
	ID           uint      `json:"id"`
	BookingID    *uint     `json:"booking_id"`
	BarberID     uint      `json:"barber_id"`
	UserID       *uint     `json:"user_id"`
	CustomerName string    `json:"customer_name"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment"`
	Services     []string  `json:"services"`
	CreatedAt    time.Time `json:"created_at"`

	BarberName  string     `json:"barber_name,omitempty"`
	BarberImage string     `json:"barber_image,omitempty"`
	Barber      *BarberRef `json:"barber,omitempty"`
}

type CreateInput struct {
	BookingID    *uint
	BarberID     uint
	UserID       *uint
	CustomerName string
	Rating       int
	Comment      string
	Services     []string
}

func (in CreateInput) Validate() error {
	if in.BarberID == 0 {
		return httperr.ErrValidation("barber_required", "Barber ID diperlukan")
	}
	if in.Rating < MinRating || in.Rating > MaxRating {
		return httperr.ErrValidation("invalid_rating", "Rating harus antara 1-5")
	}
	return nil
}

type Filter struct {
	BarberID uint
	Limit    int
}

// Aggregate is the raw mean and count of a barber's ratings.
type Aggregate struct {
	Average float64
	Count   int64
}

// Rating is the value stored on the barber: the mean rounded to one
// decimal, or 0 without reviews.
func (a Aggregate) Rating() float64 {
	if a.Count == 0 {
		return 0
	}
	return RoundRating(a.Average)
}

func RoundRating(avg float64) float64 {
	return math.Round(avg*10) / 10
}

type BarberReviews struct {
	Reviews       []Review `json:"reviews"`
	AverageRating float64  `json:"averageRating"`
	TotalReviews  int64    `json:"totalReviews"`
}
