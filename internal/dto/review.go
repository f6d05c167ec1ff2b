package dto

import (
	"math"

	"github.com/BruksfildServices01/barbershop-booking/internal/domain/review"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

type CreateReviewRequest struct {
	BookingID      *FlexInt `json:"bookingId"`
	BookingIDSnake *FlexInt `json:"booking_id"`
	BarberID       *FlexInt `json:"barberId"`
	BarberIDSnake  *FlexInt `json:"barber_id"`

	CustomerName      string `json:"customerName"`
	CustomerNameSnake string `json:"customer_name"`

	Rating   *FlexFloat           `json:"rating"`
	Comment  string               `json:"comment"`
	Services models.DelimitedList `json:"services"`
}

// Normalize maps a non-integer rating to 0 so validation rejects it.
func (r CreateReviewRequest) Normalize(userID uint) review.CreateInput {
	rating := 0
	if r.Rating != nil {
		if f := float64(*r.Rating); f == math.Trunc(f) {
			rating = int(f)
		}
	}

	return review.CreateInput{
		BookingID:    uintPtr(firstInt(r.BookingID, r.BookingIDSnake).Uint()),
		BarberID:     firstInt(r.BarberID, r.BarberIDSnake).Uint(),
		UserID:       uintPtr(userID),
		CustomerName: firstString(r.CustomerName, r.CustomerNameSnake),
		Rating:       rating,
		Comment:      r.Comment,
		Services:     []string(r.Services),
	}
}
