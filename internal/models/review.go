package models

import "time"

const AnonymousCustomer = "Anonymous"

type Review struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BookingID *uint    `gorm:"uniqueIndex" json:"booking_id"`
	Booking   *Booking `gorm:"constraint:OnDelete:SET NULL;" json:"-"`
	BarberID  uint     `gorm:"not null;index" json:"barber_id"`
	Barber    *Barber  `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
	UserID    *uint    `json:"user_id"`

	CustomerName string        `gorm:"size:100" json:"customer_name"`
	Rating       int           `gorm:"not null;check:chk_reviews_rating,rating >= 1 AND rating <= 5" json:"rating"`
	Comment      string        `gorm:"type:text" json:"comment"`
	Services     DelimitedList `gorm:"type:text" json:"services"`

	CreatedAt time.Time `json:"created_at"`
}
