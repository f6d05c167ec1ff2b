package booking

import (
	"strings"
	"time"

	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"

	DefaultPaymentMethod = "Cash"
	DefaultPaymentStatus = "pending"
)

type ServiceItem struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Price int    `json:"price"`
}

type Customer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type BarberRef struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
}

// CreateInput is the canonical booking request after every accepted
// request shape has been folded into one.
type CreateInput struct {
	UserID        *uint
	BarberID      uint
	Date          string
	Time          string
	Services      []ServiceItem
	TotalPrice    int
	TotalDuration int
	Customer      Customer
	Notes         string
	PaymentMethod string
}

func (in CreateInput) Validate() error {
	if in.BarberID == 0 {
		return httperr.ErrValidation("barber_required", "Barber ID diperlukan")
	}
	if _, err := time.Parse(DateLayout, in.Date); err != nil {
		return httperr.ErrValidation("invalid_date", "Format tanggal tidak valid (YYYY-MM-DD)")
	}
	if !IsClock(in.Time) {
		return httperr.ErrValidation("invalid_time", "Format waktu tidak valid (HH:MM)")
	}
	for _, s := range in.Services {
		if s.ID == 0 {
			return httperr.ErrValidation("invalid_service", "Layanan tidak valid")
		}
	}
	return nil
}

func (in CreateInput) ServiceNames() []string {
	names := make([]string, 0, len(in.Services))
	for _, s := range in.Services {
		names = append(names, s.Name)
	}
	return names
}

// IsClock accepts zero-padded 24h "HH:MM".
func IsClock(s string) bool {
	if len(s) != 5 || strings.Count(s, ":") != 1 {
		return false
	}
	_, err := time.Parse(TimeLayout, s)
	return err == nil
}

// Booking is the read model returned to clients.
type Booking struct {
	ID            uint      `json:"id"`
	UserID        *uint     `json:"user_id"`
	BarberID      uint      `json:"barber_id"`
	BookingDate   string    `json:"booking_date"`
	BookingTime   string    `json:"booking_time"`
	Status        Status    `json:"status"`
	TotalPrice    int       `json:"total_price"`
	TotalDuration int       `json:"total_duration"`
	CustomerName  string    `json:"customer_name"`
	CustomerEmail string    `json:"customer_email"`
	CustomerPhone string    `json:"customer_phone"`
	Notes         string    `json:"notes"`
	PaymentMethod string    `json:"payment_method"`
	PaymentStatus string    `json:"payment_status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	BarberName  string `json:"barber_name"`
	BarberImage string `json:"barber_image"`

	Barber   BarberRef     `json:"barber"`
	Services []ServiceItem `json:"services"`
	Customer Customer      `json:"customer"`
}

// Fill derives the nested sub-objects from the flat columns.
func (b *Booking) Fill() {
	b.Barber = BarberRef{ID: b.BarberID, Name: b.BarberName, Image: b.BarberImage}
	b.Customer = Customer{Name: b.CustomerName, Email: b.CustomerEmail, Phone: b.CustomerPhone}
	if b.Services == nil {
		b.Services = []ServiceItem{}
	}
}

// FromInput builds the response used when the row cannot be read back
// after a successful insert.
func FromInput(id uint, in CreateInput, now time.Time) Booking {
	b := Booking{
		ID:            id,
		UserID:        in.UserID,
		BarberID:      in.BarberID,
		BookingDate:   in.Date,
		BookingTime:   in.Time,
		Status:        InitialStatus(),
		TotalPrice:    in.TotalPrice,
		TotalDuration: in.TotalDuration,
		CustomerName:  in.Customer.Name,
		CustomerEmail: in.Customer.Email,
		CustomerPhone: in.Customer.Phone,
		Notes:         in.Notes,
		PaymentMethod: in.PaymentMethod,
		PaymentStatus: DefaultPaymentStatus,
		CreatedAt:     now,
		UpdatedAt:     now,
		Services:      in.Services,
	}
	b.Fill()
	return b
}

type Filter struct {
	Status   string
	Date     string
	BarberID uint
	UserID   *uint
}

type DayStat struct {
	Date    string `json:"date"`
	Count   int64  `json:"count"`
	Revenue int64  `json:"revenue"`
}

type Summary struct {
	TodayBookings   int64 `json:"todayBookings"`
	PendingBookings int64 `json:"pendingBookings"`
	TotalRevenue    int64 `json:"totalRevenue"`
	TotalBookings   int64 `json:"totalBookings"`
	CompletedToday  int64 `json:"completedToday"`
}

type Stats struct {
	Summary
	WeeklyStats []DayStat `json:"weeklyStats"`
}

// Actor is the caller as seen by the booking rules.
type Actor struct {
	UserID uint
	Admin  bool
}

func (a Actor) Owns(b *Booking) bool {
	return b.UserID != nil && *b.UserID == a.UserID
}
