package dto

import (
	"strings"

	"github.com/goccy/go-json"

	"github.com/BruksfildServices01/barbershop-booking/internal/domain/booking"
)

type CustomerRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Notes string `json:"notes"`
}

type BookingServiceRequest struct {
	ID           *FlexInt `json:"id"`
	ServiceID    *FlexInt `json:"service_id"`
	Name         string   `json:"name"`
	ServiceName  string   `json:"service_name"`
	Price        *FlexInt `json:"price"`
	ServicePrice *FlexInt `json:"service_price"`
}

// PaymentMethod is either a bare string or an object with a name.
type PaymentMethod string

func (p *PaymentMethod) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*p = PaymentMethod(strings.TrimSpace(s))
		return nil
	}
	var obj struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(b, &obj); err != nil {
		return err
	}
	*p = PaymentMethod(strings.TrimSpace(obj.Name))
	return nil
}

type CreateBookingRequest struct {
	BarberID      *FlexInt `json:"barberId"`
	BarberIDSnake *FlexInt `json:"barber_id"`

	Date        string `json:"date"`
	BookingDate string `json:"booking_date"`
	Time        string `json:"time"`
	BookingTime string `json:"booking_time"`

	Services []BookingServiceRequest `json:"services"`

	TotalPrice         *FlexInt `json:"totalPrice"`
	TotalPriceSnake    *FlexInt `json:"total_price"`
	TotalDuration      *FlexInt `json:"totalDuration"`
	TotalDurationSnake *FlexInt `json:"total_duration"`

	Customer      *CustomerRequest `json:"customer"`
	CustomerName  string           `json:"customer_name"`
	CustomerEmail string           `json:"customer_email"`
	CustomerPhone string           `json:"customer_phone"`
	Notes         string           `json:"notes"`

	PaymentMethod      PaymentMethod `json:"paymentMethod"`
	PaymentMethodSnake string        `json:"payment_method"`
}

// Normalize resolves aliases into the canonical booking input. userID
// is the authenticated caller, 0 for guests.
func (r CreateBookingRequest) Normalize(userID uint) booking.CreateInput {
	cust := CustomerRequest{}
	if r.Customer != nil {
		cust = *r.Customer
	}

	in := booking.CreateInput{
		UserID:        uintPtr(userID),
		BarberID:      firstInt(r.BarberID, r.BarberIDSnake).Uint(),
		Date:          firstString(r.Date, r.BookingDate),
		Time:          firstString(r.Time, r.BookingTime),
		TotalPrice:    firstInt(r.TotalPrice, r.TotalPriceSnake).Int(),
		TotalDuration: firstInt(r.TotalDuration, r.TotalDurationSnake).Int(),
		Customer: booking.Customer{
			Name:  firstString(cust.Name, r.CustomerName),
			Email: firstString(cust.Email, r.CustomerEmail),
			Phone: firstString(cust.Phone, r.CustomerPhone),
		},
		Notes:         firstString(cust.Notes, r.Notes),
		PaymentMethod: firstString(string(r.PaymentMethod), r.PaymentMethodSnake),
		Services:      make([]booking.ServiceItem, 0, len(r.Services)),
	}

	for _, s := range r.Services {
		in.Services = append(in.Services, booking.ServiceItem{
			ID:    firstInt(s.ID, s.ServiceID).Uint(),
			Name:  firstString(s.Name, s.ServiceName),
			Price: firstInt(s.Price, s.ServicePrice).Int(),
		})
	}
	return in
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status"`
}
