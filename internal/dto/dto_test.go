package dto

import (
	"testing"

	"github.com/goccy/go-json"

	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

func decode[T any](t *testing.T, body string) T {
	t.Helper()
	var v T
	if err := json.Unmarshal([]byte(body), &v); err != nil {
		t.Fatalf("unmarshal %s: %v", body, err)
	}
	return v
}

func TestCreateBookingNormalizeCamelCase(t *testing.T) {
	req := decode[CreateBookingRequest](t, `{
		"barberId": "3",
		"date": "2025-01-10",
		"time": "10:00",
		"services": [{"id": 1, "name": "Haircut", "price": "50000"}],
		"totalPrice": 50000,
		"totalDuration": "30",
		"customer": {"name": "Budi", "email": "budi@example.com", "phone": "0811", "notes": "pagi"},
		"paymentMethod": {"id": "qris", "name": "QRIS"}
	}`)

	in := req.Normalize(9)
	if in.BarberID != 3 || in.Date != "2025-01-10" || in.Time != "10:00" {
		t.Fatalf("slot = %d %s %s", in.BarberID, in.Date, in.Time)
	}
	if in.TotalPrice != 50000 || in.TotalDuration != 30 {
		t.Fatalf("totals = %d %d", in.TotalPrice, in.TotalDuration)
	}
	if in.Customer.Name != "Budi" || in.Notes != "pagi" || in.PaymentMethod != "QRIS" {
		t.Fatalf("customer = %+v notes=%q payment=%q", in.Customer, in.Notes, in.PaymentMethod)
	}
	if len(in.Services) != 1 || in.Services[0].ID != 1 || in.Services[0].Price != 50000 {
		t.Fatalf("services = %+v", in.Services)
	}
	if in.UserID == nil || *in.UserID != 9 {
		t.Fatalf("user id = %v", in.UserID)
	}
}

func TestCreateBookingNormalizeSnakeCase(t *testing.T) {
	req := decode[CreateBookingRequest](t, `{
		"barber_id": 2,
		"booking_date": "2025-01-11",
		"booking_time": "14:30",
		"services": [{"service_id": "4", "service_name": "Shave", "service_price": 25000}],
		"total_price": "25000",
		"customer_name": "Andi",
		"customer_phone": "0812",
		"notes": "-",
		"payment_method": "Transfer"
	}`)

	in := req.Normalize(0)
	if in.UserID != nil {
		t.Fatalf("guest booking carries user id %d", *in.UserID)
	}
	if in.BarberID != 2 || in.Date != "2025-01-11" || in.Time != "14:30" {
		t.Fatalf("slot = %d %s %s", in.BarberID, in.Date, in.Time)
	}
	if in.Services[0].ID != 4 || in.Services[0].Name != "Shave" || in.Services[0].Price != 25000 {
		t.Fatalf("services = %+v", in.Services)
	}
	if in.Customer.Name != "Andi" || in.Customer.Phone != "0812" || in.PaymentMethod != "Transfer" {
		t.Fatalf("customer = %+v payment = %q", in.Customer, in.PaymentMethod)
	}
}

func TestPaymentMethodString(t *testing.T) {
	req := decode[CreateBookingRequest](t, `{"paymentMethod": "Cash"}`)
	if req.Normalize(0).PaymentMethod != "Cash" {
		t.Fatalf("payment = %q", req.PaymentMethod)
	}
}

func TestCreateReviewNormalize(t *testing.T) {
	tests := []struct {
		body   string
		rating int
	}{
		{`{"barberId": 1, "rating": 5}`, 5},
		{`{"barber_id": "1", "rating": "4"}`, 4},
		{`{"barber_id": 1, "rating": 4.5}`, 0},
		{`{"barber_id": 1}`, 0},
	}
	for _, tt := range tests {
		in := decode[CreateReviewRequest](t, tt.body).Normalize(0)
		if in.BarberID != 1 || in.Rating != tt.rating {
			t.Fatalf("%s -> barber %d rating %d, want rating %d", tt.body, in.BarberID, in.Rating, tt.rating)
		}
	}

	in := decode[CreateReviewRequest](t, `{"booking_id": 7, "barberId": 1, "customer_name": "Budi", "rating": 5, "services": "Haircut, Shave"}`).Normalize(3)
	if in.BookingID == nil || *in.BookingID != 7 || in.CustomerName != "Budi" {
		t.Fatalf("input = %+v", in)
	}
	if len(in.Services) != 2 || in.Services[1] != "Shave" {
		t.Fatalf("services = %v", in.Services)
	}
	if in.UserID == nil || *in.UserID != 3 {
		t.Fatalf("user id = %v", in.UserID)
	}
}

func TestBarberRequest(t *testing.T) {
	req := decode[BarberRequest](t, `{"name": "Joko", "specialties": ["Fade", "Beard"], "isAvailable": false, "workSchedule": {"startTime": "10:00", "endTime": "20:00"}}`)
	b, err := req.NewBarber()
	if err != nil {
		t.Fatalf("NewBarber() error = %v", err)
	}
	if b.Role != models.DefaultBarberRole || b.IsAvailable || b.WorkStartTime != "10:00" || b.WorkEndTime != "20:00" {
		t.Fatalf("barber = %+v", b)
	}
	if len(b.Specialties) != 2 {
		t.Fatalf("specialties = %v", b.Specialties)
	}

	update := decode[BarberRequest](t, `{"is_available": 1, "bio": ""}`)
	b.Bio = "lama"
	if err := update.ApplyTo(&b); err != nil {
		t.Fatalf("ApplyTo() error = %v", err)
	}
	if !b.IsAvailable || b.Bio != "" || b.Name != "Joko" {
		t.Fatalf("after update = %+v", b)
	}

	if _, err := decode[BarberRequest](t, `{"role": "Senior"}`).NewBarber(); !httperr.IsBusiness(err, "name_required") {
		t.Fatalf("missing name error = %v", err)
	}
	if err := decode[BarberRequest](t, `{"work_start_time": "9am"}`).ApplyTo(&b); !httperr.IsBusiness(err, "invalid_time") {
		t.Fatalf("bad time error = %v", err)
	}
}

func TestBarberResponseJSON(t *testing.T) {
	raw, err := json.Marshal(NewBarberResponse(models.Barber{ID: 1, Name: "Joko", IsAvailable: true, WorkStartTime: "09:00", WorkEndTime: "18:00"}))
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	var got map[string]any
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if got["isAvailable"] != true || got["is_available"] != true {
		t.Fatalf("availability flags = %v / %v", got["isAvailable"], got["is_available"])
	}
	if sched, ok := got["workSchedule"].(map[string]any); !ok || sched["startTime"] != "09:00" {
		t.Fatalf("workSchedule = %v", got["workSchedule"])
	}
	if list, ok := got["specialties"].([]any); !ok || len(list) != 0 {
		t.Fatalf("specialties = %v", got["specialties"])
	}
}

func TestServiceRequest(t *testing.T) {
	s, err := decode[ServiceRequest](t, `{"name": "Haircut", "price": "50000", "duration": 30, "isPopular": true}`).NewService()
	if err != nil {
		t.Fatalf("NewService() error = %v", err)
	}
	if s.Price != 50000 || s.Duration != 30 || !s.IsPopular || !s.IsActive || s.Category != models.DefaultServiceCategory {
		t.Fatalf("service = %+v", s)
	}

	if err := decode[ServiceRequest](t, `{"is_active": "false"}`).ApplyTo(&s); err != nil || s.IsActive {
		t.Fatalf("ApplyTo() = %+v, %v", s, err)
	}

	if _, err := decode[ServiceRequest](t, `{"name": "Haircut"}`).NewService(); !httperr.IsBusiness(err, "service_fields_required") {
		t.Fatalf("missing price error = %v", err)
	}
}

func TestAuthRequests(t *testing.T) {
	reg := RegisterRequest{Name: " Budi ", Email: " BUDI@Example.com ", Password: "rahasia"}
	if err := reg.Normalize(); err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	if reg.Email != "budi@example.com" || reg.Name != "Budi" {
		t.Fatalf("normalized = %+v", reg)
	}

	short := RegisterRequest{Name: "Budi", Email: "budi@example.com", Password: "123"}
	if err := short.Normalize(); !httperr.IsBusiness(err, "password_too_short") {
		t.Fatalf("short password error = %v", err)
	}

	cur, next, err := ChangePasswordRequest{CurrentPasswordSnake: "lama123", NewPassword: "baru123"}.Normalize()
	if err != nil || cur != "lama123" || next != "baru123" {
		t.Fatalf("Normalize() = %q %q %v", cur, next, err)
	}
}
