package dto

import (
	"strings"

	"github.com/BruksfildServices01/barbershop-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

// --------------------------------------------------
// Barbers
// --------------------------------------------------

type WorkSchedule struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

type BarberRequest struct {
	Name        *string               `json:"name"`
	Role        *string               `json:"role"`
	Image       *string               `json:"image"`
	Experience  *FlexInt              `json:"experience"`
	Specialties *models.DelimitedList `json:"specialties"`
	Bio         *string               `json:"bio"`
	Phone       *string               `json:"phone"`
	Instagram   *string               `json:"instagram"`

	IsAvailable      *FlexBool `json:"is_available"`
	IsAvailableCamel *FlexBool `json:"isAvailable"`

	WorkStartTime string        `json:"work_start_time"`
	WorkEndTime   string        `json:"work_end_time"`
	WorkSchedule  *WorkSchedule `json:"workSchedule"`
}

func (r BarberRequest) NewBarber() (models.Barber, error) {
	b := models.Barber{
		Role:          models.DefaultBarberRole,
		IsAvailable:   true,
		WorkStartTime: models.DefaultWorkStart,
		WorkEndTime:   models.DefaultWorkEnd,
		Specialties:   models.DelimitedList{},
	}
	if err := r.ApplyTo(&b); err != nil {
		return b, err
	}
	if b.Name == "" {
		return b, httperr.ErrValidation("name_required", "Nama barber wajib diisi")
	}
	return b, nil
}

// ApplyTo overwrites only the fields present in the request.
func (r BarberRequest) ApplyTo(b *models.Barber) error {
	if s := trimmed(r.Name); s != "" {
		b.Name = s
	}
	if s := trimmed(r.Role); s != "" {
		b.Role = s
	}
	if s := trimmed(r.Image); s != "" {
		b.Image = s
	}
	if r.Experience != nil {
		b.Experience = r.Experience.Int()
	}
	if r.Specialties != nil {
		b.Specialties = *r.Specialties
	}
	if r.Bio != nil {
		b.Bio = *r.Bio
	}
	if r.Phone != nil {
		b.Phone = *r.Phone
	}
	if r.Instagram != nil {
		b.Instagram = *r.Instagram
	}
	if v := firstBool(r.IsAvailable, r.IsAvailableCamel); v != nil {
		b.IsAvailable = bool(*v)
	}

	sched := WorkSchedule{}
	if r.WorkSchedule != nil {
		sched = *r.WorkSchedule
	}
	if s := firstString(r.WorkStartTime, sched.StartTime); s != "" {
		b.WorkStartTime = s
	}
	if s := firstString(r.WorkEndTime, sched.EndTime); s != "" {
		b.WorkEndTime = s
	}

	if !booking.IsClock(b.WorkStartTime) || !booking.IsClock(b.WorkEndTime) {
		return httperr.ErrValidation("invalid_time", "Format waktu tidak valid (HH:MM)")
	}
	return nil
}

type BarberResponse struct {
	models.Barber
	IsAvailableCamel bool         `json:"isAvailable"`
	WorkSchedule     WorkSchedule `json:"workSchedule"`
	Reviews          any          `json:"reviews,omitempty"`
}

func NewBarberResponse(b models.Barber) BarberResponse {
	if b.Specialties == nil {
		b.Specialties = models.DelimitedList{}
	}
	return BarberResponse{
		Barber:           b,
		IsAvailableCamel: b.IsAvailable,
		WorkSchedule:     WorkSchedule{StartTime: b.WorkStartTime, EndTime: b.WorkEndTime},
	}
}

func NewBarberResponses(list []models.Barber) []BarberResponse {
	out := make([]BarberResponse, 0, len(list))
	for _, b := range list {
		out = append(out, NewBarberResponse(b))
	}
	return out
}

// --------------------------------------------------
// Services
// --------------------------------------------------

type ServiceRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *FlexInt `json:"price"`
	Duration    *FlexInt `json:"duration"`
	Category    *string  `json:"category"`
	Image       *string  `json:"image"`

	IsPopular      *FlexBool `json:"is_popular"`
	IsPopularCamel *FlexBool `json:"isPopular"`
	IsActive       *FlexBool `json:"is_active"`
	IsActiveCamel  *FlexBool `json:"isActive"`
}

func (r ServiceRequest) NewService() (models.Service, error) {
	s := models.Service{
		Category: models.DefaultServiceCategory,
		IsActive: true,
	}
	if trimmed(r.Name) == "" || r.Price == nil || r.Duration == nil {
		return s, httperr.ErrValidation("service_fields_required", "Nama, harga dan durasi layanan wajib diisi")
	}
	return s, r.ApplyTo(&s)
}

func (r ServiceRequest) ApplyTo(s *models.Service) error {
	if v := trimmed(r.Name); v != "" {
		s.Name = v
	}
	if r.Description != nil {
		s.Description = *r.Description
	}
	if r.Price != nil {
		s.Price = r.Price.Int()
	}
	if r.Duration != nil {
		s.Duration = r.Duration.Int()
	}
	if v := trimmed(r.Category); v != "" {
		s.Category = v
	}
	if r.Image != nil {
		s.Image = *r.Image
	}
	if v := firstBool(r.IsPopular, r.IsPopularCamel); v != nil {
		s.IsPopular = bool(*v)
	}
	if v := firstBool(r.IsActive, r.IsActiveCamel); v != nil {
		s.IsActive = bool(*v)
	}

	if s.Price < 0 || s.Duration < 0 {
		return httperr.ErrValidation("invalid_service", "Harga dan durasi tidak boleh negatif")
	}
	return nil
}

type ServiceResponse struct {
	models.Service
	IsPopularCamel bool `json:"isPopular"`
	IsActiveCamel  bool `json:"isActive"`
}

func NewServiceResponses(list []models.Service) []ServiceResponse {
	out := make([]ServiceResponse, 0, len(list))
	for _, s := range list {
		out = append(out, NewServiceResponse(s))
	}
	return out
}

func NewServiceResponse(s models.Service) ServiceResponse {
	return ServiceResponse{Service: s, IsPopularCamel: s.IsPopular, IsActiveCamel: s.IsActive}
}

// --------------------------------------------------
// Gallery
// --------------------------------------------------

type GalleryRequest struct {
	Title    string `json:"title"`
	Category string `json:"category"`
	Image    string `json:"image"`
}

func (r GalleryRequest) NewItem() (models.GalleryItem, error) {
	item := models.GalleryItem{}
	r.ApplyTo(&item)
	if item.Image == "" {
		return item, httperr.ErrValidation("image_required", "Gambar wajib diisi")
	}
	return item, nil
}

func (r GalleryRequest) ApplyTo(item *models.GalleryItem) {
	if s := strings.TrimSpace(r.Title); s != "" {
		item.Title = s
	}
	if s := strings.TrimSpace(r.Category); s != "" {
		item.Category = s
	}
	if s := strings.TrimSpace(r.Image); s != "" {
		item.Image = s
	}
}

func trimmed(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}
