package handlers

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/barbershop-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barbershop-booking/internal/dto"
	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/httpresp"
	"github.com/BruksfildServices01/barbershop-booking/internal/middleware"
	"github.com/BruksfildServices01/barbershop-booking/internal/notify"
	ucbooking "github.com/BruksfildServices01/barbershop-booking/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	create  *ucbooking.CreateBooking
	status  *ucbooking.UpdateStatus
	cancel  *ucbooking.CancelBooking
	slots   *ucbooking.BookedSlots
	list    *ucbooking.ListBookings
	summary *ucbooking.BookingStats
}

func NewBookingHandler(repo domain.Repository, publisher notify.Publisher, tz string) *BookingHandler {
	return &BookingHandler{
		create:  ucbooking.NewCreateBooking(repo, publisher),
		status:  ucbooking.NewUpdateStatus(repo, publisher),
		cancel:  ucbooking.NewCancelBooking(repo, publisher),
		slots:   ucbooking.NewBookedSlots(repo),
		list:    ucbooking.NewListBookings(repo),
		summary: ucbooking.NewBookingStats(repo, tz),
	}
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	var req dto.CreateBookingRequest
	if err := bindJSON(c, &req); err != nil {
		httperr.Respond(c, err, "")
		return
	}

	userID, _ := middleware.CurrentUserID(c)

	b, err := h.create.Execute(c.Request.Context(), req.Normalize(userID))
	if err != nil {
		httperr.Respond(c, err, "Gagal membuat booking")
		return
	}

	httpresp.Created(c, "Booking berhasil dibuat", b)
}

// ======================================================
// READ
// ======================================================

func (h *BookingHandler) List(c *gin.Context) {
	bookings, err := h.list.All(c.Request.Context(), domain.Filter{
		Status:   strings.TrimSpace(c.Query("status")),
		Date:     strings.TrimSpace(c.Query("date")),
		BarberID: queryUint(c, "barber_id"),
	})
	if err != nil {
		httperr.Respond(c, err, "Gagal mendapatkan data booking")
		return
	}
	httpresp.OK(c, nonNil(bookings))
}

func (h *BookingHandler) Mine(c *gin.Context) {
	userID, _ := middleware.CurrentUserID(c)

	bookings, err := h.list.Mine(c.Request.Context(), userID, strings.TrimSpace(c.Query("status")))
	if err != nil {
		httperr.Respond(c, err, "Gagal mendapatkan data booking")
		return
	}
	httpresp.OK(c, nonNil(bookings))
}

func (h *BookingHandler) Get(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		httperr.Respond(c, err, "")
		return
	}

	b, err := h.list.Get(c.Request.Context(), actorFrom(c), id)
	if err != nil {
		httperr.Respond(c, err, "Gagal mendapatkan data booking")
		return
	}
	httpresp.OK(c, b)
}

func (h *BookingHandler) BookedSlots(c *gin.Context) {
	slots, err := h.slots.Execute(
		c.Request.Context(),
		queryUint(c, "barber_id"),
		strings.TrimSpace(c.Query("date")),
	)
	if err != nil {
		httperr.Respond(c, err, "Gagal mendapatkan slot yang dibooking")
		return
	}
	httpresp.OK(c, nonNil(slots))
}

func (h *BookingHandler) Stats(c *gin.Context) {
	stats, err := h.summary.Execute(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err, "Gagal mendapatkan statistik booking")
		return
	}
	httpresp.OK(c, stats)
}

// ======================================================
// STATE CHANGES
// ======================================================

func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		httperr.Respond(c, err, "")
		return
	}

	var req dto.UpdateBookingStatusRequest
	if err := bindJSON(c, &req); err != nil {
		httperr.Respond(c, err, "")
		return
	}

	b, err := h.status.Execute(c.Request.Context(), id, req.Status)
	if err != nil {
		httperr.Respond(c, err, "Gagal mengubah status booking")
		return
	}

	httpresp.WithMessage(c, fmt.Sprintf("Status booking berhasil diubah ke %s", b.Status), b)
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		httperr.Respond(c, err, "")
		return
	}

	if err := h.cancel.Execute(c.Request.Context(), actorFrom(c), id); err != nil {
		httperr.Respond(c, err, "Gagal membatalkan booking")
		return
	}

	httpresp.Message(c, "Booking berhasil dibatalkan")
}

func nonNil[T any](list []T) []T {
	if list == nil {
		return []T{}
	}
	return list
}
