package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbershop-booking/internal/cache"
	"github.com/BruksfildServices01/barbershop-booking/internal/dto"
	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/httpresp"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

const barberReviewsShown = 10

var errBarberNotFound = httperr.ErrNotFound("barber_not_found", "Barber tidak ditemukan")

type BarberHandler struct {
	db    *gorm.DB
	cache cache.Cache
}

func NewBarberHandler(db *gorm.DB, c cache.Cache) *BarberHandler {
	return &BarberHandler{db: db, cache: c}
}

// --------- Handlers ---------

func (h *BarberHandler) List(c *gin.Context) {
	ctx := c.Request.Context()
	available := c.Query("available") == "true"

	key := cache.PrefixBarbers + "all"
	if available {
		key = cache.PrefixBarbers + "available"
	}

	barbers, err := cache.Remember(ctx, h.cache, key, func() ([]dto.BarberResponse, error) {
		q := h.db.WithContext(ctx)
		if available {
			q = q.Where("is_available = ?", true)
		}

		var list []models.Barber
		if err := q.Order("id ASC").Find(&list).Error; err != nil {
			return nil, err
		}
		return dto.NewBarberResponses(list), nil
	})
	if err != nil {
		httperr.Respond(c, err, "Gagal mendapatkan data barber")
		return
	}

	httpresp.OK(c, nonNil(barbers))
}

func (h *BarberHandler) Get(c *gin.Context) {
	barber, err := h.find(c)
	if err != nil {
		httperr.Respond(c, err, "Gagal mendapatkan data barber")
		return
	}

	var reviews []models.Review
	if err := h.db.WithContext(c.Request.Context()).
		Where("barber_id = ?", barber.ID).
		Order("created_at DESC").
		Limit(barberReviewsShown).
		Find(&reviews).Error; err != nil {
		httperr.Respond(c, err, "Gagal mendapatkan data barber")
		return
	}

	resp := dto.NewBarberResponse(*barber)
	resp.Reviews = nonNil(reviews)
	httpresp.OK(c, resp)
}

func (h *BarberHandler) Create(c *gin.Context) {
	var req dto.BarberRequest
	if err := bindJSON(c, &req); err != nil {
		httperr.Respond(c, err, "")
		return
	}

	barber, err := req.NewBarber()
	if err != nil {
		httperr.Respond(c, err, "")
		return
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&barber).Error; err != nil {
		httperr.Respond(c, err, "Gagal menambahkan barber")
		return
	}

	cache.Invalidate(c.Request.Context(), h.cache, cache.PrefixBarbers)
	httpresp.Created(c, "Barber berhasil ditambahkan", dto.NewBarberResponse(barber))
}

func (h *BarberHandler) Update(c *gin.Context) {
	barber, err := h.find(c)
	if err != nil {
		httperr.Respond(c, err, "Gagal memperbarui barber")
		return
	}

	var req dto.BarberRequest
	if err := bindJSON(c, &req); err != nil {
		httperr.Respond(c, err, "")
		return
	}
	if err := req.ApplyTo(barber); err != nil {
		httperr.Respond(c, err, "")
		return
	}

	// rating and reviews_count belong to review aggregation
	if err := h.db.WithContext(c.Request.Context()).
		Model(barber).
		Select("name", "role", "image", "experience", "specialties", "bio", "phone",
			"instagram", "is_available", "work_start_time", "work_end_time", "updated_at").
		Updates(barber).Error; err != nil {
		httperr.Respond(c, err, "Gagal memperbarui barber")
		return
	}

	cache.Invalidate(c.Request.Context(), h.cache, cache.PrefixBarbers)
	httpresp.WithMessage(c, "Barber berhasil diperbarui", dto.NewBarberResponse(*barber))
}

func (h *BarberHandler) Delete(c *gin.Context) {
	barber, err := h.find(c)
	if err != nil {
		httperr.Respond(c, err, "Gagal menghapus barber")
		return
	}

	if err := h.db.WithContext(c.Request.Context()).Delete(barber).Error; err != nil {
		httperr.Respond(c, err, "Gagal menghapus barber")
		return
	}

	cache.Invalidate(c.Request.Context(), h.cache, cache.PrefixBarbers)
	httpresp.Message(c, "Barber berhasil dihapus")
}

func (h *BarberHandler) find(c *gin.Context) (*models.Barber, error) {
	id, err := paramID(c, "id")
	if err != nil {
		return nil, err
	}

	var barber models.Barber
	if err := h.db.WithContext(c.Request.Context()).First(&barber, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errBarberNotFound
		}
		return nil, err
	}
	return &barber, nil
}
