package handlers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbershop-booking/internal/cache"
	"github.com/BruksfildServices01/barbershop-booking/internal/dto"
	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/httpresp"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

var errServiceNotFound = httperr.ErrNotFound("service_not_found", "Layanan tidak ditemukan")

type ServiceHandler struct {
	db    *gorm.DB
	cache cache.Cache
}

func NewServiceHandler(db *gorm.DB, c cache.Cache) *ServiceHandler {
	return &ServiceHandler{db: db, cache: c}
}

// --------- Handlers ---------

func (h *ServiceHandler) List(c *gin.Context) {
	ctx := c.Request.Context()
	activeOnly := c.Query("active") == "true"
	category := strings.TrimSpace(c.Query("category"))

	key := cache.PrefixServices + "list:" + category
	if activeOnly {
		key += ":active"
	}

	services, err := cache.Remember(ctx, h.cache, key, func() ([]dto.ServiceResponse, error) {
		q := h.db.WithContext(ctx)
		if activeOnly {
			q = q.Where("is_active = ?", true)
		}
		if category != "" {
			q = q.Where("category = ?", category)
		}

		var list []models.Service
		if err := q.Order("category ASC, name ASC").Find(&list).Error; err != nil {
			return nil, err
		}
		return dto.NewServiceResponses(list), nil
	})
	if err != nil {
		httperr.Respond(c, err, "Gagal mendapatkan data layanan")
		return
	}

	httpresp.OK(c, nonNil(services))
}

func (h *ServiceHandler) Categories(c *gin.Context) {
	ctx := c.Request.Context()

	categories, err := cache.Remember(ctx, h.cache, cache.PrefixServices+"categories", func() ([]string, error) {
		var out []string
		err := h.db.WithContext(ctx).
			Model(&models.Service{}).
			Where("is_active = ?", true).
			Distinct().
			Order("category ASC").
			Pluck("category", &out).Error
		return out, err
	})
	if err != nil {
		httperr.Respond(c, err, "Gagal mendapatkan kategori")
		return
	}

	httpresp.OK(c, nonNil(categories))
}

func (h *ServiceHandler) Get(c *gin.Context) {
	service, err := h.find(c)
	if err != nil {
		httperr.Respond(c, err, "Gagal mendapatkan data layanan")
		return
	}
	httpresp.OK(c, dto.NewServiceResponse(*service))
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req dto.ServiceRequest
	if err := bindJSON(c, &req); err != nil {
		httperr.Respond(c, err, "")
		return
	}

	service, err := req.NewService()
	if err != nil {
		httperr.Respond(c, err, "")
		return
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&service).Error; err != nil {
		httperr.Respond(c, err, "Gagal menambahkan layanan")
		return
	}

	cache.Invalidate(c.Request.Context(), h.cache, cache.PrefixServices)
	httpresp.Created(c, "Layanan berhasil ditambahkan", dto.NewServiceResponse(service))
}

func (h *ServiceHandler) Update(c *gin.Context) {
	service, err := h.find(c)
	if err != nil {
		httperr.Respond(c, err, "Gagal memperbarui layanan")
		return
	}

	var req dto.ServiceRequest
	if err := bindJSON(c, &req); err != nil {
		httperr.Respond(c, err, "")
		return
	}
	if err := req.ApplyTo(service); err != nil {
		httperr.Respond(c, err, "")
		return
	}

	if err := h.db.WithContext(c.Request.Context()).Save(service).Error; err != nil {
		httperr.Respond(c, err, "Gagal memperbarui layanan")
		return
	}

	cache.Invalidate(c.Request.Context(), h.cache, cache.PrefixServices)
	httpresp.WithMessage(c, "Layanan berhasil diperbarui", dto.NewServiceResponse(*service))
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	service, err := h.find(c)
	if err != nil {
		httperr.Respond(c, err, "Gagal menghapus layanan")
		return
	}

	if err := h.db.WithContext(c.Request.Context()).Delete(service).Error; err != nil {
		httperr.Respond(c, err, "Gagal menghapus layanan")
		return
	}

	cache.Invalidate(c.Request.Context(), h.cache, cache.PrefixServices)
	httpresp.Message(c, "Layanan berhasil dihapus")
}

func (h *ServiceHandler) find(c *gin.Context) (*models.Service, error) {
	id, err := paramID(c, "id")
	if err != nil {
		return nil, err
	}

	var service models.Service
	if err := h.db.WithContext(c.Request.Context()).First(&service, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errServiceNotFound
		}
		return nil, err
	}
	return &service, nil
}
