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

const allCategories = "all"

var errGalleryNotFound = httperr.ErrNotFound("gallery_not_found", "Item galeri tidak ditemukan")

type GalleryHandler struct {
	db    *gorm.DB
	cache cache.Cache
}

func NewGalleryHandler(db *gorm.DB, c cache.Cache) *GalleryHandler {
	return &GalleryHandler{db: db, cache: c}
}

func (h *GalleryHandler) List(c *gin.Context) {
	ctx := c.Request.Context()
	category := strings.TrimSpace(c.Query("category"))
	if category == "" {
		category = allCategories
	}

	items, err := cache.Remember(ctx, h.cache, cache.PrefixGallery+"list:"+category, func() ([]models.GalleryItem, error) {
		q := h.db.WithContext(ctx)
		if category != allCategories {
			q = q.Where("category = ?", category)
		}

		var list []models.GalleryItem
		err := q.Order("created_at DESC, id DESC").Find(&list).Error
		return list, err
	})
	if err != nil {
		httperr.Respond(c, err, "Gagal mendapatkan data galeri")
		return
	}

	httpresp.OK(c, nonNil(items))
}

// Categories always starts with "all".
func (h *GalleryHandler) Categories(c *gin.Context) {
	ctx := c.Request.Context()

	categories, err := cache.Remember(ctx, h.cache, cache.PrefixGallery+"categories", func() ([]string, error) {
		var found []string
		if err := h.db.WithContext(ctx).
			Model(&models.GalleryItem{}).
			Where("category <> ''").
			Distinct().
			Order("category ASC").
			Pluck("category", &found).Error; err != nil {
			return nil, err
		}
		return append([]string{allCategories}, found...), nil
	})
	if err != nil {
		httperr.Respond(c, err, "Gagal mendapatkan kategori")
		return
	}

	httpresp.OK(c, categories)
}

func (h *GalleryHandler) Create(c *gin.Context) {
	var req dto.GalleryRequest
	if err := bindJSON(c, &req); err != nil {
		httperr.Respond(c, err, "")
		return
	}

	item, err := req.NewItem()
	if err != nil {
		httperr.Respond(c, err, "")
		return
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&item).Error; err != nil {
		httperr.Respond(c, err, "Gagal menambahkan item galeri")
		return
	}

	cache.Invalidate(c.Request.Context(), h.cache, cache.PrefixGallery)
	httpresp.Created(c, "Item galeri berhasil ditambahkan", item)
}

func (h *GalleryHandler) Update(c *gin.Context) {
	item, err := h.find(c)
	if err != nil {
		httperr.Respond(c, err, "Gagal memperbarui item galeri")
		return
	}

	var req dto.GalleryRequest
	if err := bindJSON(c, &req); err != nil {
		httperr.Respond(c, err, "")
		return
	}
	req.ApplyTo(item)

	if err := h.db.WithContext(c.Request.Context()).Save(item).Error; err != nil {
		httperr.Respond(c, err, "Gagal memperbarui item galeri")
		return
	}

	cache.Invalidate(c.Request.Context(), h.cache, cache.PrefixGallery)
	httpresp.WithMessage(c, "Item galeri berhasil diperbarui", item)
}

func (h *GalleryHandler) Delete(c *gin.Context) {
	item, err := h.find(c)
	if err != nil {
		httperr.Respond(c, err, "Gagal menghapus item galeri")
		return
	}

	if err := h.db.WithContext(c.Request.Context()).Delete(item).Error; err != nil {
		httperr.Respond(c, err, "Gagal menghapus item galeri")
		return
	}

	cache.Invalidate(c.Request.Context(), h.cache, cache.PrefixGallery)
	httpresp.Message(c, "Item galeri berhasil dihapus")
}

func (h *GalleryHandler) find(c *gin.Context) (*models.GalleryItem, error) {
	id, err := paramID(c, "id")
	if err != nil {
		return nil, err
	}

	var item models.GalleryItem
	if err := h.db.WithContext(c.Request.Context()).First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errGalleryNotFound
		}
		return nil, err
	}
	return &item, nil
}
