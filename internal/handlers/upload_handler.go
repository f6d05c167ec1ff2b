package handlers

import (
	"context"
	"io"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/httpresp"
	"github.com/BruksfildServices01/barbershop-booking/internal/storage"
)

var (
	errImageRequired = httperr.ErrValidation("image_required", "File gambar wajib diunggah")
	errImageTooLarge = httperr.ErrValidation("image_too_large", "Ukuran file maksimal 5MB")
	errImageType     = httperr.ErrValidation("invalid_image_type", "Tipe file tidak didukung")
)

type ImageUploader interface {
	Upload(ctx context.Context, folder string, r io.Reader) (string, error)
}

type UploadHandler struct {
	uploader ImageUploader
}

func NewUploadHandler(uploader ImageUploader) *UploadHandler {
	return &UploadHandler{uploader: uploader}
}

func (h *UploadHandler) Upload(c *gin.Context) {
	header, err := c.FormFile("image")
	if err != nil {
		httperr.Respond(c, errImageRequired, "")
		return
	}
	if header.Size > storage.MaxUploadBytes {
		httperr.Respond(c, errImageTooLarge, "")
		return
	}
	if !storage.AllowedType(strings.ToLower(header.Header.Get("Content-Type"))) {
		httperr.Respond(c, errImageType, "")
		return
	}

	file, err := header.Open()
	if err != nil {
		httperr.Respond(c, err, "Gagal mengunggah gambar")
		return
	}
	defer file.Close()

	folder := strings.ToLower(strings.TrimSpace(c.PostForm("folder")))
	url, err := h.uploader.Upload(c.Request.Context(), folder, io.LimitReader(file, storage.MaxUploadBytes))
	if err != nil {
		httperr.Respond(c, err, "Gagal mengunggah gambar")
		return
	}

	httpresp.Created(c, "Gambar berhasil diunggah", gin.H{"url": url})
}
