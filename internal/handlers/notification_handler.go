package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/httpresp"
	"github.com/BruksfildServices01/barbershop-booking/internal/notify"
)

const maxNotificationLimit = 200

type NotificationStore interface {
	Inbox(ctx context.Context, limit int) (*notify.Inbox, error)
	MarkRead(ctx context.Context, id uint) error
	MarkAllRead(ctx context.Context) error
	Delete(ctx context.Context, id uint) error
	DeleteAll(ctx context.Context) error
}

// ======================================================
// HANDLER
// ======================================================

type NotificationHandler struct {
	store NotificationStore
}

func NewNotificationHandler(store NotificationStore) *NotificationHandler {
	return &NotificationHandler{store: store}
}

func (h *NotificationHandler) List(c *gin.Context) {
	limit := int(queryUint(c, "limit"))
	if limit > maxNotificationLimit {
		limit = maxNotificationLimit
	}

	inbox, err := h.store.Inbox(c.Request.Context(), limit)
	if err != nil {
		httperr.Respond(c, err, "Gagal mendapatkan notifikasi")
		return
	}
	inbox.Notifications = nonNil(inbox.Notifications)
	httpresp.OK(c, inbox)
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		httperr.Respond(c, err, "")
		return
	}
	if err := h.store.MarkRead(c.Request.Context(), id); err != nil {
		httperr.Respond(c, err, "Gagal mengubah status notifikasi")
		return
	}
	httpresp.Message(c, "Notifikasi ditandai sudah dibaca")
}

func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	if err := h.store.MarkAllRead(c.Request.Context()); err != nil {
		httperr.Respond(c, err, "Gagal mengubah status notifikasi")
		return
	}
	httpresp.Message(c, "Semua notifikasi ditandai sudah dibaca")
}

func (h *NotificationHandler) Delete(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		httperr.Respond(c, err, "")
		return
	}
	if err := h.store.Delete(c.Request.Context(), id); err != nil {
		httperr.Respond(c, err, "Gagal menghapus notifikasi")
		return
	}
	httpresp.Message(c, "Notifikasi berhasil dihapus")
}

func (h *NotificationHandler) Clear(c *gin.Context) {
	if err := h.store.DeleteAll(c.Request.Context()); err != nil {
		httperr.Respond(c, err, "Gagal menghapus notifikasi")
		return
	}
	httpresp.Message(c, "Semua notifikasi berhasil dihapus")
}
