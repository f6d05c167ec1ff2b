package repository

import (
	"context"
	"time"

	"github.com/BruksfildServices01/barbershop-booking/internal/dbx"
	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/notify"
)

var ErrNotificationNotFound = httperr.ErrNotFound("notification_not_found", "Notifikasi tidak ditemukan")

// NotificationSQLRepository is the only writer of the notifications
// table; rows arrive through the dispatcher's store sink.
type NotificationSQLRepository struct {
	db *dbx.DB
}

func NewNotificationSQLRepository(db *dbx.DB) *NotificationSQLRepository {
	return &NotificationSQLRepository{db: db}
}

func (r *NotificationSQLRepository) Create(ctx context.Context, ev notify.Event) error {
	at := ev.CreatedAt
	if at.IsZero() {
		at = time.Now()
	}
	_, err := r.db.Run(ctx, `
		INSERT INTO notifications (type, title, message, link, is_read, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		ev.Type, ev.Title, ev.Message, ev.Link, false, at,
	)
	return err
}

func (r *NotificationSQLRepository) List(ctx context.Context, limit int) ([]notify.Notification, error) {
	query := "SELECT * FROM notifications ORDER BY created_at DESC, id DESC"
	var args []any
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.All(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	out := make([]notify.Notification, 0, len(rows))
	for _, row := range rows {
		out = append(out, notify.Notification{
			ID:        row.Uint("id"),
			Type:      row.String("type"),
			Title:     row.String("title"),
			Message:   row.String("message"),
			Link:      row.String("link"),
			IsRead:    row.Bool("is_read"),
			CreatedAt: row.Time("created_at"),
		})
	}
	return out, nil
}

func (r *NotificationSQLRepository) UnreadCount(ctx context.Context) (int64, error) {
	row, _, err := r.db.Get(ctx, "SELECT COUNT(*) AS count FROM notifications WHERE is_read = 0")
	if err != nil {
		return 0, err
	}
	return row.Int64("count"), nil
}

func (r *NotificationSQLRepository) Inbox(ctx context.Context, limit int) (*notify.Inbox, error) {
	list, err := r.List(ctx, limit)
	if err != nil {
		return nil, err
	}
	unread, err := r.UnreadCount(ctx)
	if err != nil {
		return nil, err
	}
	return &notify.Inbox{Notifications: list, UnreadCount: unread}, nil
}

func (r *NotificationSQLRepository) MarkRead(ctx context.Context, id uint) error {
	res, err := r.db.Run(ctx, "UPDATE notifications SET is_read = 1 WHERE id = ?", id)
	if err != nil {
		return err
	}
	if res.Changes == 0 {
		return ErrNotificationNotFound
	}
	return nil
}

func (r *NotificationSQLRepository) MarkAllRead(ctx context.Context) error {
	_, err := r.db.Run(ctx, "UPDATE notifications SET is_read = 1 WHERE is_read = 0")
	return err
}

func (r *NotificationSQLRepository) Delete(ctx context.Context, id uint) error {
	res, err := r.db.Run(ctx, "DELETE FROM notifications WHERE id = ?", id)
	if err != nil {
		return err
	}
	if res.Changes == 0 {
		return ErrNotificationNotFound
	}
	return nil
}

func (r *NotificationSQLRepository) DeleteAll(ctx context.Context) error {
	_, err := r.db.Run(ctx, "DELETE FROM notifications")
	return err
}

// PurgeRead removes read notifications created before cutoff.
func (r *NotificationSQLRepository) PurgeRead(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.db.Run(ctx,
		"DELETE FROM notifications WHERE is_read = 1 AND created_at < ?",
		cutoff,
	)
	if err != nil {
		return 0, err
	}
	return res.Changes, nil
}

var _ notify.Store = (*NotificationSQLRepository)(nil)
