package repository

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/BruksfildServices01/barbershop-booking/internal/notify"
	"github.com/BruksfildServices01/barbershop-booking/internal/testutil"
)

func TestNotificationInbox(t *testing.T) {
	repo := NewNotificationSQLRepository(testutil.Open(t).X)
	ctx := context.Background()

	base := time.Date(2025, 1, 10, 8, 0, 0, 0, time.UTC)
	for i, title := range []string{"Booking Baru", "Review Baru", "Booking selesai"} {
		ev := notify.Event{Type: notify.TypeBooking, Title: title, CreatedAt: base.Add(time.Duration(i) * time.Minute)}
		if err := repo.Create(ctx, ev); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	inbox, err := repo.Inbox(ctx, 2)
	if err != nil {
		t.Fatalf("Inbox() error = %v", err)
	}
	if len(inbox.Notifications) != 2 || inbox.UnreadCount != 3 {
		t.Fatalf("Inbox() = %d items, %d unread", len(inbox.Notifications), inbox.UnreadCount)
	}
	if inbox.Notifications[0].Title != "Booking selesai" {
		t.Fatalf("newest first violated: %q", inbox.Notifications[0].Title)
	}

	if err := repo.MarkRead(ctx, inbox.Notifications[0].ID); err != nil {
		t.Fatalf("MarkRead() error = %v", err)
	}
	if n, _ := repo.UnreadCount(ctx); n != 2 {
		t.Fatalf("UnreadCount() = %d, want 2", n)
	}

	if err := repo.MarkAllRead(ctx); err != nil {
		t.Fatalf("MarkAllRead() error = %v", err)
	}
	if n, _ := repo.UnreadCount(ctx); n != 0 {
		t.Fatalf("UnreadCount() = %d, want 0", n)
	}

	if err := repo.MarkRead(ctx, 999); !errors.Is(err, ErrNotificationNotFound) {
		t.Fatalf("MarkRead(missing) error = %v", err)
	}
}

func TestNotificationPurgeRead(t *testing.T) {
	repo := NewNotificationSQLRepository(testutil.Open(t).X)
	ctx := context.Background()

	old := time.Now().AddDate(0, 0, -40)
	for _, title := range []string{"old read", "old unread"} {
		if err := repo.Create(ctx, notify.Event{Type: notify.TypeBooking, Title: title, CreatedAt: old}); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}
	if err := repo.Create(ctx, notify.Event{Type: notify.TypeReview, Title: "fresh"}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	list, _ := repo.List(ctx, 0)
	for _, n := range list {
		if n.Title == "old read" || n.Title == "fresh" {
			if err := repo.MarkRead(ctx, n.ID); err != nil {
				t.Fatalf("MarkRead() error = %v", err)
			}
		}
	}

	purged, err := repo.PurgeRead(ctx, time.Now().AddDate(0, 0, -30))
	if err != nil {
		t.Fatalf("PurgeRead() error = %v", err)
	}
	if purged != 1 {
		t.Fatalf("PurgeRead() = %d, want 1", purged)
	}

	if err := repo.DeleteAll(ctx); err != nil {
		t.Fatalf("DeleteAll() error = %v", err)
	}
	if list, _ := repo.List(ctx, 0); len(list) != 0 {
		t.Fatalf("List() after DeleteAll = %d", len(list))
	}
}

func TestNotificationJSONCarriesIsRead(t *testing.T) {
	b, err := json.Marshal(notify.Notification{ID: 1, Title: "x", IsRead: true})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if !strings.Contains(string(b), `"isRead":true`) || !strings.Contains(string(b), `"is_read":true`) {
		t.Fatalf("json = %s", b)
	}
}
