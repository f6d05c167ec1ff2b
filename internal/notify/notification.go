package notify

import (
	"time"

	"github.com/goccy/go-json"
)

// Notification is a stored event as the admin panel reads it.
type Notification struct {
	ID        uint      `json:"id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Link      string    `json:"link"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

// MarshalJSON adds the camelCase isRead flag the admin panel reads.
func (n Notification) MarshalJSON() ([]byte, error) {
	type plain Notification
	return json.Marshal(struct {
		plain
		Read bool `json:"isRead"`
	}{plain(n), n.IsRead})
}

type Inbox struct {
	Notifications []Notification `json:"notifications"`
	UnreadCount   int64          `json:"unreadCount"`
}
