package models

import "time"

type Notification struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Type    string `gorm:"size:50;not null" json:"type"`
	Title   string `gorm:"size:200;not null" json:"title"`
	Message string `gorm:"type:text" json:"message"`
	Link    string `gorm:"size:255" json:"link"`
	IsRead  bool   `gorm:"index" json:"is_read"`

	CreatedAt time.Time `json:"created_at"`
}
