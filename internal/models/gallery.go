package models

import "time"

type GalleryItem struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Title    string `gorm:"size:200" json:"title"`
	Category string `gorm:"size:50" json:"category"`
	Image    string `gorm:"size:500;not null" json:"image"`

	CreatedAt time.Time `json:"created_at"`
}

func (GalleryItem) TableName() string { return "gallery" }
