package models

import "time"

const DefaultServiceCategory = "haircut"

type Service struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:100;not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	Price       int    `gorm:"not null" json:"price"`
	Duration    int    `gorm:"not null" json:"duration"`
	Category    string `gorm:"size:50;default:'haircut'" json:"category"`
	Image       string `gorm:"size:500" json:"image"`
	IsPopular   bool   `json:"is_popular"`
	IsActive    bool   `json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
