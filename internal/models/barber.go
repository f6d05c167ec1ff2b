package models

import "time"

const (
	DefaultBarberRole = "Barber"
	DefaultWorkStart  = "09:00"
	DefaultWorkEnd    = "18:00"
)

type Barber struct {
	ID           uint          `gorm:"primaryKey" json:"id"`
	Name         string        `gorm:"size:100;not null" json:"name"`
	Role         string        `gorm:"size:50;default:'Barber'" json:"role"`
	Image        string        `gorm:"size:500" json:"image"`
	Rating       float64       `gorm:"type:decimal(2,1);default:0" json:"rating"`
	ReviewsCount int           `gorm:"default:0" json:"reviews_count"`
	Experience   int           `gorm:"default:0" json:"experience"`
	Bio          string        `gorm:"type:text" json:"bio"`
	Phone        string        `gorm:"size:20" json:"phone"`
	Instagram    string        `gorm:"size:100" json:"instagram"`
	Specialties  DelimitedList `gorm:"type:text" json:"specialties"`
	IsAvailable  bool          `json:"is_available"`

	WorkStartTime string `gorm:"size:10;default:'09:00'" json:"work_start_time"`
	WorkEndTime   string `gorm:"size:10;default:'18:00'" json:"work_end_time"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
