package models

import "time"

// Booking rows are written through the dbx layer; the gorm model only
// owns the schema.
type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID   *uint   `gorm:"index" json:"user_id"`
	User     *User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`
	BarberID uint    `gorm:"not null;index" json:"barber_id"`
	Barber   *Barber `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	BookingDate string `gorm:"size:10;not null;index" json:"booking_date"`
	BookingTime string `gorm:"size:10;not null" json:"booking_time"`
	Status      string `gorm:"size:20;not null;default:'pending';index" json:"status"`

	TotalPrice    int `gorm:"default:0" json:"total_price"`
	TotalDuration int `gorm:"default:0" json:"total_duration"`

	CustomerName  string `gorm:"size:100" json:"customer_name"`
	CustomerEmail string `gorm:"size:100" json:"customer_email"`
	CustomerPhone string `gorm:"size:20" json:"customer_phone"`
	Notes         string `gorm:"type:text" json:"notes"`

	PaymentMethod string `gorm:"size:50;default:'Cash'" json:"payment_method"`
	PaymentStatus string `gorm:"size:20;default:'pending'" json:"payment_status"`

	Services []BookingService `gorm:"foreignKey:BookingID;constraint:OnDelete:CASCADE;" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type BookingService struct {
	ID           uint     `gorm:"primaryKey" json:"id"`
	BookingID    uint     `gorm:"not null;index" json:"booking_id"`
	ServiceID    uint     `gorm:"not null;index" json:"service_id"`
	Service      *Service `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
	ServiceName  string   `gorm:"size:100" json:"service_name"`
	ServicePrice int      `gorm:"default:0" json:"service_price"`
}

// ActiveSlotIndex keeps at most one pending or confirmed booking per
// barber, date and time.
const ActiveSlotIndex = `CREATE UNIQUE INDEX IF NOT EXISTS ux_bookings_active_slot
	ON bookings (barber_id, booking_date, booking_time)
	WHERE status IN ('pending', 'confirmed')`
