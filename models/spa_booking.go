package models

import (
	"time"

	"gorm.io/gorm"
)

// SpaBooking is a spa charge accrued against a stay.
type SpaBooking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID    uint  `gorm:"index;column:user_id" json:"userId"`
	BookingID *uint `gorm:"index;column:booking_id" json:"bookingId,omitempty"`

	ServiceName string     `gorm:"size:100" json:"serviceName"`
	Price       float64    `gorm:"column:price" json:"price"`
	ScheduledAt *time.Time `gorm:"column:scheduled_at" json:"scheduledAt,omitempty"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Booking Booking `gorm:"foreignKey:BookingID;references:ID" json:"-"`
}
