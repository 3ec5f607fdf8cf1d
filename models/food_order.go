package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// FoodOrder is a charge accrued against a stay from the food counter.
// Items are kept as a JSON draft the way the counter submitted them; only
// the total participates in billing.
type FoodOrder struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID    uint  `gorm:"index;column:user_id" json:"userId"`
	BookingID *uint `gorm:"index;column:booking_id" json:"bookingId,omitempty"`

	Items datatypes.JSON `gorm:"column:items" json:"items,omitempty"`
	Total float64        `gorm:"column:total" json:"total"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Booking Booking `gorm:"foreignKey:BookingID;references:ID" json:"-"`
}
