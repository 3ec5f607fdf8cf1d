package models

import (
	"time"
)

// FinalBilling is the reconciled total of room, food and spa charges for a
// completed stay. One record per booking, created at checkout; recomputation
// overwrites the same row.
type FinalBilling struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BookingID uint `gorm:"uniqueIndex;column:booking_id" json:"bookingId"`
	UserID    uint `gorm:"index;column:user_id" json:"userId"`

	BookingAmount float64 `gorm:"column:booking_amount" json:"bookingAmount"`
	SpaAmount     float64 `gorm:"column:spa_amount" json:"spaAmount"`
	FoodAmount    float64 `gorm:"column:food_amount" json:"foodAmount"`
	TotalAmount   float64 `gorm:"column:total_amount" json:"totalAmount"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Booking Booking `gorm:"foreignKey:BookingID;references:ID" json:"-"`
}
