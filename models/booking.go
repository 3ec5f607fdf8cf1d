package models

import (
	"time"

	"gorm.io/gorm"
)

type Booking struct {
	ID uint `gorm:"primaryKey" json:"bookingId"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	ReferenceCode string        `gorm:"column:reference_code;size:64;index" json:"referenceCode,omitempty"`
	Status        BookingStatus `gorm:"column:status;size:32;index" json:"status"`

	CheckInDate  *time.Time `gorm:"column:check_in_date" json:"checkInDate"`
	CheckOutDate *time.Time `gorm:"column:check_out_date" json:"checkOutDate"`

	NoOfAdults   int `gorm:"column:no_of_adults;default:1" json:"noOfAdults"`
	NoOfChildren int `gorm:"column:no_of_children;default:0" json:"noOfChildren"`

	// Derived fields, recomputed from dates and category price on every
	// create/update. Never written independently.
	NoOfDays    int     `gorm:"column:no_of_days" json:"noOfDays"`
	TotalAmount float64 `gorm:"column:total_amount" json:"totalAmount"`

	// Set when checkout succeeded but billing aggregation failed, so the
	// stay can be reconciled manually instead of losing the failure.
	BillingPending bool `gorm:"column:billing_pending;default:false" json:"billingPending"`

	CheckedInAt  *time.Time `gorm:"column:checked_in_at" json:"checkedInAt,omitempty"`
	CheckedOutAt *time.Time `gorm:"column:checked_out_at" json:"checkedOutAt,omitempty"`

	UserID uint  `gorm:"index;column:user_id" json:"userId"`
	RoomID *uint `gorm:"index;column:room_id" json:"roomId,omitempty"`

	User User `gorm:"foreignKey:UserID;references:ID" json:"user,omitempty"`
	Room Room `gorm:"foreignKey:RoomID;references:ID" json:"room,omitempty"`
}
