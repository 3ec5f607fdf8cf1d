package models

import (
	"time"

	"gorm.io/gorm"
)

// RoomCategory is the class a booking is made against before a concrete
// room is assigned: pricing and capacity live here.
type RoomCategory struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string  `gorm:"uniqueIndex;size:100" json:"name"`
	Description string  `gorm:"type:text" json:"description"`
	Price       float64 `gorm:"column:price" json:"price"`
	MaxAdults   int     `gorm:"column:max_adults;default:2" json:"maxAdults"`
	MaxChildren int     `gorm:"column:max_children;default:1" json:"maxChildren"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
