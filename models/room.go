package models

import (
	"gorm.io/gorm"
)

type Room struct {
	gorm.Model

	// Nullable so a room can exist before its category is assigned,
	// without gorm trying to insert FK 0.
	RoomCategoryID *uint  `json:"roomCategoryId,omitempty" gorm:"column:room_category_id;index"`
	RoomNumber     string `json:"roomNumber" gorm:"column:room_number;uniqueIndex;type:varchar(50)"`
	Floor          string `json:"floor" gorm:"type:varchar(10)"`
	Description    string `json:"description" gorm:"type:text"`

	RoomCategory RoomCategory `gorm:"foreignKey:RoomCategoryID" json:"roomCategory,omitempty"`
}

// AvailableRoom is the availability query result. Computed per query,
// never persisted or cached across requests.
type AvailableRoom struct {
	RoomID       uint    `json:"roomId"`
	RoomNumber   string  `json:"roomNumber"`
	RoomCategory string  `json:"roomCategory"`
	NoOfAdults   int     `json:"noOfAdults"`
	NoOfChildren int     `json:"noOfChildren"`
	Price        float64 `json:"price"`
}
