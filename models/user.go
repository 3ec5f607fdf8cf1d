package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	RoleAdmin        = "ADMIN"
	RoleReceptionist = "RECEPTIONIST"
	RoleFoodStaff    = "FOOD_STAFF"
	RoleSpaStaff     = "SPA_STAFF"
	RoleGuest        = "GUEST"
)

type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	FullName string `gorm:"size:255" json:"fullName"`
	Email    string `gorm:"uniqueIndex;size:150" json:"email"`
	Password string `gorm:"size:255" json:"-"` // store hashed password, never return in JSON
	Role     string `gorm:"size:32;default:GUEST" json:"role"`
	Phone    string `gorm:"size:32" json:"phone,omitempty"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
