// services/availability_service.go
package services

import (
	"fmt"
	"time"

	"hotelhub-backend/models"

	"gorm.io/gorm"
)

// AvailabilityService answers "which rooms are free for this range". Every
// call is a fresh snapshot; nothing is cached across requests.
type AvailabilityService struct {
	DB *gorm.DB
}

func NewAvailabilityService(db *gorm.DB) *AvailabilityService {
	return &AvailabilityService{DB: db}
}

// GetAvailableRooms returns the rooms with no live booking overlapping
// [checkIn, checkOut). The range must already be validated by the caller
// (ValidateStayRange); an invalid range returns no rows, not an error, so
// the guard belongs before the query. An optional category name narrows the
// result in the same query.
func (s *AvailabilityService) GetAvailableRooms(checkIn, checkOut time.Time, category string) ([]models.AvailableRoom, error) {
	if err := ValidateStayRange(checkIn, checkOut); err != nil {
		return nil, err
	}

	q := s.DB.
		Table("rooms").
		Select(`rooms.id AS room_id,
			rooms.room_number,
			room_categories.name AS room_category,
			room_categories.max_adults AS no_of_adults,
			room_categories.max_children AS no_of_children,
			room_categories.price`).
		Joins("JOIN room_categories ON room_categories.id = rooms.room_category_id AND room_categories.deleted_at IS NULL").
		Where("rooms.deleted_at IS NULL").
		Where(`NOT EXISTS (
			SELECT 1 FROM bookings b
			WHERE b.room_id = rooms.id
			  AND b.deleted_at IS NULL
			  AND b.status IN ?
			  AND b.check_in_date < ?
			  AND b.check_out_date > ?
		)`, []models.BookingStatus{models.StatusBooked, models.StatusCheckedIn}, checkOut, checkIn)

	if category != "" {
		q = q.Where("room_categories.name = ?", category)
	}

	var rooms []models.AvailableRoom
	if err := q.Order("rooms.room_number ASC").Scan(&rooms).Error; err != nil {
		return nil, fmt.Errorf("failed to query available rooms: %w", err)
	}
	if rooms == nil {
		rooms = []models.AvailableRoom{}
	}
	return rooms, nil
}
