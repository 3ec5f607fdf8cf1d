// services/booking_service.go
package services

import (
	"errors"
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	"hotelhub-backend/models"
	"hotelhub-backend/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BookingService wraps *gorm.DB and owns the booking lifecycle: creation
// against a category, derived-field computation, status transitions and the
// checkout side effect.
type BookingService struct {
	DB      *gorm.DB
	Billing *BillingService
}

func NewBookingService(db *gorm.DB, billing *BillingService) *BookingService {
	return &BookingService{DB: db, Billing: billing}
}

// CreateBookingInput mirrors the POST /bookings body. The backend resolves
// draft -> concrete room and price.
type CreateBookingInput struct {
	CheckInDate  string
	CheckOutDate string
	NoOfAdults   int
	NoOfChildren int
	UserID       uint
	CategoryID   uint
}

const dateLayout = "2006-01-02"

// ParseStayDates parses the wire dates and validates the range. Violations
// short-circuit before any query is issued.
func ParseStayDates(checkIn, checkOut string) (time.Time, time.Time, error) {
	if strings.TrimSpace(checkIn) == "" || strings.TrimSpace(checkOut) == "" {
		return time.Time{}, time.Time{}, errors.New("validation: check-in and check-out dates are required")
	}
	ci, err := time.Parse(dateLayout, strings.TrimSpace(checkIn))
	if err != nil {
		if t, err2 := time.Parse(time.RFC3339, strings.TrimSpace(checkIn)); err2 == nil {
			ci = t
		} else {
			return time.Time{}, time.Time{}, fmt.Errorf("validation: invalid check-in date: %v", err)
		}
	}
	co, err := time.Parse(dateLayout, strings.TrimSpace(checkOut))
	if err != nil {
		if t, err2 := time.Parse(time.RFC3339, strings.TrimSpace(checkOut)); err2 == nil {
			co = t
		} else {
			return time.Time{}, time.Time{}, fmt.Errorf("validation: invalid check-out date: %v", err)
		}
	}
	if err := ValidateStayRange(ci, co); err != nil {
		return time.Time{}, time.Time{}, err
	}
	return ci, co, nil
}

// ValidateStayRange requires check-out strictly after check-in.
func ValidateStayRange(checkIn, checkOut time.Time) error {
	if !checkOut.After(checkIn) {
		return errors.New("validation: check-out date must be after check-in date")
	}
	return nil
}

// StayOverlaps reports whether two [checkIn, checkOut) stay intervals
// collide. The checkout day is exclusive: a stay ending on a day does not
// collide with one starting that day. The SQL overlap predicates
// (check_in_date < ? AND check_out_date > ?) mirror this.
func StayOverlaps(aCheckIn, aCheckOut, bCheckIn, bCheckOut time.Time) bool {
	return aCheckIn.Before(bCheckOut) && aCheckOut.After(bCheckIn)
}

// NightsBetween is ceil((checkOut - checkIn) / 24h), at least 1 for a valid
// range. A partial last day still counts as a night.
func NightsBetween(checkIn, checkOut time.Time) int {
	if !checkOut.After(checkIn) {
		return 0
	}
	nights := int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))
	if nights < 1 {
		nights = 1
	}
	return nights
}

// Create resolves the draft to a concrete free room of the requested
// category, computes the derived fields and stores the booking as BOOKED.
func (s *BookingService) Create(in CreateBookingInput) (*models.Booking, error) {
	ci, co, err := ParseStayDates(in.CheckInDate, in.CheckOutDate)
	if err != nil {
		return nil, err
	}

	if in.NoOfAdults <= 0 {
		in.NoOfAdults = 1
	}
	if in.NoOfChildren < 0 {
		in.NoOfChildren = 0
	}

	var user models.User
	if err := s.DB.First(&user, in.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("validation: user not found")
		}
		return nil, fmt.Errorf("db error checking user: %w", err)
	}

	var category models.RoomCategory
	if err := s.DB.First(&category, in.CategoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("validation: room category not found")
		}
		return nil, fmt.Errorf("db error checking category: %w", err)
	}

	if in.NoOfAdults > category.MaxAdults || in.NoOfChildren > category.MaxChildren {
		return nil, fmt.Errorf("validation: occupancy exceeds %s capacity (%d adults, %d children)",
			category.Name, category.MaxAdults, category.MaxChildren)
	}

	nights := NightsBetween(ci, co)
	amount := float64(nights) * category.Price

	ref, err := utils.GenerateReferenceCode()
	if err != nil {
		return nil, fmt.Errorf("failed to generate reference code: %w", err)
	}

	var booking models.Booking

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		room, err := firstFreeRoom(tx, in.CategoryID, ci, co)
		if err != nil {
			return err
		}

		roomID := room.ID
		booking = models.Booking{
			ReferenceCode: ref,
			Status:        models.StatusBooked,
			CheckInDate:   &ci,
			CheckOutDate:  &co,
			NoOfAdults:    in.NoOfAdults,
			NoOfChildren:  in.NoOfChildren,
			NoOfDays:      nights,
			TotalAmount:   amount,
			UserID:        in.UserID,
			RoomID:        &roomID,
		}

		if err := tx.Create(&booking).Error; err != nil {
			return fmt.Errorf("failed to create booking: %w", err)
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	if err := s.DB.Preload("Room.RoomCategory").Preload("User").First(&booking, booking.ID).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

// firstFreeRoom picks a room of the category with no live booking whose
// interval overlaps [checkIn, checkOut). Run inside the create transaction
// with a lock so two concurrent creates cannot grab the same room.
func firstFreeRoom(tx *gorm.DB, categoryID uint, checkIn, checkOut time.Time) (*models.Room, error) {
	var room models.Room
	err := tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("room_category_id = ?", categoryID).
		Where(`NOT EXISTS (
			SELECT 1 FROM bookings b
			WHERE b.room_id = rooms.id
			  AND b.deleted_at IS NULL
			  AND b.status IN ?
			  AND b.check_in_date < ?
			  AND b.check_out_date > ?
		)`, []models.BookingStatus{models.StatusBooked, models.StatusCheckedIn}, checkOut, checkIn).
		Order("room_number ASC").
		First(&room).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("room_unavailable")
		}
		return nil, fmt.Errorf("db error resolving room: %w", err)
	}
	return &room, nil
}

// GetAllWithRelations returns every booking, newest first.
func (s *BookingService) GetAllWithRelations() ([]models.Booking, error) {
	var list []models.Booking
	if err := s.DB.
		Preload("User").
		Preload("Room").
		Preload("Room.RoomCategory").
		Order("created_at DESC").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings: %w", err)
	}
	return list, nil
}

// GetByUser returns the bookings owned by one guest, newest first.
func (s *BookingService) GetByUser(userID uint) ([]models.Booking, error) {
	var list []models.Booking
	if err := s.DB.
		Preload("Room").
		Preload("Room.RoomCategory").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve user bookings: %w", err)
	}
	return list, nil
}

func (s *BookingService) GetByID(bookingID uint) (*models.Booking, error) {
	var bk models.Booking
	if err := s.DB.Preload("Room.RoomCategory").Preload("User").First(&bk, bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("booking_not_found")
		}
		return nil, fmt.Errorf("failed to retrieve booking: %w", err)
	}
	return &bk, nil
}

// UpdateInput carries a full-record edit: dates and occupancy. Derived
// fields are always recomputed, never taken from the caller.
type UpdateInput struct {
	CheckInDate  string
	CheckOutDate string
	NoOfAdults   int
	NoOfChildren int
}

// Update edits a non-terminal booking's dates/occupancy and recomputes
// noOfDays and totalAmount from the room's category price.
func (s *BookingService) Update(bookingID uint, in UpdateInput) (*models.Booking, error) {
	ci, co, err := ParseStayDates(in.CheckInDate, in.CheckOutDate)
	if err != nil {
		return nil, err
	}

	var booking models.Booking
	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Preload("Room.RoomCategory").
			First(&booking, bookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.New("booking_not_found")
			}
			return err
		}

		if booking.Status.IsTerminal() {
			return errors.New("terminal_state")
		}

		category := booking.Room.RoomCategory
		if category.ID == 0 {
			return errors.New("booking has no resolved room category")
		}
		if in.NoOfAdults <= 0 {
			in.NoOfAdults = 1
		}
		if in.NoOfChildren < 0 {
			in.NoOfChildren = 0
		}
		if in.NoOfAdults > category.MaxAdults || in.NoOfChildren > category.MaxChildren {
			return fmt.Errorf("validation: occupancy exceeds %s capacity (%d adults, %d children)",
				category.Name, category.MaxAdults, category.MaxChildren)
		}

		// Moving the dates must not land the booking on an interval another
		// live booking already holds on the same room.
		if booking.RoomID != nil {
			var clashes int64
			if err := tx.Model(&models.Booking{}).
				Where("room_id = ? AND id <> ?", *booking.RoomID, booking.ID).
				Where("status IN ?", []models.BookingStatus{models.StatusBooked, models.StatusCheckedIn}).
				Where("check_in_date < ? AND check_out_date > ?", co, ci).
				Count(&clashes).Error; err != nil {
				return fmt.Errorf("db error checking room availability: %w", err)
			}
			if clashes > 0 {
				return errors.New("room_unavailable")
			}
		}

		nights := NightsBetween(ci, co)
		return tx.Model(&booking).Updates(map[string]interface{}{
			"check_in_date":  ci,
			"check_out_date": co,
			"no_of_adults":   in.NoOfAdults,
			"no_of_children": in.NoOfChildren,
			"no_of_days":     nights,
			"total_amount":   float64(nights) * category.Price,
		}).Error
	})
	if txErr != nil {
		return nil, txErr
	}

	if err := s.DB.Preload("Room.RoomCategory").Preload("User").First(&booking, bookingID).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

// UpdateStatus moves a booking along the lifecycle. The transition table is
// checked before any write; an illegal edge never reaches the database.
// Moving to CHECKED_OUT triggers the final-billing aggregation after the
// status write commits; an aggregation failure does not roll the transition
// back, it flags the booking for manual reconciliation instead.
func (s *BookingService) UpdateStatus(bookingID uint, target models.BookingStatus) (*models.Booking, error) {
	if !target.IsValid() {
		return nil, fmt.Errorf("validation: invalid booking status: %s", target)
	}

	var booking models.Booking
	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&booking, bookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.New("booking_not_found")
			}
			return err
		}

		if !booking.Status.CanTransitionTo(target) {
			return fmt.Errorf("invalid_transition: %s -> %s", booking.Status, target)
		}

		now := time.Now().UTC()
		updates := map[string]interface{}{"status": target}
		switch target {
		case models.StatusCheckedIn:
			updates["checked_in_at"] = now
		case models.StatusCheckedOut:
			updates["checked_out_at"] = now
		}
		return tx.Model(&booking).Updates(updates).Error
	})
	if txErr != nil {
		return nil, txErr
	}

	booking.Status = target

	if target == models.StatusCheckedOut {
		if _, err := s.Billing.Calculate(booking.UserID, booking.ID); err != nil {
			// Checkout stands; record the gap for manual reconciliation.
			log.Printf("billing aggregation failed for booking %d: %v", booking.ID, err)
			if uErr := s.DB.Model(&models.Booking{}).
				Where("id = ?", booking.ID).
				Update("billing_pending", true).Error; uErr != nil {
				log.Printf("failed to flag booking %d for billing reconciliation: %v", booking.ID, uErr)
			}
			booking.BillingPending = true
		}
	}

	if err := s.DB.Preload("Room.RoomCategory").Preload("User").First(&booking, bookingID).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

// Delete removes a booking unless it reached a terminal state. Terminal
// bookings are immutable history; the rejection is surfaced so a client
// whose view raced a concurrent checkout still gets a clean conflict.
func (s *BookingService) Delete(bookingID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&booking, bookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.New("booking_not_found")
			}
			return err
		}

		if booking.Status.IsTerminal() {
			return errors.New("terminal_state")
		}

		if err := tx.Delete(&booking).Error; err != nil {
			return fmt.Errorf("failed to delete booking: %w", err)
		}
		return nil
	})
}
