// services/charge_service.go
package services

import (
	"errors"
	"fmt"

	"hotelhub-backend/models"

	"gorm.io/gorm"
)

// ChargeService records the ancillary charges (food orders, spa bookings)
// that accrue against a stay and feed the final-billing aggregation.
type ChargeService struct {
	DB *gorm.DB
}

func NewChargeService(db *gorm.DB) *ChargeService {
	return &ChargeService{DB: db}
}

// attachableBooking verifies a charge's booking reference: the booking must
// exist, belong to the charging user and still be in a live state.
func (s *ChargeService) attachableBooking(userID uint, bookingID *uint) error {
	if bookingID == nil {
		return nil
	}
	var booking models.Booking
	if err := s.DB.First(&booking, *bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("validation: booking not found")
		}
		return fmt.Errorf("db error checking booking: %w", err)
	}
	if booking.UserID != userID {
		return errors.New("validation: booking does not belong to the user")
	}
	if booking.Status.IsTerminal() {
		return errors.New("terminal_state")
	}
	return nil
}

func (s *ChargeService) CreateFoodOrder(order *models.FoodOrder) error {
	if order.Total < 0 {
		return errors.New("validation: order total cannot be negative")
	}
	if err := s.attachableBooking(order.UserID, order.BookingID); err != nil {
		return err
	}
	return s.DB.Create(order).Error
}

func (s *ChargeService) FoodOrdersByUser(userID uint) ([]models.FoodOrder, error) {
	var orders []models.FoodOrder
	err := s.DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&orders).Error
	return orders, err
}

func (s *ChargeService) CreateSpaBooking(spa *models.SpaBooking) error {
	if spa.Price < 0 {
		return errors.New("validation: spa price cannot be negative")
	}
	if err := s.attachableBooking(spa.UserID, spa.BookingID); err != nil {
		return err
	}
	return s.DB.Create(spa).Error
}

func (s *ChargeService) SpaBookingsByUser(userID uint) ([]models.SpaBooking, error) {
	var bookings []models.SpaBooking
	err := s.DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&bookings).Error
	return bookings, err
}
