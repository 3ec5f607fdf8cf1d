// services/billing_service.go
package services

import (
	"errors"
	"fmt"

	"hotelhub-backend/models"

	"gorm.io/gorm"
)

// BillingService reconciles the charges of a completed stay into one
// FinalBilling record per booking.
type BillingService struct {
	DB *gorm.DB
}

func NewBillingService(db *gorm.DB) *BillingService {
	return &BillingService{DB: db}
}

// Calculate pulls the booking amount plus the spa and food charges tied to
// the stay and upserts the one FinalBilling row for the booking. Recomputing
// overwrites the same record, so a repeated call is harmless.
func (s *BillingService) Calculate(userID, bookingID uint) (*models.FinalBilling, error) {
	var booking models.Booking
	if err := s.DB.Where("id = ? AND user_id = ?", bookingID, userID).First(&booking).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("booking_not_found")
		}
		return nil, fmt.Errorf("failed to load booking: %w", err)
	}

	if booking.Status != models.StatusCheckedOut {
		return nil, errors.New("not_checked_out")
	}

	spaAmount, err := s.sumSpaCharges(bookingID)
	if err != nil {
		return nil, err
	}
	foodAmount, err := s.sumFoodCharges(bookingID)
	if err != nil {
		return nil, err
	}

	billing := models.FinalBilling{
		BookingID:     bookingID,
		UserID:        userID,
		BookingAmount: booking.TotalAmount,
		SpaAmount:     spaAmount,
		FoodAmount:    foodAmount,
		TotalAmount:   ReconcileTotal(booking.TotalAmount, spaAmount, foodAmount),
	}

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		var existing models.FinalBilling
		err := tx.Where("booking_id = ?", bookingID).First(&existing).Error
		switch {
		case err == nil:
			billing.ID = existing.ID
			billing.CreatedAt = existing.CreatedAt
			return tx.Save(&billing).Error
		case errors.Is(err, gorm.ErrRecordNotFound):
			return tx.Create(&billing).Error
		default:
			return err
		}
	})
	if txErr != nil {
		return nil, fmt.Errorf("failed to store final billing: %w", txErr)
	}

	// A stored billing clears any reconciliation flag left by an earlier
	// failed aggregation.
	if booking.BillingPending {
		if err := s.DB.Model(&models.Booking{}).
			Where("id = ?", bookingID).
			Update("billing_pending", false).Error; err != nil {
			return nil, err
		}
	}

	return &billing, nil
}

// ReconcileTotal is the single place the three charge buckets are summed.
func ReconcileTotal(bookingAmount, spaAmount, foodAmount float64) float64 {
	return bookingAmount + spaAmount + foodAmount
}

func (s *BillingService) sumSpaCharges(bookingID uint) (float64, error) {
	var total float64
	if err := s.DB.Model(&models.SpaBooking{}).
		Where("booking_id = ?", bookingID).
		Select("COALESCE(SUM(price), 0)").
		Scan(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to sum spa charges: %w", err)
	}
	return total, nil
}

func (s *BillingService) sumFoodCharges(bookingID uint) (float64, error) {
	var total float64
	if err := s.DB.Model(&models.FoodOrder{}).
		Where("booking_id = ?", bookingID).
		Select("COALESCE(SUM(total), 0)").
		Scan(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to sum food charges: %w", err)
	}
	return total, nil
}

// GetAll returns every stored billing record, newest first.
func (s *BillingService) GetAll() ([]models.FinalBilling, error) {
	var list []models.FinalBilling
	if err := s.DB.Order("created_at DESC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve final billings: %w", err)
	}
	return list, nil
}
