// controllers/billing_controller.go
package controllers

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"hotelhub-backend/services"
	"hotelhub-backend/utils"
)

type BillingController struct {
	BillingSvc *services.BillingService
}

func NewBillingController(svc *services.BillingService) *BillingController {
	return &BillingController{BillingSvc: svc}
}

// GET /final-billings
func (ctrl *BillingController) GetFinalBillings(c *gin.Context) {
	billings, err := ctrl.BillingSvc.GetAll()
	if err != nil {
		log.Printf("GetFinalBillings error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "error.fetchBillings", "failed to fetch final billings")
		return
	}
	c.JSON(http.StatusOK, billings)
}

// GET /final_billing/users/:userId/bookings/:bookingId
// Recomputes and returns the billing for one checked-out stay. The upsert is
// keyed by booking, so repeated calls overwrite rather than duplicate.
func (ctrl *BillingController) CalculateFinalBilling(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}
	bookingID, ok := parseIDParam(c, "bookingId")
	if !ok {
		return
	}

	billing, err := ctrl.BillingSvc.Calculate(userID, bookingID)
	if err != nil {
		log.Printf("CalculateFinalBilling error (user=%d, booking=%d): %v", userID, bookingID, err)
		switch {
		case strings.Contains(err.Error(), "booking_not_found"):
			utils.JSONError(c, http.StatusNotFound, "error.bookingNotFound", "booking not found for this user")
		case strings.Contains(err.Error(), "not_checked_out"):
			utils.JSONError(c, http.StatusConflict, "error.notCheckedOut", "final billing is only available after checkout")
		default:
			utils.JSONErrorDetails(c, http.StatusInternalServerError, "error.billingFailed", "failed to calculate final billing", err)
		}
		return
	}

	c.JSON(http.StatusOK, billing)
}
