// controllers/charge_controller.go
package controllers

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"

	"hotelhub-backend/models"
	"hotelhub-backend/services"
	"hotelhub-backend/utils"
)

// ChargeController exposes the ancillary charge intake: food orders from the
// counter and spa bookings. These accrue against a stay and are summed at
// checkout by the billing aggregation.
type ChargeController struct {
	ChargeSvc *services.ChargeService
}

func NewChargeController(svc *services.ChargeService) *ChargeController {
	return &ChargeController{ChargeSvc: svc}
}

type CreateFoodOrderRequest struct {
	UserID    uint           `json:"userId" binding:"required"`
	BookingID *uint          `json:"bookingId"`
	Items     datatypes.JSON `json:"items"`
	Total     float64        `json:"total"`
}

type CreateSpaBookingRequest struct {
	UserID      uint       `json:"userId" binding:"required"`
	BookingID   *uint      `json:"bookingId"`
	ServiceName string     `json:"serviceName" binding:"required"`
	Price       float64    `json:"price"`
	ScheduledAt *time.Time `json:"scheduledAt"`
}

func respondChargeError(c *gin.Context, err error) {
	switch {
	case strings.Contains(err.Error(), "validation"):
		utils.JSONErrorDetails(c, http.StatusBadRequest, "error.validation", "invalid charge request", err)
	case strings.Contains(err.Error(), "terminal_state"):
		utils.JSONError(c, http.StatusConflict, "error.terminalState", "cannot charge against a closed booking")
	default:
		utils.JSONErrorDetails(c, http.StatusInternalServerError, "error.internal", "internal server error", err)
	}
}

// POST /food-orders
func (ctrl *ChargeController) CreateFoodOrder(c *gin.Context) {
	var payload CreateFoodOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONErrorDetails(c, http.StatusBadRequest, "error.invalidPayload", "invalid request body", err)
		return
	}

	order := models.FoodOrder{
		UserID:    payload.UserID,
		BookingID: payload.BookingID,
		Items:     payload.Items,
		Total:     payload.Total,
	}
	if err := ctrl.ChargeSvc.CreateFoodOrder(&order); err != nil {
		log.Printf("CreateFoodOrder error: %v", err)
		respondChargeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

// GET /food-orders/users/:userId
func (ctrl *ChargeController) GetFoodOrdersByUser(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}
	orders, err := ctrl.ChargeSvc.FoodOrdersByUser(userID)
	if err != nil {
		log.Printf("GetFoodOrdersByUser error (user=%d): %v", userID, err)
		utils.JSONError(c, http.StatusInternalServerError, "error.fetchFoodOrders", "failed to fetch food orders")
		return
	}
	c.JSON(http.StatusOK, orders)
}

// POST /spa-bookings
func (ctrl *ChargeController) CreateSpaBooking(c *gin.Context) {
	var payload CreateSpaBookingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONErrorDetails(c, http.StatusBadRequest, "error.invalidPayload", "invalid request body", err)
		return
	}

	spa := models.SpaBooking{
		UserID:      payload.UserID,
		BookingID:   payload.BookingID,
		ServiceName: strings.TrimSpace(payload.ServiceName),
		Price:       payload.Price,
		ScheduledAt: payload.ScheduledAt,
	}
	if err := ctrl.ChargeSvc.CreateSpaBooking(&spa); err != nil {
		log.Printf("CreateSpaBooking error: %v", err)
		respondChargeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, spa)
}

// GET /spa-bookings/users/:userId
func (ctrl *ChargeController) GetSpaBookingsByUser(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}
	bookings, err := ctrl.ChargeSvc.SpaBookingsByUser(userID)
	if err != nil {
		log.Printf("GetSpaBookingsByUser error (user=%d): %v", userID, err)
		utils.JSONError(c, http.StatusInternalServerError, "error.fetchSpaBookings", "failed to fetch spa bookings")
		return
	}
	c.JSON(http.StatusOK, bookings)
}
