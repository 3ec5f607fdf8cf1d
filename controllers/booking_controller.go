// controllers/booking_controller.go
package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	mysql "github.com/go-sql-driver/mysql"

	"hotelhub-backend/models"
	"hotelhub-backend/services"
	"hotelhub-backend/utils"
)

// ---------------------------
// Payload / DTOs
// ---------------------------

// CreateBookingRequest is the POST /bookings body. The field name
// "noOfChildrens" is the established wire contract, kept as-is.
type CreateBookingRequest struct {
	CheckInDate  string `json:"checkInDate" binding:"required"`
	CheckOutDate string `json:"checkOutDate" binding:"required"`
	NoOfAdults   int    `json:"noOfAdults"`
	NoOfChildren int    `json:"noOfChildrens"`
	UserID       uint   `json:"userId" binding:"required"`
	CategoryID   uint   `json:"categoryId" binding:"required"`
}

type UpdateBookingRequest struct {
	CheckInDate  string `json:"checkInDate" binding:"required"`
	CheckOutDate string `json:"checkOutDate" binding:"required"`
	NoOfAdults   int    `json:"noOfAdults"`
	NoOfChildren int    `json:"noOfChildrens"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ---------------------------
// Controller
// ---------------------------

type BookingController struct {
	BookingSvc *services.BookingService
}

func NewBookingController(svc *services.BookingService) *BookingController {
	return &BookingController{BookingSvc: svc}
}

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidId", "invalid "+name+" parameter")
		return 0, false
	}
	return uint(id), true
}

// respondBookingError maps the service's sentinel errors onto the HTTP
// taxonomy: validation 400, not found 404, unavailable/transition/terminal
// conflicts 409, everything else 500.
func respondBookingError(c *gin.Context, err error) {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "validation"):
		utils.JSONErrorDetails(c, http.StatusBadRequest, "error.validation", "invalid booking request", err)
	case strings.Contains(msg, "booking_not_found"):
		utils.JSONError(c, http.StatusNotFound, "error.bookingNotFound", "booking not found")
	case strings.Contains(msg, "room_unavailable"):
		utils.JSONError(c, http.StatusConflict, "error.roomUnavailable", "no room of this category is available for the requested dates")
	case strings.Contains(msg, "invalid_transition"):
		utils.JSONErrorDetails(c, http.StatusConflict, "error.invalidTransition", "status transition not permitted", err)
	case strings.Contains(msg, "terminal_state"):
		utils.JSONError(c, http.StatusConflict, "error.terminalState", "booking is in a terminal state and cannot be modified")
	case isForeignKeyError(err):
		utils.JSONErrorDetails(c, http.StatusBadRequest, "error.foreignKey", "foreign key constraint", err)
	default:
		utils.JSONErrorDetails(c, http.StatusInternalServerError, "error.internal", "internal server error", err)
	}
}

// GET /bookings
func (ctrl *BookingController) GetBookings(c *gin.Context) {
	bookings, err := ctrl.BookingSvc.GetAllWithRelations()
	if err != nil {
		log.Printf("GetBookings error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "error.fetchBookings", "failed to fetch bookings")
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// GET /bookings/users/:userId
func (ctrl *BookingController) GetBookingsByUser(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}
	bookings, err := ctrl.BookingSvc.GetByUser(userID)
	if err != nil {
		log.Printf("GetBookingsByUser error (user=%d): %v", userID, err)
		utils.JSONError(c, http.StatusInternalServerError, "error.fetchBookings", "failed to fetch bookings")
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// GET /bookings/:id
func (ctrl *BookingController) GetBookingByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	booking, err := ctrl.BookingSvc.GetByID(id)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// POST /bookings
func (ctrl *BookingController) CreateBooking(c *gin.Context) {
	var payload CreateBookingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("CreateBooking bind error: %v", err)
		utils.JSONErrorDetails(c, http.StatusBadRequest, "error.invalidPayload", "invalid request body", err)
		return
	}

	booking, err := ctrl.BookingSvc.Create(services.CreateBookingInput{
		CheckInDate:  payload.CheckInDate,
		CheckOutDate: payload.CheckOutDate,
		NoOfAdults:   payload.NoOfAdults,
		NoOfChildren: payload.NoOfChildren,
		UserID:       payload.UserID,
		CategoryID:   payload.CategoryID,
	})
	if err != nil {
		log.Printf("CreateBooking error: %v", err)
		respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Booking created successfully", "data": booking})
}

// PUT /bookings/:id
func (ctrl *BookingController) UpdateBooking(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var payload UpdateBookingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONErrorDetails(c, http.StatusBadRequest, "error.invalidPayload", "invalid request body", err)
		return
	}

	booking, err := ctrl.BookingSvc.Update(id, services.UpdateInput{
		CheckInDate:  payload.CheckInDate,
		CheckOutDate: payload.CheckOutDate,
		NoOfAdults:   payload.NoOfAdults,
		NoOfChildren: payload.NoOfChildren,
	})
	if err != nil {
		log.Printf("UpdateBooking error (id=%d): %v", id, err)
		respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Booking updated successfully", "data": booking})
}

// PATCH /bookings/:id
func (ctrl *BookingController) UpdateBookingStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var payload UpdateStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONErrorDetails(c, http.StatusBadRequest, "error.invalidPayload", "status is required", err)
		return
	}

	status, err := models.ParseBookingStatus(strings.ToUpper(strings.TrimSpace(payload.Status)))
	if err != nil {
		utils.JSONErrorDetails(c, http.StatusBadRequest, "error.invalidStatus", "unknown booking status", err)
		return
	}

	booking, err := ctrl.BookingSvc.UpdateStatus(id, status)
	if err != nil {
		log.Printf("UpdateBookingStatus error (id=%d, target=%s): %v", id, status, err)
		respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Booking status updated", "data": booking})
}

// DELETE /bookings/:id
func (ctrl *BookingController) DeleteBooking(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.BookingSvc.Delete(id); err != nil {
		log.Printf("DeleteBooking error (id=%d): %v", id, err)
		respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Booking deleted"})
}

// isForeignKeyError detects a MySQL FK violation (errno 1452).
func isForeignKeyError(err error) bool {
	if err == nil {
		return false
	}
	var merr *mysql.MySQLError
	if errors.As(err, &merr) {
		return merr.Number == 1452
	}
	lower := strings.ToLower(err.Error())
	return strings.Contains(lower, "foreign key") || strings.Contains(lower, "1452")
}
