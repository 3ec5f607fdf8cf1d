// controllers/availability_controller.go
package controllers

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"hotelhub-backend/services"
	"hotelhub-backend/utils"
)

type AvailabilityController struct {
	AvailabilitySvc *services.AvailabilityService
}

func NewAvailabilityController(svc *services.AvailabilityService) *AvailabilityController {
	return &AvailabilityController{AvailabilitySvc: svc}
}

// GET /rooms/available?checkInDate=&checkOutDate=[&category=]
// Both dates are required and the range is validated before any query runs;
// a bad range never touches the database.
func (ctrl *AvailabilityController) GetAvailableRooms(c *gin.Context) {
	ci, co, err := services.ParseStayDates(c.Query("checkInDate"), c.Query("checkOutDate"))
	if err != nil {
		utils.JSONErrorDetails(c, http.StatusBadRequest, "error.validation", "invalid date range", err)
		return
	}

	category := strings.TrimSpace(c.Query("category"))

	rooms, err := ctrl.AvailabilitySvc.GetAvailableRooms(ci, co, category)
	if err != nil {
		log.Printf("GetAvailableRooms error (%s..%s): %v", c.Query("checkInDate"), c.Query("checkOutDate"), err)
		utils.JSONError(c, http.StatusInternalServerError, "error.fetchAvailability", "failed to query available rooms")
		return
	}

	c.JSON(http.StatusOK, rooms)
}
