package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"hotelhub-backend/models"
	"hotelhub-backend/services"
	"hotelhub-backend/utils"
)

type RoomController struct {
	RoomSvc     *services.RoomService
	CategorySvc *services.RoomCategoryService
}

func NewRoomController(roomSvc *services.RoomService, categorySvc *services.RoomCategoryService) *RoomController {
	return &RoomController{RoomSvc: roomSvc, CategorySvc: categorySvc}
}

// GET /rooms
func (ctrl *RoomController) GetRooms(c *gin.Context) {
	rooms, err := ctrl.RoomSvc.GetAll()
	if err != nil {
		log.Printf("GetRooms error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "error.fetchRooms", "failed to fetch rooms")
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// POST /rooms
func (ctrl *RoomController) CreateRoom(c *gin.Context) {
	var room models.Room
	if err := c.ShouldBindJSON(&room); err != nil {
		utils.JSONErrorDetails(c, http.StatusBadRequest, "error.invalidPayload", "invalid request payload", err)
		return
	}

	room.RoomNumber = strings.TrimSpace(room.RoomNumber)
	if room.RoomNumber == "" {
		utils.JSONError(c, http.StatusBadRequest, "error.validation", "room number is required")
		return
	}

	if room.RoomCategoryID != nil {
		if _, err := ctrl.CategorySvc.GetByID(*room.RoomCategoryID); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "error.validation", "invalid roomCategoryId provided")
			return
		}
	}

	if err := ctrl.RoomSvc.Create(&room); err != nil {
		if strings.Contains(err.Error(), "Duplicate entry") || strings.Contains(err.Error(), "UNIQUE constraint failed") {
			utils.JSONError(c, http.StatusConflict, "error.duplicateRoom",
				fmt.Sprintf("room number '%s' already exists", room.RoomNumber))
			return
		}
		log.Printf("CreateRoom DB error: %v", err)
		utils.JSONErrorDetails(c, http.StatusInternalServerError, "error.internal", "database error", err)
		return
	}

	c.JSON(http.StatusCreated, room)
}

// PUT/PATCH /rooms/:id
func (ctrl *RoomController) UpdateRoom(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var room models.Room
	if err := c.ShouldBindJSON(&room); err != nil {
		utils.JSONErrorDetails(c, http.StatusBadRequest, "error.invalidPayload", "invalid request payload", err)
		return
	}
	room.ID = id

	if err := ctrl.RoomSvc.Update(room); err != nil {
		log.Printf("UpdateRoom error (id=%d): %v", id, err)
		utils.JSONErrorDetails(c, http.StatusInternalServerError, "error.internal", "failed to update room", err)
		return
	}

	updated, err := ctrl.RoomSvc.GetByID(id)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "error.roomNotFound", "room not found")
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DELETE /rooms/:id
func (ctrl *RoomController) DeleteRoom(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if _, err := ctrl.RoomSvc.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONError(c, http.StatusNotFound, "error.roomNotFound", "room not found")
			return
		}
		utils.JSONErrorDetails(c, http.StatusInternalServerError, "error.internal", "failed to load room", err)
		return
	}

	if err := ctrl.RoomSvc.Delete(id); err != nil {
		log.Printf("DeleteRoom error (id=%d): %v", id, err)
		utils.JSONErrorDetails(c, http.StatusInternalServerError, "error.internal", "failed to delete room", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Room deleted"})
}
