package controllers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"hotelhub-backend/models"
	"hotelhub-backend/services"
	"hotelhub-backend/utils"
)

type RoomCategoryController struct {
	CategorySvc *services.RoomCategoryService
}

func NewRoomCategoryController(svc *services.RoomCategoryService) *RoomCategoryController {
	return &RoomCategoryController{CategorySvc: svc}
}

// GET /room-categories
func (ctrl *RoomCategoryController) GetRoomCategories(c *gin.Context) {
	categories, err := ctrl.CategorySvc.GetAll()
	if err != nil {
		log.Printf("GetRoomCategories error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "error.fetchCategories", "failed to fetch room categories")
		return
	}
	c.JSON(http.StatusOK, categories)
}

// POST /room-categories
func (ctrl *RoomCategoryController) CreateRoomCategory(c *gin.Context) {
	var category models.RoomCategory
	if err := c.ShouldBindJSON(&category); err != nil {
		utils.JSONErrorDetails(c, http.StatusBadRequest, "error.invalidPayload", "invalid request payload", err)
		return
	}

	category.Name = strings.TrimSpace(category.Name)
	if category.Name == "" {
		utils.JSONError(c, http.StatusBadRequest, "error.validation", "category name is required")
		return
	}
	if category.Price < 0 {
		utils.JSONError(c, http.StatusBadRequest, "error.validation", "price cannot be negative")
		return
	}

	if err := ctrl.CategorySvc.Create(&category); err != nil {
		if strings.Contains(err.Error(), "Duplicate entry") || strings.Contains(err.Error(), "UNIQUE constraint failed") {
			utils.JSONError(c, http.StatusConflict, "error.duplicateCategory", "category name already exists")
			return
		}
		log.Printf("CreateRoomCategory DB error: %v", err)
		utils.JSONErrorDetails(c, http.StatusInternalServerError, "error.internal", "database error", err)
		return
	}
	c.JSON(http.StatusCreated, category)
}

// PUT /room-categories/:id
func (ctrl *RoomCategoryController) UpdateRoomCategory(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var category models.RoomCategory
	if err := c.ShouldBindJSON(&category); err != nil {
		utils.JSONErrorDetails(c, http.StatusBadRequest, "error.invalidPayload", "invalid request payload", err)
		return
	}
	category.ID = id

	if err := ctrl.CategorySvc.Update(category); err != nil {
		log.Printf("UpdateRoomCategory error (id=%d): %v", id, err)
		utils.JSONErrorDetails(c, http.StatusInternalServerError, "error.internal", "failed to update category", err)
		return
	}

	updated, err := ctrl.CategorySvc.GetByID(id)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "error.categoryNotFound", "room category not found")
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DELETE /room-categories/:id
func (ctrl *RoomCategoryController) DeleteRoomCategory(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if _, err := ctrl.CategorySvc.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONError(c, http.StatusNotFound, "error.categoryNotFound", "room category not found")
			return
		}
		utils.JSONErrorDetails(c, http.StatusInternalServerError, "error.internal", "failed to load category", err)
		return
	}

	if err := ctrl.CategorySvc.Delete(id); err != nil {
		log.Printf("DeleteRoomCategory error (id=%d): %v", id, err)
		utils.JSONErrorDetails(c, http.StatusInternalServerError, "error.internal", "failed to delete category", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Room category deleted"})
}
