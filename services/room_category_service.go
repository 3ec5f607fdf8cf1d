package services

import (
	"hotelhub-backend/models"

	"gorm.io/gorm"
)

type RoomCategoryService struct {
	DB *gorm.DB
}

func NewRoomCategoryService(db *gorm.DB) *RoomCategoryService {
	return &RoomCategoryService{DB: db}
}

func (s *RoomCategoryService) Create(category *models.RoomCategory) error {
	return s.DB.Create(category).Error
}

func (s *RoomCategoryService) GetAll() ([]models.RoomCategory, error) {
	var categories []models.RoomCategory
	err := s.DB.Find(&categories).Error
	return categories, err
}

func (s *RoomCategoryService) GetByID(id uint) (models.RoomCategory, error) {
	var category models.RoomCategory
	err := s.DB.First(&category, id).Error
	return category, err
}

func (s *RoomCategoryService) Update(category models.RoomCategory) error {
	return s.DB.Model(&models.RoomCategory{}).Where("id = ?", category.ID).Updates(category).Error
}

func (s *RoomCategoryService) Delete(id uint) error {
	return s.DB.Delete(&models.RoomCategory{}, id).Error
}
