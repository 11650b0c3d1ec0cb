package services

import (
	"errors"
	"fmt"

	"github.com/IsMarshev/we-site/dto"
	"github.com/IsMarshev/we-site/models"

	"gorm.io/gorm"
)

// PlaceService — сервис каталога мест
type PlaceService struct {
	DB *gorm.DB
}

// ListPlaces возвращает все места в стабильном порядке каталога
func (s *PlaceService) ListPlaces() ([]models.Place, error) {
	var places []models.Place
	if err := s.DB.Order("id ASC").Find(&places).Error; err != nil {
		return nil, err
	}
	return places, nil
}

// GetPlace возвращает место вместе с комментариями
func (s *PlaceService) GetPlace(placeID uint) (*models.Place, error) {
	var place models.Place
	err := s.DB.Preload("Comments", func(db *gorm.DB) *gorm.DB {
		return db.Order("comments.id ASC")
	}).First(&place, placeID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: place not found", ErrNotFound)
		}
		return nil, err
	}
	return &place, nil
}

// CreatePlace добавляет место от имени авторизованного пользователя
func (s *PlaceService) CreatePlace(user *models.User, input dto.CreatePlaceDTO) (*models.Place, error) {
	place := models.Place{
		Name:        input.Name,
		Description: input.Description,
		Latitude:    input.Latitude,
		Longitude:   input.Longitude,
		ImageURL:    input.ImageURL,
		CreatedBy:   &user.ID,
	}
	if err := s.DB.Create(&place).Error; err != nil {
		return nil, err
	}
	return &place, nil
}

// UpdatePlace частично обновляет место: применяются только поля,
// явно переданные в запросе. Редактировать может создатель или админ.
func (s *PlaceService) UpdatePlace(user *models.User, placeID uint, input dto.UpdatePlaceDTO) (*models.Place, error) {
	var place models.Place
	if err := s.DB.First(&place, placeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: place not found", ErrNotFound)
		}
		return nil, err
	}
	if !canModifyPlace(user, &place) {
		return nil, fmt.Errorf("%w: not allowed to edit this place", ErrForbidden)
	}

	updates := map[string]interface{}{}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.Latitude != nil {
		updates["latitude"] = *input.Latitude
	}
	if input.Longitude != nil {
		updates["longitude"] = *input.Longitude
	}
	if input.ImageURL != nil {
		updates["image_url"] = *input.ImageURL
	}
	if len(updates) > 0 {
		if err := s.DB.Model(&place).Updates(updates).Error; err != nil {
			return nil, err
		}
		// Перечитываем запись, чтобы вернуть актуальное состояние
		if err := s.DB.First(&place, placeID).Error; err != nil {
			return nil, err
		}
	}
	return &place, nil
}

// DeletePlace удаляет место вместе со всеми его комментариями
func (s *PlaceService) DeletePlace(user *models.User, placeID uint) error {
	var place models.Place
	if err := s.DB.First(&place, placeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: place not found", ErrNotFound)
		}
		return err
	}
	if !canModifyPlace(user, &place) {
		return fmt.Errorf("%w: not allowed to delete this place", ErrForbidden)
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("place_id = ?", place.ID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("place_id = ?", place.ID).Delete(&models.PlaceReaction{}).Error; err != nil {
			return err
		}
		return tx.Delete(&place).Error
	})
}

// canModifyPlace — правило «создатель или админ». Места без создателя
// (добавленные при инициализации) может менять только админ.
func canModifyPlace(user *models.User, place *models.Place) bool {
	if user.IsAdmin() {
		return true
	}
	return place.CreatedBy != nil && *place.CreatedBy == user.ID
}
