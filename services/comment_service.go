package services

import (
	"fmt"

	"github.com/IsMarshev/we-site/dto"
	"github.com/IsMarshev/we-site/models"

	"gorm.io/gorm"
)

// CommentService — сервис комментариев к местам
type CommentService struct {
	DB *gorm.DB
}

// ListByPlace возвращает комментарии места, новые сверху
func (s *CommentService) ListByPlace(placeID uint) ([]models.Comment, error) {
	if err := s.placeExists(placeID); err != nil {
		return nil, err
	}
	var comments []models.Comment
	if err := s.DB.Where("place_id = ?", placeID).Order("id DESC").Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

// CreateComment добавляет комментарий к существующему месту.
// Авторизация не требуется, автор — свободный текст.
func (s *CommentService) CreateComment(placeID uint, input dto.CreateCommentDTO) (*models.Comment, error) {
	if err := s.placeExists(placeID); err != nil {
		return nil, err
	}
	comment := models.Comment{
		PlaceID: placeID,
		Author:  input.Author,
		Content: input.Content,
	}
	if err := s.DB.Create(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

func (s *CommentService) placeExists(placeID uint) error {
	var count int64
	if err := s.DB.Model(&models.Place{}).Where("id = ?", placeID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return fmt.Errorf("%w: place not found", ErrNotFound)
	}
	return nil
}
