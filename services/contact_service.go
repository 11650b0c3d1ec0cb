package services

import (
	"github.com/IsMarshev/we-site/dto"
	"github.com/IsMarshev/we-site/models"

	"gorm.io/gorm"
)

// ContactService — сервис сообщений обратной связи
type ContactService struct {
	DB *gorm.DB
}

// CreateContact сохраняет сообщение из формы обратной связи
func (s *ContactService) CreateContact(input dto.CreateContactDTO) (*models.ContactMessage, error) {
	msg := models.ContactMessage{
		Name:    input.Name,
		Email:   input.Email,
		Message: input.Message,
	}
	if err := s.DB.Create(&msg).Error; err != nil {
		return nil, err
	}
	return &msg, nil
}

// ListContacts возвращает сообщения, новые сверху
func (s *ContactService) ListContacts() ([]models.ContactMessage, error) {
	var messages []models.ContactMessage
	if err := s.DB.Order("id DESC").Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}
