package services

import (
	"errors"
	"fmt"

	"github.com/IsMarshev/we-site/dto"
	"github.com/IsMarshev/we-site/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// RegistService — сервис для регистрации пользователей
type RegistService struct {
	DB *gorm.DB
}

// RegisterUser регистрирует нового пользователя с ролью user
func (service *RegistService) RegisterUser(userDTO dto.RegisterUserDTO) (*models.User, error) {
	// Проверяем, существует ли пользователь с таким же username или email
	var count int64
	if err := service.DB.Model(&models.User{}).
		Where("username = ? OR email = ?", userDTO.Username, userDTO.Email).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, fmt.Errorf("%w: username or email already registered", ErrConflict)
	}

	// Хэшируем пароль перед сохранением
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(userDTO.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	// Создаем нового пользователя с хэшированным паролем
	newUser := models.User{
		Username: userDTO.Username,
		Email:    userDTO.Email,
		Password: string(hashedPassword),
		Role:     models.RoleUser,
	}

	if err := service.DB.Create(&newUser).Error; err != nil {
		// Гонка двух одинаковых регистраций упирается в уникальный индекс
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: username or email already registered", ErrConflict)
		}
		return nil, err
	}
	return &newUser, nil
}
