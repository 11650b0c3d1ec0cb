package services

import (
	"errors"
	"fmt"

	"github.com/IsMarshev/we-site/dto"
	"github.com/IsMarshev/we-site/models"
	"github.com/IsMarshev/we-site/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService — сервис для аутентификации пользователей
type AuthService struct {
	DB *gorm.DB
}

// AuthenticateUser — проверяет данные пользователя и генерирует JWT токен.
// Сообщение об ошибке одно и то же для неизвестного имени и неверного
// пароля, чтобы не раскрывать существование аккаунта.
func (service *AuthService) AuthenticateUser(loginDTO dto.LoginDTO) (*dto.TokenDTO, error) {
	var user models.User

	if err := service.DB.Where("username = ?", loginDTO.Username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: incorrect username or password", ErrUnauthenticated)
		}
		return nil, err
	}

	// Проверяем пароль
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(loginDTO.Password)); err != nil {
		return nil, fmt.Errorf("%w: incorrect username or password", ErrUnauthenticated)
	}

	// Генерация JWT токена с помощью утилиты
	token, err := utils.GenerateJWT(user.Username)
	if err != nil {
		return nil, err
	}

	return &dto.TokenDTO{AccessToken: token, TokenType: "bearer", User: user}, nil
}

// GetUserByUsername возвращает пользователя по имени. Используется
// middleware для разрешения субъекта токена в запись пользователя.
func (service *AuthService) GetUserByUsername(username string) (*models.User, error) {
	var user models.User
	if err := service.DB.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: unknown user", ErrUnauthenticated)
		}
		return nil, err
	}
	return &user, nil
}
