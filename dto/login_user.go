package dto

import "github.com/IsMarshev/we-site/models"

// LoginDTO — структура для данных авторизации
type LoginDTO struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// TokenDTO — ответ с выданным токеном и профилем пользователя
type TokenDTO struct {
	AccessToken string      `json:"access_token"`
	TokenType   string      `json:"token_type"` // Всегда "bearer"
	User        models.User `json:"user"`
}
