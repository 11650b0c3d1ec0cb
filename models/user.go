package models

import "time"

// Роли пользователей
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User представляет сущность пользователя
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Username  string    `json:"username" gorm:"size:100;uniqueIndex;not null"`
	Email     string    `json:"email" gorm:"size:200;uniqueIndex;not null"`
	Password  string    `json:"-" gorm:"size:255;not null"` // Храним только хэш
	Role      string    `json:"role" gorm:"size:20;not null;default:user"`
	CreatedAt time.Time `json:"created_at"`

	Places []Place `json:"-" gorm:"foreignKey:CreatedBy"`
}

// IsAdmin проверяет, является ли пользователь администратором
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
