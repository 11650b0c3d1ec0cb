package dto

// RegisterUserDTO — это структура для данных, которые нужно передать при регистрации
type RegisterUserDTO struct {
	Username string `json:"username" binding:"required,min=3,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6,max=200"`
}
