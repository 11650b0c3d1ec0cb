package dto

// CreateContactDTO используется для передачи данных формы обратной связи
type CreateContactDTO struct {
	Name    string `json:"name" binding:"required,min=1,max=120"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required,min=1,max=3000"`
}
