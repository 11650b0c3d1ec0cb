package dto

// CreateCommentDTO используется для передачи данных при создании комментария
type CreateCommentDTO struct {
	Author  string `json:"author" binding:"required,min=1,max=120"`   // Имя автора, свободный текст
	Content string `json:"content" binding:"required,min=1,max=2000"` // Текст комментария
}
