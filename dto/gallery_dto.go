package dto

// CreateGalleryURLDTO используется для добавления изображения по внешней ссылке
type CreateGalleryURLDTO struct {
	Title    *string `json:"title"`
	ImageURL string  `json:"image_url" binding:"required"`
}
