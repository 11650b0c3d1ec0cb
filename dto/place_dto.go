package dto

// CreatePlaceDTO используется для передачи данных при создании места
type CreatePlaceDTO struct {
	Name        string  `json:"name" binding:"required,min=1,max=200"`
	Description string  `json:"description" binding:"required"`
	Latitude    float64 `json:"latitude" binding:"required,gte=-90,lte=90"`
	Longitude   float64 `json:"longitude" binding:"required,gte=-180,lte=180"`
	ImageURL    *string `json:"image_url"`
}

// UpdatePlaceDTO используется для частичного обновления места.
// Указатели отличают отсутствующее поле от переданного нулевого значения:
// nil-поля не трогаются.
type UpdatePlaceDTO struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	ImageURL    *string  `json:"image_url"`
}
