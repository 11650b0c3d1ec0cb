package models

import "time"

// GalleryImage представляет изображение из галереи сайта
type GalleryImage struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Title     *string   `json:"title" gorm:"size:200"`
	ImageURL  string    `json:"image_url" gorm:"size:600;not null"`
	CreatedBy *uint     `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}
