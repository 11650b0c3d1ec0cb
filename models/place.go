package models

// Place представляет место из каталога достопримечательностей
type Place struct {
	ID          uint    `json:"id" gorm:"primaryKey"`
	Name        string  `json:"name" gorm:"size:200;index;not null"`
	Description string  `json:"description" gorm:"type:text;not null"`
	Latitude    float64 `json:"latitude" gorm:"not null"`
	Longitude   float64 `json:"longitude" gorm:"not null"`
	ImageURL    *string `json:"image_url" gorm:"size:500"`
	CreatedBy   *uint   `json:"created_by"` // NULL — место добавлено при инициализации

	Comments []Comment `json:"comments,omitempty" gorm:"foreignKey:PlaceID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}
