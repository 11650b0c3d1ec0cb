package models

import "time"

// Значения реакций: +1 — лайк, -1 — дизлайк
const (
	ReactionLike    = 1
	ReactionDislike = -1
)

// PlaceReaction представляет лайк или дизлайк места. Субъект реакции —
// либо пользователь (UserID), либо анонимный клиент (ClientID); заполнено
// всегда ровно одно из двух. Уникальные индексы на (place_id, user_id) и
// (place_id, client_id) гарантируют не больше одной реакции на субъект.
type PlaceReaction struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	PlaceID   uint      `json:"place_id" gorm:"not null;uniqueIndex:uq_place_reaction;uniqueIndex:uq_place_reaction_client"`
	UserID    *uint     `json:"user_id" gorm:"uniqueIndex:uq_place_reaction"`
	ClientID  *string   `json:"client_id" gorm:"size:120;uniqueIndex:uq_place_reaction_client"`
	Value     int       `json:"value" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
}

// GalleryReaction представляет реакцию на изображение галереи.
// Схема повторяет PlaceReaction, чтобы обе таблицы обслуживались
// одним движком реакций.
type GalleryReaction struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	ImageID   uint      `json:"image_id" gorm:"not null;uniqueIndex:uq_gallery_reaction;uniqueIndex:uq_gallery_reaction_client"`
	UserID    *uint     `json:"user_id" gorm:"uniqueIndex:uq_gallery_reaction"`
	ClientID  *string   `json:"client_id" gorm:"size:120;uniqueIndex:uq_gallery_reaction_client"`
	Value     int       `json:"value" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
}
