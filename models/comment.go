package models

import "time"

// Comment представляет комментарий к месту. Автор — свободный текст,
// не ссылка на пользователя.
type Comment struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	PlaceID   uint      `json:"place_id" gorm:"index;not null"`
	Author    string    `json:"author" gorm:"size:120;not null"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at"`
}
