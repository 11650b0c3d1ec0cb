package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/IsMarshev/we-site/dto"
	"github.com/IsMarshev/we-site/models"

	"gorm.io/gorm"
)

// Subject — субъект реакции: авторизованный пользователь либо анонимный
// клиент с собственным токеном. Заполнено всегда не больше одного поля.
type Subject struct {
	userID   *uint
	clientID *string
}

// UserSubject — субъект-пользователь
func UserSubject(id uint) Subject {
	return Subject{userID: &id}
}

// AnonymousSubject — анонимный субъект с клиентским токеном.
// Пустой токен даёт невалидный субъект.
func AnonymousSubject(clientID string) Subject {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return Subject{}
	}
	return Subject{clientID: &clientID}
}

// Valid сообщает, можно ли по субъекту идентифицировать голосующего
func (s Subject) Valid() bool {
	return s.userID != nil || s.clientID != nil
}

// ReactionService — движок реакций. Общая логика переключения работает
// поверх обеих таблиц реакций, различающихся только именем таблицы и
// колонкой цели.
type ReactionService struct {
	DB *gorm.DB
}

// Описание таблицы реакций для конкретного типа цели
type reactionTarget struct {
	table     string
	targetCol string
}

var (
	placeReactions   = reactionTarget{table: "place_reactions", targetCol: "place_id"}
	galleryReactions = reactionTarget{table: "gallery_reactions", targetCol: "image_id"}
)

// Строка таблицы реакций в нейтральном виде
type reactionRecord struct {
	ID       uint
	UserID   *uint
	ClientID *string
	Value    int
}

// GetPlaceReactions возвращает сводку реакций по месту
func (s *ReactionService) GetPlaceReactions(placeID uint, subject Subject) (*dto.ReactionCountsDTO, error) {
	return s.counts(placeReactions, placeID, subject)
}

// GetGalleryReactions возвращает сводку реакций по изображению галереи
func (s *ReactionService) GetGalleryReactions(imageID uint, subject Subject) (*dto.ReactionCountsDTO, error) {
	return s.counts(galleryReactions, imageID, subject)
}

// ReactPlace применяет реакцию к месту и возвращает обновлённую сводку
func (s *ReactionService) ReactPlace(placeID uint, subject Subject, value int) (*dto.ReactionCountsDTO, error) {
	var exists int64
	if err := s.DB.Model(&models.Place{}).Where("id = ?", placeID).Count(&exists).Error; err != nil {
		return nil, err
	}
	if exists == 0 {
		return nil, fmt.Errorf("%w: place not found", ErrNotFound)
	}
	return s.react(placeReactions, placeID, subject, value)
}

// ReactGallery применяет реакцию к изображению галереи
func (s *ReactionService) ReactGallery(imageID uint, subject Subject, value int) (*dto.ReactionCountsDTO, error) {
	var exists int64
	if err := s.DB.Model(&models.GalleryImage{}).Where("id = ?", imageID).Count(&exists).Error; err != nil {
		return nil, err
	}
	if exists == 0 {
		return nil, fmt.Errorf("%w: image not found", ErrNotFound)
	}
	return s.react(galleryReactions, imageID, subject, value)
}

// counts собирает количество лайков и дизлайков по цели и собственную
// реакцию субъекта, если тот определён
func (s *ReactionService) counts(t reactionTarget, targetID uint, subject Subject) (*dto.ReactionCountsDTO, error) {
	out := &dto.ReactionCountsDTO{}

	if err := s.DB.Table(t.table).
		Where(t.targetCol+" = ? AND value = ?", targetID, models.ReactionLike).
		Count(&out.Likes).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Table(t.table).
		Where(t.targetCol+" = ? AND value = ?", targetID, models.ReactionDislike).
		Count(&out.Dislikes).Error; err != nil {
		return nil, err
	}

	if subject.Valid() {
		rec, err := s.findReaction(t, targetID, subject)
		if err != nil {
			return nil, err
		}
		if rec != nil {
			value := rec.Value
			out.My = &value
		}
	}
	return out, nil
}

// react реализует протокол переключения:
//   - та же реакция уже стоит — снимаем её;
//   - стоит противоположная — меняем значение на месте;
//   - реакции нет — вставляем новую строку.
func (s *ReactionService) react(t reactionTarget, targetID uint, subject Subject, value int) (*dto.ReactionCountsDTO, error) {
	if value != models.ReactionLike && value != models.ReactionDislike {
		return nil, fmt.Errorf("%w: value must be -1 or 1", ErrValidation)
	}
	if !subject.Valid() {
		return nil, fmt.Errorf("%w: client_id is required for anonymous reactions", ErrValidation)
	}

	rec, err := s.findReaction(t, targetID, subject)
	if err != nil {
		return nil, err
	}

	switch {
	case rec != nil && rec.Value == value:
		// Повторная одинаковая реакция снимает голос
		err = s.DB.Table(t.table).Where("id = ?", rec.ID).Delete(&reactionRecord{}).Error
	case rec != nil:
		err = s.DB.Table(t.table).Where("id = ?", rec.ID).Update("value", value).Error
	default:
		err = s.insertReaction(t, targetID, subject, value)
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Параллельный дубль успел вставить строку первым: уникальный
			// индекс по (цель, субъект) это поймал, повторяем как обновление
			if rec, err = s.findReaction(t, targetID, subject); err == nil && rec != nil {
				err = s.DB.Table(t.table).Where("id = ?", rec.ID).Update("value", value).Error
			}
		}
	}
	if err != nil {
		return nil, err
	}

	return s.counts(t, targetID, subject)
}

// findReaction ищет строку реакции по (цель, субъект)
func (s *ReactionService) findReaction(t reactionTarget, targetID uint, subject Subject) (*reactionRecord, error) {
	query := s.DB.Table(t.table).Where(t.targetCol+" = ?", targetID)
	if subject.userID != nil {
		query = query.Where("user_id = ?", *subject.userID)
	} else {
		query = query.Where("client_id = ?", *subject.clientID)
	}

	var rec reactionRecord
	if err := query.Take(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

// insertReaction вставляет новую строку, заполняя ровно одну половину
// пары субъекта
func (s *ReactionService) insertReaction(t reactionTarget, targetID uint, subject Subject, value int) error {
	row := map[string]interface{}{
		t.targetCol:  targetID,
		"user_id":    subject.userID,
		"client_id":  subject.clientID,
		"value":      value,
		"created_at": time.Now(),
	}
	return s.DB.Table(t.table).Create(row).Error
}
