package database

import (
	"time"

	"github.com/IsMarshev/we-site/models"

	"gorm.io/gorm"
)

// SchemaMigration — запись о применённой миграции
type SchemaMigration struct {
	ID        string `gorm:"primaryKey;size:100"`
	AppliedAt time.Time
}

// Миграция с устойчивым идентификатором. Список упорядочен, каждая
// миграция применяется ровно один раз и обязана быть идемпотентной.
type migration struct {
	id  string
	run func(db *gorm.DB) error
}

var migrations = []migration{
	{
		id: "001_core_tables",
		run: func(db *gorm.DB) error {
			return db.AutoMigrate(
				&models.User{},
				&models.Place{},
				&models.Comment{},
				&models.ContactMessage{},
			)
		},
	},
	{
		id: "002_gallery",
		run: func(db *gorm.DB) error {
			return db.AutoMigrate(&models.GalleryImage{})
		},
	},
	{
		id: "003_reactions",
		run: func(db *gorm.DB) error {
			return db.AutoMigrate(&models.PlaceReaction{}, &models.GalleryReaction{})
		},
	},
	{
		// Базы, созданные до появления ролей и анонимных реакций:
		// AutoMigrate добавляет недостающие колонки и уникальные индексы
		id: "004_roles_and_anonymous_reactions",
		run: func(db *gorm.DB) error {
			if err := db.AutoMigrate(&models.User{}); err != nil {
				return err
			}
			return db.AutoMigrate(&models.PlaceReaction{}, &models.GalleryReaction{})
		},
	},
}

// RunMigrations применяет недостающие миграции по порядку.
// Применённые идентификаторы хранятся в таблице schema_migrations.
func RunMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(&SchemaMigration{}); err != nil {
		return err
	}

	for _, m := range migrations {
		var count int64
		if err := db.Model(&SchemaMigration{}).Where("id = ?", m.id).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		if err := m.run(db); err != nil {
			return err
		}
		record := SchemaMigration{ID: m.id, AppliedAt: time.Now()}
		if err := db.Create(&record).Error; err != nil {
			return err
		}
	}
	return nil
}
