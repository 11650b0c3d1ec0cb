package services

import (
	"testing"

	"github.com/IsMarshev/we-site/database"
	"github.com/IsMarshev/we-site/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB поднимает чистую базу sqlite в памяти и прогоняет
// стартовые миграции
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	// У :memory: каждое соединение пула — отдельная база
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := database.RunMigrations(db); err != nil {
		t.Fatalf("migrations: %v", err)
	}
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username, role string) *models.User {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	user := models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: string(hashed),
		Role:     role,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user %s: %v", username, err)
	}
	return &user
}

func createTestPlace(t *testing.T, db *gorm.DB, name string, createdBy *uint) *models.Place {
	t.Helper()
	place := models.Place{
		Name:        name,
		Description: "test place",
		Latitude:    -33.9,
		Longitude:   18.4,
		CreatedBy:   createdBy,
	}
	if err := db.Create(&place).Error; err != nil {
		t.Fatalf("create place %s: %v", name, err)
	}
	return &place
}

func createTestImage(t *testing.T, db *gorm.DB, createdBy *uint) *models.GalleryImage {
	t.Helper()
	image := models.GalleryImage{
		ImageURL:  "/uploads/test.jpg",
		CreatedBy: createdBy,
	}
	if err := db.Create(&image).Error; err != nil {
		t.Fatalf("create gallery image: %v", err)
	}
	return &image
}
