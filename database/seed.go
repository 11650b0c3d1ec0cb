package database

import (
	"fmt"
	"os"

	"github.com/IsMarshev/we-site/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func strPtr(s string) *string { return &s }

// SeedInitialData выполняет первоначальное наполнение базы: учетная
// запись администратора и демонстрационные места. Запускается при каждом
// старте, повторные запуски ничего не меняют. Ошибки здесь не должны
// ронять процесс — вызывающая сторона их только логирует.
func SeedInitialData(db *gorm.DB) error {
	if err := seedAdmin(db); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	if err := seedPlaces(db); err != nil {
		return fmt.Errorf("seed places: %w", err)
	}
	return nil
}

// seedAdmin создаёт администратора "admin", если его ещё нет
func seedAdmin(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Where("username = ?", "admin").Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	password := os.Getenv("CT_ADMIN_PASSWORD")
	if password == "" {
		password = "pioner18"
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.User{
		Username: "admin",
		Email:    "admin@example.com",
		Password: string(hashed),
		Role:     models.RoleAdmin,
	}
	return db.Create(&admin).Error
}

// seedPlaces добавляет стартовый каталог, только если он пуст
func seedPlaces(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Place{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	places := []models.Place{
		{
			Name:        "Table Mountain",
			Description: "Iconic flat-topped mountain with sweeping views of Cape Town.",
			Latitude:    -33.9628,
			Longitude:   18.4098,
			ImageURL:    strPtr("https://images.unsplash.com/photo-1583266094121-6c6f8f5779c4?q=80&w=1200&auto=format&fit=crop"),
		},
		{
			Name:        "V&A Waterfront",
			Description: "Vibrant harbor with shops, restaurants, and beautiful waterfront views.",
			Latitude:    -33.9036,
			Longitude:   18.4204,
			ImageURL:    strPtr("https://images.unsplash.com/photo-1606581538094-6ab696648efa?q=80&w=1200&auto=format&fit=crop"),
		},
		{
			Name:        "Cape Point",
			Description: "Dramatic cliffs and lighthouse at the tip of the Cape Peninsula.",
			Latitude:    -34.3573,
			Longitude:   18.4977,
			ImageURL:    strPtr("https://images.unsplash.com/photo-1599743818179-1fb26a40cc1b?q=80&w=1200&auto=format&fit=crop"),
		},
		{
			Name:        "Camps Bay Beach",
			Description: "White sand beach backed by the Twelve Apostles mountain range.",
			Latitude:    -33.9510,
			Longitude:   18.3772,
			ImageURL:    strPtr("https://images.unsplash.com/photo-1601650080075-ecff6a221073?q=80&w=1200&auto=format&fit=crop"),
		},
		{
			Name:        "Bo-Kaap",
			Description: "Historic neighborhood known for its colorful houses and Cape Malay culture.",
			Latitude:    -33.9201,
			Longitude:   18.4141,
			ImageURL:    strPtr("https://images.unsplash.com/photo-1602467181047-3b60ae3c1055?q=80&w=1200&auto=format&fit=crop"),
		},
	}
	return db.Create(&places).Error
}
