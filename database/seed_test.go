package database

import (
	"testing"

	"github.com/IsMarshev/we-site/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	return db
}

func TestMigrationsAreIdempotent(t *testing.T) {
	db := newTestDB(t)

	if err := RunMigrations(db); err != nil {
		t.Fatalf("first run: %v", err)
	}
	if err := RunMigrations(db); err != nil {
		t.Fatalf("second run: %v", err)
	}

	var applied int64
	if err := db.Model(&SchemaMigration{}).Count(&applied).Error; err != nil {
		t.Fatalf("count migrations: %v", err)
	}
	if applied != int64(len(migrations)) {
		t.Fatalf("applied = %d, want %d", applied, len(migrations))
	}
}

func TestSeedInitialData(t *testing.T) {
	t.Setenv("CT_ADMIN_PASSWORD", "")
	db := newTestDB(t)
	if err := RunMigrations(db); err != nil {
		t.Fatalf("migrations: %v", err)
	}

	if err := SeedInitialData(db); err != nil {
		t.Fatalf("seed: %v", err)
	}
	// Повторный запуск ничего не добавляет
	if err := SeedInitialData(db); err != nil {
		t.Fatalf("second seed: %v", err)
	}

	var admin models.User
	if err := db.Where("username = ?", "admin").First(&admin).Error; err != nil {
		t.Fatalf("admin missing: %v", err)
	}
	if admin.Role != models.RoleAdmin {
		t.Fatalf("admin role = %q", admin.Role)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte("pioner18")); err != nil {
		t.Fatalf("admin password hash mismatch: %v", err)
	}

	var admins int64
	if err := db.Model(&models.User{}).Where("username = ?", "admin").Count(&admins).Error; err != nil {
		t.Fatalf("count admins: %v", err)
	}
	if admins != 1 {
		t.Fatalf("admins = %d", admins)
	}

	var places int64
	if err := db.Model(&models.Place{}).Count(&places).Error; err != nil {
		t.Fatalf("count places: %v", err)
	}
	if places != 5 {
		t.Fatalf("places = %d, want 5 demo places", places)
	}

	// Демо-места никому не принадлежат
	var seeded models.Place
	if err := db.First(&seeded).Error; err != nil {
		t.Fatalf("first place: %v", err)
	}
	if seeded.CreatedBy != nil {
		t.Fatalf("seeded place created_by = %v, want NULL", seeded.CreatedBy)
	}
}
