package services

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/IsMarshev/we-site/dto"
	"github.com/IsMarshev/we-site/models"
)

func TestAddImageByURL(t *testing.T) {
	db := newTestDB(t)
	service := &GalleryService{DB: db, UploadDir: t.TempDir()}
	admin := createTestUser(t, db, "root", models.RoleAdmin)

	image, err := service.AddImageByURL(admin, dto.CreateGalleryURLDTO{ImageURL: "https://example.com/a.jpg"})
	if err != nil {
		t.Fatalf("add by url: %v", err)
	}
	if image.CreatedBy == nil || *image.CreatedBy != admin.ID {
		t.Fatalf("created_by = %v", image.CreatedBy)
	}

	if _, err := service.AddImageByURL(admin, dto.CreateGalleryURLDTO{ImageURL: "   "}); !errors.Is(err, ErrValidation) {
		t.Fatalf("blank url must be rejected, got %v", err)
	}
}

func TestUploadAvoidsOverwrite(t *testing.T) {
	db := newTestDB(t)
	dir := t.TempDir()
	service := &GalleryService{DB: db, UploadDir: dir}
	admin := createTestUser(t, db, "root", models.RoleAdmin)

	upload := func(content string) *models.GalleryImage {
		t.Helper()
		image, err := service.UploadImage(admin, "photo.jpg", strings.NewReader(content), nil)
		if err != nil {
			t.Fatalf("upload: %v", err)
		}
		return image
	}

	first := upload("one")
	second := upload("two")
	third := upload("three")

	if first.ImageURL != "/uploads/photo.jpg" {
		t.Fatalf("first url = %q", first.ImageURL)
	}
	if second.ImageURL != "/uploads/photo_1.jpg" {
		t.Fatalf("second url = %q", second.ImageURL)
	}
	if third.ImageURL != "/uploads/photo_2.jpg" {
		t.Fatalf("third url = %q", third.ImageURL)
	}

	// Первый файл не перезаписан
	data, err := os.ReadFile(filepath.Join(dir, "photo.jpg"))
	if err != nil {
		t.Fatalf("read first file: %v", err)
	}
	if string(data) != "one" {
		t.Fatalf("first file content = %q", data)
	}
}

func TestUploadSanitizesFilename(t *testing.T) {
	db := newTestDB(t)
	dir := t.TempDir()
	service := &GalleryService{DB: db, UploadDir: dir}
	admin := createTestUser(t, db, "root", models.RoleAdmin)

	image, err := service.UploadImage(admin, "../../etc/passwd.jpg", strings.NewReader("data"), nil)
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if strings.Contains(image.ImageURL, "..") || strings.Contains(image.ImageURL[len("/uploads/"):], "/") {
		t.Fatalf("path escape in url %q", image.ImageURL)
	}
}

func TestListImagesNewestFirst(t *testing.T) {
	db := newTestDB(t)
	service := &GalleryService{DB: db, UploadDir: t.TempDir()}
	createTestImage(t, db, nil)
	newest := createTestImage(t, db, nil)

	images, err := service.ListImages()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(images) != 2 {
		t.Fatalf("len = %d", len(images))
	}
	if images[0].ID != newest.ID {
		t.Fatalf("expected newest first, got %+v", images)
	}
}
