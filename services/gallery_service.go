package services

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/IsMarshev/we-site/dto"
	"github.com/IsMarshev/we-site/models"

	"gorm.io/gorm"
)

// GalleryService — сервис галереи изображений
type GalleryService struct {
	DB *gorm.DB
	// Каталог для загруженных файлов; раздаётся статикой под /uploads
	UploadDir string
}

// DefaultUploadDir возвращает каталог загрузок из CT_UPLOAD_DIR
func DefaultUploadDir() string {
	if dir := os.Getenv("CT_UPLOAD_DIR"); dir != "" {
		return dir
	}
	return "uploads"
}

// ListImages возвращает изображения галереи, новые сверху
func (s *GalleryService) ListImages() ([]models.GalleryImage, error) {
	var images []models.GalleryImage
	if err := s.DB.Order("id DESC").Find(&images).Error; err != nil {
		return nil, err
	}
	return images, nil
}

// AddImageByURL добавляет изображение по внешней ссылке
func (s *GalleryService) AddImageByURL(admin *models.User, input dto.CreateGalleryURLDTO) (*models.GalleryImage, error) {
	if strings.TrimSpace(input.ImageURL) == "" {
		return nil, fmt.Errorf("%w: image_url is required", ErrValidation)
	}
	image := models.GalleryImage{
		Title:     input.Title,
		ImageURL:  input.ImageURL,
		CreatedBy: &admin.ID,
	}
	if err := s.DB.Create(&image).Error; err != nil {
		return nil, err
	}
	return &image, nil
}

// UploadImage сохраняет присланный файл и регистрирует его в галерее.
// Существующий файл с тем же именем не перезаписывается: к имени
// добавляется числовой суффикс перед расширением.
func (s *GalleryService) UploadImage(admin *models.User, filename string, file io.Reader, title *string) (*models.GalleryImage, error) {
	if err := os.MkdirAll(s.UploadDir, 0o755); err != nil {
		return nil, err
	}

	finalPath, err := s.reserveFilename(filename)
	if err != nil {
		return nil, err
	}

	out, err := os.Create(finalPath)
	if err != nil {
		return nil, err
	}
	defer out.Close()
	if _, err := io.Copy(out, file); err != nil {
		return nil, err
	}

	image := models.GalleryImage{
		Title:     title,
		ImageURL:  "/uploads/" + filepath.Base(finalPath),
		CreatedBy: &admin.ID,
	}
	if err := s.DB.Create(&image).Error; err != nil {
		return nil, err
	}
	return &image, nil
}

// reserveFilename очищает имя файла от разделителей пути и подбирает
// свободное имя в каталоге загрузок
func (s *GalleryService) reserveFilename(filename string) (string, error) {
	if filename == "" {
		filename = "upload.jpg"
	}
	safe := strings.NewReplacer("/", "_", "\\", "_").Replace(filepath.Base(filename))

	ext := filepath.Ext(safe)
	base := strings.TrimSuffix(safe, ext)

	finalPath := filepath.Join(s.UploadDir, safe)
	for i := 1; ; i++ {
		_, err := os.Stat(finalPath)
		if os.IsNotExist(err) {
			return finalPath, nil
		}
		if err != nil {
			return "", err
		}
		finalPath = filepath.Join(s.UploadDir, fmt.Sprintf("%s_%d%s", base, i, ext))
	}
}
