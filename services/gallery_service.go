package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"studio-backend/models"
	"studio-backend/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GalleryService struct {
	DB *gorm.DB
}

func NewGalleryService(db *gorm.DB) *GalleryService {
	return &GalleryService{DB: db}
}

// Create makes a gallery. An empty access code is replaced by a random one.
func (s *GalleryService) Create(ctx context.Context, accessCode, title string) (*models.Gallery, error) {
	accessCode = strings.TrimSpace(accessCode)
	if accessCode == "" {
		accessCode = strings.ReplaceAll(uuid.NewString(), "-", "")
	}

	gallery := &models.Gallery{AccessCode: accessCode, Title: strings.TrimSpace(title)}
	if err := s.DB.WithContext(ctx).Create(gallery).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, utils.NewConflictError("access code already in use")
		}
		return nil, fmt.Errorf("create gallery: %w", err)
	}
	return gallery, nil
}

func (s *GalleryService) List(ctx context.Context) ([]models.Gallery, error) {
	galleries := []models.Gallery{}
	if err := s.DB.WithContext(ctx).Order("created_at desc").Order("id desc").Find(&galleries).Error; err != nil {
		return nil, fmt.Errorf("list galleries: %w", err)
	}
	return galleries, nil
}

func (s *GalleryService) GetByID(ctx context.Context, id uint) (*models.Gallery, error) {
	var gallery models.Gallery
	err := s.DB.WithContext(ctx).First(&gallery, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get gallery %d: %w", id, err)
	}
	return &gallery, nil
}

// GetByAccessCode returns nil, nil for an unknown code.
func (s *GalleryService) GetByAccessCode(ctx context.Context, code string) (*models.Gallery, error) {
	var gallery models.Gallery
	err := s.DB.WithContext(ctx).Where("access_code = ?", code).First(&gallery).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get gallery by access code: %w", err)
	}
	return &gallery, nil
}

func (s *GalleryService) GetPhotos(ctx context.Context, galleryID uint) ([]models.Photo, error) {
	photos := []models.Photo{}
	if err := s.DB.WithContext(ctx).Where("gallery_id = ?", galleryID).Order("id asc").Find(&photos).Error; err != nil {
		return nil, fmt.Errorf("list photos of gallery %d: %w", galleryID, err)
	}
	return photos, nil
}

// AddPhoto returns nil, nil when the gallery does not exist.
func (s *GalleryService) AddPhoto(ctx context.Context, galleryID uint, url string) (*models.Photo, error) {
	gallery, err := s.GetByID(ctx, galleryID)
	if err != nil || gallery == nil {
		return nil, err
	}

	photo := &models.Photo{GalleryID: gallery.ID, URL: url}
	if err := s.DB.WithContext(ctx).Create(photo).Error; err != nil {
		return nil, fmt.Errorf("add photo to gallery %d: %w", galleryID, err)
	}
	return photo, nil
}

func (s *GalleryService) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := s.DB.WithContext(ctx).Model(&models.Gallery{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count galleries: %w", err)
	}
	return count, nil
}
