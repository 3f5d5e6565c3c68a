package services

import (
	"context"
	"errors"
	"fmt"

	"studio-backend/models"

	"gorm.io/gorm"
)

// SettingsService manages the single studio profile row.
type SettingsService struct {
	DB *gorm.DB
}

func NewSettingsService(db *gorm.DB) *SettingsService {
	return &SettingsService{DB: db}
}

// Get returns the profile, or an empty one when none was saved yet.
func (s *SettingsService) Get(ctx context.Context) (*models.StudioSetting, error) {
	var setting models.StudioSetting
	err := s.DB.WithContext(ctx).Order("id asc").First(&setting).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &models.StudioSetting{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get studio settings: %w", err)
	}
	return &setting, nil
}

// Save replaces the profile, creating it on first use.
func (s *SettingsService) Save(ctx context.Context, in models.StudioSetting) (*models.StudioSetting, error) {
	var out models.StudioSetting
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Order("id asc").First(&out).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			out = in
			out.ID = 0
			return tx.Create(&out).Error
		}
		if err != nil {
			return err
		}

		out.Name = in.Name
		out.Address = in.Address
		out.Phone = in.Phone
		out.Email = in.Email
		out.Website = in.Website
		out.Logo = in.Logo
		return tx.Save(&out).Error
	})
	if err != nil {
		return nil, fmt.Errorf("save studio settings: %w", err)
	}
	return &out, nil
}
