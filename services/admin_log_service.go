package services

import (
	"context"
	"encoding/json"
	"fmt"

	"studio-backend/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AdminLogService keeps the append-only audit trail of admin actions.
type AdminLogService struct {
	DB *gorm.DB
}

func NewAdminLogService(db *gorm.DB) *AdminLogService {
	return &AdminLogService{DB: db}
}

// Create appends an entry. details is stored as JSON; nil is stored as {}.
func (s *AdminLogService) Create(ctx context.Context, adminID uint, action string, details any) (*models.AdminLog, error) {
	entry := &models.AdminLog{AdminID: adminID, Action: action, Details: datatypes.JSON("{}")}
	if details != nil {
		raw, err := json.Marshal(details)
		if err != nil {
			return nil, fmt.Errorf("encode admin log details: %w", err)
		}
		entry.Details = datatypes.JSON(raw)
	}

	if err := s.DB.WithContext(ctx).Create(entry).Error; err != nil {
		return nil, fmt.Errorf("create admin log: %w", err)
	}
	return entry, nil
}

// List returns the newest entries first, filtered by admin when adminID is set.
func (s *AdminLogService) List(ctx context.Context, adminID *uint) ([]models.AdminLog, error) {
	logs := []models.AdminLog{}
	q := s.DB.WithContext(ctx)
	if adminID != nil {
		q = q.Where("admin_id = ?", *adminID)
	}
	if err := q.Order("created_at desc").Order("id desc").Find(&logs).Error; err != nil {
		return nil, fmt.Errorf("list admin logs: %w", err)
	}
	return logs, nil
}
