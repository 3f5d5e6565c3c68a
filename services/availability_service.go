package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"studio-backend/models"
	"studio-backend/utils"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type AvailabilityService struct {
	DB *gorm.DB
}

func NewAvailabilityService(db *gorm.DB) *AvailabilityService {
	return &AvailabilityService{DB: db}
}

// DateOnly truncates t to midnight UTC of its calendar day.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ListDates returns the dates in [start, end] ordered by date, each carrying
// its time slots ordered by start time. Slots are fetched per date.
func (s *AvailabilityService) ListDates(ctx context.Context, start, end time.Time) ([]models.AvailabilityDate, error) {
	dates := []models.AvailabilityDate{}
	err := s.DB.WithContext(ctx).
		Where("date >= ? AND date <= ?", datatypes.Date(DateOnly(start)), datatypes.Date(DateOnly(end))).
		Order("date asc").
		Find(&dates).Error
	if err != nil {
		return nil, fmt.Errorf("list availability dates: %w", err)
	}

	for i := range dates {
		slots, err := s.listTimeSlots(ctx, dates[i].ID)
		if err != nil {
			return nil, err
		}
		dates[i].TimeSlots = slots
	}
	return dates, nil
}

func (s *AvailabilityService) listTimeSlots(ctx context.Context, dateID uint) ([]models.AvailabilityTimeSlot, error) {
	slots := []models.AvailabilityTimeSlot{}
	err := s.DB.WithContext(ctx).
		Where("date_id = ?", dateID).
		Order("start_time asc").Order("id asc").
		Find(&slots).Error
	if err != nil {
		return nil, fmt.Errorf("list time slots of date %d: %w", dateID, err)
	}
	return slots, nil
}

func (s *AvailabilityService) GetDate(ctx context.Context, id uint) (*models.AvailabilityDate, error) {
	var date models.AvailabilityDate
	err := s.DB.WithContext(ctx).First(&date, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get availability date %d: %w", id, err)
	}
	return &date, nil
}

// CreateDate adds a calendar day, always available. A second row for the same
// day is a conflict.
func (s *AvailabilityService) CreateDate(ctx context.Context, day time.Time) (*models.AvailabilityDate, error) {
	date := &models.AvailabilityDate{
		Date:        datatypes.Date(DateOnly(day)),
		IsAvailable: true,
		TimeSlots:   []models.AvailabilityTimeSlot{},
	}
	if err := s.DB.WithContext(ctx).Create(date).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, utils.NewConflictError("date already exists")
		}
		return nil, fmt.Errorf("create availability date: %w", err)
	}
	return date, nil
}

// UpdateDate sets isAvailable and returns the date with its slots. Returns
// nil, nil when no date has the id.
func (s *AvailabilityService) UpdateDate(ctx context.Context, id uint, isAvailable bool) (*models.AvailabilityDate, error) {
	existing, err := s.GetDate(ctx, id)
	if err != nil || existing == nil {
		return nil, err
	}

	err = s.DB.WithContext(ctx).Model(&models.AvailabilityDate{}).Where("id = ?", id).
		Updates(map[string]any{"is_available": isAvailable, "updated_at": time.Now().UTC()}).Error
	if err != nil {
		return nil, fmt.Errorf("update availability date %d: %w", id, err)
	}

	date, err := s.GetDate(ctx, id)
	if err != nil || date == nil {
		return date, err
	}
	if date.TimeSlots, err = s.listTimeSlots(ctx, id); err != nil {
		return nil, err
	}
	return date, nil
}

func (s *AvailabilityService) GetTimeSlot(ctx context.Context, id uint) (*models.AvailabilityTimeSlot, error) {
	var slot models.AvailabilityTimeSlot
	err := s.DB.WithContext(ctx).First(&slot, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get time slot %d: %w", id, err)
	}
	return &slot, nil
}

// CreateTimeSlot adds a slot under dateID. Returns nil, nil when the date does
// not exist.
func (s *AvailabilityService) CreateTimeSlot(ctx context.Context, dateID uint, startTime, endTime string, isAvailable bool) (*models.AvailabilityTimeSlot, error) {
	if endTime <= startTime {
		return nil, utils.NewValidationError("endTime must be after startTime")
	}

	date, err := s.GetDate(ctx, dateID)
	if err != nil || date == nil {
		return nil, err
	}

	slot := &models.AvailabilityTimeSlot{
		DateID:      date.ID,
		StartTime:   startTime,
		EndTime:     endTime,
		IsAvailable: isAvailable,
	}
	if err := s.DB.WithContext(ctx).Create(slot).Error; err != nil {
		return nil, fmt.Errorf("create time slot: %w", err)
	}
	return slot, nil
}

// UpdateTimeSlot sets isAvailable. Returns nil, nil when no slot has the id.
func (s *AvailabilityService) UpdateTimeSlot(ctx context.Context, id uint, isAvailable bool) (*models.AvailabilityTimeSlot, error) {
	existing, err := s.GetTimeSlot(ctx, id)
	if err != nil || existing == nil {
		return nil, err
	}

	err = s.DB.WithContext(ctx).Model(&models.AvailabilityTimeSlot{}).Where("id = ?", id).
		Updates(map[string]any{"is_available": isAvailable, "updated_at": time.Now().UTC()}).Error
	if err != nil {
		return nil, fmt.Errorf("update time slot %d: %w", id, err)
	}
	return s.GetTimeSlot(ctx, id)
}
