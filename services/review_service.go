package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"studio-backend/models"
	"studio-backend/utils"

	"gorm.io/gorm"
)

type ReviewService struct {
	DB *gorm.DB
}

func NewReviewService(db *gorm.DB) *ReviewService {
	return &ReviewService{DB: db}
}

// ReviewUpdate is a partial update; nil fields are left untouched.
type ReviewUpdate struct {
	Status          *string
	ModifiedContent *string
}

// Create stores a public submission. The status is always pending regardless
// of what the caller set.
func (s *ReviewService) Create(ctx context.Context, author, content string) (*models.Review, error) {
	review := &models.Review{
		Author:  strings.TrimSpace(author),
		Content: strings.TrimSpace(content),
		Status:  models.ReviewStatusPending,
	}
	if err := s.DB.WithContext(ctx).Create(review).Error; err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}
	return review, nil
}

func (s *ReviewService) ListApproved(ctx context.Context) ([]models.Review, error) {
	return s.listByStatus(ctx, models.ReviewStatusApproved)
}

func (s *ReviewService) ListPending(ctx context.Context) ([]models.Review, error) {
	return s.listByStatus(ctx, models.ReviewStatusPending)
}

func (s *ReviewService) listByStatus(ctx context.Context, status string) ([]models.Review, error) {
	reviews := []models.Review{}
	err := s.DB.WithContext(ctx).
		Where("status = ?", status).
		Order("created_at desc").Order("id desc").
		Find(&reviews).Error
	if err != nil {
		return nil, fmt.Errorf("list %s reviews: %w", status, err)
	}
	return reviews, nil
}

// GetByID returns nil, nil when no review has the id.
func (s *ReviewService) GetByID(ctx context.Context, id uint) (*models.Review, error) {
	var review models.Review
	err := s.DB.WithContext(ctx).First(&review, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get review %d: %w", id, err)
	}
	return &review, nil
}

// Update applies a moderation decision. Returns nil, nil when the review does
// not exist. Status may only be set to approved or rejected.
func (s *ReviewService) Update(ctx context.Context, id uint, in ReviewUpdate) (*models.Review, error) {
	fields := map[string]any{"updated_at": time.Now().UTC()}
	if in.Status != nil {
		if !models.ValidReviewStatus(*in.Status) || *in.Status == models.ReviewStatusPending {
			return nil, utils.NewValidationError("status must be approved or rejected")
		}
		fields["status"] = *in.Status
	}
	if in.ModifiedContent != nil {
		fields["modified_content"] = *in.ModifiedContent
	}

	existing, err := s.GetByID(ctx, id)
	if err != nil || existing == nil {
		return nil, err
	}

	if err := s.DB.WithContext(ctx).Model(&models.Review{}).Where("id = ?", id).Updates(fields).Error; err != nil {
		return nil, fmt.Errorf("update review %d: %w", id, err)
	}
	return s.GetByID(ctx, id)
}

func (s *ReviewService) CountPending(ctx context.Context) (int64, error) {
	var count int64
	err := s.DB.WithContext(ctx).Model(&models.Review{}).Where("status = ?", models.ReviewStatusPending).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("count pending reviews: %w", err)
	}
	return count, nil
}
