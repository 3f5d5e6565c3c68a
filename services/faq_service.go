package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"studio-backend/models"

	"gorm.io/gorm"
)

type FaqService struct {
	DB *gorm.DB
}

func NewFaqService(db *gorm.DB) *FaqService {
	return &FaqService{DB: db}
}

type FaqCategoryUpdate struct {
	Name  *string
	Order *int
}

type FaqUpdate struct {
	CategoryID *uint
	Question   *string
	Answer     *string
	Order      *int
}

// ---------- categories ----------

func (s *FaqService) ListCategories(ctx context.Context) ([]models.FaqCategory, error) {
	categories := []models.FaqCategory{}
	if err := s.DB.WithContext(ctx).Order("sort_order asc").Order("id asc").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("list faq categories: %w", err)
	}
	return categories, nil
}

func (s *FaqService) GetCategory(ctx context.Context, id uint) (*models.FaqCategory, error) {
	var category models.FaqCategory
	err := s.DB.WithContext(ctx).First(&category, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get faq category %d: %w", id, err)
	}
	return &category, nil
}

func (s *FaqService) CreateCategory(ctx context.Context, name string, order int) (*models.FaqCategory, error) {
	category := &models.FaqCategory{Name: name, Order: order}
	if err := s.DB.WithContext(ctx).Create(category).Error; err != nil {
		return nil, fmt.Errorf("create faq category: %w", err)
	}
	return category, nil
}

// UpdateCategory returns nil, nil when the category does not exist.
func (s *FaqService) UpdateCategory(ctx context.Context, id uint, in FaqCategoryUpdate) (*models.FaqCategory, error) {
	existing, err := s.GetCategory(ctx, id)
	if err != nil || existing == nil {
		return nil, err
	}

	fields := map[string]any{"updated_at": time.Now().UTC()}
	if in.Name != nil {
		fields["name"] = *in.Name
	}
	if in.Order != nil {
		fields["sort_order"] = *in.Order
	}
	if err := s.DB.WithContext(ctx).Model(&models.FaqCategory{}).Where("id = ?", id).Updates(fields).Error; err != nil {
		return nil, fmt.Errorf("update faq category %d: %w", id, err)
	}
	return s.GetCategory(ctx, id)
}

// DeleteCategory hard-deletes the category. FAQs pointing at it keep existing
// with a null category.
func (s *FaqService) DeleteCategory(ctx context.Context, id uint) (bool, error) {
	var deleted bool
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Faq{}).Where("category_id = ?", id).Update("category_id", nil).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.FaqCategory{}, id)
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected > 0
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("delete faq category %d: %w", id, err)
	}
	return deleted, nil
}

// ---------- faqs ----------

// ListFaqs filters by category only when categoryID is non-nil, so a zero id
// is a real filter value.
func (s *FaqService) ListFaqs(ctx context.Context, categoryID *uint) ([]models.Faq, error) {
	faqs := []models.Faq{}
	q := s.DB.WithContext(ctx)
	if categoryID != nil {
		q = q.Where("category_id = ?", *categoryID)
	}
	if err := q.Order("sort_order asc").Order("id asc").Find(&faqs).Error; err != nil {
		return nil, fmt.Errorf("list faqs: %w", err)
	}
	return faqs, nil
}

func (s *FaqService) GetFaq(ctx context.Context, id uint) (*models.Faq, error) {
	var faq models.Faq
	err := s.DB.WithContext(ctx).First(&faq, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get faq %d: %w", id, err)
	}
	return &faq, nil
}

func (s *FaqService) CreateFaq(ctx context.Context, faq *models.Faq) (*models.Faq, error) {
	if err := s.DB.WithContext(ctx).Create(faq).Error; err != nil {
		return nil, fmt.Errorf("create faq: %w", err)
	}
	return faq, nil
}

// UpdateFaq returns nil, nil when the faq does not exist.
func (s *FaqService) UpdateFaq(ctx context.Context, id uint, in FaqUpdate) (*models.Faq, error) {
	existing, err := s.GetFaq(ctx, id)
	if err != nil || existing == nil {
		return nil, err
	}

	fields := map[string]any{"updated_at": time.Now().UTC()}
	if in.CategoryID != nil {
		fields["category_id"] = *in.CategoryID
	}
	if in.Question != nil {
		fields["question"] = *in.Question
	}
	if in.Answer != nil {
		fields["answer"] = *in.Answer
	}
	if in.Order != nil {
		fields["sort_order"] = *in.Order
	}
	if err := s.DB.WithContext(ctx).Model(&models.Faq{}).Where("id = ?", id).Updates(fields).Error; err != nil {
		return nil, fmt.Errorf("update faq %d: %w", id, err)
	}
	return s.GetFaq(ctx, id)
}

func (s *FaqService) DeleteFaq(ctx context.Context, id uint) (bool, error) {
	res := s.DB.WithContext(ctx).Delete(&models.Faq{}, id)
	if res.Error != nil {
		return false, fmt.Errorf("delete faq %d: %w", id, res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (s *FaqService) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := s.DB.WithContext(ctx).Model(&models.Faq{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count faqs: %w", err)
	}
	return count, nil
}
