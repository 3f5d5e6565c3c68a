package services

import (
	"context"
	"testing"

	"studio-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFaqService_OrderingAndFilter(t *testing.T) {
	svc := NewFaqService(newTestDB(t))
	ctx := context.Background()

	second, err := svc.CreateCategory(ctx, "Pricing", 2)
	require.NoError(t, err)
	first, err := svc.CreateCategory(ctx, "General", 1)
	require.NoError(t, err)

	categories, err := svc.ListCategories(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, first.ID, categories[0].ID)
	assert.Equal(t, second.ID, categories[1].ID)

	_, err = svc.CreateFaq(ctx, &models.Faq{CategoryID: &first.ID, Question: "q2", Answer: "a", Order: 5})
	require.NoError(t, err)
	_, err = svc.CreateFaq(ctx, &models.Faq{CategoryID: &first.ID, Question: "q1", Answer: "a", Order: 1})
	require.NoError(t, err)
	_, err = svc.CreateFaq(ctx, &models.Faq{CategoryID: &second.ID, Question: "q3", Answer: "a", Order: 0})
	require.NoError(t, err)

	all, err := svc.ListFaqs(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	filtered, err := svc.ListFaqs(ctx, &first.ID)
	require.NoError(t, err)
	require.Len(t, filtered, 2)
	assert.Equal(t, "q1", filtered[0].Question)
	assert.Equal(t, "q2", filtered[1].Question)

	// zero is a filter value, not "no filter"
	none, err := svc.ListFaqs(ctx, ptr(uint(0)))
	require.NoError(t, err)
	assert.Empty(t, none)

	count, err := svc.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 3, count)
}

func TestFaqService_UpdateAndDelete(t *testing.T) {
	svc := NewFaqService(newTestDB(t))
	ctx := context.Background()

	category, err := svc.CreateCategory(ctx, "General", 0)
	require.NoError(t, err)
	faq, err := svc.CreateFaq(ctx, &models.Faq{CategoryID: &category.ID, Question: "q", Answer: "a"})
	require.NoError(t, err)

	updated, err := svc.UpdateFaq(ctx, faq.ID, FaqUpdate{Answer: ptr("b")})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "q", updated.Question)
	assert.Equal(t, "b", updated.Answer)

	missing, err := svc.UpdateFaq(ctx, faq.ID+10, FaqUpdate{Answer: ptr("c")})
	require.NoError(t, err)
	assert.Nil(t, missing)

	renamed, err := svc.UpdateCategory(ctx, category.ID, FaqCategoryUpdate{Name: ptr("Basics"), Order: ptr(3)})
	require.NoError(t, err)
	require.NotNil(t, renamed)
	assert.Equal(t, "Basics", renamed.Name)
	assert.Equal(t, 3, renamed.Order)

	deleted, err := svc.DeleteCategory(ctx, category.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	orphan, err := svc.GetFaq(ctx, faq.ID)
	require.NoError(t, err)
	require.NotNil(t, orphan)
	assert.Nil(t, orphan.CategoryID)

	deleted, err = svc.DeleteFaq(ctx, faq.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = svc.DeleteFaq(ctx, faq.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}
