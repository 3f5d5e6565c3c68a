package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminLogService_ListFilter(t *testing.T) {
	svc := NewAdminLogService(newTestDB(t))
	ctx := context.Background()

	_, err := svc.Create(ctx, 1, "review.update", map[string]any{"reviewId": 3})
	require.NoError(t, err)
	_, err = svc.Create(ctx, 2, "faq.create", nil)
	require.NoError(t, err)
	last, err := svc.Create(ctx, 1, "faq.delete", nil)
	require.NoError(t, err)

	all, err := svc.List(ctx, nil)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, last.ID, all[0].ID)

	mine, err := svc.List(ctx, ptr(uint(1)))
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.JSONEq(t, `{"reviewId":3}`, string(mine[1].Details))

	none, err := svc.List(ctx, ptr(uint(0)))
	require.NoError(t, err)
	assert.Empty(t, none)
}
