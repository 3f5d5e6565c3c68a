package services

import (
	"context"
	"encoding/base64"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGalleryService_AccessCodeLookup(t *testing.T) {
	svc := NewGalleryService(newTestDB(t))
	ctx := context.Background()

	wedding, err := svc.Create(ctx, "wedding-2025", "Wedding")
	require.NoError(t, err)
	other, err := svc.Create(ctx, "", "")
	require.NoError(t, err)
	assert.Len(t, other.AccessCode, 32)

	_, err = svc.AddPhoto(ctx, wedding.ID, "/uploads/a.jpg")
	require.NoError(t, err)
	_, err = svc.AddPhoto(ctx, wedding.ID, "/uploads/b.jpg")
	require.NoError(t, err)
	_, err = svc.AddPhoto(ctx, other.ID, "/uploads/c.jpg")
	require.NoError(t, err)

	found, err := svc.GetByAccessCode(ctx, "wedding-2025")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, wedding.ID, found.ID)

	photos, err := svc.GetPhotos(ctx, found.ID)
	require.NoError(t, err)
	require.Len(t, photos, 2)
	for _, p := range photos {
		assert.Equal(t, wedding.ID, p.GalleryID)
	}

	missing, err := svc.GetByAccessCode(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)

	_, err = svc.Create(ctx, "wedding-2025", "dup")
	status, _ := statusOf(err)
	assert.Equal(t, 409, status)

	noGallery, err := svc.AddPhoto(ctx, 999, "/uploads/x.jpg")
	require.NoError(t, err)
	assert.Nil(t, noGallery)

	count, err := svc.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
}

// 1x1 transparent PNG
const tinyPNG = "iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNkYPhfDwAChwGA60e6kgAAAABJRU5ErkJggg=="

func TestImageStore_SaveBase64(t *testing.T) {
	root := t.TempDir()
	store := NewImageStore(root, "/uploads/")

	url, err := store.SaveBase64("data:image/png;base64,"+tinyPNG, "galleries/1")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "/uploads/galleries/1/"))
	assert.True(t, strings.HasSuffix(url, ".png"))

	onDisk := filepath.Join(root, strings.TrimPrefix(url, "/uploads/"))
	data, err := os.ReadFile(onDisk)
	require.NoError(t, err)
	raw, _ := base64.StdEncoding.DecodeString(tinyPNG)
	assert.Equal(t, raw, data)

	for _, bad := range []string{
		base64.StdEncoding.EncodeToString([]byte("plain text")),
		"%%%",
		"data:image/png;base64,",
	} {
		_, err = store.SaveBase64(bad, "galleries/1")
		status, isApp := statusOf(err)
		assert.True(t, isApp, bad)
		assert.Equal(t, http.StatusBadRequest, status, bad)
	}
}

func TestImageStore_StorageFailureIsInternal(t *testing.T) {
	root := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(root, []byte("x"), 0o644))
	store := NewImageStore(root, "/uploads")

	_, err := store.SaveBase64(tinyPNG, "galleries/1")
	require.Error(t, err)
	status, isApp := statusOf(err)
	assert.False(t, isApp)
	assert.Equal(t, http.StatusInternalServerError, status)
}

func TestImageStore_SubdirCannotEscapeRoot(t *testing.T) {
	root := t.TempDir()
	store := NewImageStore(root, "/uploads")

	url, err := store.SaveBase64(tinyPNG, "../../etc")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "/uploads/etc/"))
	_, err = os.Stat(filepath.Join(root, "etc"))
	assert.NoError(t, err)
}
