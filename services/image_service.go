package services

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"studio-backend/utils"

	"github.com/google/uuid"
)

var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// ImageStore writes uploaded photos under Root and hands back the public URL
// they are served from.
type ImageStore struct {
	Root      string
	URLPrefix string
}

func NewImageStore(root, urlPrefix string) *ImageStore {
	return &ImageStore{Root: root, URLPrefix: strings.TrimRight(urlPrefix, "/")}
}

// SaveBase64 decodes a (possibly data-URL prefixed) base64 image into subdir
// and returns its URL. Only image content types are accepted; bad input is a
// validation error, anything else is a storage failure.
func (s *ImageStore) SaveBase64(b64 string, subdir string) (string, error) {
	if idx := strings.Index(b64, "base64,"); idx >= 0 {
		b64 = b64[idx+7:]
	}

	data, err := base64.StdEncoding.DecodeString(strings.TrimSpace(b64))
	if err != nil {
		return "", utils.NewValidationError("image must be base64 encoded")
	}
	if len(data) == 0 {
		return "", utils.NewValidationError("image is empty")
	}

	contentType := http.DetectContentType(data)
	ext, ok := imageExtensions[contentType]
	if !ok {
		return "", utils.NewValidationError("image must be a JPEG, PNG, GIF or WebP, got " + contentType)
	}

	subdir = filepath.Clean("/" + subdir)[1:]
	dir := filepath.Join(s.Root, subdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("mkdir uploads dir: %w", err)
	}

	filename := uuid.NewString() + ext
	if err := writeFile(filepath.Join(dir, filename), data); err != nil {
		return "", err
	}

	return s.URLPrefix + "/" + filepath.ToSlash(filepath.Join(subdir, filename)), nil
}

func writeFile(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("write file: %w", err)
	}
	return f.Close()
}
