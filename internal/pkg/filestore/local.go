// Package filestore stores uploaded images on local disk and hands back
// stable URLs. The rest of the system only ever sees the URL strings.
package filestore

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/gstransportes/frota/internal/pkg/apperr"
	"github.com/gstransportes/frota/internal/pkg/models"
)

// LocalStore saves files under a base directory, one subdirectory per category
type LocalStore struct {
	cfg models.UploadConfig
}

// NewLocalStore creates the store and its base directory
func NewLocalStore(cfg models.UploadConfig) (*LocalStore, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &LocalStore{cfg: cfg}, nil
}

// Save writes one uploaded file under category and returns its public URL
func (s *LocalStore) Save(category string, file *multipart.FileHeader) (string, error) {
	if file.Size > int64(s.cfg.MaxSizeMB)*1024*1024 {
		return "", apperr.Validation(fmt.Sprintf("file %s exceeds the %dMB limit", file.Filename, s.cfg.MaxSizeMB))
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".webp":
	default:
		return "", apperr.Validation(fmt.Sprintf("unsupported file type %q", ext))
	}

	dir := filepath.Join(s.cfg.Dir, category)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create category directory: %w", err)
	}

	name := uuid.New().String() + ext
	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return fmt.Sprintf("%s/%s/%s", s.cfg.BaseURL, category, name), nil
}

// Dir returns the base directory for static file serving
func (s *LocalStore) Dir() string {
	return s.cfg.Dir
}
