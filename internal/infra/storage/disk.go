package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BruksfildServices01/hotel-housekeeping/internal/config"
	domain "github.com/BruksfildServices01/hotel-housekeeping/internal/domain/report"
)

// DiskStore writes photos under a local directory served at /uploads.
type DiskStore struct {
	root    string
	baseURL string
}

var _ domain.ImageStore = (*DiskStore)(nil)

func NewDiskStore(cfg config.StorageConfig) (*DiskStore, error) {
	if err := os.MkdirAll(filepath.Join(cfg.UploadDir, keyPrefix), 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &DiskStore{root: cfg.UploadDir, baseURL: cfg.PublicBaseURL}, nil
}

func (s *DiskStore) Root() string {
	return s.root
}

func (s *DiskStore) Upload(_ context.Context, file domain.ImageFile) (domain.StoredImage, error) {
	key := ObjectKey(file.Name)

	if err := os.WriteFile(filepath.Join(s.root, filepath.FromSlash(key)), file.Data, 0o644); err != nil {
		return domain.StoredImage{}, fmt.Errorf("write %s: %w", key, err)
	}
	return domain.StoredImage{Key: key, URL: PublicURL(s.baseURL, key)}, nil
}

func (s *DiskStore) Delete(_ context.Context, key string) error {
	err := os.Remove(filepath.Join(s.root, filepath.FromSlash(key)))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove %s: %w", key, err)
	}
	return nil
}
