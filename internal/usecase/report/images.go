package report

import (
	"context"

	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/hotel-housekeeping/internal/domain/report"
	"github.com/BruksfildServices01/hotel-housekeeping/internal/httperr"
	"github.com/BruksfildServices01/hotel-housekeeping/internal/models"
)

// uploadAll stores the files in order. When one fails, the objects already
// written for this call are removed and an upload error is returned.
func uploadAll(
	ctx context.Context,
	store domain.ImageStore,
	log *zap.Logger,
	reportID uint,
	files []domain.ImageFile,
) ([]models.Image, error) {

	images := make([]models.Image, 0, len(files))
	for _, f := range files {
		stored, err := store.Upload(ctx, f)
		if err != nil {
			purge(ctx, store, log, images)
			return nil, httperr.ErrUpload(err)
		}
		images = append(images, models.Image{
			ReportID:   reportID,
			URL:        stored.URL,
			StorageKey: stored.Key,
		})
	}
	return images, nil
}

func purge(ctx context.Context, store domain.ImageStore, log *zap.Logger, images []models.Image) {
	for _, img := range images {
		if img.StorageKey == "" {
			continue
		}
		if err := store.Delete(ctx, img.StorageKey); err != nil {
			log.Warn("stored image not removed", zap.String("key", img.StorageKey), zap.Error(err))
		}
	}
}
