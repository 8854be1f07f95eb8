package room

import (
	"context"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/hotel-housekeeping/internal/audit"
	"github.com/BruksfildServices01/hotel-housekeeping/internal/auth"
	domainReport "github.com/BruksfildServices01/hotel-housekeeping/internal/domain/report"
	domain "github.com/BruksfildServices01/hotel-housekeeping/internal/domain/room"
	"github.com/BruksfildServices01/hotel-housekeeping/internal/models"
)

type DeleteRoom struct {
	repo  domain.Repository
	store domainReport.ImageStore
	purge bool
	audit audit.Recorder
	log   *zap.Logger
}

func NewDeleteRoom(
	repo domain.Repository,
	store domainReport.ImageStore,
	audit audit.Recorder,
	log *zap.Logger,
) *DeleteRoom {
	return &DeleteRoom{repo: repo, store: store, audit: audit, log: log}
}

// WithPurge also removes the stored photos of the deleted reports.
func (uc *DeleteRoom) WithPurge(enabled bool) *DeleteRoom {
	uc.purge = enabled
	return uc
}

func (uc *DeleteRoom) Execute(ctx context.Context, actor auth.Identity, id uint) error {
	var images []models.Image

	err := uc.repo.Transaction(ctx, func(repo domain.Repository) error {
		var err error
		images, err = repo.DeleteRoomCascade(ctx, id)
		return err
	})
	if err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		Actor:    actor.Email,
		Action:   "room_deleted",
		Entity:   "room",
		EntityID: &id,
		Metadata: map[string]any{"images_removed": len(images)},
	})

	if uc.purge {
		purgeImages(ctx, uc.store, uc.log, images)
	}
	return nil
}

func purgeImages(ctx context.Context, store domainReport.ImageStore, log *zap.Logger, images []models.Image) {
	for _, img := range images {
		if img.StorageKey == "" {
			continue
		}
		if err := store.Delete(ctx, img.StorageKey); err != nil {
			log.Warn("stored image not removed", zap.String("key", img.StorageKey), zap.Error(err))
		}
	}
}
