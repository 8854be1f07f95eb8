package report

import (
	"context"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/hotel-housekeeping/internal/audit"
	"github.com/BruksfildServices01/hotel-housekeeping/internal/auth"
	domain "github.com/BruksfildServices01/hotel-housekeeping/internal/domain/report"
	"github.com/BruksfildServices01/hotel-housekeeping/internal/models"
)

type DeleteReport struct {
	repo  domain.Repository
	store domain.ImageStore
	purge bool
	audit audit.Recorder
	log   *zap.Logger
}

func NewDeleteReport(
	repo domain.Repository,
	store domain.ImageStore,
	audit audit.Recorder,
	log *zap.Logger,
) *DeleteReport {
	return &DeleteReport{repo: repo, store: store, audit: audit, log: log}
}

func (uc *DeleteReport) WithPurge(enabled bool) *DeleteReport {
	uc.purge = enabled
	return uc
}

// Execute removes the report and its images. The room keeps its status.
func (uc *DeleteReport) Execute(ctx context.Context, actor auth.Identity, id uint) error {
	var removed []models.Image

	err := uc.repo.Transaction(ctx, func(repo domain.Repository) error {
		found, err := repo.GetReportByID(ctx, id)
		if err != nil {
			return err
		}
		if removed, err = repo.DeleteImages(ctx, found.ID); err != nil {
			return err
		}
		return repo.DeleteReport(ctx, found.ID)
	})
	if err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		Actor:    actor.Email,
		Action:   "report_deleted",
		Entity:   "report",
		EntityID: &id,
	})

	if uc.purge {
		purge(ctx, uc.store, uc.log, removed)
	}
	return nil
}
