package report

import (
	"context"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/hotel-housekeeping/internal/audit"
	"github.com/BruksfildServices01/hotel-housekeeping/internal/auth"
	domain "github.com/BruksfildServices01/hotel-housekeeping/internal/domain/report"
	"github.com/BruksfildServices01/hotel-housekeeping/internal/models"
)

type UpdateReportInput struct {
	Title       string
	Description string
	Images      []domain.ImageFile
}

type UpdateReport struct {
	repo  domain.Repository
	store domain.ImageStore
	purge bool
	audit audit.Recorder
	log   *zap.Logger
}

func NewUpdateReport(
	repo domain.Repository,
	store domain.ImageStore,
	audit audit.Recorder,
	log *zap.Logger,
) *UpdateReport {
	return &UpdateReport{
		repo:  repo,
		store: store,
		audit: audit,
		log:   log,
	}
}

// WithPurge removes replaced photos from storage after the update commits.
// Without it the old objects stay in the bucket.
func (uc *UpdateReport) WithPurge(enabled bool) *UpdateReport {
	uc.purge = enabled
	return uc
}

// Execute replaces the text and the whole photo set of a report.
func (uc *UpdateReport) Execute(ctx context.Context, actor auth.Identity, id uint, in UpdateReportInput) (*models.Report, error) {
	title, description, err := domain.ValidateContent(in.Title, in.Description)
	if err != nil {
		return nil, err
	}

	var (
		rep      *models.Report
		removed  []models.Image
		uploaded []models.Image
	)

	err = uc.repo.Transaction(ctx, func(repo domain.Repository) error {
		found, err := repo.GetReportByID(ctx, id)
		if err != nil {
			return err
		}

		found.Title = title
		found.Description = description
		if err := repo.UpdateReport(ctx, found); err != nil {
			return err
		}

		if removed, err = repo.DeleteImages(ctx, found.ID); err != nil {
			return err
		}

		images, err := uploadAll(ctx, uc.store, uc.log, found.ID, in.Images)
		if err != nil {
			return err
		}
		uploaded = images
		if err := repo.CreateImages(ctx, images); err != nil {
			return err
		}

		found.Images = images
		rep = found
		return nil
	})
	if err != nil {
		purge(ctx, uc.store, uc.log, uploaded)
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Actor:    actor.Email,
		Action:   "report_updated",
		Entity:   "report",
		EntityID: &rep.ID,
		Metadata: map[string]any{"images_replaced": len(removed), "images": len(rep.Images)},
	})

	if uc.purge {
		purge(ctx, uc.store, uc.log, removed)
	}

	return rep, nil
}
