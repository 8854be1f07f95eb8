package report

import (
	"context"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/hotel-housekeeping/internal/audit"
	"github.com/BruksfildServices01/hotel-housekeeping/internal/auth"
	domain "github.com/BruksfildServices01/hotel-housekeeping/internal/domain/report"
	domainRoom "github.com/BruksfildServices01/hotel-housekeeping/internal/domain/room"
	"github.com/BruksfildServices01/hotel-housekeeping/internal/models"
	"github.com/BruksfildServices01/hotel-housekeeping/internal/notification"
)

type CreateReportInput struct {
	Title       string
	Description string
	RoomID      uint
	Images      []domain.ImageFile
}

type CreateReport struct {
	repo  domain.Repository
	store domain.ImageStore
	push  notification.Sender
	audit audit.Recorder
	log   *zap.Logger
}

func NewCreateReport(
	repo domain.Repository,
	store domain.ImageStore,
	push notification.Sender,
	audit audit.Recorder,
	log *zap.Logger,
) *CreateReport {
	return &CreateReport{
		repo:  repo,
		store: store,
		push:  push,
		audit: audit,
		log:   log,
	}
}

// Execute persists the report, blocks its room and stores the photos in one
// transaction, then alerts every active administrator with a registered device.
func (uc *CreateReport) Execute(ctx context.Context, actor auth.Identity, in CreateReportInput) (*models.Report, error) {
	title, description, err := domain.ValidateContent(in.Title, in.Description)
	if err != nil {
		return nil, err
	}

	var (
		rep      *models.Report
		room     *models.Room
		admins   []models.User
		uploaded []models.Image
	)

	err = uc.repo.Transaction(ctx, func(repo domain.Repository) error {
		found, err := repo.GetRoomByID(ctx, in.RoomID)
		if err != nil {
			return err
		}
		room = found

		rep = &models.Report{Title: title, Description: description, RoomID: room.ID}
		if err := repo.CreateReport(ctx, rep); err != nil {
			return err
		}

		domainRoom.Block(room)
		if err := repo.UpdateRoom(ctx, room); err != nil {
			return err
		}

		images, err := uploadAll(ctx, uc.store, uc.log, rep.ID, in.Images)
		if err != nil {
			return err
		}
		uploaded = images
		if err := repo.CreateImages(ctx, images); err != nil {
			return err
		}
		rep.Images = images
		rep.Room = *room

		admins, err = repo.ListActiveAdminsWithPushToken(ctx)
		return err
	})
	if err != nil {
		// the rows are gone with the rollback; the stored objects are not
		purge(ctx, uc.store, uc.log, uploaded)
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Actor:    actor.Email,
		Action:   "report_created",
		Entity:   "report",
		EntityID: &rep.ID,
		Metadata: map[string]any{"room_id": room.ID, "images": len(rep.Images)},
	})

	alertTitle, alertBody := domain.AdminAlert(room.Number, rep.Title)
	msgs := make([]notification.Message, 0, len(admins))
	for _, a := range admins {
		if a.HasPushToken() {
			msgs = append(msgs, notification.Message{Token: *a.FCMToken, Title: alertTitle, Body: alertBody})
		}
	}
	notification.Notify(ctx, uc.push, uc.log, msgs...)

	return rep, nil
}
