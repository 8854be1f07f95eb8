package room

import (
	"context"

	"github.com/BruksfildServices01/hotel-housekeeping/internal/audit"
	"github.com/BruksfildServices01/hotel-housekeeping/internal/auth"
	domain "github.com/BruksfildServices01/hotel-housekeeping/internal/domain/room"
	"github.com/BruksfildServices01/hotel-housekeeping/internal/models"
	"github.com/BruksfildServices01/hotel-housekeeping/internal/timezone"
)

type ChangeRoomStatus struct {
	repo     domain.Repository
	audit    audit.Recorder
	timezone string
}

func NewChangeRoomStatus(repo domain.Repository, audit audit.Recorder, tz string) *ChangeRoomStatus {
	return &ChangeRoomStatus{repo: repo, audit: audit, timezone: tz}
}

func (uc *ChangeRoomStatus) Execute(ctx context.Context, actor auth.Identity, id uint, status string) (*models.Room, error) {
	var (
		r    *models.Room
		from string
	)

	err := uc.repo.Transaction(ctx, func(repo domain.Repository) error {
		found, err := repo.GetRoomByID(ctx, id)
		if err != nil {
			return err
		}

		next, err := domain.ParseStatus(status)
		if err != nil {
			return err
		}

		from = found.Status
		domain.ApplyStatus(found, next, timezone.NowIn(uc.timezone))
		r = found
		return repo.UpdateRoom(ctx, found)
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Actor:    actor.Email,
		Action:   "room_status_changed",
		Entity:   "room",
		EntityID: &r.ID,
		Metadata: map[string]any{"from": from, "to": r.Status},
	})

	return r, nil
}
