package room

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/hotel-housekeeping/internal/audit"
	"github.com/BruksfildServices01/hotel-housekeeping/internal/auth"
	domain "github.com/BruksfildServices01/hotel-housekeeping/internal/domain/room"
	"github.com/BruksfildServices01/hotel-housekeeping/internal/httperr"
	"github.com/BruksfildServices01/hotel-housekeeping/internal/models"
	"github.com/BruksfildServices01/hotel-housekeeping/internal/notification"
	"github.com/BruksfildServices01/hotel-housekeeping/internal/timezone"
)

type UpdateRoomInput struct {
	Number string
	Status string
	MaidID *uint // nil unassigns the room
}

type UpdateRoom struct {
	repo     domain.Repository
	push     notification.Sender
	audit    audit.Recorder
	log      *zap.Logger
	timezone string
}

func NewUpdateRoom(
	repo domain.Repository,
	push notification.Sender,
	audit audit.Recorder,
	log *zap.Logger,
	tz string,
) *UpdateRoom {
	return &UpdateRoom{
		repo:     repo,
		push:     push,
		audit:    audit,
		log:      log,
		timezone: tz,
	}
}

// Execute validates everything before touching the room: existence, number
// uniqueness, the new maid and the status. A replaced maid triggers a push to
// the newly assigned one once the change is committed.
func (uc *UpdateRoom) Execute(ctx context.Context, actor auth.Identity, id uint, in UpdateRoomInput) (*models.Room, error) {
	number := strings.TrimSpace(in.Number)
	if number == "" {
		return nil, httperr.ErrBusiness("room_number_required")
	}

	var (
		r        *models.Room
		replaced bool
	)

	err := uc.repo.Transaction(ctx, func(repo domain.Repository) error {
		found, err := repo.GetRoomByID(ctx, id)
		if err != nil {
			return err
		}

		taken, err := repo.RoomNumberTaken(ctx, number, found.ID)
		if err != nil {
			return err
		}
		if taken {
			return httperr.ErrConflict("room_number_taken")
		}

		var maid *models.User
		if in.MaidID != nil {
			if maid, err = repo.GetUserByID(ctx, *in.MaidID); err != nil {
				return err
			}
			if err := domain.CanAssign(maid); err != nil {
				return err
			}
		}

		status, err := domain.ParseStatus(in.Status)
		if err != nil {
			return err
		}

		found.Number = number
		replaced = domain.Assign(found, maid)
		if domain.Status(found.Status) != status {
			domain.ApplyStatus(found, status, timezone.NowIn(uc.timezone))
		}

		r = found
		return repo.UpdateRoom(ctx, found)
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Actor:    actor.Email,
		Action:   "room_updated",
		Entity:   "room",
		EntityID: &r.ID,
		Metadata: map[string]any{"number": r.Number, "status": r.Status, "maid_id": r.MaidID},
	})

	if replaced && r.Maid != nil && r.Maid.HasPushToken() {
		title, body := domain.AssignmentNotice(r.Number)
		notification.Notify(ctx, uc.push, uc.log, notification.Message{
			Token: *r.Maid.FCMToken,
			Title: title,
			Body:  body,
		})
	}

	return r, nil
}
