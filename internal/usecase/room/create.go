package room

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/hotel-housekeeping/internal/audit"
	"github.com/BruksfildServices01/hotel-housekeeping/internal/auth"
	domain "github.com/BruksfildServices01/hotel-housekeeping/internal/domain/room"
	"github.com/BruksfildServices01/hotel-housekeeping/internal/httperr"
	"github.com/BruksfildServices01/hotel-housekeeping/internal/models"
)

type CreateRoomInput struct {
	Number string
	Status string // CLEAN when empty
	MaidID *uint
}

type CreateRoom struct {
	repo  domain.Repository
	audit audit.Recorder
}

func NewCreateRoom(repo domain.Repository, audit audit.Recorder) *CreateRoom {
	return &CreateRoom{repo: repo, audit: audit}
}

func (uc *CreateRoom) Execute(ctx context.Context, actor auth.Identity, in CreateRoomInput) (*models.Room, error) {
	number := strings.TrimSpace(in.Number)
	if number == "" {
		return nil, httperr.ErrBusiness("room_number_required")
	}

	status := domain.InitialStatus()
	if in.Status != "" {
		s, err := domain.ParseStatus(in.Status)
		if err != nil {
			return nil, err
		}
		status = s
	}

	r := &models.Room{Number: number, Status: string(status)}

	err := uc.repo.Transaction(ctx, func(repo domain.Repository) error {
		taken, err := repo.RoomNumberTaken(ctx, number, 0)
		if err != nil {
			return err
		}
		if taken {
			return httperr.ErrConflict("room_number_taken")
		}

		if in.MaidID != nil {
			maid, err := repo.GetUserByID(ctx, *in.MaidID)
			if err != nil {
				return err
			}
			if err := domain.CanAssign(maid); err != nil {
				return err
			}
			domain.Assign(r, maid)
		}

		return repo.CreateRoom(ctx, r)
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Actor:    actor.Email,
		Action:   "room_created",
		Entity:   "room",
		EntityID: &r.ID,
		Metadata: map[string]any{"number": r.Number, "status": r.Status},
	})

	return r, nil
}
