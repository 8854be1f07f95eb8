package user

import (
	"context"

	"github.com/BruksfildServices01/hotel-housekeeping/internal/audit"
	"github.com/BruksfildServices01/hotel-housekeeping/internal/auth"
	domain "github.com/BruksfildServices01/hotel-housekeeping/internal/domain/user"
	"github.com/BruksfildServices01/hotel-housekeeping/internal/models"
)

type ToggleUserStatus struct {
	repo  domain.Repository
	audit audit.Recorder
}

func NewToggleUserStatus(repo domain.Repository, audit audit.Recorder) *ToggleUserStatus {
	return &ToggleUserStatus{repo: repo, audit: audit}
}

// Execute flips the active flag. Deactivation also releases every room the
// user was assigned to, in the same transaction. Tokens already issued to the
// user stay valid until they expire.
func (uc *ToggleUserStatus) Execute(ctx context.Context, actor auth.Identity, id uint) (*models.User, error) {
	var (
		u          *models.User
		unassigned int64
	)

	err := uc.repo.Transaction(ctx, func(repo domain.Repository) error {
		found, err := repo.GetUserByID(ctx, id)
		if err != nil {
			return err
		}

		found.Active = !found.Active
		if err := repo.UpdateUser(ctx, found); err != nil {
			return err
		}

		if !found.Active {
			if unassigned, err = repo.UnassignRooms(ctx, found.ID); err != nil {
				return err
			}
		}

		u = found
		return nil
	})
	if err != nil {
		return nil, err
	}

	action := "user_activated"
	if !u.Active {
		action = "user_deactivated"
	}
	uc.audit.Dispatch(audit.Event{
		Actor:    actor.Email,
		Action:   action,
		Entity:   "user",
		EntityID: &u.ID,
		Metadata: map[string]any{"rooms_unassigned": unassigned},
	})

	return u, nil
}
