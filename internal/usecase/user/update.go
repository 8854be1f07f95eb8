package user

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/hotel-housekeeping/internal/audit"
	"github.com/BruksfildServices01/hotel-housekeeping/internal/auth"
	domain "github.com/BruksfildServices01/hotel-housekeeping/internal/domain/user"
	"github.com/BruksfildServices01/hotel-housekeeping/internal/httperr"
	"github.com/BruksfildServices01/hotel-housekeeping/internal/models"
)

type UpdateUserInput struct {
	Username string
	Email    string
	Role     string
}

type UpdateUser struct {
	repo  domain.Repository
	audit audit.Recorder
}

func NewUpdateUser(repo domain.Repository, audit audit.Recorder) *UpdateUser {
	return &UpdateUser{repo: repo, audit: audit}
}

func (uc *UpdateUser) Execute(ctx context.Context, actor auth.Identity, id uint, in UpdateUserInput) (*models.User, error) {
	role, err := domain.ParseRole(in.Role)
	if err != nil {
		return nil, err
	}
	email := domain.NormalizeEmail(in.Email)

	var (
		u        *models.User
		released int64
	)
	err = uc.repo.Transaction(ctx, func(repo domain.Repository) error {
		found, err := repo.GetUserByID(ctx, id)
		if err != nil {
			return err
		}

		taken, err := repo.EmailTaken(ctx, email, found.ID)
		if err != nil {
			return err
		}
		if taken {
			return httperr.ErrConflict("email_already_registered")
		}

		promoted := role == domain.RoleAdmin && !domain.IsAdmin(found.Role)

		found.Username = strings.TrimSpace(in.Username)
		found.Email = email
		found.Role = string(role)
		u = found
		if err := repo.UpdateUser(ctx, found); err != nil {
			return err
		}

		// administrators are never cleaning staff
		if promoted {
			if released, err = repo.UnassignRooms(ctx, found.ID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Actor:    actor.Email,
		Action:   "user_updated",
		Entity:   "user",
		EntityID: &u.ID,
		Metadata: map[string]any{"role": u.Role, "rooms_unassigned": released},
	})

	return u, nil
}
