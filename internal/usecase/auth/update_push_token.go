package auth

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/hotel-housekeeping/internal/audit"
	"github.com/BruksfildServices01/hotel-housekeeping/internal/auth"
	domainUser "github.com/BruksfildServices01/hotel-housekeeping/internal/domain/user"
	"github.com/BruksfildServices01/hotel-housekeeping/internal/httperr"
	"github.com/BruksfildServices01/hotel-housekeeping/internal/models"
)

type UpdatePushToken struct {
	repo  domainUser.Repository
	audit audit.Recorder
}

func NewUpdatePushToken(repo domainUser.Repository, audit audit.Recorder) *UpdatePushToken {
	return &UpdatePushToken{repo: repo, audit: audit}
}

// Execute stores the device token of the caller, or of userID when the caller
// is an administrator. An empty token unregisters the device.
func (uc *UpdatePushToken) Execute(
	ctx context.Context,
	actor auth.Identity,
	userID *uint,
	token string,
) (*models.User, error) {

	var target *models.User

	err := uc.repo.Transaction(ctx, func(repo domainUser.Repository) error {
		caller, err := repo.GetUserByEmail(ctx, actor.Email)
		if err != nil {
			return err
		}

		target = caller
		if userID != nil && *userID != caller.ID {
			if !actor.IsAdmin() {
				return httperr.ErrForbidden("not_token_owner")
			}
			if target, err = repo.GetUserByID(ctx, *userID); err != nil {
				return err
			}
		}

		token = strings.TrimSpace(token)
		if token == "" {
			target.FCMToken = nil
		} else {
			target.FCMToken = &token
		}
		return repo.UpdateUser(ctx, target)
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Actor:    actor.Email,
		Action:   "push_token_updated",
		Entity:   "user",
		EntityID: &target.ID,
	})

	return target, nil
}
