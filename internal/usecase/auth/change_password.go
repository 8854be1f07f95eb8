package auth

import (
	"context"

	"github.com/BruksfildServices01/hotel-housekeeping/internal/audit"
	"github.com/BruksfildServices01/hotel-housekeeping/internal/auth"
	domainUser "github.com/BruksfildServices01/hotel-housekeeping/internal/domain/user"
	"github.com/BruksfildServices01/hotel-housekeeping/internal/httperr"
)

type ChangePassword struct {
	repo   domainUser.Repository
	hasher PasswordHasher
	audit  audit.Recorder
}

func NewChangePassword(repo domainUser.Repository, hasher PasswordHasher, audit audit.Recorder) *ChangePassword {
	return &ChangePassword{repo: repo, hasher: hasher, audit: audit}
}

func (uc *ChangePassword) Execute(ctx context.Context, actor auth.Identity, current, next string) error {
	if current == next {
		return httperr.ErrBusiness("password_unchanged")
	}

	hash, err := uc.hasher.Hash(next)
	if err != nil {
		return err
	}

	var userID uint
	err = uc.repo.Transaction(ctx, func(repo domainUser.Repository) error {
		u, err := repo.GetUserByEmail(ctx, actor.Email)
		if err != nil {
			return err
		}
		if !uc.hasher.Compare(u.PasswordHash, current) {
			return httperr.ErrInvalidCredentials()
		}

		u.PasswordHash = hash
		u.MustChangePassword = false
		userID = u.ID
		return repo.UpdateUser(ctx, u)
	})
	if err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		Actor:    actor.Email,
		Action:   "password_changed",
		Entity:   "user",
		EntityID: &userID,
	})
	return nil
}
