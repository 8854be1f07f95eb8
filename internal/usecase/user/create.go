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

type PasswordHasher interface {
	Hash(password string) (string, error)
}

type CreateUserInput struct {
	Username string
	Email    string
	Role     string
}

// CreateStaff is the administrator path for adding accounts. The initial
// password is derived from the email and must be changed after first login.
type CreateStaff struct {
	repo   domain.Repository
	hasher PasswordHasher
	audit  audit.Recorder
}

func NewCreateStaff(repo domain.Repository, hasher PasswordHasher, audit audit.Recorder) *CreateStaff {
	return &CreateStaff{repo: repo, hasher: hasher, audit: audit}
}

func (uc *CreateStaff) Execute(ctx context.Context, actor auth.Identity, in CreateUserInput) (*models.User, error) {
	role := domain.RoleMaid
	if in.Role != "" {
		r, err := domain.ParseRole(in.Role)
		if err != nil {
			return nil, err
		}
		role = r
	}

	email := domain.NormalizeEmail(in.Email)
	username := strings.TrimSpace(in.Username)

	hash, err := uc.hasher.Hash(domain.DerivePassword(email, username))
	if err != nil {
		return nil, err
	}

	u := &models.User{
		Username:           username,
		Email:              email,
		PasswordHash:       hash,
		Role:               string(role),
		Active:             true,
		MustChangePassword: true,
	}

	err = uc.repo.Transaction(ctx, func(repo domain.Repository) error {
		taken, err := repo.EmailTaken(ctx, email, 0)
		if err != nil {
			return err
		}
		if taken {
			return httperr.ErrConflict("email_already_registered")
		}
		return repo.CreateUser(ctx, u)
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Actor:    actor.Email,
		Action:   "user_created",
		Entity:   "user",
		EntityID: &u.ID,
		Metadata: map[string]any{"role": u.Role},
	})

	return u, nil
}
