package auth

import (
	"context"

	"github.com/BruksfildServices01/hotel-housekeeping/internal/audit"
	domainUser "github.com/BruksfildServices01/hotel-housekeeping/internal/domain/user"
	"github.com/BruksfildServices01/hotel-housekeeping/internal/httperr"
	"github.com/BruksfildServices01/hotel-housekeeping/internal/models"
	"github.com/BruksfildServices01/hotel-housekeeping/internal/validators"
)

type RegisterInput struct {
	Username string
	Email    string
	Password string // derived from the email when empty
	Role     string // MAID when empty
}

type Register struct {
	repo     domainUser.Repository
	hasher   PasswordHasher
	audit    audit.Recorder
	resolver validators.Resolver
}

func NewRegister(
	repo domainUser.Repository,
	hasher PasswordHasher,
	audit audit.Recorder,
) *Register {
	return &Register{
		repo:   repo,
		hasher: hasher,
		audit:  audit,
	}
}

// WithDomainCheck rejects emails whose domain has no MX or address record.
func (uc *Register) WithDomainCheck(r validators.Resolver) *Register {
	uc.resolver = r
	return uc
}

func (uc *Register) Execute(ctx context.Context, in RegisterInput) (*models.User, error) {
	email := domainUser.NormalizeEmail(in.Email)

	role := domainUser.RoleMaid
	if in.Role != "" {
		r, err := domainUser.ParseRole(in.Role)
		if err != nil {
			return nil, err
		}
		role = r
	}

	if uc.resolver != nil && !validators.DomainResolves(ctx, uc.resolver, email) {
		return nil, httperr.ErrBusiness("invalid_email_domain")
	}

	password := in.Password
	if password == "" {
		password = domainUser.DerivePassword(email, in.Username)
	}

	hash, err := uc.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	u := &models.User{
		Username:     in.Username,
		Email:        email,
		PasswordHash: hash,
		Role:         string(role),
		Active:       true,
	}

	err = uc.repo.Transaction(ctx, func(repo domainUser.Repository) error {
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
		Actor:    u.Email,
		Action:   "user_registered",
		Entity:   "user",
		EntityID: &u.ID,
		Metadata: map[string]any{"role": u.Role},
	})

	return u, nil
}
