package auth

import (
	"context"

	"github.com/BruksfildServices01/hotel-housekeeping/internal/audit"
	"github.com/BruksfildServices01/hotel-housekeeping/internal/auth"
	domainUser "github.com/BruksfildServices01/hotel-housekeeping/internal/domain/user"
	"github.com/BruksfildServices01/hotel-housekeeping/internal/httperr"
	"github.com/BruksfildServices01/hotel-housekeeping/internal/models"
)

type LoginResult struct {
	Token auth.Token
	User  *models.User
}

type Login struct {
	repo   domainUser.Repository
	hasher PasswordHasher
	tokens TokenIssuer
	audit  audit.Recorder
}

func NewLogin(
	repo domainUser.Repository,
	hasher PasswordHasher,
	tokens TokenIssuer,
	audit audit.Recorder,
) *Login {
	return &Login{
		repo:   repo,
		hasher: hasher,
		tokens: tokens,
		audit:  audit,
	}
}

// Execute looks the user up, checks the account is active and only then
// verifies the password.
func (uc *Login) Execute(ctx context.Context, email, password string) (*LoginResult, error) {
	u, err := uc.repo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if !u.Active {
		return nil, httperr.ErrInactiveAccount()
	}

	if !uc.hasher.Compare(u.PasswordHash, password) {
		return nil, httperr.ErrInvalidCredentials()
	}

	role, err := domainUser.ParseRole(u.Role)
	if err != nil {
		return nil, err
	}

	token, err := uc.tokens.Issue(u.Email, role)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Actor:    u.Email,
		Action:   "user_logged_in",
		Entity:   "user",
		EntityID: &u.ID,
	})

	return &LoginResult{Token: token, User: u}, nil
}
