package auth

import (
	"github.com/BruksfildServices01/hotel-housekeeping/internal/auth"
	domainUser "github.com/BruksfildServices01/hotel-housekeeping/internal/domain/user"
)

type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) bool
}

type TokenIssuer interface {
	Issue(subject string, role domainUser.Role) (auth.Token, error)
}
