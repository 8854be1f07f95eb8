package auth

import domainUser "github.com/BruksfildServices01/hotel-housekeeping/internal/domain/user"

// Identity is the authenticated caller, resolved once per request from the
// bearer token and passed explicitly to use cases.
type Identity struct {
	Email string
	Role  domainUser.Role
}

func (i Identity) IsAdmin() bool {
	return i.Role == domainUser.RoleAdmin
}
