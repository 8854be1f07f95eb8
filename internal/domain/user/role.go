package user

import (
	"strings"

	"github.com/BruksfildServices01/hotel-housekeeping/internal/httperr"
)

// ===============================
// User Role
// ===============================

type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleMaid  Role = "MAID"
)

const rolePrefix = "ROLE_"

var roles = [...]Role{RoleAdmin, RoleMaid}

// Prefixed returns the long form accepted by ParseRole, e.g. ROLE_ADMIN.
func (r Role) Prefixed() string {
	return rolePrefix + string(r)
}

// ParseRole matches either the short or the prefixed name, ignoring case.
func ParseRole(s string) (Role, error) {
	for _, r := range roles {
		if strings.EqualFold(s, string(r)) || strings.EqualFold(s, r.Prefixed()) {
			return r, nil
		}
	}
	return "", httperr.ErrBusiness("invalid_role")
}

func IsAdmin(role string) bool {
	r, err := ParseRole(role)
	return err == nil && r == RoleAdmin
}
