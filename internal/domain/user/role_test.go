package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/hotel-housekeeping/internal/httperr"
)

func TestParseRole(t *testing.T) {
	cases := map[string]Role{
		"ADMIN":      RoleAdmin,
		"admin":      RoleAdmin,
		"ROLE_ADMIN": RoleAdmin,
		"role_admin": RoleAdmin,
		"Maid":       RoleMaid,
		"ROLE_MAID":  RoleMaid,
	}
	for in, want := range cases {
		got, err := ParseRole(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestParseRoleRejectsUnknown(t *testing.T) {
	for _, in := range []string{"", "OWNER", "ROLE_", "ADMINISTRATOR", " admin"} {
		_, err := ParseRole(in)
		require.Error(t, err, in)
		kind, ok := httperr.KindOf(err)
		require.True(t, ok)
		assert.Equal(t, httperr.KindInvalidArgument, kind)
	}
}

func TestIsAdmin(t *testing.T) {
	assert.True(t, IsAdmin("ROLE_ADMIN"))
	assert.False(t, IsAdmin("MAID"))
	assert.False(t, IsAdmin("garbage"))
}

func TestDerivePassword(t *testing.T) {
	assert.Equal(t, "agles", DerivePassword("agles@hotel.mx", "Agles"))
	assert.Equal(t, "eddie", DerivePassword("no-at-sign", "eddie"))
	assert.Equal(t, "fallback", DerivePassword("@hotel.mx", "fallback"))
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "cris@hotel.mx", NormalizeEmail("  Cris@Hotel.MX "))
}
