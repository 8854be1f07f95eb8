package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/hotel-housekeeping/internal/auth"
	domainUser "github.com/BruksfildServices01/hotel-housekeeping/internal/domain/user"
	"github.com/BruksfildServices01/hotel-housekeeping/internal/httperr"
	infraRepo "github.com/BruksfildServices01/hotel-housekeeping/internal/infra/repository"
	"github.com/BruksfildServices01/hotel-housekeeping/internal/models"
	"github.com/BruksfildServices01/hotel-housekeeping/internal/testutil"
)

const secret = "0123456789abcdef0123456789abcdef"

type fixture struct {
	db     *gorm.DB
	repo   *infraRepo.UserGormRepository
	hasher *auth.PasswordHasher
	tokens *auth.TokenService
	audit  *testutil.AuditRecorder
}

func newFixture(t *testing.T) *fixture {
	db := testutil.NewDB(t)
	return &fixture{
		db:     db,
		repo:   infraRepo.NewUserGormRepository(db),
		hasher: auth.NewPasswordHasher(bcrypt.MinCost),
		tokens: auth.NewTokenService(secret, time.Hour),
		audit:  &testutil.AuditRecorder{},
	}
}

func (f *fixture) login() *Login {
	return NewLogin(f.repo, f.hasher, f.tokens, f.audit)
}

func assertKind(t *testing.T, err error, want httperr.Kind) {
	t.Helper()
	require.Error(t, err)
	kind, ok := httperr.KindOf(err)
	require.True(t, ok, "expected business error, got %v", err)
	assert.Equal(t, want, kind)
}

func TestLoginIssuesTokenWithStoredRole(t *testing.T) {
	f := newFixture(t)
	testutil.CreateUser(t, f.db, "cris@hotel.mx", "ADMIN")
	testutil.CreateUser(t, f.db, "agles@hotel.mx", "MAID")

	for email, role := range map[string]domainUser.Role{
		"cris@hotel.mx":  domainUser.RoleAdmin,
		"AGLES@hotel.mx": domainUser.RoleMaid,
	} {
		res, err := f.login().Execute(context.Background(), email, testutil.DefaultPassword)
		require.NoError(t, err, email)

		claims, err := f.tokens.Validate(res.Token.Value)
		require.NoError(t, err)
		assert.Equal(t, domainUser.NormalizeEmail(email), claims.Subject)
		assert.Equal(t, role, claims.Role)
	}

	assert.Equal(t, []string{"user_logged_in", "user_logged_in"}, f.audit.Actions())
}

func TestLoginWrongPassword(t *testing.T) {
	f := newFixture(t)
	testutil.CreateUser(t, f.db, "admin@x.com", "ADMIN")

	res, err := f.login().Execute(context.Background(), "admin@x.com", "wrongpw")
	assertKind(t, err, httperr.KindInvalidCredentials)
	assert.Nil(t, res)
	assert.Empty(t, f.audit.Actions())
}

func TestLoginUnknownUser(t *testing.T) {
	f := newFixture(t)

	_, err := f.login().Execute(context.Background(), "ghost@hotel.mx", "whatever")
	assertKind(t, err, httperr.KindNotFound)
}

func TestLoginInactiveSkipsPasswordCheck(t *testing.T) {
	f := newFixture(t)
	testutil.CreateUser(t, f.db, "eddie@hotel.mx", "MAID", testutil.Inactive())

	_, err := f.login().Execute(context.Background(), "eddie@hotel.mx", "wrongpw")
	assertKind(t, err, httperr.KindInactiveAccount)

	_, err = f.login().Execute(context.Background(), "eddie@hotel.mx", testutil.DefaultPassword)
	assertKind(t, err, httperr.KindInactiveAccount)
}

func TestRegisterTwiceConflicts(t *testing.T) {
	f := newFixture(t)
	uc := NewRegister(f.repo, f.hasher, f.audit)

	u, err := uc.Execute(context.Background(), RegisterInput{Username: "Vale", Email: "Vale@Hotel.mx", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, "vale@hotel.mx", u.Email)
	assert.Equal(t, "MAID", u.Role)
	assert.True(t, u.Active)

	_, err = uc.Execute(context.Background(), RegisterInput{Username: "Other", Email: "vale@hotel.mx", Password: "x"})
	assertKind(t, err, httperr.KindConflict)

	var count int64
	require.NoError(t, f.db.Model(&models.User{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestRegisterDerivesPasswordAndParsesRole(t *testing.T) {
	f := newFixture(t)

	u, err := NewRegister(f.repo, f.hasher, f.audit).Execute(context.Background(),
		RegisterInput{Username: "Boss", Email: "boss@hotel.mx", Role: "role_admin"})
	require.NoError(t, err)
	assert.Equal(t, "ADMIN", u.Role)
	assert.True(t, f.hasher.Compare(u.PasswordHash, "boss"))

	_, err = NewRegister(f.repo, f.hasher, f.audit).Execute(context.Background(),
		RegisterInput{Username: "x", Email: "x@hotel.mx", Role: "OWNER"})
	assertKind(t, err, httperr.KindInvalidArgument)
}

func TestUpdatePushToken(t *testing.T) {
	f := newFixture(t)
	admin := testutil.CreateUser(t, f.db, "cris@hotel.mx", "ADMIN")
	maid := testutil.CreateUser(t, f.db, "agles@hotel.mx", "MAID")
	other := testutil.CreateUser(t, f.db, "eddie@hotel.mx", "MAID")
	uc := NewUpdatePushToken(f.repo, f.audit)
	ctx := context.Background()

	got, err := uc.Execute(ctx, auth.Identity{Email: maid.Email, Role: domainUser.RoleMaid}, nil, " device-1 ")
	require.NoError(t, err)
	require.NotNil(t, got.FCMToken)
	assert.Equal(t, "device-1", *got.FCMToken)

	_, err = uc.Execute(ctx, auth.Identity{Email: maid.Email, Role: domainUser.RoleMaid}, &other.ID, "device-2")
	assertKind(t, err, httperr.KindForbidden)

	got, err = uc.Execute(ctx, auth.Identity{Email: admin.Email, Role: domainUser.RoleAdmin}, &other.ID, "device-3")
	require.NoError(t, err)
	assert.Equal(t, other.ID, got.ID)

	got, err = uc.Execute(ctx, auth.Identity{Email: maid.Email, Role: domainUser.RoleMaid}, &maid.ID, "")
	require.NoError(t, err)
	assert.Nil(t, got.FCMToken)
}

func TestChangePassword(t *testing.T) {
	f := newFixture(t)
	u := testutil.CreateUser(t, f.db, "agles@hotel.mx", "MAID")
	require.NoError(t, f.db.Model(u).Update("must_change_password", true).Error)

	uc := NewChangePassword(f.repo, f.hasher, f.audit)
	id := auth.Identity{Email: u.Email, Role: domainUser.RoleMaid}

	err := uc.Execute(context.Background(), id, "wrong", "n3w-secret")
	assertKind(t, err, httperr.KindInvalidCredentials)

	require.NoError(t, uc.Execute(context.Background(), id, testutil.DefaultPassword, "n3w-secret"))

	var stored models.User
	require.NoError(t, f.db.First(&stored, u.ID).Error)
	assert.True(t, f.hasher.Compare(stored.PasswordHash, "n3w-secret"))
	assert.False(t, stored.MustChangePassword)

	res, err := f.login().Execute(context.Background(), u.Email, "n3w-secret")
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token.Value)
}
