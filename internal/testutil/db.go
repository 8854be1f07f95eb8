package testutil

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	dbpkg "github.com/BruksfildServices01/hotel-housekeeping/internal/db"
	"github.com/BruksfildServices01/hotel-housekeeping/internal/models"
)

const DefaultPassword = "password123"

// NewDB opens a migrated sqlite database private to the test.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "housekeeping.db") + "?_foreign_keys=on"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, dbpkg.Migrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

type UserOption func(*models.User)

func Inactive() UserOption {
	return func(u *models.User) { u.Active = false }
}

func WithPushToken(token string) UserOption {
	return func(u *models.User) { u.FCMToken = &token }
}

// CreateUser stores a user whose password is DefaultPassword.
func CreateUser(t *testing.T, db *gorm.DB, email, role string, opts ...UserOption) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(DefaultPassword), bcrypt.MinCost)
	require.NoError(t, err)

	u := &models.User{
		Username:     email,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		Active:       true,
	}
	for _, opt := range opts {
		opt(u)
	}

	active := u.Active
	require.NoError(t, db.Create(u).Error)

	// gorm leaves false out of the INSERT because the column has a default,
	// then writes the default back into u.
	require.NoError(t, db.Model(u).Update("active", active).Error)
	u.Active = active
	return u
}

func CreateRoom(t *testing.T, db *gorm.DB, number, status string, maidID *uint) *models.Room {
	t.Helper()

	r := &models.Room{Number: number, Status: status, MaidID: maidID}
	require.NoError(t, db.Create(r).Error)
	return r
}

func CreateReport(t *testing.T, db *gorm.DB, roomID uint, title string, urls ...string) *models.Report {
	t.Helper()

	rep := &models.Report{Title: title, RoomID: roomID}
	for _, u := range urls {
		rep.Images = append(rep.Images, models.Image{URL: u})
	}
	require.NoError(t, db.Create(rep).Error)
	return rep
}
