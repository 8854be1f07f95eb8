package user

import (
	"context"

	"github.com/BruksfildServices01/hotel-housekeeping/internal/models"
)

type Repository interface {
	// Transaction runs fn against a repository bound to a single transaction.
	Transaction(ctx context.Context, fn func(repo Repository) error) error

	GetUserByID(ctx context.Context, id uint) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	EmailTaken(ctx context.Context, email string, excludeID uint) (bool, error)
	ListUsers(ctx context.Context) ([]models.User, error)

	CreateUser(ctx context.Context, u *models.User) error
	UpdateUser(ctx context.Context, u *models.User) error

	// UnassignRooms clears the maid reference on every room assigned to maidID.
	UnassignRooms(ctx context.Context, maidID uint) (int64, error)
}
