package room

import (
	"context"
	"time"

	"github.com/BruksfildServices01/hotel-housekeeping/internal/models"
)

type Repository interface {
	Transaction(ctx context.Context, fn func(repo Repository) error) error

	// -------- Maid --------
	GetUserByID(ctx context.Context, id uint) (*models.User, error)

	// -------- Room --------
	ListRooms(ctx context.Context) ([]models.Room, error)
	GetRoomByID(ctx context.Context, id uint) (*models.Room, error)
	RoomNumberTaken(ctx context.Context, number string, excludeID uint) (bool, error)
	ListRoomsByMaid(ctx context.Context, maidID uint) ([]models.Room, error)

	CreateRoom(ctx context.Context, r *models.Room) error
	UpdateRoom(ctx context.Context, r *models.Room) error
	SetLastCleanedAll(ctx context.Context, at time.Time) (int64, error)

	// DeleteRoomCascade removes the room with its reports and their images,
	// returning the deleted images.
	DeleteRoomCascade(ctx context.Context, id uint) ([]models.Image, error)
}
