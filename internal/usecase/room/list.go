package room

import (
	"context"

	domain "github.com/BruksfildServices01/hotel-housekeeping/internal/domain/room"
	"github.com/BruksfildServices01/hotel-housekeeping/internal/models"
)

type ListRooms struct {
	repo domain.Repository
}

func NewListRooms(repo domain.Repository) *ListRooms {
	return &ListRooms{repo: repo}
}

func (uc *ListRooms) Execute(ctx context.Context) ([]models.Room, error) {
	return uc.repo.ListRooms(ctx)
}

type GetRoom struct {
	repo domain.Repository
}

func NewGetRoom(repo domain.Repository) *GetRoom {
	return &GetRoom{repo: repo}
}

func (uc *GetRoom) Execute(ctx context.Context, id uint) (*models.Room, error) {
	return uc.repo.GetRoomByID(ctx, id)
}

type ListRoomsByMaid struct {
	repo domain.Repository
}

func NewListRoomsByMaid(repo domain.Repository) *ListRoomsByMaid {
	return &ListRoomsByMaid{repo: repo}
}

func (uc *ListRoomsByMaid) Execute(ctx context.Context, maidID uint) ([]models.Room, error) {
	if _, err := uc.repo.GetUserByID(ctx, maidID); err != nil {
		return nil, err
	}
	return uc.repo.ListRoomsByMaid(ctx, maidID)
}
