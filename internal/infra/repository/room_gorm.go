package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/hotel-housekeeping/internal/domain/room"
)

type RoomGormRepository struct {
	store
}

var _ domain.Repository = (*RoomGormRepository)(nil)

func NewRoomGormRepository(db *gorm.DB) *RoomGormRepository {
	return &RoomGormRepository{store: store{db: db}}
}

func (r *RoomGormRepository) Transaction(ctx context.Context, fn func(repo domain.Repository) error) error {
	return r.conn(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&RoomGormRepository{store: store{db: tx}})
	})
}
