package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/hotel-housekeeping/internal/domain/user"
)

type UserGormRepository struct {
	store
}

var _ domain.Repository = (*UserGormRepository)(nil)

func NewUserGormRepository(db *gorm.DB) *UserGormRepository {
	return &UserGormRepository{store: store{db: db}}
}

func (r *UserGormRepository) Transaction(ctx context.Context, fn func(repo domain.Repository) error) error {
	return r.conn(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&UserGormRepository{store: store{db: tx}})
	})
}
