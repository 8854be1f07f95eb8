package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/hotel-housekeeping/internal/domain/report"
)

type ReportGormRepository struct {
	store
}

var _ domain.Repository = (*ReportGormRepository)(nil)

func NewReportGormRepository(db *gorm.DB) *ReportGormRepository {
	return &ReportGormRepository{store: store{db: db}}
}

func (r *ReportGormRepository) Transaction(ctx context.Context, fn func(repo domain.Repository) error) error {
	return r.conn(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&ReportGormRepository{store: store{db: tx}})
	})
}
