package report

import (
	"context"

	domain "github.com/BruksfildServices01/hotel-housekeeping/internal/domain/report"
	"github.com/BruksfildServices01/hotel-housekeeping/internal/models"
)

type ListReports struct {
	repo domain.Repository
}

func NewListReports(repo domain.Repository) *ListReports {
	return &ListReports{repo: repo}
}

// Execute returns every report, newest first.
func (uc *ListReports) Execute(ctx context.Context) ([]models.Report, error) {
	return uc.repo.ListReports(ctx)
}

type ListReportsByRoom struct {
	repo domain.Repository
}

func NewListReportsByRoom(repo domain.Repository) *ListReportsByRoom {
	return &ListReportsByRoom{repo: repo}
}

func (uc *ListReportsByRoom) Execute(ctx context.Context, roomID uint) ([]models.Report, error) {
	if _, err := uc.repo.GetRoomByID(ctx, roomID); err != nil {
		return nil, err
	}
	return uc.repo.ListReportsByRoom(ctx, roomID)
}

type GetReport struct {
	repo domain.Repository
}

func NewGetReport(repo domain.Repository) *GetReport {
	return &GetReport{repo: repo}
}

func (uc *GetReport) Execute(ctx context.Context, id uint) (*models.Report, error) {
	return uc.repo.GetReportByID(ctx, id)
}
