package report

import (
	"context"

	"github.com/BruksfildServices01/hotel-housekeeping/internal/models"
)

type Repository interface {
	Transaction(ctx context.Context, fn func(repo Repository) error) error

	// -------- Room --------
	GetRoomByID(ctx context.Context, id uint) (*models.Room, error)
	UpdateRoom(ctx context.Context, r *models.Room) error

	// -------- Report --------
	GetReportByID(ctx context.Context, id uint) (*models.Report, error)
	ListReports(ctx context.Context) ([]models.Report, error)
	ListReportsByRoom(ctx context.Context, roomID uint) ([]models.Report, error)

	CreateReport(ctx context.Context, rep *models.Report) error
	UpdateReport(ctx context.Context, rep *models.Report) error
	DeleteReport(ctx context.Context, id uint) error

	// -------- Images --------
	CreateImages(ctx context.Context, images []models.Image) error
	// DeleteImages removes every image of the report and returns them.
	DeleteImages(ctx context.Context, reportID uint) ([]models.Image, error)

	// -------- Recipients --------
	ListActiveAdminsWithPushToken(ctx context.Context) ([]models.User, error)
}
