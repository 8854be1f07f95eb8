package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	domainUser "github.com/BruksfildServices01/hotel-housekeeping/internal/domain/user"
	"github.com/BruksfildServices01/hotel-housekeeping/internal/httperr"
	"github.com/BruksfildServices01/hotel-housekeeping/internal/models"
)

const pgUniqueViolation = "23505"

// store holds the queries shared by the aggregate repositories. Each
// repository wraps it and adds its own typed Transaction.
type store struct {
	db *gorm.DB
}

func (s store) conn(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx)
}

func notFound(err error, code string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return httperr.ErrNotFound(code)
	}
	return err
}

func isDuplicate(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

func conflictOr(err error, code string) error {
	if err != nil && isDuplicate(err) {
		return httperr.ErrConflict(code)
	}
	return err
}

// --------------------------------------------------
// Users
// --------------------------------------------------

func (s store) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	var u models.User
	if err := s.conn(ctx).First(&u, id).Error; err != nil {
		return nil, notFound(err, "user_not_found")
	}
	return &u, nil
}

func (s store) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := s.conn(ctx).
		Where("email = ?", domainUser.NormalizeEmail(email)).
		First(&u).Error; err != nil {
		return nil, notFound(err, "user_not_found")
	}
	return &u, nil
}

func (s store) EmailTaken(ctx context.Context, email string, excludeID uint) (bool, error) {
	var count int64
	if err := s.conn(ctx).
		Model(&models.User{}).
		Where("email = ? AND id <> ?", domainUser.NormalizeEmail(email), excludeID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s store) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := s.conn(ctx).Order("id ASC").Find(&users).Error
	return users, err
}

func (s store) CreateUser(ctx context.Context, u *models.User) error {
	return conflictOr(s.conn(ctx).Create(u).Error, "email_already_registered")
}

func (s store) UpdateUser(ctx context.Context, u *models.User) error {
	return conflictOr(s.conn(ctx).Save(u).Error, "email_already_registered")
}

func (s store) UnassignRooms(ctx context.Context, maidID uint) (int64, error) {
	res := s.conn(ctx).
		Model(&models.Room{}).
		Where("maid_id = ?", maidID).
		Update("maid_id", nil)
	return res.RowsAffected, res.Error
}

func (s store) ListActiveAdminsWithPushToken(ctx context.Context) ([]models.User, error) {
	var admins []models.User
	err := s.conn(ctx).
		Where("role = ? AND active = ? AND fcm_token IS NOT NULL AND fcm_token <> ''",
			string(domainUser.RoleAdmin), true).
		Order("id ASC").
		Find(&admins).Error
	return admins, err
}

// --------------------------------------------------
// Rooms
// --------------------------------------------------

func (s store) ListRooms(ctx context.Context) ([]models.Room, error) {
	var rooms []models.Room
	err := s.conn(ctx).Preload("Maid").Order("number ASC").Find(&rooms).Error
	return rooms, err
}

func (s store) GetRoomByID(ctx context.Context, id uint) (*models.Room, error) {
	var r models.Room
	if err := s.conn(ctx).Preload("Maid").First(&r, id).Error; err != nil {
		return nil, notFound(err, "room_not_found")
	}
	return &r, nil
}

func (s store) RoomNumberTaken(ctx context.Context, number string, excludeID uint) (bool, error) {
	var count int64
	if err := s.conn(ctx).
		Model(&models.Room{}).
		Where("number = ? AND id <> ?", number, excludeID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s store) ListRoomsByMaid(ctx context.Context, maidID uint) ([]models.Room, error) {
	var rooms []models.Room
	err := s.conn(ctx).
		Preload("Maid").
		Where("maid_id = ?", maidID).
		Order("number ASC").
		Find(&rooms).Error
	return rooms, err
}

func (s store) CreateRoom(ctx context.Context, r *models.Room) error {
	return conflictOr(s.conn(ctx).Omit("Maid").Create(r).Error, "room_number_taken")
}

func (s store) UpdateRoom(ctx context.Context, r *models.Room) error {
	return conflictOr(s.conn(ctx).Omit("Maid").Save(r).Error, "room_number_taken")
}

func (s store) SetLastCleanedAll(ctx context.Context, at time.Time) (int64, error) {
	res := s.conn(ctx).
		Model(&models.Room{}).
		Where("1 = 1").
		Update("last_cleaned_at", at)
	return res.RowsAffected, res.Error
}

func (s store) DeleteRoomCascade(ctx context.Context, id uint) ([]models.Image, error) {
	var r models.Room
	if err := s.conn(ctx).First(&r, id).Error; err != nil {
		return nil, notFound(err, "room_not_found")
	}

	reports := s.conn(ctx).Model(&models.Report{}).Select("id").Where("room_id = ?", id)

	var images []models.Image
	if err := s.conn(ctx).Where("report_id IN (?)", reports).Find(&images).Error; err != nil {
		return nil, err
	}
	if err := s.conn(ctx).Where("report_id IN (?)", reports).Delete(&models.Image{}).Error; err != nil {
		return nil, err
	}
	if err := s.conn(ctx).Where("room_id = ?", id).Delete(&models.Report{}).Error; err != nil {
		return nil, err
	}
	if err := s.conn(ctx).Delete(&r).Error; err != nil {
		return nil, err
	}
	return images, nil
}

// --------------------------------------------------
// Reports
// --------------------------------------------------

func (s store) withReportGraph(ctx context.Context) *gorm.DB {
	return s.conn(ctx).
		Preload("Room").
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("images.id ASC")
		})
}

func (s store) GetReportByID(ctx context.Context, id uint) (*models.Report, error) {
	var rep models.Report
	if err := s.withReportGraph(ctx).First(&rep, id).Error; err != nil {
		return nil, notFound(err, "report_not_found")
	}
	return &rep, nil
}

func (s store) ListReports(ctx context.Context) ([]models.Report, error) {
	var reports []models.Report
	err := s.withReportGraph(ctx).Order("reports.id DESC").Find(&reports).Error
	return reports, err
}

func (s store) ListReportsByRoom(ctx context.Context, roomID uint) ([]models.Report, error) {
	var reports []models.Report
	err := s.withReportGraph(ctx).
		Where("room_id = ?", roomID).
		Order("reports.id ASC").
		Find(&reports).Error
	return reports, err
}

func (s store) CreateReport(ctx context.Context, rep *models.Report) error {
	return s.conn(ctx).Omit("Room", "Images").Create(rep).Error
}

func (s store) UpdateReport(ctx context.Context, rep *models.Report) error {
	return s.conn(ctx).
		Model(&models.Report{ID: rep.ID}).
		Updates(map[string]any{
			"title":       rep.Title,
			"description": rep.Description,
		}).Error
}

func (s store) DeleteReport(ctx context.Context, id uint) error {
	return s.conn(ctx).Delete(&models.Report{}, id).Error
}

func (s store) CreateImages(ctx context.Context, images []models.Image) error {
	if len(images) == 0 {
		return nil
	}
	return s.conn(ctx).Create(&images).Error
}

func (s store) DeleteImages(ctx context.Context, reportID uint) ([]models.Image, error) {
	var images []models.Image
	if err := s.conn(ctx).Where("report_id = ?", reportID).Find(&images).Error; err != nil {
		return nil, err
	}
	if len(images) == 0 {
		return nil, nil
	}
	if err := s.conn(ctx).Where("report_id = ?", reportID).Delete(&models.Image{}).Error; err != nil {
		return nil, err
	}
	return images, nil
}
