package db

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/hotel-housekeeping/internal/config"
	domainUser "github.com/BruksfildServices01/hotel-housekeeping/internal/domain/user"
	"github.com/BruksfildServices01/hotel-housekeeping/internal/models"
)

type PasswordHasher interface {
	Hash(password string) (string, error)
}

// Seed creates the first administrator when the users table is empty and
// seed credentials are configured. It is a no-op otherwise.
func Seed(ctx context.Context, db *gorm.DB, cfg config.SeedConfig, hasher PasswordHasher, log *zap.Logger) error {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		return nil
	}

	var count int64
	if err := db.WithContext(ctx).Model(&models.User{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count users: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := hasher.Hash(cfg.AdminPassword)
	if err != nil {
		return err
	}

	admin := models.User{
		Username:     cfg.AdminUsername,
		Email:        domainUser.NormalizeEmail(cfg.AdminEmail),
		PasswordHash: hash,
		Role:         string(domainUser.RoleAdmin),
		Active:       true,
	}
	if err := db.WithContext(ctx).Create(&admin).Error; err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}

	log.Info("seeded initial administrator", zap.String("email", admin.Email))
	return nil
}
