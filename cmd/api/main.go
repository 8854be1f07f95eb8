package main

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/hotel-housekeeping/internal/audit"
	"github.com/BruksfildServices01/hotel-housekeeping/internal/auth"
	"github.com/BruksfildServices01/hotel-housekeeping/internal/config"
	dbpkg "github.com/BruksfildServices01/hotel-housekeeping/internal/db"
	domainReport "github.com/BruksfildServices01/hotel-housekeeping/internal/domain/report"
	"github.com/BruksfildServices01/hotel-housekeeping/internal/infra/imaging"
	"github.com/BruksfildServices01/hotel-housekeeping/internal/infra/push"
	"github.com/BruksfildServices01/hotel-housekeeping/internal/infra/storage"
	"github.com/BruksfildServices01/hotel-housekeeping/internal/notification"
	"github.com/BruksfildServices01/hotel-housekeeping/internal/observability"
	"github.com/BruksfildServices01/hotel-housekeeping/internal/routes"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.App.Env, cfg.App.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := dbpkg.NewDB(cfg)
	if err != nil {
		logger.Fatal("database", zap.Error(err))
	}

	hasher := auth.NewPasswordHasher(cfg.Auth.BcryptCost)
	if err := dbpkg.Seed(ctx, db, cfg.Seed, hasher, logger); err != nil {
		logger.Fatal("seed", zap.Error(err))
	}

	rdb := dbpkg.NewRedis(cfg.Redis, logger)

	store, uploadDir, err := newImageStore(cfg, logger)
	if err != nil {
		logger.Fatal("storage", zap.Error(err))
	}

	sender, err := newPushSender(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("push", zap.Error(err))
	}

	dispatcher := audit.NewDispatcher(audit.New(db), logger)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	deps := routes.Deps{
		DB:        db,
		Config:    cfg,
		Log:       logger,
		Redis:     rdb,
		Tokens:    auth.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL),
		Hasher:    hasher,
		Store:     store,
		Push:      sender,
		Audit:     dispatcher,
		UploadDir: uploadDir,
	}
	if cfg.Auth.VerifyEmailDomain {
		deps.Resolver = net.DefaultResolver
	}

	if err := routes.RegisterRoutes(r, deps); err != nil {
		logger.Fatal("routes", zap.Error(err))
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server running", zap.String("addr", cfg.Addr()), zap.String("env", cfg.App.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.App.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", zap.Error(err))
	}
	dispatcher.Close()

	if rdb != nil {
		_ = rdb.Close()
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

// newImageStore returns the configured store and, for disk storage, the
// directory to serve under /uploads.
func newImageStore(cfg *config.Config, logger *zap.Logger) (domainReport.ImageStore, string, error) {
	var (
		store     domainReport.ImageStore
		uploadDir string
	)

	switch cfg.Storage.Driver {
	case "s3":
		store = storage.NewS3Store(cfg.Storage)
	default:
		disk, err := storage.NewDiskStore(cfg.Storage)
		if err != nil {
			return nil, "", err
		}
		store = disk
		uploadDir = disk.Root()
	}

	if cfg.Storage.Optimize {
		store = storage.NewOptimizingStore(store, imaging.NewWebPOptimizer(cfg.Storage.MaxWidth), logger)
	}
	return store, uploadDir, nil
}

func newPushSender(ctx context.Context, cfg *config.Config, logger *zap.Logger) (notification.Sender, error) {
	if cfg.Push.Driver == "fcm" {
		return push.NewFCMSender(ctx, cfg.Push)
	}
	return push.NewLogSender(logger), nil
}
