package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/hotel-housekeeping/internal/audit"
	"github.com/BruksfildServices01/hotel-housekeeping/internal/auth"
	"github.com/BruksfildServices01/hotel-housekeeping/internal/config"
	domainReport "github.com/BruksfildServices01/hotel-housekeeping/internal/domain/report"
	"github.com/BruksfildServices01/hotel-housekeeping/internal/handlers"
	infraRepo "github.com/BruksfildServices01/hotel-housekeeping/internal/infra/repository"
	"github.com/BruksfildServices01/hotel-housekeeping/internal/middleware"
	"github.com/BruksfildServices01/hotel-housekeeping/internal/notification"
	ucAuth "github.com/BruksfildServices01/hotel-housekeeping/internal/usecase/auth"
	ucReport "github.com/BruksfildServices01/hotel-housekeeping/internal/usecase/report"
	ucRoom "github.com/BruksfildServices01/hotel-housekeeping/internal/usecase/room"
	ucUser "github.com/BruksfildServices01/hotel-housekeeping/internal/usecase/user"
	"github.com/BruksfildServices01/hotel-housekeeping/internal/validators"
)

type Deps struct {
	DB     *gorm.DB
	Config *config.Config
	Log    *zap.Logger
	Redis  *redis.Client // optional, enables rate limiting

	Tokens *auth.TokenService
	Hasher *auth.PasswordHasher
	Store  domainReport.ImageStore
	Push   notification.Sender
	Audit  audit.Recorder

	// Resolver enables the email domain check on registration when set.
	Resolver validators.Resolver

	// UploadDir is served under /uploads when images are kept on disk.
	UploadDir string
}

func RegisterRoutes(r *gin.Engine, d Deps) error {
	cfg := d.Config
	tz := cfg.App.Timezone
	purge := cfg.Storage.PurgeReplacedImages

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	open := []middleware.OpenRoute{
		{Method: http.MethodPost, Path: "/api/auth/login"},
		{Method: http.MethodPost, Path: "/api/auth/register"},
		{Path: "/v3/api-docs"},
		{Path: "/v3/api-docs/*"},
		{Path: "/swagger-ui.html"},
		{Path: "/health"},
	}
	if d.UploadDir != "" {
		open = append(open, middleware.OpenRoute{Path: "/uploads/*"})
	}

	r.Use(middleware.CORSMiddleware(cfg.App.CORSOrigins))
	r.Use(middleware.RequestLogger(d.Log))
	r.Use(middleware.BlockedSubnet(cfg.App.BlockedSubnetPrefix, d.Log))
	r.Use(middleware.AccessControl(middleware.NewAccessPolicy(open...), d.Tokens))

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	userRepo := infraRepo.NewUserGormRepository(d.DB)
	roomRepo := infraRepo.NewRoomGormRepository(d.DB)
	reportRepo := infraRepo.NewReportGormRepository(d.DB)

	// ======================================================
	// 🧠 USE CASES: AUTH
	// ======================================================
	register := ucAuth.NewRegister(userRepo, d.Hasher, d.Audit)
	if d.Resolver != nil {
		register = register.WithDomainCheck(d.Resolver)
	}

	authHandler := handlers.NewAuthHandler(
		ucAuth.NewLogin(userRepo, d.Hasher, d.Tokens, d.Audit),
		register,
		ucAuth.NewUpdatePushToken(userRepo, d.Audit),
		ucAuth.NewChangePassword(userRepo, d.Hasher, d.Audit),
		d.Log,
	)

	// ======================================================
	// 🧠 USE CASES: USERS
	// ======================================================
	userHandler := handlers.NewUserHandler(
		ucUser.NewListUsers(userRepo),
		ucUser.NewGetUser(userRepo),
		ucUser.NewCreateStaff(userRepo, d.Hasher, d.Audit),
		ucUser.NewUpdateUser(userRepo, d.Audit),
		ucUser.NewToggleUserStatus(userRepo, d.Audit),
		d.Log,
	)

	// ======================================================
	// 🧠 USE CASES: ROOMS
	// ======================================================
	roomHandler := handlers.NewRoomHandler(handlers.RoomUseCases{
		List:      ucRoom.NewListRooms(roomRepo),
		Get:       ucRoom.NewGetRoom(roomRepo),
		ByMaid:    ucRoom.NewListRoomsByMaid(roomRepo),
		Create:    ucRoom.NewCreateRoom(roomRepo, d.Audit),
		Update:    ucRoom.NewUpdateRoom(roomRepo, d.Push, d.Audit, d.Log, tz),
		Status:    ucRoom.NewChangeRoomStatus(roomRepo, d.Audit, tz),
		Delete:    ucRoom.NewDeleteRoom(roomRepo, d.Store, d.Audit, d.Log).WithPurge(purge),
		CleanTime: ucRoom.NewSetCleanTime(roomRepo, d.Audit, tz),
	}, tz, d.Log)

	// ======================================================
	// 🧠 USE CASES: REPORTS
	// ======================================================
	reportHandler := handlers.NewReportHandler(handlers.ReportUseCases{
		List:   ucReport.NewListReports(reportRepo),
		ByRoom: ucReport.NewListReportsByRoom(reportRepo),
		Get:    ucReport.NewGetReport(reportRepo),
		Create: ucReport.NewCreateReport(reportRepo, d.Store, d.Push, d.Audit, d.Log),
		Update: ucReport.NewUpdateReport(reportRepo, d.Store, d.Audit, d.Log).WithPurge(purge),
		Delete: ucReport.NewDeleteReport(reportRepo, d.Store, d.Audit, d.Log).WithPurge(purge),
	}, cfg.Storage.MaxFileBytes, d.Log)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	auditLogsHandler := handlers.NewAuditLogsHandler(d.DB, tz, d.Log)
	healthHandler := handlers.NewHealthHandler(d.DB, d.Redis)

	docsHandler, err := handlers.NewDocsHandler()
	if err != nil {
		return err
	}

	limited := middleware.RateLimit(d.Redis, cfg.RateLimit, d.Log)

	// ======================================================
	// 🌐 PUBLIC
	// ======================================================
	r.GET("/health", healthHandler.Check)
	r.GET("/v3/api-docs", docsHandler.APIDocs)
	r.GET("/swagger-ui.html", docsHandler.SwaggerUI)

	if d.UploadDir != "" {
		r.Static("/uploads", d.UploadDir)
	}

	api := r.Group("/api")

	// ======================================================
	// 🔐 AUTH
	// ======================================================
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/login", limited, authHandler.Login)
		authGroup.POST("/register", limited, authHandler.Register)
		authGroup.POST("/update-fcm-token", authHandler.UpdatePushToken)
		authGroup.PATCH("/password", authHandler.ChangePassword)
	}

	// ======================================================
	// 👤 USERS
	// ======================================================
	users := api.Group("/user")
	{
		users.GET("", userHandler.List)
		users.GET("/me", userHandler.Me)
		users.GET("/email", userHandler.GetByEmail)
		users.GET("/:id", userHandler.Get)
		users.POST("", userHandler.Create)
		users.PUT("/:id", userHandler.Update)
		users.PATCH("/status/:id", userHandler.ToggleStatus)
	}

	// ======================================================
	// 🛏️ ROOMS
	// ======================================================
	rooms := api.Group("/room")
	{
		rooms.GET("", roomHandler.List)
		rooms.GET("/:id", roomHandler.Get)
		rooms.GET("/maid/:id", roomHandler.ListByMaid)
		rooms.POST("", roomHandler.Create)
		rooms.PUT("/:id", roomHandler.Update)
		rooms.DELETE("/:id", roomHandler.Delete)
		rooms.PATCH("/status/:id/:status", roomHandler.ChangeStatus)
		rooms.PATCH("/cleanTime", roomHandler.SetCleanTime)
	}

	// ======================================================
	// 📝 REPORTS
	// ======================================================
	reports := api.Group("/report")
	{
		reports.GET("", reportHandler.List)
		reports.GET("/:id", reportHandler.Get)
		reports.GET("/room/:roomId", reportHandler.ListByRoom)
		reports.POST("", reportHandler.Create)
		reports.PUT("/:id", reportHandler.Update)
		reports.DELETE("/:id", reportHandler.Delete)
	}

	// ======================================================
	// 📜 AUDIT
	// ======================================================
	api.GET("/audit-logs", auditLogsHandler.List)

	return nil
}
