package app

import (
	"fmt"
	"time"

	"sitecms_backend/database"
	"sitecms_backend/internal/auth"
	"sitecms_backend/internal/config"
	"sitecms_backend/internal/email"
	"sitecms_backend/internal/handlers"
	"sitecms_backend/internal/imageprocessor"
	"sitecms_backend/internal/logger"
	"sitecms_backend/internal/metrics"
	"sitecms_backend/internal/middleware"
	"sitecms_backend/internal/routes"
	"sitecms_backend/internal/services"
	"sitecms_backend/internal/storage"
	"sitecms_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func Run() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Init("production")
		logger.Fatal("Failed to load config", "error", err)
	}
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...", "driver", cfg.Database.Driver)
	gormDB, err := database.Open(cfg.Database, cfg.Server.Env)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("Failed to migrate database", "error", err)
	}

	ginRouter, err := SetupRouter(cfg, gormDB)
	if err != nil {
		logger.Fatal("Failed to build router", "error", err)
	}

	address := cfg.Server.Addr()
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter builds every dependency from cfg and returns the HTTP engine.
// The storage backend is chosen here, once.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) (*gin.Engine, error) {
	storageInstance, err := storage.NewStorage(storage.Config{
		BasePath:  cfg.Storage.BasePath,
		Endpoint:  cfg.Storage.Endpoint,
		Region:    cfg.Storage.Region,
		Bucket:    cfg.Storage.Bucket,
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	logger.Info("Storage initialized", "backend", storageInstance.Backend())

	return SetupRouterWithStorage(cfg, gormDB, storageInstance)
}

// SetupRouterWithStorage builds the router over an already constructed media store.
func SetupRouterWithStorage(cfg *config.Config, gormDB *gorm.DB, storageInstance storage.Storage) (*gin.Engine, error) {
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	appMetrics := metrics.New()

	serviceContainer, err := initializeServices(cfg, storageInstance, appMetrics)
	if err != nil {
		return nil, err
	}

	appHandlers := initializeHandlers(cfg, serviceContainer, storageInstance)

	ginRouter := initializeGinRouter(cfg, gormDB, serviceContainer.AuthService, appMetrics)
	routes.RegisterRoutes(ginRouter, appHandlers, storageInstance, appMetrics.Handler())

	return ginRouter, nil
}

func initializeServices(cfg *config.Config, store storage.Storage, appMetrics *metrics.Metrics) (*services.ServiceContainer, error) {
	var mailer email.Provider = email.NoopProvider{}
	if cfg.Email.Enabled() {
		mailer = email.NewSMTPProvider(&email.SMTPConfig{
			Host:        cfg.Email.SMTPHost,
			Port:        cfg.Email.SMTPPort,
			Username:    cfg.Email.SMTPUsername,
			Password:    cfg.Email.SMTPPassword,
			FromEmail:   cfg.Email.FromEmail,
			NotifyEmail: cfg.Email.NotifyEmail,
		})
		logger.Info("Contact notifications enabled", "to", cfg.Email.NotifyEmail)
	} else {
		logger.Warn("SMTP is not configured; contact notifications are disabled")
	}

	credentials, err := auth.NewAdminCredentials(cfg.Auth.AdminUsername, cfg.Auth.AdminPassword)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare admin credentials: %w", err)
	}
	if !credentials.Enabled() {
		logger.Warn("ADMIN_PASSWORD is not set; admin login is disabled")
	}

	secret := cfg.Auth.SecretKey
	if secret == "" {
		// Only reachable in development; Validate requires a key otherwise.
		secret = uuid.NewString() + uuid.NewString()
		logger.Warn("SECRET_KEY is not set; using an ephemeral key, sessions end on restart")
	}
	tokens := auth.NewTokenManager(secret, time.Duration(cfg.Auth.SessionMaxAge)*time.Second)

	var optimizer services.Optimizer
	if cfg.Upload.OptimizeImages {
		optimizer = imageprocessor.NewProcessor(cfg.Upload.ImageQuality, cfg.Upload.MaxWidth)
	}

	return services.NewServiceContainer(services.Dependencies{
		Storage:     store,
		Optimizer:   optimizer,
		Mailer:      mailer,
		Metrics:     appMetrics,
		Credentials: credentials,
		Tokens:      tokens,
		Upload: &services.UploadConfig{
			MaxFileSize:    cfg.Upload.MaxSize,
			AllowedTypes:   cfg.Upload.AllowedTypes,
			OptimizeImages: cfg.Upload.OptimizeImages,
		},
	}), nil
}

func initializeHandlers(cfg *config.Config, svc *services.ServiceContainer, store storage.Storage) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:        handlers.NewAuthHandler(baseHandler, svc.AuthService, cfg.Auth.SecureCookie),
		ServiceHandler:     handlers.NewServiceHandler(baseHandler, svc.CatalogService),
		ProjectHandler:     handlers.NewProjectHandler(baseHandler, svc.ProjectService),
		BlogHandler:        handlers.NewBlogHandler(baseHandler, svc.BlogService),
		ContactHandler:     handlers.NewContactHandler(baseHandler, svc.ContactService),
		TestimonialHandler: handlers.NewTestimonialHandler(baseHandler, svc.TestimonialService),
		SocialMediaHandler: handlers.NewSocialMediaHandler(baseHandler, svc.SocialMediaService),
		UploadHandler:      handlers.NewUploadHandler(baseHandler, svc.UploadService),
		MediaHandler:       handlers.NewMediaHandler(baseHandler, svc.UploadService),
		HealthHandler:      handlers.NewHealthHandler(baseHandler, store.Backend()),
	}
}

func initializeGinRouter(cfg *config.Config, db *gorm.DB, authenticator middleware.Authenticator, appMetrics *metrics.Metrics) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.MetricsMiddleware(appMetrics))
	router.Use(middleware.CORSMiddleware(cfg.CORS.Origins()))
	router.Use(middleware.DBMiddleware(db))
	router.Use(middleware.AuthMiddleware(authenticator))
	return router
}
