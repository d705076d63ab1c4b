package app

import (
	"context"
	"fmt"
	"time"

	"qost_backend/internal/auth"
	"qost_backend/internal/config"
	"qost_backend/internal/database"
	"qost_backend/internal/email"
	"qost_backend/internal/handlers"
	"qost_backend/internal/logger"
	"qost_backend/internal/middleware"
	"qost_backend/internal/repositories"
	"qost_backend/internal/routes"
	"qost_backend/internal/services"
	"qost_backend/internal/validator"
	"qost_backend/internal/workers"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	// TranslateError turns driver unique-violation errors into
	// gorm.ErrDuplicatedKey, which the repositories rely on.
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{TranslateError: true})
	if err != nil {
		logger.Fatal("Failed to connect to GORM", "error", err)
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

	cleanup := workers.NewTokenCleanupWorker(gormDB, repositories.NewRefreshTokenRepository())
	cleanup.Start(context.Background())

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter builds the full gin engine. Shared with the test suite, which
// passes its own db handle.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	tokens := auth.NewTokenManager(
		cfg.JWT.Secret,
		time.Duration(cfg.JWT.AccessTTLMin)*time.Minute,
		time.Duration(cfg.JWT.RefreshTTLDay)*24*time.Hour,
	)

	serviceContainer := initializeServices(cfg, tokens)
	appHandlers := initializeHandlers(serviceContainer, tokens)

	ginRouter := initializeGinRouter(gormDB)
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func initializeServices(cfg *config.Config, tokens *auth.TokenManager) *services.ServiceContainer {
	var emailProvider email.Provider
	if cfg.Email.SMTPHost != "" {
		emailProvider = email.NewSMTPProvider(cfg)
	} else {
		logger.Warn("SMTP is not configured, verification emails are logged instead of sent")
		emailProvider = &MockEmailProvider{}
	}

	userRepo := repositories.NewUserRepository()
	codeRepo := repositories.NewVerificationCodeRepository()
	refreshTokenRepo := repositories.NewRefreshTokenRepository()
	postRepo := repositories.NewPostRepository()
	commentRepo := repositories.NewCommentRepository()

	verificationService := services.NewVerificationService(codeRepo, userRepo, emailProvider)
	authService := services.NewAuthService(userRepo, refreshTokenRepo, tokens)
	accountService := services.NewAccountService(userRepo, verificationService, authService)
	postService := services.NewPostService(postRepo)
	commentService := services.NewCommentService(commentRepo, postRepo)

	return &services.ServiceContainer{
		AccountService:      accountService,
		AuthService:         authService,
		VerificationService: verificationService,
		PostService:         postService,
		CommentService:      commentService,
		EmailService:        emailProvider,
	}
}

func initializeHandlers(sc *services.ServiceContainer, tokens *auth.TokenManager) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AccountHandler: handlers.NewAccountHandler(baseHandler, sc.AccountService, tokens),
		AuthHandler:    handlers.NewAuthHandler(baseHandler, sc.AuthService),
		PostHandler:    handlers.NewPostHandler(baseHandler, sc.PostService, sc.CommentService, tokens),
	}
}

func initializeGinRouter(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.DBMiddleware(db))
	return router
}
