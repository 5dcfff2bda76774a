// Package bootstrap assembles the application: config, logger, database,
// repositories, services, controllers and the router.
package bootstrap

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/dishaportal/disha-backend/internal/app/controllers"
	"github.com/dishaportal/disha-backend/internal/app/models"
	appRepos "github.com/dishaportal/disha-backend/internal/app/repositories"
	appRoutes "github.com/dishaportal/disha-backend/internal/app/routes"
	appServices "github.com/dishaportal/disha-backend/internal/app/services"
	"github.com/dishaportal/disha-backend/internal/config"
	"github.com/dishaportal/disha-backend/internal/db"
	appMiddleware "github.com/dishaportal/disha-backend/internal/middleware"
	pkgAuth "github.com/dishaportal/disha-backend/internal/pkg/auth"
	"github.com/dishaportal/disha-backend/internal/pkg/filestorage"
	"github.com/dishaportal/disha-backend/internal/pkg/helpers"
	"github.com/dishaportal/disha-backend/internal/pkg/logger"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService       appServices.AuthService
	UserService       appServices.UserService
	ToliService       appServices.ToliService
	ProgramService    appServices.ProgramService
	DocumentService   appServices.DocumentService
	ContentService    appServices.ContentService
	MessageService    appServices.MessageService
	AnalyticsService  appServices.AnalyticsService
	AuthController    *appControllers.AuthController
	StudentController *appControllers.StudentController
	AdminController   *appControllers.AdminController
	PublicController  *appControllers.PublicController
	AuthMiddleware    *appMiddleware.AuthMiddleware
	Repos             *appRepos.Repositories
	JWTService        *pkgAuth.JWTService
	FileStorage       *filestorage.LocalStorage
	Logger            zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase connects to MongoDB. A missing or unreachable database is
// not fatal; the app starts disconnected and reports it on /health.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.Mongo, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	mongo, err := db.Connect(ctx, cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize database handle")
		return nil, err
	}
	if mongo.Connected() {
		lgr.Info().Str("database", cfg.Database.Name).Msg("Database connection established")
	} else {
		lgr.Warn().Msg("Running without a database connection, writes will be refused")
	}
	return mongo, nil
}

// BuildDependencies initializes repositories, services and controllers.
func BuildDependencies(cfg *config.Config, mongo *db.Mongo, lgr zerolog.Logger) (*Dependencies, error) {
	repos := appRepos.NewRepositories(mongo)

	storage, err := filestorage.NewLocalStorage(cfg.Server.StoragePath)
	if err != nil {
		lgr.Error().Err(err).Str("path", cfg.Server.StoragePath).Msg("Failed to initialize file storage")
		return nil, err
	}

	jwtService := pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 24*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	authService := appServices.NewAuthService(repos.Users, jwtService, lgr)
	userService := appServices.NewUserService(repos.Users, lgr)
	toliService := appServices.NewToliService(repos.Tolis, repos.Users, repos.Messages, lgr)
	documentService := appServices.NewDocumentService(repos.Documents, repos.Programs, repos.Tolis, repos.Users, lgr)
	programService := appServices.NewProgramService(repos.Programs, repos.Tolis, repos.Users, documentService, storage, lgr)
	contentService := appServices.NewContentService(repos.Resources, repos.Instructions, repos.Media, storage, lgr)
	messageService := appServices.NewMessageService(repos.Messages, repos.Users, lgr)
	analyticsService := appServices.NewAnalyticsService(repos.Users, repos.Tolis, repos.Programs, repos.Resources, lgr)

	authMiddleware := appMiddleware.NewAuthMiddleware(jwtService)

	deps := &Dependencies{
		AuthService:       authService,
		UserService:       userService,
		ToliService:       toliService,
		ProgramService:    programService,
		DocumentService:   documentService,
		ContentService:    contentService,
		MessageService:    messageService,
		AnalyticsService:  analyticsService,
		AuthController:    appControllers.NewAuthController(authService, lgr),
		AdminController:   appControllers.NewAdminController(authService, userService, toliService, programService, contentService, messageService, analyticsService, lgr),
		PublicController:  appControllers.NewPublicController(documentService, contentService, messageService, toliService, userService, mongo, lgr),
		AuthMiddleware:    authMiddleware,
		Repos:             repos,
		JWTService:        jwtService,
		FileStorage:       storage,
		Logger:            lgr,
	}
	deps.StudentController = appControllers.NewStudentController(authService, toliService, programService, documentService, contentService, messageService, lgr)

	if mongo.Connected() {
		seedDefaultAdmin(context.Background(), cfg, repos, lgr)
	}

	return deps, nil
}

// SetupRouter builds the gin engine with middleware and all routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.Metrics())

	appRoutes.SetupRouter(
		router,
		deps.AuthController,
		deps.StudentController,
		deps.AdminController,
		deps.PublicController,
		deps.AuthMiddleware,
	)
	return router
}

// seedDefaultAdmin creates the configured admin account when no admin
// exists yet. Failures are logged, not fatal.
func seedDefaultAdmin(ctx context.Context, cfg *config.Config, repos *appRepos.Repositories, lgr zerolog.Logger) {
	if cfg.Admin.Email == "" || cfg.Admin.Password == "" {
		return
	}
	if repos.Users.CountByRole(ctx, models.RoleAdmin) > 0 {
		return
	}

	hash, err := pkgAuth.HashPassword(cfg.Admin.Password)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to hash default admin password")
		return
	}
	admin := &models.User{
		Name:         "Administrator",
		Email:        cfg.Admin.Email,
		Role:         models.RoleAdmin,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	if _, err := repos.Users.Create(ctx, admin); err != nil {
		lgr.Error().Err(err).Msg("Failed to seed default admin account")
		return
	}
	lgr.Info().Str("email", cfg.Admin.Email).Msg("Default admin account created")
}
