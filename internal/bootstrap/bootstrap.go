package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appAuth "github.com/eduplat/courses/internal/app/auth"
	appControllers "github.com/eduplat/courses/internal/app/controllers"
	appMigrations "github.com/eduplat/courses/internal/app/migrations"
	appRepos "github.com/eduplat/courses/internal/app/repositories"
	appRoutes "github.com/eduplat/courses/internal/app/routes"
	appServices "github.com/eduplat/courses/internal/app/services"
	"github.com/eduplat/courses/internal/config"
	"github.com/eduplat/courses/internal/db"
	appMiddleware "github.com/eduplat/courses/internal/middleware"
	pkgAuth "github.com/eduplat/courses/internal/pkg/auth"
	"github.com/eduplat/courses/internal/pkg/filestorage"
	"github.com/eduplat/courses/internal/pkg/logger"
	"github.com/eduplat/courses/internal/pkg/userdir"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	CourseService         appServices.CourseService
	LessonService         appServices.LessonService
	JoinRequestService    appServices.JoinRequestService
	CourseController      *appControllers.CourseController
	LessonController      *appControllers.LessonController
	JoinRequestController *appControllers.JoinRequestController
	AuthMiddleware        *appMiddleware.AuthMiddleware
	Repos                 *appRepos.Repositories
	TokenVerifier         *pkgAuth.TokenVerifier
	AuthzService          *appAuth.AuthorizationService
	UserDirectory         *userdir.Client
	FileStorage           *filestorage.LocalStorage
	Logger                zerolog.Logger
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

// SetupDatabase establishes the database connection and runs migrations.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(context.Background(), migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")
	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	// The base URL must match the static file serving path in the server.
	fileStorageBaseURL := "http://localhost:" + cfg.Server.Port + "/uploads"
	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath, fileStorageBaseURL)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	publicKeyPEM, err := cfg.PublicKeyPEM()
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to load token verification key")
		return nil, fmt.Errorf("failed to load token verification key: %w", err)
	}
	deps.TokenVerifier, err = pkgAuth.NewTokenVerifier(publicKeyPEM)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize token verifier")
		return nil, fmt.Errorf("failed to initialize token verifier: %w", err)
	}

	deps.UserDirectory = userdir.NewClient(cfg.UserService.BaseURL, cfg.UserServiceTimeout())

	deps.AuthzService = appAuth.NewAuthorizationService(deps.Repos.Course, deps.Repos.Access)

	deps.CourseService = appServices.NewCourseService(
		deps.Repos.Course,
		deps.Repos.Lesson,
		deps.Repos.Access,
		deps.AuthzService,
		deps.UserDirectory,
	)
	deps.LessonService = appServices.NewLessonService(
		deps.Repos.Lesson,
		deps.Repos.Course,
		deps.AuthzService,
		deps.FileStorage,
		cfg.Server.OpenLessonList,
	)
	deps.JoinRequestService = appServices.NewJoinRequestService(
		deps.Repos.JoinRequest,
		deps.Repos.Course,
		deps.AuthzService,
		deps.UserDirectory,
	)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.TokenVerifier)

	deps.CourseController = appControllers.NewCourseController(deps.CourseService)
	deps.LessonController = appControllers.NewLessonController(deps.LessonService)
	deps.JoinRequestController = appControllers.NewJoinRequestController(deps.JoinRequestService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.Default()

	appRoutes.SetupSwagger(router)

	appRoutes.SetupRouter(router,
		deps.CourseController,
		deps.LessonController,
		deps.JoinRequestController,
		deps.AuthMiddleware,
		cfg.Server.OpenLessonList,
	)

	return router
}
