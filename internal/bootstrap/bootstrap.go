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

	appControllers "github.com/oguzk/studenthub/internal/app/controllers"
	appMigrations "github.com/oguzk/studenthub/internal/app/migrations"
	appRepos "github.com/oguzk/studenthub/internal/app/repositories"
	appRoutes "github.com/oguzk/studenthub/internal/app/routes"
	appServices "github.com/oguzk/studenthub/internal/app/services"
	"github.com/oguzk/studenthub/internal/config"
	"github.com/oguzk/studenthub/internal/db"
	appMiddleware "github.com/oguzk/studenthub/internal/middleware"
	pkgAuth "github.com/oguzk/studenthub/internal/pkg/auth"
	"github.com/oguzk/studenthub/internal/pkg/helpers"
	"github.com/oguzk/studenthub/internal/pkg/logger"
	"github.com/oguzk/studenthub/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService         appServices.AuthService
	ProfileService      appServices.ProfileService
	DashboardService    appServices.DashboardService
	StudentService      appServices.StudentService
	CourseService       appServices.CourseService
	AuthController      *appControllers.AuthController
	ProfileController   *appControllers.ProfileController
	DashboardController *appControllers.DashboardController
	StudentController   *appControllers.StudentController
	CourseController    *appControllers.CourseController
	AuthMiddleware      *appMiddleware.AuthMiddleware
	Repos               *appRepos.Repositories
	JWTService          *pkgAuth.JWTService
	Logger              zerolog.Logger
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

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		// Log the error but don't fail the startup
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	cleanupExpiredTokens(dbPool, lgr)

	return dbPool, nil
}

// cleanupExpiredTokens purges expired refresh and password reset tokens.
// Failures are logged and ignored, expired rows are inert either way.
func cleanupExpiredTokens(dbPool *pgxpool.Pool, lgr zerolog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	refreshRepo := appRepos.NewRefreshTokenRepository(dbPool)
	if err := refreshRepo.DeleteExpiredTokens(ctx); err != nil {
		lgr.Warn().Err(err).Msg("Failed to purge expired refresh tokens")
	}

	resetRepo := appRepos.NewPasswordResetTokenRepository(dbPool)
	if err := resetRepo.DeleteExpiredTokens(ctx); err != nil {
		lgr.Warn().Err(err).Msg("Failed to purge expired password reset tokens")
	}
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 1*time.Hour),
		RefreshTokenExp: helpers.ParseDuration(cfg.JWT.RefreshTokenExpiration, 720*time.Hour),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(
		deps.Repos.UserRepository,
		deps.Repos.StudentRepository,
		deps.Repos.PasswordResetTokenRepository,
		deps.Repos.RefreshTokenRepository,
		deps.JWTService,
		helpers.ParseDuration(cfg.PasswordReset.TokenExpiration, 30*time.Minute),
		lgr,
	)

	deps.ProfileService = appServices.NewProfileService(
		deps.Repos.UserRepository,
		deps.Repos.StudentRepository,
		deps.Repos.EnrollmentRepository,
		lgr,
	)

	deps.DashboardService = appServices.NewDashboardService(
		deps.Repos.StudentRepository,
		deps.Repos.CourseRepository,
		deps.Repos.EnrollmentRepository,
	)

	deps.StudentService = appServices.NewStudentService(
		deps.Repos.UserRepository,
		deps.Repos.StudentRepository,
		deps.Repos.EnrollmentRepository,
		lgr,
	)

	deps.CourseService = appServices.NewCourseService(deps.Repos.CourseRepository)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService, deps.Repos.UserRepository)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService, deps.Logger)
	deps.ProfileController = appControllers.NewProfileController(deps.ProfileService, deps.Logger)
	deps.DashboardController = appControllers.NewDashboardController(deps.DashboardService, deps.Logger)
	deps.StudentController = appControllers.NewStudentController(deps.StudentService, deps.Logger)
	deps.CourseController = appControllers.NewCourseController(deps.CourseService, deps.Logger)

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

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.ProfileController,
		deps.DashboardController,
		deps.StudentController,
		deps.CourseController,
		deps.AuthMiddleware,
	)

	return router
}
