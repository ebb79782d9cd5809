package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/staffhub/staffhub-backend/internal/adapters/notification"
	"github.com/staffhub/staffhub-backend/internal/core/services"
	"github.com/staffhub/staffhub-backend/internal/handlers"
	"github.com/staffhub/staffhub-backend/internal/middleware"
	"github.com/staffhub/staffhub-backend/internal/repositories/database/pgsql"
	"github.com/staffhub/staffhub-backend/pkg/config"
	"github.com/staffhub/staffhub-backend/pkg/database"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// @title StaffHub Backend API
// @version 1.0
// @description Staff-to-event matching and conflict-resolution service.

// @host localhost:8080
// @BasePath /api/v1
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer dbPool.Close()
	logger.Info("Database connection pool established.")

	if err := runMigrations(logger, cfg.DatabaseURL); err != nil {
		logger.Error("Failed to run migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowedOrigins,
		AllowMethods: []string{"GET", "POST"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	rateLimiter := limiter.New(memory.NewStore(), limiter.Rate{
		Period: cfg.RateLimitPeriod,
		Limit:  cfg.RateLimitRequests,
	})

	r.GET("/health", handlers.GetHealth)

	v1 := r.Group("/api/v1", middleware.RateLimit(rateLimiter))
	addStaffingAPI(v1, dbPool)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func addStaffingAPI(v1 *gin.RouterGroup, dbPool *pgxpool.Pool) {
	eventRepo := pgsql.NewEventRepository(dbPool)
	staffRepo := pgsql.NewStaffRepository(dbPool)
	shiftRepo := pgsql.NewShiftRepository(dbPool)
	notifier := notification.NewLogNotifier()

	detector := services.NewConflictService(shiftRepo)
	matcher := services.NewMatchingService(eventRepo, staffRepo, detector)
	materializer := services.NewShiftService(eventRepo, shiftRepo, staffRepo, notifier)
	orchestrator := services.NewAssignmentService(eventRepo, staffRepo, matcher, materializer, notifier)
	reporter := services.NewRecommendationService(eventRepo, matcher)

	handlers.RegisterStaffingRoutes(v1, handlers.StaffingServices{
		Matcher:      matcher,
		Detector:     detector,
		Orchestrator: orchestrator,
		Materializer: materializer,
		Reporter:     reporter,
	})
}

// runMigrations applies pending schema migrations using a standard sql.DB
// connection via the pgx stdlib driver.
func runMigrations(logger *slog.Logger, databaseURL string) error {
	migrationDB, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()

	if err := migrationDB.Ping(); err != nil {
		return err
	}

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		return err
	}

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		return err
	}

	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		return sourceErr
	}
	if dbErr != nil {
		return dbErr
	}

	if err == migrate.ErrNoChange {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}
