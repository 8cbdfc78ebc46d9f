package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/br70-Solution/voxia-app/config"
	"github.com/br70-Solution/voxia-app/internal/cron"
	"github.com/br70-Solution/voxia-app/internal/fixtures"
	"github.com/br70-Solution/voxia-app/internal/infrastructure/cache"
	"github.com/br70-Solution/voxia-app/internal/infrastructure/database"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const redisKeyPrefix = "voxia:"

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
	Jobs        *cron.Jobs
	Log         *logrus.Logger
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg

	log := setupLogger(cfg.App)
	app.Log = log
	log.Info("Configuration loaded successfully")

	// Initialize database
	db, err := database.NewConnection(cfg.DB, log, cfg.App.IsDevelopment())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db

	if err := database.Migrate(db, log); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	log.Info("Database ready")

	// Redis is optional; without it lists are not cached and sessions live in memory.
	var listStore, sessionStore cache.Cache = cache.NewNoop(), cache.NewMemory()
	if cfg.Redis.Enabled() {
		redisClient, err := cache.NewRedisClient(cfg.Redis, log)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		app.RedisClient = redisClient
		listStore = cache.NewRedis(redisClient, redisKeyPrefix)
		sessionStore = listStore
	} else {
		log.Info("Redis not configured, running without list cache")
	}

	container := NewContainer(cfg, db, log, listStore, sessionStore)

	if cfg.DB.AutoSeed {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		seeded, err := container.Seed.SeedIfEmpty(ctx, fixtures.Demo(time.Now()))
		cancel()
		if err != nil {
			return nil, fmt.Errorf("failed to seed database: %w", err)
		}
		if seeded {
			log.Info("Empty database seeded with demo data")
		}
	}

	app.Jobs = cron.NewJobs(log, cfg.Backup, cfg.Stock, container.Report, container.StockItem)

	app.Server = &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.App.Port),
		Handler:           container.Handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return app, nil
}

// setupLogger builds the logger every component writes to
func setupLogger(cfg config.AppConfig) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)
	log.SetLevel(logrus.InfoLevel)
	if cfg.IsDevelopment() {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	if err := app.Jobs.Start(); err != nil {
		app.Log.Fatalf("Failed to start background jobs: %v", err)
	}

	// Start server in goroutine
	go func() {
		app.Log.Infof("Server starting on port %s", app.Config.App.Port)
		app.Log.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			app.Log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	app.Log.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		app.Log.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	app.Log.Info("Server shutdown complete")
}

// Close stops the background jobs and closes all connections
func (app *App) Close() {
	if app.Jobs != nil {
		app.Jobs.Stop()
	}

	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
