package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"doctor-directory/config"
	deliveryHttp "doctor-directory/internal/delivery/http"
	"doctor-directory/internal/delivery/http/handler"
	"doctor-directory/internal/delivery/http/middleware"
	"doctor-directory/internal/delivery/http/view"
	"doctor-directory/internal/infrastructure/cache"
	"doctor-directory/internal/infrastructure/upstream"
	repositoryImpl "doctor-directory/internal/repository"
	"doctor-directory/internal/usecase"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Load configuration
	cfg, err := config.LoadConfig(".env")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg

	// Setup logger
	if err := setupLogger(cfg.Log); err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}
	logrus.Info("Configuration loaded successfully")

	// Initialize Redis (optional)
	if cfg.Redis.Enabled() {
		redisClient, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		app.RedisClient = redisClient
	} else {
		logrus.Info("Redis disabled, doctor payload cached in memory")
	}

	// Initialize all layers
	server, err := initializeServer(cfg, app.RedisClient)
	if err != nil {
		app.Close()
		return nil, err
	}
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger(cfg config.LogConfig) error {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return err
	}
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(level)
	return nil
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, redisClient *redis.Client) (*http.Server, error) {
	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize repositories
	payloadCache := cache.NewMemoryPayloadCache(cfg.Redis.TTL)
	if redisClient != nil {
		payloadCache = cache.NewRedisPayloadCache(redisClient)
	}
	doctorSource := repositoryImpl.NewDoctorRepository(upstream.NewClient(cfg.Upstream), payloadCache, cfg.Redis.TTL, log)

	// Initialize usecases
	directoryUsecase := usecase.NewDoctorDirectoryUsecase(log, doctorSource)

	// Initialize views
	renderer, err := view.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}

	// Initialize handlers
	doctorHandler := handler.NewDoctorHandler(directoryUsecase)
	pageHandler := handler.NewPageHandler(directoryUsecase, renderer, cfg.Page.URLSync, log)

	// Initialize middleware
	corsMiddleware := middleware.NewCORSMiddleware()
	loggingMiddleware := middleware.NewLoggingMiddleware(log)

	// Initialize router
	router := deliveryHttp.NewRouter(doctorHandler, pageHandler, corsMiddleware, loggingMiddleware)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:              serverAddr,
		Handler:           httpRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}, nil
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
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

	logrus.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes the Redis connection when one was opened
func (app *App) Close() {
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
