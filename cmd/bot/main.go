package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-jobswipe-backend/config"
	v1 "go-jobswipe-backend/internal/delivery/http/v1"
	"go-jobswipe-backend/internal/domain"
	"go-jobswipe-backend/internal/repository/catalog"
	"go-jobswipe-backend/internal/repository/memory"
	"go-jobswipe-backend/internal/repository/postgres"
	"go-jobswipe-backend/internal/repository/redisstore"
	"go-jobswipe-backend/internal/usecase"
	"go-jobswipe-backend/pkg/database"
	"go-jobswipe-backend/pkg/logger"
	redisclient "go-jobswipe-backend/pkg/redis"
	"go-jobswipe-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting job swipe backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	if err := database.RunMigrations(context.Background(), cfg.DBUrl); err != nil {
		logger.Log.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	// 4. Setup Session Repository (Redis when configured, in-memory otherwise)
	var sessionRepo domain.SessionRepository
	var sessionCheck func(ctx context.Context) error
	if cfg.RedisURL != "" {
		client, err := redisclient.New(redisclient.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword})
		if err != nil {
			logger.Log.Error("Failed to connect to redis", "error", err)
			os.Exit(1)
		}
		defer client.Close()
		sessionRepo = redisstore.NewSessionRepository(client, time.Duration(cfg.SessionTTLMinutes)*time.Minute)
		sessionCheck = func(ctx context.Context) error { return redisclient.HealthCheck(ctx, client) }
		logger.Log.Info("Sessions stored in redis", "ttl_minutes", cfg.SessionTTLMinutes)
	} else {
		sessionRepo = memory.NewSessionRepository()
		logger.Log.Warn("REDIS_URL not configured - sessions are in-memory and lost on restart")
	}

	// 5. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	responseRepo := postgres.NewResponseRepository(dbPool)
	vacancyCatalog := catalog.NewStaticCatalog()

	// 6. Setup UseCases
	validate := validator.New()
	validation.RegisterValidators(validate)
	flowUC := usecase.NewProfileFlowUsecase(sessionRepo, userRepo, validate, cfg.MinSalary)
	swipeUC := usecase.NewSwipeUsecase(sessionRepo, userRepo, responseRepo, vacancyCatalog)
	dispatcher := usecase.NewDispatcher(flowUC, swipeUC)
	healthUC := usecase.NewHealthUsecase(dbPool, sessionCheck)

	// 7. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		Dispatcher: dispatcher,
		Health:     healthUC,
		Config:     cfg,
	})

	// 8. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
