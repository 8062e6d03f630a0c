package main

import (
	"context"
	"errors"
	"fmt"
	"job-board-backend/config"
	_ "job-board-backend/docs" // Important for Swagger
	v1 "job-board-backend/internal/delivery/http/v1"
	"job-board-backend/internal/domain/matching"
	"job-board-backend/internal/repository/postgres"
	"job-board-backend/internal/usecase"
	"job-board-backend/pkg/database"
	"job-board-backend/pkg/logger"
	"job-board-backend/pkg/redis"
	"job-board-backend/pkg/validation"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// @title           Job Board API
// @version         1.0
// @description     Job board backend: jobs, applications and skill matching.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init(cfg.LogLevel)
	logger.Log.Info("Starting job board backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	if cfg.DBMigrate {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		err := database.Migrate(ctx, dbPool)
		cancel()
		if err != nil {
			logger.Log.Error("Failed to apply schema", "error", err)
			os.Exit(1)
		}
		logger.Log.Info("Database schema applied")
	}

	// 4. Setup Redis (optional, rate limiting falls back to memory)
	var redisCheck func(ctx context.Context) error
	if cfg.RedisURL != "" {
		if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
			logger.Log.Warn("Redis unavailable, using in-memory rate limiting", "error", err)
		} else {
			defer redis.Close()
		}
		redisCheck = redis.HealthCheck
	}

	// 5. Register custom binding validators
	if err := validation.RegisterGinValidators(); err != nil {
		logger.Log.Error("Failed to register validators", "error", err)
		os.Exit(1)
	}

	// 6. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	jobRepo := postgres.NewJobRepository(dbPool)
	applicationRepo := postgres.NewApplicationRepository(dbPool)

	// 7. Setup UseCases
	userUC := usecase.NewUserUsecase(userRepo)
	jobUC := usecase.NewJobUsecase(jobRepo, userRepo)
	applicationUC := usecase.NewApplicationUsecase(applicationRepo, jobRepo)
	matchingUC := usecase.NewMatchingUsecase(jobRepo, matching.Options{
		MinScore: cfg.MatchMinScore,
		Limit:    cfg.MatchLimit,
	})
	healthUC := usecase.NewHealthUsecase(dbPool, redisCheck)

	// 8. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		UserUC:        userUC,
		JobUC:         jobUC,
		ApplicationUC: applicationUC,
		MatchingUC:    matchingUC,
		HealthUC:      healthUC,
		Config:        cfg,
	})

	// 9. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	if err := serve(srv); err != nil {
		logger.Log.Error("Server stopped", "error", err)
		redis.Close()
		dbPool.Close()
		os.Exit(1)
	}
	logger.Log.Info("Server exiting")
}

// serve runs srv until SIGINT/SIGTERM, then drains it. A listen failure is
// returned so main can exit non-zero.
func serve(srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return fmt.Errorf("listen on %s: %w", srv.Addr, err)
	case <-quit:
	}
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	return nil
}
