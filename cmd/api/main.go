package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-visa-diagnosis-backend/config"
	_ "go-visa-diagnosis-backend/docs" // Important for Swagger
	v1 "go-visa-diagnosis-backend/internal/delivery/http/v1"
	"go-visa-diagnosis-backend/internal/repository/postgres"
	"go-visa-diagnosis-backend/internal/usecase"
	"go-visa-diagnosis-backend/pkg/ai"
	"go-visa-diagnosis-backend/pkg/database"
	"go-visa-diagnosis-backend/pkg/logger"
	"go-visa-diagnosis-backend/pkg/redis"

	"github.com/go-playground/validator/v10"
)

// @title           Visa Diagnosis Backend API
// @version         1.0
// @description     Backend for residence-status diagnosis using Clean Architecture.
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
	logger.Init()
	logger.Log.Info("Starting visa diagnosis backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (rate limiting; optional)
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, rate limiting falls back to in-memory", "error", err)
	}
	defer redis.Close()

	// 5. Setup Repositories
	catalogRepo := postgres.NewCatalogRepository(dbPool)
	catalogAdminRepo := postgres.NewCatalogAdminRepository(dbPool)
	sessionRepo := postgres.NewSessionRepository(dbPool)

	// 6. Setup AI Analyzer (degrades to neutral defaults when disabled)
	analyzer := ai.NewAnalyzer(cfg.AnthropicAPIKey, cfg.AnthropicModel, cfg.EnableAI)
	if analyzer.Available() {
		logger.Log.Info("AI analysis enabled", "model", cfg.AnthropicModel)
	} else {
		logger.Log.Info("AI analysis disabled")
	}

	// 7. Setup UseCases
	validate := validator.New()
	diagnosisUC := usecase.NewDiagnosisUsecase(
		catalogRepo, sessionRepo, analyzer, validate,
		time.Duration(cfg.AITimeoutSeconds)*time.Second,
	)
	catalogUC := usecase.NewCatalogUsecase(catalogRepo, catalogAdminRepo)
	healthUC := usecase.NewHealthUsecase(dbPool)

	// 8. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		DiagnosisUC: diagnosisUC,
		CatalogUC:   catalogUC,
		HealthUC:    healthUC,
		Config:      cfg,
	})

	// 9. Start Server
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
