package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-leadform-backend/config"
	_ "go-leadform-backend/docs" // Important for Swagger
	v1 "go-leadform-backend/internal/delivery/http/v1"
	"go-leadform-backend/internal/usecase"
	"go-leadform-backend/pkg/logger"
	"go-leadform-backend/pkg/mailer"
)

// @title           Lead Form Backend API
// @version         1.0
// @description     Submission backend for the marketing site's contact, estimate and job application forms.
// @BasePath        /api
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting lead form backend", "port", cfg.Port)

	// 3. Setup Mailer
	smtpMailer := mailer.NewSMTPMailer(cfg)
	if !smtpMailer.IsConfigured() {
		logger.Log.Warn("Mailer not fully configured - form submissions will fail until it is")
	}

	// 4. Setup UseCases
	contactUC := usecase.NewContactUsecase(cfg, smtpMailer)
	estimateUC := usecase.NewEstimateUsecase(cfg, smtpMailer)
	applicationUC := usecase.NewApplicationUsecase(cfg, smtpMailer)

	// 5. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ContactUC:     contactUC,
		EstimateUC:    estimateUC,
		ApplicationUC: applicationUC,
		Config:        cfg,
	})

	// 6. Start Server
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
