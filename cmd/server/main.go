package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/Kamar-Folarin/commit-history-app/internal/apiclient"
	"github.com/Kamar-Folarin/commit-history-app/internal/commits"
	"github.com/Kamar-Folarin/commit-history-app/internal/config"
	"github.com/Kamar-Folarin/commit-history-app/internal/signup"
	"github.com/Kamar-Folarin/commit-history-app/internal/web"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
	})
	logger.SetOutput(os.Stdout)

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load configuration: %v", err)
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logger.Warnf("Unknown LOG_LEVEL %q, using info", cfg.LogLevel)
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)
	if level < logrus.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}

	clients, err := apiclient.NewFactory(cfg.API.BaseURL, logger, apiclient.WithTimeout(cfg.API.Timeout))
	if err != nil {
		logger.Fatalf("Failed to create API client: %v", err)
	}

	// Initialize services
	historyService := commits.NewService(clients, &cfg.Query, cfg.API.Timeout, logger)
	signupService := signup.NewService(clients, logger)
	handler := web.NewHandler(historyService, signupService, cfg.Query, cfg.Cookie, logger)

	router, err := web.SetupRouter(handler, logger)
	if err != nil {
		logger.Fatalf("Failed to set up router: %v", err)
	}

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.WithFields(logrus.Fields{
			"port":         cfg.Port,
			"api_base_url": cfg.API.BaseURL,
		}).Info("Server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Server failed: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Server shutdown failed: %v", err)
	}
	logger.Info("Server exited properly")
}
