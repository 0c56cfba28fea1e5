package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/lenslink/lenslink/api"
	"github.com/lenslink/lenslink/config"
	"github.com/lenslink/lenslink/internal/analytics"
	"github.com/lenslink/lenslink/internal/auth"
	"github.com/lenslink/lenslink/internal/logger"
	"github.com/lenslink/lenslink/internal/store/sqlite"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer func() { _ = log.Sync() }()

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0755); err != nil {
		log.Fatal("failed to create data directory", zap.Error(err))
	}
	store, err := sqlite.Open(cfg.Database.Path)
	if err != nil {
		log.Fatal("failed to open database", zap.Error(err))
	}
	defer func() { _ = store.Close() }()
	log.Info("database ready", zap.String("path", cfg.Database.Path))

	tracker := analytics.NewService(store, cfg.Analytics.DataFile, log)
	verifier := auth.NewJWTVerifier(cfg.Auth.Secret, cfg.Auth.TTL())

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(api.RequestIDMiddleware())
	router.Use(api.RequestLoggingMiddleware(log))
	router.Use(api.CORSMiddleware())
	router.Use(api.RequestSizeLimitMiddleware(cfg.Server.MaxBodyBytes))

	api.SetupRoutes(router, api.NewAPI(store, tracker, log), verifier)

	log.Info("starting server", zap.String("address", cfg.Server.Address))
	if err := router.Run(cfg.Server.Address); err != nil {
		log.Fatal("server exited", zap.Error(err))
	}
}
