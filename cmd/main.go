package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/TuanKiet52/APIRadio/config"
	"github.com/TuanKiet52/APIRadio/docview"
	"github.com/TuanKiet52/APIRadio/routes"
	"github.com/TuanKiet52/APIRadio/utils"
	"github.com/TuanKiet52/APIRadio/ws"
)

func main() {
	if os.Getenv("DOCKER_ENV") != "true" {
		_ = godotenv.Load()
	}

	logger := config.NewLogger(os.Getenv("LOG_LEVEL"))

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid configuration")
	}
	utils.SetSecret(cfg.JWTSecret)
	utils.SetUploadRoot(cfg.UploadDir)

	db, err := config.ConnectDB(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("database init failed")
	}
	logger.Info().Str("host", cfg.DBHost).Msg("connected to database")

	store, err := docview.Open(cfg.DocviewPath, cfg.DocviewFile)
	if err != nil {
		logger.Fatal().Err(err).Msg("document view init failed")
	}
	docs := docview.NewProjector(store, logger)

	go ws.HandleListenMessages()

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "https://dashboard.onwaveradio.example"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.Static("/images", filepath.Join(cfg.UploadDir, "images"))

	routes.SetupRoutes(r, db, docs)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server failed")
		}
	}()
	logger.Info().Str("port", cfg.Port).Msg("server running")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info().Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("shutdown")
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	if err := store.Close(); err != nil {
		logger.Error().Err(err).Msg("close document view")
	}
	logger.Info().Msg("server stopped")
}
