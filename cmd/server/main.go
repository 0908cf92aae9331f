package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/21javi21/corderos-app/api"
	_ "github.com/21javi21/corderos-app/docs"
	"github.com/21javi21/corderos-app/internal/frame"
	"github.com/21javi21/corderos-app/internal/nba"
	"github.com/21javi21/corderos-app/internal/platform/config"
	"github.com/21javi21/corderos-app/internal/platform/database"
	"github.com/21javi21/corderos-app/internal/platform/health"
	"github.com/21javi21/corderos-app/internal/villain"
	"github.com/21javi21/corderos-app/internal/wager"
	"github.com/21javi21/corderos-app/logging"
)

// @title Corderos App API
// @version 1.0
// @description Backend for the corderos: the apuestas ledger, the hall of hate and the NBA tracker.
// @BasePath /
func main() {
	// A missing .env is fine; the deployed form injects real env vars.
	_ = godotenv.Load()
	logging.Bootstrap()

	cfg, err := config.LoadConfig()
	if err != nil {
		logging.Log.Fatalf("failed to load config: %v", err)
	}

	database.InitDB()
	if err := villain.Migrate(database.DB); err != nil {
		logging.Log.Fatalf("migration failed: %v", err)
	}
	if err := wager.Migrate(database.DB); err != nil {
		logging.Log.Fatalf("migration failed: %v", err)
	}
	if err := nba.Migrate(database.DB); err != nil {
		logging.Log.Fatalf("migration failed: %v", err)
	}
	go health.StartStoreHealthCheck(database.DB)

	frames, err := frame.LoadLibrary(cfg.HallOfHate.FramesPath)
	if err != nil {
		// The gallery still works on built-in defaults.
		logging.Log.Warnf("frame styles unavailable: %v", err)
	}

	gin.SetMode(cfg.Server.Mode)
	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.Cors.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Villain portraits are plain files; uploads happen out of band.
	router.Static("/images/villains", "./assets/villains")

	registry := villain.NewRegistry(database.DB)
	villains := villain.NewHandler(registry, frames)
	wagers := wager.NewHandler(wager.NewRepository(database.DB))
	client := nba.NewClient(cfg.NBA.BaseURL, cfg.NBA.Season)
	tracker := nba.NewHandler(nba.NewService(client, time.Duration(cfg.NBA.CacheTTLSeconds)*time.Second))

	api.SetupRoutes(router, villains, wagers, tracker)

	srv := &http.Server{
		Addr:    cfg.Server.Address,
		Handler: router,
	}
	go func() {
		logging.Log.Infof("corderos app listening on %s", cfg.Server.Address)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logging.Log.Info("shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logging.Log.Errorf("forced shutdown: %v", err)
	}
	logging.Log.Info("server stopped")
}
