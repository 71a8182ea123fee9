package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alcanciapp/alcanciapp-be/internal/api"
	"github.com/alcanciapp/alcanciapp-be/internal/config"
	"github.com/alcanciapp/alcanciapp-be/internal/database"
	"github.com/alcanciapp/alcanciapp-be/internal/logger"
	"github.com/alcanciapp/alcanciapp-be/internal/monitoring"
	"github.com/alcanciapp/alcanciapp-be/internal/services"
	"github.com/rs/zerolog/log"
)

func main() {
	logger.Init()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	if !cfg.PepperConfigured {
		log.Warn().Msg("AUTH_PEPPER is not set; using the local placeholder. Do not run production like this.")
	}

	// Set up database
	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("Failed to apply database migrations")
	}

	// Set up services
	sessionService := services.NewSessionService(db, cfg.Pepper, cfg.SessionTTLDays)
	goalService := services.NewGoalService(db)
	transactionService := services.NewTransactionService(db)

	// Set up and start the background session sweeper. Run only registers
	// the cron job and returns; the cron loop runs on its own goroutine.
	sweeper := monitoring.NewSweeper(sessionService, cfg.SweepSchedule)
	sweeper.Run()

	// Set up router
	router := api.NewRouter(cfg, sessionService, goalService, transactionService)

	// Set up server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.ServerPort),
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		log.Info().Int("port", cfg.ServerPort).Msg("Server starting")
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("ListenAndServe()")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	sweeper.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exiting")
}
