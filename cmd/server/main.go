package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mariano/flashdeck/internal/api"
	"github.com/mariano/flashdeck/internal/config"
	"github.com/mariano/flashdeck/internal/db"
	"github.com/mariano/flashdeck/internal/jobs"
	"github.com/mariano/flashdeck/internal/logger"
	"github.com/mariano/flashdeck/internal/quiz"
	"github.com/mariano/flashdeck/internal/repository/sqlite"
	"github.com/mariano/flashdeck/internal/services"
	"github.com/mariano/flashdeck/internal/worker"
)

func main() {
	cfg := config.Load()

	log := logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithColors(true),
	)
	logger.SetDefault(log)

	log.Info("===========================================")
	log.Info("FlashDeck Server Starting")
	log.Info("===========================================")
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration: %v", err)
		os.Exit(1)
	}
	log.Info("configuration loaded")
	log.Debug("addr=%s", cfg.Addr)
	log.Debug("db_path=%s", cfg.DBPath)
	log.Debug("log_level=%s", cfg.LogLevel)
	log.Debug("cors_origins=%v", cfg.CORSOrigins)
	log.Debug("persist_worker_count=%d", cfg.PersistWorkerCount)
	log.Debug("persist_queue_size=%d", cfg.PersistQueueSize)

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Error("failed to open database: %v", err)
		os.Exit(1)
	}
	defer func() {
		log.Debug("closing database connection")
		database.Close()
	}()

	userRepo := sqlite.NewUserRepository(database.DB)
	cardRepo := sqlite.NewFlashcardRepository(database.DB)
	deckRepo := sqlite.NewDeckRepository(database.DB)
	resultRepo := sqlite.NewQuizResultRepository(database.DB)
	progressRepo := sqlite.NewProgressRepository(database.DB)
	sharingRepo := sqlite.NewSharingRepository(database.DB)
	statsRepo := sqlite.NewStatsRepository(database.DB)

	persistPool := worker.NewPool(cfg.PersistWorkerCount, cfg.PersistQueueSize)
	queue := jobs.NewWorkerQueue(persistPool, resultRepo, progressRepo)

	srv := &api.Server{
		Users:       services.NewUserService(userRepo),
		Flashcards:  services.NewFlashcardService(cardRepo),
		Decks:       services.NewDeckService(deckRepo, cardRepo),
		Quiz:        services.NewQuizService(cardRepo, resultRepo, quiz.NewStore(), queue),
		Study:       services.NewStudyService(cardRepo, progressRepo, queue),
		Sharing:     services.NewSharingService(sharingRepo, deckRepo, userRepo),
		Stats:       services.NewStatsService(statsRepo),
		CORSOrigins: cfg.CORSOrigins,
	}

	ctx, cancel := context.WithCancel(context.Background())
	persistPool.Start(ctx)

	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      srv.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("HTTP server listening on %s", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error: %v", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	sig := <-stop

	log.Info("received signal %v, initiating graceful shutdown", sig)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	log.Debug("shutting down HTTP server")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error: %v", err)
	}

	log.Debug("draining persistence pool")
	persistPool.Stop()
	cancel()

	log.Info("===========================================")
	log.Info("FlashDeck Server Stopped")
	log.Info("===========================================")
}
