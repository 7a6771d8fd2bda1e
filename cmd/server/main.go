package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/VutaRaghu/ops-oasis-eats-app/internal/config"
	"github.com/VutaRaghu/ops-oasis-eats-app/internal/infra"
	"github.com/VutaRaghu/ops-oasis-eats-app/internal/repository"
	"github.com/VutaRaghu/ops-oasis-eats-app/internal/router"
	"github.com/VutaRaghu/ops-oasis-eats-app/internal/worker"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Structured logger — dev: pretty, prod: JSON
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}

	rdb, err := infra.NewRedis(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}

	// Start goroutine worker pool for async tasks (sheet mirroring, email).
	// Worker handlers are wired here (composition root) so that the pool
	// has full access to all infrastructure dependencies.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sheetsClient := infra.NewSheetsClient(cfg.SheetsBridgeURL)
	sheetsCB := infra.NewCircuitBreaker(infra.DefaultCBConfig())
	mailer := infra.NewMailer(cfg)
	pushRepo := repository.NewSheetPushRepository(db)

	workerHandlers := &worker.WorkerHandlers{
		Sheets: worker.NewSheetsWorker(sheetsClient, sheetsCB, pushRepo, cfg.SpreadsheetID),
		Email:  worker.NewEmailWorker(mailer),
	}
	worker.StartWorkerPool(ctx, rdb, workerHandlers, cfg.WorkerPoolSize)

	// Scheduled retries for sheet pushes that exhausted their in-process
	// attempts; dead-letters after the retry ceiling.
	worker.StartRetryCron(ctx, worker.RetryCronConfig{
		PushRepo:      pushRepo,
		SheetsClient:  sheetsClient,
		CB:            sheetsCB,
		RDB:           rdb,
		SpreadsheetID: cfg.SpreadsheetID,
	})

	r := router.New(cfg, db, rdb, sheetsCB)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM
	go func() {
		log.Info().Msgf("Oasis Eats backend listening on :%d", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server…")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("forced shutdown")
	}
	log.Info().Msg("server exited")
}
