// Package main is the entry point for the Trip Planner API server.
// Its sole responsibility is wiring dependencies together and starting the
// server. No business logic belongs here.
package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib" // registers "pgx" driver for database/sql
	"github.com/pressly/goose/v3"
	"github.com/sethvargo/go-retry"

	"github.com/tripkit/trip-planner/backend/internal/config"
	"github.com/tripkit/trip-planner/backend/internal/handler"
	"github.com/tripkit/trip-planner/backend/internal/middleware"
	"github.com/tripkit/trip-planner/backend/internal/repo"
	"github.com/tripkit/trip-planner/backend/internal/service"
	"github.com/tripkit/trip-planner/backend/migrations"
	"github.com/tripkit/trip-planner/backend/spec"
)

// maxRequestBody caps incoming request bodies. Activity strings and notes
// are small; anything near 1MB is not a trip-planner payload.
const maxRequestBody = 1 << 20

func main() {
	// --- Config -----------------------------------------------------------
	cfg, err := config.Load()
	if err != nil {
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	// log/slog is the stdlib structured logger. The JSON handler writes
	// machine-readable output suitable for log aggregators.
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// --- Database ---------------------------------------------------------
	// pgxpool manages a pool of Postgres connections.
	// New() does not open connections immediately — the first query does.
	pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to create database pool", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	// Verify the DB is reachable before accepting traffic. The database
	// often comes up alongside the server (compose, k8s), so ping with a
	// fibonacci backoff instead of failing on the first refused connection.
	pingCtx, cancelPing := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelPing()
	err = retry.Do(pingCtx, retry.WithMaxDuration(30*time.Second, retry.NewFibonacci(500*time.Millisecond)),
		func(ctx context.Context) error {
			if err := pool.Ping(ctx); err != nil {
				return retry.RetryableError(err)
			}
			return nil
		})
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	slog.Info("database connection established")

	// --- Migrations -------------------------------------------------------
	// Apply embedded migrations on every start; goose no-ops when the
	// schema is already current.
	if err := migrateUp(cfg.DatabaseURL); err != nil {
		slog.Error("failed to apply migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("database schema up to date")

	// --- Services ---------------------------------------------------------
	tripRepo := repo.NewTripRepo(pool)
	dayRepo := repo.NewDayRepo(pool)
	noteRepo := repo.NewNoteRepo(pool)

	tripSvc := service.NewTripService(tripRepo, dayRepo)
	daySvc := service.NewDayService(tripRepo, dayRepo)
	exportSvc := service.NewExportService(tripRepo, dayRepo)
	notesSvc := service.NewNotesService(noteRepo, cfg.NotesDebounce, func(dayID uuid.UUID, err error) {
		slog.Error("note write failed", "day_id", dayID, "error", err)
	})

	// --- Router -----------------------------------------------------------
	// Middleware is applied in order: RequestID → RealIP → Logger →
	// Recoverer → CORS → body limit.
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(maxRequestBody))

	srv := handler.NewServer(tripSvc, daySvc, notesSvc, exportSvc)
	r.Mount("/", srv.Routes())

	r.Get("/openapi.yaml", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(spec.OpenAPI)
	})

	// --- HTTP Server ------------------------------------------------------
	// Explicit timeouts prevent slowloris and resource exhaustion attacks.
	httpSrv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown: wait for an OS signal, give in-flight requests up
	// to 15 seconds, then flush any notes still sitting in the debounce
	// window so the last edits are not lost.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "addr", httpSrv.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	slog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
	if err := notesSvc.Close(ctx); err != nil {
		slog.Error("notes flush error", "error", err)
	}
	slog.Info("server stopped")
}

// migrateUp applies all embedded migrations through the database/sql pgx
// driver, which goose requires.
func migrateUp(dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return err
	}
	_, err = provider.Up(context.Background())
	return err
}
