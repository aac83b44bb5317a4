// Package main is the entry point for the Haul Ledger API server.
// Its sole responsibility is wiring dependencies together and starting the server.
// No business logic belongs here.
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
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib" // registers "pgx" driver for database/sql

	"github.com/haulledger/backend/internal/auth"
	"github.com/haulledger/backend/internal/config"
	"github.com/haulledger/backend/internal/events"
	"github.com/haulledger/backend/internal/handler"
	"github.com/haulledger/backend/internal/handler/gen"
	"github.com/haulledger/backend/internal/middleware"
	"github.com/haulledger/backend/internal/repo"
	"github.com/haulledger/backend/internal/service"
	"github.com/haulledger/backend/internal/summary"
	"github.com/haulledger/backend/migrations"
	"github.com/haulledger/backend/spec"
)

func main() {
	// --- Config -----------------------------------------------------------
	cfg, err := config.Load()
	if err != nil {
		// Use plain stderr before the logger is configured.
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// rootCtx stops background loops once the server has shut down.
	rootCtx, cancelRoot := context.WithCancel(context.Background())
	defer cancelRoot()

	// --- Database ---------------------------------------------------------
	if err := migrate(rootCtx, cfg.DatabaseURL); err != nil {
		slog.Error("failed to apply migrations", "error", err)
		os.Exit(1)
	}

	// New() does not open connections immediately; the first query does.
	pool, err := pgxpool.New(rootCtx, cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to create database pool", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	// Verify the DB is reachable before accepting traffic.
	if err := pool.Ping(rootCtx); err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	slog.Info("database connection established")

	// --- Event bus --------------------------------------------------------
	// The cache TTL bounds staleness from change events lost between instances.
	cache := summary.NewCache(cfg.SummaryTTL)

	var bus events.Bus = events.NewMemoryBus()
	if cfg.RedisURL != "" {
		client, err := events.Dial(cfg.RedisURL)
		if err != nil {
			slog.Error("failed to connect to redis", "error", err)
			os.Exit(1)
		}
		defer client.Close()

		redisBus := events.NewRedisBus(client, logger)
		redisBus.OnResync(cache.Reset)
		go func() {
			if err := redisBus.Run(rootCtx); err != nil && !errors.Is(err, context.Canceled) {
				slog.Error("redis event relay stopped", "error", err)
			}
		}()
		bus = redisBus
		slog.Info("redis event bus enabled")
	}

	// --- Services ---------------------------------------------------------
	tripRepo := repo.NewTripRepo(pool)
	crossingRepo := repo.NewCrossingRepo(pool)
	vehicleRepo := repo.NewVehicleRepo(pool)

	unsubscribe := bus.Subscribe(cache.Handle)
	defer unsubscribe()

	vehicleSvc := service.NewVehicleService(vehicleRepo)
	tripSvc := service.NewTripService(tripRepo, crossingRepo, vehicleRepo, bus, logger)
	mileageSvc := service.NewMileageService(tripRepo, crossingRepo, cache)
	exportSvc := service.NewExportService(mileageSvc)

	// --- Router -----------------------------------------------------------
	// Middleware is applied in order: RequestID → RealIP → Logger → Recoverer
	// → CORS → body limit → auth. The logger sits before auth so rejected
	// requests are logged too.
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(cfg.MaxBodyBytes))
	r.Use(middleware.NewAuthHandler(auth.NewVerifier(cfg.JWTSecret, cfg.JWTIssuer), logger))

	r.Get("/openapi.yaml", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(spec.OpenAPI)
	})
	// Shutdown does not wait for hijacked websocket connections; they are
	// closed through streamCtx instead.
	streamCtx, cancelStreams := context.WithCancel(context.Background())
	defer cancelStreams()
	r.Handle("/events", handler.NewEventStream(streamCtx, bus, logger, cfg.CORSOrigins))

	// gen.NewStrictHandlerWithOptions adapts our StrictServerInterface
	// implementation to the lower-level ServerInterface chi expects.
	server := handler.NewServer(vehicleSvc, tripSvc, mileageSvc, exportSvc)
	gen.HandlerWithOptions(
		gen.NewStrictHandlerWithOptions(server, nil, handler.StrictOptions(logger)),
		gen.ChiServerOptions{BaseRouter: r, ErrorHandlerFunc: handler.ParamErrorHandler},
	)

	// --- HTTP Server ------------------------------------------------------
	srv := newHTTPServer(":"+cfg.Port, r, cancelStreams)

	// Graceful shutdown: wait for OS signal, then give in-flight requests
	// up to 15 seconds to complete before forcefully closing.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	slog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}
	cancelRoot()
	slog.Info("server stopped")
}

// newHTTPServer builds the server. Explicit timeouts prevent slowloris and
// resource exhaustion attacks; websocket connections manage their own
// deadlines after the upgrade. Request contexts are not tied to any root
// context, so Shutdown lets in-flight requests finish while onShutdown closes
// the hijacked streams.
func newHTTPServer(addr string, h http.Handler, onShutdown func()) *http.Server {
	srv := &http.Server{
		Addr:         addr,
		Handler:      h,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	srv.RegisterOnShutdown(onShutdown)
	return srv
}

// migrate applies pending schema migrations over a short-lived database/sql
// connection, which goose requires.
func migrate(ctx context.Context, databaseURL string) error {
	db, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return err
	}
	defer db.Close()

	applied, err := migrations.Up(ctx, db)
	if err != nil {
		return err
	}
	slog.Info("migrations applied", "count", applied)
	return nil
}
