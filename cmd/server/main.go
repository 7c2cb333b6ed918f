package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"foodcourt/internal/adapters/postgres"
	"foodcourt/internal/adapters/rabbitmq"
	"foodcourt/internal/adapters/rediscache"
	"foodcourt/internal/auth"
	"foodcourt/internal/config"
	"foodcourt/internal/core/service"
	"foodcourt/internal/httpx"
	"foodcourt/internal/journal"
	journalsqlite "foodcourt/internal/journal/sqlite"
	"foodcourt/internal/pkg/telemetry"
)

func main() {
	telemetry.InitLogger()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()

	shutdownTracer, err := telemetry.SetupTracer(ctx, "foodcourt", cfg.OTLPEndpoint)
	if err != nil {
		slog.Error("failed to initialise tracer", "error", err)
		os.Exit(1)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracer(shutdownCtx); err != nil {
			slog.Error("tracer shutdown error", "error", err)
		}
	}()

	store, err := postgres.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to connect to postgres", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	if err := store.ApplySchema(ctx); err != nil {
		slog.Error("failed to apply schema", "error", err)
		os.Exit(1)
	}

	publisher, err := rabbitmq.Dial(cfg.RabbitURL)
	if err != nil {
		slog.Error("failed to connect to rabbitmq", "error", err)
		os.Exit(1)
	}
	defer publisher.Close()

	cache := rediscache.New(cfg.RedisAddr)
	defer cache.Close()
	if err := cache.Ping(ctx); err != nil {
		slog.Error("failed to connect to redis", "error", err)
		os.Exit(1)
	}

	// The journal is optional; without it events are still published,
	// just not recorded locally.
	var journalRepo journal.Repository
	if cfg.JournalPath != "" {
		repo, err := journalsqlite.Open(cfg.JournalPath)
		if err != nil {
			slog.Error("failed to open event journal", "path", cfg.JournalPath, "error", err)
			os.Exit(1)
		}
		defer repo.Close()
		journalRepo = repo
	}

	tokens := auth.NewManager(cfg.JWTSecret, "foodcourt", auth.TokenTTL, rediscache.NewRevocationSet(cache))

	handlers := httpx.Handlers{
		Users:       httpx.NewUsersHandler(service.NewUsers(store, tokens)),
		Restaurants: httpx.NewRestaurantsHandler(service.NewRestaurants(store, cache)),
		Categories:  httpx.NewCategoriesHandler(service.NewCategories(store, cache)),
		Menus:       httpx.NewMenusHandler(service.NewMenus(store, publisher, cache, journalRepo)),
		Orders:      httpx.NewOrdersHandler(service.NewOrders(store, publisher, cache, journalRepo)),
	}

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           httpx.NewRouter(handlers, tokens),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("http server running", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("http server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("http shutdown error", "error", err)
	}
	slog.Info("server stopped")
}
