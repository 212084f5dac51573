package main

import (
	"log/slog"
	"os"

	"github.com/kestrelworks/routekit/internal/config"
	"github.com/kestrelworks/routekit/internal/database"
	"github.com/kestrelworks/routekit/internal/logger"
	"github.com/kestrelworks/routekit/internal/server"
	"github.com/kestrelworks/routekit/pkg/middleware"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	cfg, err := config.Load()
	if err != nil {
		log.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	log = logger.New(&cfg.Logging)

	db, err := database.New(&cfg.Database, log)
	if err != nil {
		log.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	router, err := buildRouter(cfg, log, db)
	if err != nil {
		log.Error("route registration failed", "error", err)
		os.Exit(1)
	}

	log.Info("service initialized",
		"service", cfg.Service,
		"version", cfg.Version,
		"addr", cfg.Server.Addr(),
	)

	// CORS wraps the whole router so OPTIONS preflights are answered before
	// pattern matching can 405 them.
	handler := middleware.CORS(&cfg.API.CORS)(middleware.TrimSlash()(router.Handler()))

	srv := server.New(&cfg.Server, handler, log)
	if err := srv.Run(); err != nil {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
