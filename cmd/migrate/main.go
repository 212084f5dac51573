package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/kestrelworks/routekit/internal/config"
	"github.com/kestrelworks/routekit/internal/database"
	"github.com/kestrelworks/routekit/internal/logger"
)

func main() {
	down := flag.Bool("down", false, "roll back the most recent migration")
	version := flag.Bool("version", false, "print the current migration version")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stdout, nil))

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

	switch {
	case *version:
		v, dirty, err := db.Version()
		if err != nil {
			log.Error("failed to read migration version", "error", err)
			os.Exit(1)
		}
		log.Info("migration version", "version", v, "dirty", dirty)
	case *down:
		if err := db.MigrateDown(); err != nil {
			log.Error("failed to roll back migration", "error", err)
			os.Exit(1)
		}
	default:
		if err := db.Migrate(); err != nil {
			log.Error("failed to run migrations", "error", err)
			os.Exit(1)
		}
	}
}
