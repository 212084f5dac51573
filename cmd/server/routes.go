package main

import (
	"log/slog"
	"net/http"

	"github.com/kestrelworks/routekit/internal/api"
	"github.com/kestrelworks/routekit/internal/config"
	"github.com/kestrelworks/routekit/internal/database"
	"github.com/kestrelworks/routekit/internal/tasks"
	"github.com/kestrelworks/routekit/pkg/routes"
)

// buildRouter obtains the shared router handle and applies the top-level
// registrar set: infrastructure probes at the root and the API composite
// under its base path. A load failure aborts boot before any request is
// served.
func buildRouter(cfg *config.Config, log *slog.Logger, db database.System) (*routes.Router, error) {
	apiRegistrar, err := api.New(cfg, log, &api.Domain{
		Tasks: tasks.New(db.Connection(), log),
	})
	if err != nil {
		return nil, err
	}

	router := routes.NewRouter()
	if err := routes.Load(router,
		healthRoutes(db),
		apiRegistrar,
	); err != nil {
		return nil, err
	}

	return router, nil
}

// healthRoutes declares the liveness and readiness probes.
func healthRoutes(db database.System) routes.Registrar {
	return routes.RegistrarFunc(func(r *routes.Router) error {
		r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("OK"))
		})

		r.Get("/readyz", func(w http.ResponseWriter, req *http.Request) {
			if err := db.Ping(req.Context()); err != nil {
				w.WriteHeader(http.StatusServiceUnavailable)
				w.Write([]byte("NOT READY"))
				return
			}
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("READY"))
		})

		return nil
	})
}
