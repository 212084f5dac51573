// Package api assembles the API composite registrar: every feature registrar
// mounts under the configured base path behind the shared API middleware.
package api

import (
	"log/slog"

	"github.com/kestrelworks/routekit/internal/config"
	"github.com/kestrelworks/routekit/internal/status"
	"github.com/kestrelworks/routekit/internal/tasks"
	"github.com/kestrelworks/routekit/pkg/middleware"
	"github.com/kestrelworks/routekit/pkg/routes"
)

// Domain carries the feature systems the API registrars depend on.
type Domain struct {
	Tasks tasks.System
}

// New builds the API composite registrar. Feature registrars are bound by
// name in a registry and selected, in order, by cfg.API.Registrars, so the
// mounted surface is declarative configuration. An unknown name fails here,
// before any registrar is constructed.
func New(cfg *config.Config, logger *slog.Logger, domain *Domain) (routes.Registrar, error) {
	registry := routes.NewRegistry()

	bindings := map[string]routes.Factory{
		"status": func() routes.Registrar { return status.NewHandler(cfg.Service, cfg.Version) },
		"tasks":  func() routes.Registrar { return tasks.NewHandler(domain.Tasks, logger) },
	}
	for name, factory := range bindings {
		if err := registry.Register(name, factory); err != nil {
			return nil, err
		}
	}

	set, err := registry.Set(cfg.API.Registrars...)
	if err != nil {
		return nil, err
	}

	return routes.Composite{
		Prefix: cfg.API.BasePath,
		// CORS is not in this chain: route middleware only runs once the mux
		// matches a method-qualified pattern, which an OPTIONS preflight never
		// does. The server applies CORS around the whole handler instead.
		Middleware: []routes.Middleware{
			middleware.RequestID(),
			middleware.Logger(logger),
			middleware.MaxBody(cfg.Server.MaxBodySizeBytes()),
		},
		Registrars: set,
	}, nil
}
