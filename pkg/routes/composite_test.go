package routes_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kestrelworks/routekit/pkg/routes"
)

func TestComposite_PrefixAppliesToNestedRoutes(t *testing.T) {
	router := routes.NewRouter()

	api := routes.Composite{
		Prefix: "/api",
		Registrars: []any{
			routes.RegistrarFunc(func(r *routes.Router) error {
				r.Get("/user", okHandler("user"))
				return nil
			}),
		},
	}

	if err := routes.Load(router, api); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	req := httptest.NewRequest("GET", "/api/user", nil)
	rec := httptest.NewRecorder()
	router.Handler().ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("GET /api/user status = %d, want %d", rec.Code, http.StatusOK)
	}

	// The unprefixed path must not resolve.
	req = httptest.NewRequest("GET", "/user", nil)
	rec = httptest.NewRecorder()
	router.Handler().ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("GET /user status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestComposite_MiddlewareScopedToNestedSet(t *testing.T) {
	router := routes.NewRouter()

	err := routes.Load(router,
		routes.RegistrarFunc(func(r *routes.Router) error {
			r.Get("/outside", okHandler("ok"))
			return nil
		}),
		routes.Composite{
			Prefix:     "/api",
			Middleware: []routes.Middleware{headerMiddleware("X-Scope", "api")},
			Registrars: []any{
				routes.RegistrarFunc(func(r *routes.Router) error {
					r.Get("/inside", okHandler("ok"))
					return nil
				}),
			},
		},
	)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	req := httptest.NewRequest("GET", "/api/inside", nil)
	rec := httptest.NewRecorder()
	router.Handler().ServeHTTP(rec, req)
	if rec.Header().Get("X-Scope") != "api" {
		t.Error("composite middleware did not wrap nested route")
	}

	req = httptest.NewRequest("GET", "/outside", nil)
	rec = httptest.NewRecorder()
	router.Handler().ServeHTTP(rec, req)
	if rec.Header().Get("X-Scope") != "" {
		t.Error("composite middleware leaked outside the nested set")
	}
}

func TestComposite_NestedComposites(t *testing.T) {
	router := routes.NewRouter()

	v1 := routes.Composite{
		Prefix: "/v1",
		Registrars: []any{
			routes.RegistrarFunc(func(r *routes.Router) error {
				r.Get("/tasks", okHandler("ok"))
				return nil
			}),
		},
	}
	api := routes.Composite{
		Prefix:     "/api",
		Registrars: []any{v1},
	}

	if err := routes.Load(router, api); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	req := httptest.NewRequest("GET", "/api/v1/tasks", nil)
	rec := httptest.NewRecorder()
	router.Handler().ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("GET /api/v1/tasks status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestComposite_InvalidNestedEntryPropagates(t *testing.T) {
	api := routes.Composite{
		Prefix:     "/api",
		Registrars: []any{"not-a-registrar"},
	}

	err := routes.Load(routes.NewRouter(), api)

	var invalid *routes.InvalidRegistrarError
	if !errors.As(err, &invalid) {
		t.Fatalf("Load() error = %v, want *InvalidRegistrarError", err)
	}
}
