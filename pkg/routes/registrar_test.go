package routes_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kestrelworks/routekit/pkg/routes"
)

// recording implements routes.Registrar and records the order of Map calls.
type recording struct {
	name  string
	calls *[]string
	route string
}

func (r *recording) Map(router *routes.Router) error {
	*r.calls = append(*r.calls, r.name)
	if r.route != "" {
		router.Get(r.route, okHandler(r.name))
	}
	return nil
}

// failing implements routes.Registrar and returns its error from Map.
type failing struct {
	err error
}

func (f *failing) Map(router *routes.Router) error {
	return f.err
}

// constructible does not implement routes.Registrar but can be built.
type constructible struct{}

func TestLoad_AppliesInOrder(t *testing.T) {
	var calls []string
	router := routes.NewRouter()

	err := routes.Load(router,
		&recording{name: "a", calls: &calls, route: "/a"},
		&recording{name: "b", calls: &calls, route: "/b"},
		&recording{name: "c", calls: &calls, route: "/c"},
	)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	want := []string{"a", "b", "c"}
	if len(calls) != len(want) {
		t.Fatalf("calls = %v, want %v", calls, want)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Errorf("calls[%d] = %q, want %q", i, calls[i], want[i])
		}
	}

	for _, path := range []string{"/a", "/b", "/c"} {
		req := httptest.NewRequest("GET", path, nil)
		rec := httptest.NewRecorder()
		router.Handler().ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Errorf("GET %s status = %d, want %d", path, rec.Code, http.StatusOK)
		}
	}
}

func TestLoad_FactoryConstructedOncePerEntry(t *testing.T) {
	var calls []string
	constructed := 0
	factory := routes.Factory(func() routes.Registrar {
		constructed++
		return &recording{name: "built", calls: &calls}
	})

	if err := routes.Load(routes.NewRouter(), factory); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if constructed != 1 {
		t.Errorf("factory constructed %d times, want 1", constructed)
	}
	if len(calls) != 1 {
		t.Errorf("Map called %d times, want 1", len(calls))
	}
}

func TestLoad_InvalidEntryFailsFast(t *testing.T) {
	var calls []string
	router := routes.NewRouter()

	err := routes.Load(router,
		&recording{name: "a", calls: &calls, route: "/a"},
		"not-a-registrar",
		&recording{name: "b", calls: &calls, route: "/b"},
	)

	var invalid *routes.InvalidRegistrarError
	if !errors.As(err, &invalid) {
		t.Fatalf("Load() error = %v, want *InvalidRegistrarError", err)
	}
	if invalid.Value != "not-a-registrar" {
		t.Errorf("Value = %v, want the offending entry", invalid.Value)
	}

	// Entries before the failure were applied; entries after it were not.
	if len(calls) != 1 || calls[0] != "a" {
		t.Errorf("calls = %v, want [a]", calls)
	}

	req := httptest.NewRequest("GET", "/a", nil)
	rec := httptest.NewRecorder()
	router.Handler().ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("GET /a status = %d, want %d", rec.Code, http.StatusOK)
	}

	req = httptest.NewRequest("GET", "/b", nil)
	rec = httptest.NewRecorder()
	router.Handler().ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("GET /b status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestLoad_RejectsNonRegistrars(t *testing.T) {
	tests := []struct {
		name  string
		entry any
	}{
		{"string", "tasks"},
		{"int", 42},
		{"nil entry", nil},
		{"constructible non-registrar", constructible{}},
		{"pointer to non-registrar", &constructible{}},
		{"plain function", func() {}},
		{"nil factory", routes.Factory(nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := routes.Load(routes.NewRouter(), tt.entry)

			var invalid *routes.InvalidRegistrarError
			if !errors.As(err, &invalid) {
				t.Fatalf("Load() error = %v, want *InvalidRegistrarError", err)
			}
		})
	}
}

func TestLoad_FactoryReturningNilRejected(t *testing.T) {
	factory := routes.Factory(func() routes.Registrar { return nil })

	err := routes.Load(routes.NewRouter(), factory)

	var invalid *routes.InvalidRegistrarError
	if !errors.As(err, &invalid) {
		t.Fatalf("Load() error = %v, want *InvalidRegistrarError", err)
	}
}

func TestLoad_DuplicatesReapply(t *testing.T) {
	var calls []string
	reg := &recording{name: "dup", calls: &calls}

	if err := routes.Load(routes.NewRouter(), reg, reg); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(calls) != 2 {
		t.Errorf("Map called %d times, want 2", len(calls))
	}
}

func TestLoad_MapErrorPropagatesUnchanged(t *testing.T) {
	wantErr := errors.New("malformed route definition")

	err := routes.Load(routes.NewRouter(), &failing{err: wantErr})

	if !errors.Is(err, wantErr) {
		t.Errorf("Load() error = %v, want %v", err, wantErr)
	}
}

func TestLoad_RegistrarFunc(t *testing.T) {
	called := false
	fn := routes.RegistrarFunc(func(r *routes.Router) error {
		called = true
		return nil
	})

	if err := routes.Load(routes.NewRouter(), fn); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !called {
		t.Error("RegistrarFunc was not invoked")
	}
}
