package status_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kestrelworks/routekit/internal/status"
	"github.com/kestrelworks/routekit/pkg/routes"
)

func TestHandler_Status(t *testing.T) {
	router := routes.NewRouter()
	if err := routes.Load(router, status.NewHandler("routekit", "1.0.0")); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	req := httptest.NewRequest("GET", "/status", nil)
	rec := httptest.NewRecorder()
	router.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var report status.Report
	if err := json.NewDecoder(rec.Body).Decode(&report); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if report.Service != "routekit" {
		t.Errorf("Service = %q, want %q", report.Service, "routekit")
	}
	if report.Version != "1.0.0" {
		t.Errorf("Version = %q, want %q", report.Version, "1.0.0")
	}
	if report.Uptime == "" {
		t.Error("Uptime is empty")
	}
}
