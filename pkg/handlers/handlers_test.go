package handlers_test

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/kestrelworks/routekit/pkg/handlers"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
}

func TestRespondJSON(t *testing.T) {
	rec := httptest.NewRecorder()

	handlers.RespondJSON(rec, http.StatusOK, map[string]string{"name": "routekit"})

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}

	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["name"] != "routekit" {
		t.Errorf("name = %q, want %q", body["name"], "routekit")
	}
}

func TestRespondNoContent(t *testing.T) {
	rec := httptest.NewRecorder()

	handlers.RespondNoContent(rec)

	if rec.Code != http.StatusNoContent {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNoContent)
	}
	if rec.Body.Len() != 0 {
		t.Errorf("body = %q, want empty", rec.Body.String())
	}
}

func TestRespondError(t *testing.T) {
	rec := httptest.NewRecorder()

	handlers.RespondError(rec, testLogger(), http.StatusNotFound, errors.New("task not found"))

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}

	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["error"] != "task not found" {
		t.Errorf("error = %q, want %q", body["error"], "task not found")
	}
}

func TestDecodeJSON(t *testing.T) {
	type payload struct {
		Title string `json:"title"`
	}

	tests := []struct {
		name    string
		body    string
		want    string
		wantErr bool
	}{
		{"valid payload", `{"title":"ship it"}`, "ship it", false},
		{"unknown field rejected", `{"title":"x","bogus":true}`, "", true},
		{"malformed json", `{"title":`, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/", strings.NewReader(tt.body))

			got, err := handlers.DecodeJSON[payload](req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("DecodeJSON() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got.Title != tt.want {
				t.Errorf("Title = %q, want %q", got.Title, tt.want)
			}
		})
	}
}
