package tasks

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/kestrelworks/routekit/pkg/handlers"
	"github.com/kestrelworks/routekit/pkg/routes"
)

// Handler provides HTTP handlers for task CRUD operations and satisfies the
// route registrar contract.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// NewHandler creates a task HTTP handler.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger,
	}
}

// Map declares the task routes on the supplied router handle.
func (h *Handler) Map(r *routes.Router) error {
	r.Group("/tasks", func(g *routes.Router) {
		g.Get("", h.List)
		g.Post("", h.Create)
		g.Get("/{id}", h.Find)
		g.Put("/{id}", h.Update)
		g.Delete("/{id}", h.Delete)
	})
	return nil
}

// List handles GET /tasks, optionally filtered by ?status=open|done.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	status := Status(r.URL.Query().Get("status"))

	result, err := h.sys.List(r.Context(), status)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Find handles GET /tasks/{id}.
func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	result, err := h.sys.Find(r.Context(), id)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Create handles POST /tasks.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	cmd, err := handlers.DecodeJSON[CreateCommand](r)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	if err := cmd.Validate(); err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	result, err := h.sys.Create(r.Context(), cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, result)
}

// Update handles PUT /tasks/{id}.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	cmd, err := handlers.DecodeJSON[UpdateCommand](r)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	if err := cmd.Validate(); err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	result, err := h.sys.Update(r.Context(), id, cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Delete handles DELETE /tasks/{id}.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	if err := h.sys.Delete(r.Context(), id); err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondNoContent(w)
}
