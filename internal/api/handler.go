// internal/api/handler.go
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	practicesession "github.com/quizpace/backend/internal/domain/practice_session"
	"github.com/quizpace/backend/internal/service"
	"github.com/quizpace/backend/internal/store"
)

// Handler holds all dependencies needed by HTTP handlers.
// Instead of relying on package-level globals, every handler method
// receives its dependencies through this struct.
type Handler struct {
	store    store.Store
	sessions *service.SessionService
	logger   *slog.Logger
}

// NewHandler creates a Handler with the given dependencies.
func NewHandler(s store.Store, sessions *service.SessionService, logger *slog.Logger) *Handler {
	return &Handler{
		store:    s,
		sessions: sessions,
		logger:   logger,
	}
}

// Validator is implemented by request types that check their own fields.
type Validator interface {
	Validate() error
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// decodeJSON decodes the request body into v. Returns false (and writes a
// 400) on malformed input.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return false
	}
	return true
}

// decodeAndValidate decodes the request body and runs its validation.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, v Validator) bool {
	if !decodeJSON(w, r, v) {
		return false
	}
	if err := v.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

// handleStoreError checks for common store errors and writes the appropriate
// HTTP response. Returns true if an error was handled (caller should return).
func (h *Handler) handleStoreError(w http.ResponseWriter, err error, entity string) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, store.ErrNotFound) {
		http.Error(w, entity+" not found", http.StatusNotFound)
		return true
	}
	if errors.Is(err, service.ErrNoActiveSession) {
		http.Error(w, "no active session", http.StatusNotFound)
		return true
	}
	if errors.Is(err, service.ErrInvalidSession) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return true
	}
	h.logger.Error("store error", "error", err, "entity", entity)
	http.Error(w, "internal error", http.StatusInternalServerError)
	return true
}

// handleEngineError maps engine errors onto HTTP statuses. Returns true if
// an error was handled.
func (h *Handler) handleEngineError(w http.ResponseWriter, err error) bool {
	if err == nil {
		return false
	}

	var subErr *practicesession.SubmissionError
	switch {
	case errors.Is(err, practicesession.ErrSessionCompleted):
		http.Error(w, "session already completed", http.StatusConflict)
	case errors.Is(err, practicesession.ErrSessionUnavailable):
		http.Error(w, "session unavailable", http.StatusNotFound)
	case errors.Is(err, practicesession.ErrAtFirstQuestion):
		http.Error(w, "already at the first question", http.StatusConflict)
	case errors.As(err, &subErr):
		// The engine restored its state; the client may retry.
		http.Error(w, "scoring failed, please retry", http.StatusBadGateway)
	default:
		h.logger.Error("engine error", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
	return true
}
