package httpadapter

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"log/slog"

	"reviewsphere/internal/core/domain"
	"reviewsphere/internal/core/port"
)

// actorFrom reads the identity resolved by the upstream auth layer. A
// request without an identity is treated as an anonymous influencer-less
// actor and will fail permission checks downstream.
func actorFrom(r *http.Request) domain.Actor {
	id, _ := strconv.ParseInt(r.Header.Get("X-User-ID"), 10, 64)
	return domain.Actor{
		UserID: id,
		Role:   domain.Role(r.Header.Get("X-User-Role")),
	}
}

func idParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

// writeError maps domain errors onto HTTP status codes. Every rejection
// carries the specific unmet precondition back to the caller.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		validation *domain.ValidationError
		conflict   *domain.StateConflictError
	)
	switch {
	case errors.As(err, &validation):
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: validation.Error()})
	case errors.Is(err, port.ErrInsufficientPoints):
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.As(err, &conflict):
		h.writeJSON(w, http.StatusConflict, errorResponse{Error: conflict.Error()})
	case errors.Is(err, port.ErrDuplicateApplication):
		h.writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		h.writeJSON(w, http.StatusNotFound, errorResponse{Error: "not found"})
	case errors.Is(err, domain.ErrForbidden):
		h.writeJSON(w, http.StatusForbidden, errorResponse{Error: "forbidden"})
	default:
		h.logger.Error("internal error", slog.String("path", r.URL.Path), slog.Any("error", err))
		h.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}
