package httpadapter

import (
	"encoding/json"
	"net/http"

	"reviewsphere/internal/core/domain"
)

// handleGetSettings returns every platform setting. Reads are public so
// the pricing calculator on the client can mirror server-side fees.
func (h *Handler) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.settings.All(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, settings)
}

// handlePutSettings overwrites the provided settings keys. Administrator
// only.
func (h *Handler) handlePutSettings(w http.ResponseWriter, r *http.Request) {
	if !actorFrom(r).IsAdmin() {
		h.writeError(w, r, domain.ErrForbidden)
		return
	}
	var body map[string]string
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.writeError(w, r, domain.Invalid("body", "invalid JSON"))
		return
	}
	for key, value := range body {
		if err := h.settings.Set(r.Context(), key, value); err != nil {
			h.writeError(w, r, err)
			return
		}
	}
	w.WriteHeader(http.StatusNoContent)
}
