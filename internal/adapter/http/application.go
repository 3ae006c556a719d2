package httpadapter

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"reviewsphere/internal/core/domain"
)

func parseOptionalInt(s string) (int64, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.ParseInt(s, 10, 64)
}

type applicationResponse struct {
	ID           int64      `json:"id"`
	CampaignID   int64      `json:"campaign_id"`
	InfluencerID int64      `json:"influencer_id"`
	Status       string     `json:"status"`
	Message      string     `json:"message"`
	AppliedAt    time.Time  `json:"applied_at"`
	ReviewedAt   *time.Time `json:"reviewed_at,omitempty"`
}

func toApplicationResponse(a domain.Application) applicationResponse {
	return applicationResponse{
		ID:           a.ID,
		CampaignID:   a.CampaignID,
		InfluencerID: a.InfluencerID,
		Status:       string(a.Status),
		Message:      a.Message,
		AppliedAt:    a.AppliedAt,
		ReviewedAt:   a.ReviewedAt,
	}
}

func (h *Handler) handleApply(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.writeError(w, r, domain.Invalid("id", "invalid campaign id"))
		return
	}
	var body struct {
		Message string `json:"message"`
	}
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&body)
	}
	app, err := h.campaigns.Apply(r.Context(), actorFrom(r), id, body.Message)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, toApplicationResponse(*app))
}

func (h *Handler) handleListApplications(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.writeError(w, r, domain.Invalid("id", "invalid campaign id"))
		return
	}
	apps, err := h.campaigns.ListApplications(r.Context(), actorFrom(r), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	out := make([]applicationResponse, 0, len(apps))
	for _, a := range apps {
		out = append(out, toApplicationResponse(a))
	}
	h.writeJSON(w, http.StatusOK, out)
}

func (h *Handler) handleMyApplications(w http.ResponseWriter, r *http.Request) {
	apps, err := h.campaigns.MyApplications(r.Context(), actorFrom(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	out := make([]applicationResponse, 0, len(apps))
	for _, a := range apps {
		out = append(out, toApplicationResponse(a))
	}
	h.writeJSON(w, http.StatusOK, out)
}

func (h *Handler) handleCancelApplication(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.writeError(w, r, domain.Invalid("id", "invalid application id"))
		return
	}
	if err := h.campaigns.CancelApplication(r.Context(), actorFrom(r), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleDecideApplication(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.writeError(w, r, domain.Invalid("id", "invalid application id"))
		return
	}
	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.writeError(w, r, domain.Invalid("body", "invalid JSON"))
		return
	}
	if err := h.campaigns.DecideApplication(r.Context(), actorFrom(r), id, domain.ApplicationStatus(body.Status)); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type reviewPayload struct {
	PostURL  string `json:"post_url"`
	ImageURL string `json:"image_url"`
}

func (h *Handler) handleSubmitReview(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.writeError(w, r, domain.Invalid("id", "invalid application id"))
		return
	}
	var body reviewPayload
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.writeError(w, r, domain.Invalid("body", "invalid JSON"))
		return
	}
	if err := h.campaigns.SubmitReview(r.Context(), actorFrom(r), id, body.PostURL, body.ImageURL); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
}

func (h *Handler) handleEditReview(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.writeError(w, r, domain.Invalid("id", "invalid application id"))
		return
	}
	var body reviewPayload
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.writeError(w, r, domain.Invalid("body", "invalid JSON"))
		return
	}
	if err := h.campaigns.EditReview(r.Context(), actorFrom(r), id, body.PostURL, body.ImageURL); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleModerateReview(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.writeError(w, r, domain.Invalid("id", "invalid application id"))
		return
	}
	var body struct {
		Approve bool   `json:"approve"`
		Reason  string `json:"reason"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.writeError(w, r, domain.Invalid("body", "invalid JSON"))
		return
	}
	if err := h.campaigns.ModerateReview(r.Context(), actorFrom(r), id, body.Approve, body.Reason); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
