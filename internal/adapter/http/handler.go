package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"log/slog"

	"reviewsphere/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP. Authentication happens upstream; the adapter trusts the resolved
// identity headers and maps requests onto the usecase ports.
type Handler struct {
	campaigns   port.CampaignUseCase
	settlements port.SettlementUseCase
	settings    port.SettingsRepository
	logger      *slog.Logger
	router      chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(campaigns port.CampaignUseCase, settlements port.SettlementUseCase, settings port.SettingsRepository, logger *slog.Logger) *Handler {
	h := &Handler{campaigns: campaigns, settlements: settlements, settings: settings, logger: logger}
	r := chi.NewRouter()

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/campaigns", func(r chi.Router) {
			r.Post("/", h.handleCreateCampaign)
			r.Get("/", h.handleListCampaigns)
			r.Get("/{id}", h.handleGetCampaign)
			r.Put("/{id}", h.handleUpdateCampaign)
			r.Post("/{id}/apply", h.handleApply)
			r.Get("/{id}/applications", h.handleListApplications)
		})

		r.Get("/applications", h.handleMyApplications)
		r.Route("/applications/{id}", func(r chi.Router) {
			r.Delete("/", h.handleCancelApplication)
			r.Put("/status", h.handleDecideApplication)
			r.Post("/review", h.handleSubmitReview)
			r.Put("/review", h.handleEditReview)
			r.Put("/review/moderation", h.handleModerateReview)
		})

		r.Get("/pricing/preview", h.handlePricingPreview)
		r.Get("/settings", h.handleGetSettings)

		r.Route("/withdrawals", func(r chi.Router) {
			r.Post("/", h.handleRequestWithdrawal)
			r.Get("/", h.handleListWithdrawals)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Post("/campaigns/{id}/approve", h.campaignTransition(h.campaigns.Approve))
			r.Post("/campaigns/{id}/suspend", h.campaignTransition(h.campaigns.Suspend))
			r.Post("/campaigns/{id}/resume", h.campaignTransition(h.campaigns.Resume))
			r.Post("/campaigns/{id}/complete", h.campaignTransition(h.campaigns.Complete))
			r.Post("/campaigns/{id}/cancel", h.campaignTransition(h.campaigns.Cancel))
			r.Post("/campaigns/{id}/payment", h.campaignTransition(h.campaigns.ConfirmPayment))

			r.Post("/withdrawals/{id}/approve", h.handleApproveWithdrawal)
			r.Post("/withdrawals/{id}/reject", h.handleRejectWithdrawal)
			r.Post("/withdrawals/{id}/paid", h.handleMarkWithdrawalPaid)
			r.Get("/settlements", h.handleSettlements)

			r.Put("/settings", h.handlePutSettings)
		})
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
