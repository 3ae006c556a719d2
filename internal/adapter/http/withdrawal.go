package httpadapter

import (
	"encoding/json"
	"net/http"
	"time"

	"reviewsphere/internal/core/domain"
	"reviewsphere/internal/core/port"
)

type withdrawalPayload struct {
	Amount                int64  `json:"amount"`
	RealName              string `json:"real_name"`
	ResidentNumberPartial string `json:"resident_number_partial"`
	ContactPhone          string `json:"contact_phone"`
	IDCardImage           string `json:"id_card_image"`
	BankbookImage         string `json:"bankbook_image"`
	PrivacyConsent        bool   `json:"privacy_consent"`
}

type withdrawalResponse struct {
	ID             int64      `json:"id"`
	Reference      string     `json:"reference"`
	InfluencerID   int64      `json:"influencer_id"`
	Amount         int64      `json:"amount"`
	WithholdingTax int64      `json:"withholding_tax"`
	NetPayout      int64      `json:"net_payout"`
	BankName       string     `json:"bank_name"`
	AccountNumber  string     `json:"account_number"`
	AccountHolder  string     `json:"account_holder"`
	Status         string     `json:"status"`
	Reason         string     `json:"rejection_reason,omitempty"`
	RequestedAt    time.Time  `json:"requested_at"`
	ReviewedAt     *time.Time `json:"reviewed_at,omitempty"`
	PaidAt         *time.Time `json:"paid_at,omitempty"`
}

func toWithdrawalResponse(w domain.WithdrawalRequest) withdrawalResponse {
	return withdrawalResponse{
		ID:             w.ID,
		Reference:      w.Reference,
		InfluencerID:   w.InfluencerID,
		Amount:         w.Amount,
		WithholdingTax: w.WithholdingTax,
		NetPayout:      w.NetPayout,
		BankName:       w.BankName,
		AccountNumber:  w.AccountNumber,
		AccountHolder:  w.AccountHolder,
		Status:         string(w.Status),
		Reason:         w.RejectionReason,
		RequestedAt:    w.RequestedAt,
		ReviewedAt:     w.ReviewedAt,
		PaidAt:         w.PaidAt,
	}
}

func (h *Handler) handleRequestWithdrawal(w http.ResponseWriter, r *http.Request) {
	var payload withdrawalPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.writeError(w, r, domain.Invalid("body", "invalid JSON"))
		return
	}
	req := port.WithdrawalReq{
		Amount: payload.Amount,
		KYC: domain.KYC{
			RealName:              payload.RealName,
			ResidentNumberPartial: payload.ResidentNumberPartial,
			ContactPhone:          payload.ContactPhone,
			IDCardImage:           payload.IDCardImage,
			BankbookImage:         payload.BankbookImage,
			PrivacyConsent:        payload.PrivacyConsent,
		},
	}
	result, err := h.settlements.RequestWithdrawal(r.Context(), actorFrom(r), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, toWithdrawalResponse(*result))
}

func (h *Handler) handleListWithdrawals(w http.ResponseWriter, r *http.Request) {
	var status *domain.WithdrawalStatus
	if s := r.URL.Query().Get("status"); s != "" {
		ws := domain.WithdrawalStatus(s)
		status = &ws
	}
	requests, err := h.settlements.ListWithdrawals(r.Context(), actorFrom(r), status)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	out := make([]withdrawalResponse, 0, len(requests))
	for _, req := range requests {
		out = append(out, toWithdrawalResponse(req))
	}
	h.writeJSON(w, http.StatusOK, out)
}

func (h *Handler) handleApproveWithdrawal(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.writeError(w, r, domain.Invalid("id", "invalid withdrawal id"))
		return
	}
	if err := h.settlements.ApproveWithdrawal(r.Context(), actorFrom(r), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleRejectWithdrawal(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.writeError(w, r, domain.Invalid("id", "invalid withdrawal id"))
		return
	}
	var body struct {
		Reason string `json:"reason"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.writeError(w, r, domain.Invalid("body", "invalid JSON"))
		return
	}
	if err := h.settlements.RejectWithdrawal(r.Context(), actorFrom(r), id, body.Reason); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleMarkWithdrawalPaid(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.writeError(w, r, domain.Invalid("id", "invalid withdrawal id"))
		return
	}
	if err := h.settlements.MarkWithdrawalPaid(r.Context(), actorFrom(r), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleSettlements(w http.ResponseWriter, r *http.Request) {
	rows, err := h.settlements.Settlements(r.Context(), actorFrom(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, rows)
}
