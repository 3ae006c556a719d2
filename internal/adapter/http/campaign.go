package httpadapter

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"reviewsphere/internal/core/domain"
	"reviewsphere/internal/core/port"
)

// campaignPayload is the request body for creating or editing a campaign.
// Dates are ISO calendar dates (YYYY-MM-DD); empty means unset.
type campaignPayload struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	ProductName  string `json:"product_name"`
	ProductURL   string `json:"product_url"`
	Requirements string `json:"requirements"`

	PricingType  string `json:"pricing_type"`
	ProductValue int64  `json:"product_value"`
	SpherePoints int64  `json:"sphere_points"`
	Slots        int    `json:"slots"`

	ApplicationStart   string `json:"application_start_date"`
	ApplicationEnd     string `json:"application_end_date"`
	Announcement       string `json:"announcement_date"`
	ContentStart       string `json:"content_start_date"`
	ContentEnd         string `json:"content_end_date"`
	ResultAnnouncement string `json:"result_announcement_date"`

	// PaymentStatus is honoured only on edits by an administrator.
	PaymentStatus string `json:"payment_status,omitempty"`
}

func (p campaignPayload) toCreateReq() (port.CreateCampaignReq, error) {
	req := port.CreateCampaignReq{
		Title:        p.Title,
		Description:  p.Description,
		ProductName:  p.ProductName,
		ProductURL:   p.ProductURL,
		Requirements: p.Requirements,
		PricingType:  domain.PricingType(p.PricingType),
		ProductValue: p.ProductValue,
		SpherePoints: p.SpherePoints,
		Slots:        p.Slots,
	}
	var err error
	dates := []struct {
		src string
		dst *domain.Date
	}{
		{p.ApplicationStart, &req.ApplicationStart},
		{p.ApplicationEnd, &req.ApplicationEnd},
		{p.Announcement, &req.Announcement},
		{p.ContentStart, &req.ContentStart},
		{p.ContentEnd, &req.ContentEnd},
		{p.ResultAnnouncement, &req.ResultAnnouncement},
	}
	for _, d := range dates {
		if *d.dst, err = domain.ParseDate(d.src); err != nil {
			return req, domain.Invalid("date", err.Error())
		}
	}
	return req, nil
}

type influencerGetsResponse struct {
	ProductOrVoucher int64 `json:"product_or_voucher"`
	Points           int64 `json:"points"`
}

type pricingResponse struct {
	PricingType    string                 `json:"pricing_type"`
	ProductValue   int64                  `json:"product_value"`
	SpherePoints   int64                  `json:"sphere_points"`
	TotalValue     int64                  `json:"total_value"`
	FixedFee       int64                  `json:"fixed_fee"`
	PointsFee      int64                  `json:"points_fee"`
	PlatformFee    int64                  `json:"platform_fee"`
	TotalCost      int64                  `json:"total_cost"`
	InfluencerGets influencerGetsResponse `json:"influencer_gets"`
}

func toPricingResponse(p domain.PricingCalculation) pricingResponse {
	return pricingResponse{
		PricingType:  string(p.PricingType),
		ProductValue: p.ProductValue,
		SpherePoints: p.SpherePoints,
		TotalValue:   p.TotalValue,
		FixedFee:     p.FixedFee,
		PointsFee:    p.PointsFee,
		PlatformFee:  p.PlatformFee,
		TotalCost:    p.TotalCost,
		InfluencerGets: influencerGetsResponse{
			ProductOrVoucher: p.InfluencerGets.ProductOrVoucher,
			Points:           p.InfluencerGets.Points,
		},
	}
}

type campaignResponse struct {
	ID           int64  `json:"id"`
	AdvertiserID int64  `json:"advertiser_id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	ProductName  string `json:"product_name"`
	ProductURL   string `json:"product_url"`
	Requirements string `json:"requirements"`

	PricingType  string `json:"pricing_type"`
	ProductValue int64  `json:"product_value"`
	SpherePoints int64  `json:"sphere_points"`
	Slots        int    `json:"slots"`

	Status        string `json:"status"`
	DisplayStatus string `json:"display_status"`
	PaymentStatus string `json:"payment_status"`
	Refundable    bool   `json:"refundable"`

	ApplicationStart   string `json:"application_start_date"`
	ApplicationEnd     string `json:"application_end_date"`
	Announcement       string `json:"announcement_date"`
	ContentStart       string `json:"content_start_date"`
	ContentEnd         string `json:"content_end_date"`
	ResultAnnouncement string `json:"result_announcement_date"`

	Pricing pricingResponse `json:"pricing"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toCampaignResponse(v port.CampaignView) campaignResponse {
	c := v.Campaign
	return campaignResponse{
		ID:                 c.ID,
		AdvertiserID:       c.AdvertiserID,
		Title:              c.Title,
		Description:        c.Description,
		ProductName:        c.ProductName,
		ProductURL:         c.ProductURL,
		Requirements:       c.Requirements,
		PricingType:        string(c.PricingType),
		ProductValue:       c.ProductValue,
		SpherePoints:       c.SpherePoints,
		Slots:              c.Slots,
		Status:             string(c.Status),
		DisplayStatus:      string(v.DisplayStatus),
		PaymentStatus:      string(c.PaymentStatus),
		Refundable:         c.Refundable,
		ApplicationStart:   c.ApplicationStart.String(),
		ApplicationEnd:     c.ApplicationEnd.String(),
		Announcement:       c.Announcement.String(),
		ContentStart:       c.ContentStart.String(),
		ContentEnd:         c.ContentEnd.String(),
		ResultAnnouncement: c.ResultAnnouncement.String(),
		Pricing:            toPricingResponse(v.Pricing),
		CreatedAt:          c.CreatedAt,
		UpdatedAt:          c.UpdatedAt,
	}
}

func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var payload campaignPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.writeError(w, r, domain.Invalid("body", "invalid JSON"))
		return
	}
	req, err := payload.toCreateReq()
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	view, err := h.campaigns.Create(r.Context(), actorFrom(r), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, toCampaignResponse(*view))
}

func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	views, err := h.campaigns.List(r.Context(), actorFrom(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	out := make([]campaignResponse, 0, len(views))
	for _, v := range views {
		out = append(out, toCampaignResponse(v))
	}
	h.writeJSON(w, http.StatusOK, out)
}

func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.writeError(w, r, domain.Invalid("id", "invalid campaign id"))
		return
	}
	view, err := h.campaigns.Get(r.Context(), actorFrom(r), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toCampaignResponse(*view))
}

func (h *Handler) handleUpdateCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.writeError(w, r, domain.Invalid("id", "invalid campaign id"))
		return
	}
	var payload campaignPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.writeError(w, r, domain.Invalid("body", "invalid JSON"))
		return
	}
	createReq, err := payload.toCreateReq()
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	req := port.UpdateCampaignReq{CreateCampaignReq: createReq}
	if payload.PaymentStatus != "" {
		ps := domain.PaymentStatus(payload.PaymentStatus)
		req.PaymentStatus = &ps
	}
	if err := h.campaigns.Update(r.Context(), actorFrom(r), id, req); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// campaignTransition adapts an administrator state change to a handler.
func (h *Handler) campaignTransition(fn func(ctx context.Context, actor domain.Actor, id int64) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r)
		if err != nil {
			h.writeError(w, r, domain.Invalid("id", "invalid campaign id"))
			return
		}
		if err := fn(r.Context(), actorFrom(r), id); err != nil {
			h.writeError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func (h *Handler) handlePricingPreview(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	productValue, err := parseOptionalInt(q.Get("product_value"))
	if err != nil {
		h.writeError(w, r, domain.Invalid("product_value", "must be an integer"))
		return
	}
	spherePoints, err := parseOptionalInt(q.Get("sphere_points"))
	if err != nil {
		h.writeError(w, r, domain.Invalid("sphere_points", "must be an integer"))
		return
	}
	calc, err := h.campaigns.PreviewPricing(r.Context(), domain.PricingType(q.Get("pricing_type")), productValue, spherePoints)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toPricingResponse(*calc))
}
