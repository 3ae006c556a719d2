package port

import (
	"context"

	"reviewsphere/internal/core/domain"
)

// CampaignUseCase defines the campaign lifecycle operations exposed by the
// core. This is the primary inbound port; mock implementations can be
// generated from it for testing.
type CampaignUseCase interface {
	// Create registers a new campaign for the acting advertiser. The
	// campaign starts pending, unpaid and refundable. The returned view
	// includes the computed charge sheet.
	Create(ctx context.Context, actor domain.Actor, req CreateCampaignReq) (*CampaignView, error)
	// Update edits a campaign. Non-administrators may edit only their own
	// campaigns and only before the application window opens; an
	// administrator may edit regardless of state and may additionally
	// toggle the payment status.
	Update(ctx context.Context, actor domain.Actor, id int64, req UpdateCampaignReq) error
	// Get returns a campaign with its display status resolved as of the
	// current KST date. Influencers see approved campaigns plus any
	// campaign they applied to.
	Get(ctx context.Context, actor domain.Actor, id int64) (*CampaignView, error)
	// List returns the campaigns visible to the actor: their own for an
	// advertiser, approved ones for an influencer, all for an admin.
	List(ctx context.Context, actor domain.Actor) ([]CampaignView, error)

	// Approve moves a pending campaign to approved. Administrator only.
	Approve(ctx context.Context, actor domain.Actor, id int64) error
	// Suspend moves an approved campaign to suspended. Administrator only.
	Suspend(ctx context.Context, actor domain.Actor, id int64) error
	// Resume moves a suspended campaign back to approved. Administrator only.
	Resume(ctx context.Context, actor domain.Actor, id int64) error
	// Complete moves an approved campaign to completed. Administrator only.
	Complete(ctx context.Context, actor domain.Actor, id int64) error
	// Cancel moves a pending, approved or suspended campaign to cancelled.
	// Administrator only. Cancellation is logical; the row is kept.
	Cancel(ctx context.Context, actor domain.Actor, id int64) error
	// ConfirmPayment marks the campaign paid. Administrator only.
	ConfirmPayment(ctx context.Context, actor domain.Actor, id int64) error

	// Apply records an influencer's application. Admission requires the
	// campaign to be recruiting today; the first application irreversibly
	// clears the campaign's refundable flag.
	Apply(ctx context.Context, actor domain.Actor, campaignID int64, message string) (*domain.Application, error)
	// CancelApplication removes the influencer's own pending application,
	// allowed only until the application end date.
	CancelApplication(ctx context.Context, actor domain.Actor, applicationID int64) error
	// ListApplications returns the applications for a campaign, visible to
	// the owning advertiser and administrators.
	ListApplications(ctx context.Context, actor domain.Actor, campaignID int64) ([]domain.Application, error)
	// MyApplications returns the acting influencer's own applications.
	MyApplications(ctx context.Context, actor domain.Actor) ([]domain.Application, error)
	// DecideApplication approves, rejects or resets an application. A
	// non-administrator may not un-approve after the announcement date.
	DecideApplication(ctx context.Context, actor domain.Actor, applicationID int64, status domain.ApplicationStatus) error

	// SubmitReview records the review for the influencer's approved
	// application, once per application and only inside the review window.
	SubmitReview(ctx context.Context, actor domain.Actor, applicationID int64, postURL, imageURL string) error
	// EditReview replaces the submitted content inside the review window
	// and resets moderation to pending.
	EditReview(ctx context.Context, actor domain.Actor, applicationID int64, postURL, imageURL string) error
	// ModerateReview approves or rejects a submitted review. Approval
	// credits the campaign's sphere points to the influencer.
	ModerateReview(ctx context.Context, actor domain.Actor, applicationID int64, approve bool, reason string) error

	// PreviewPricing computes the charge sheet for prospective campaign
	// parameters using the current fee settings.
	PreviewPricing(ctx context.Context, pt domain.PricingType, productValue, spherePoints int64) (*domain.PricingCalculation, error)
}

// CreateCampaignReq carries the fields an advertiser supplies when
// creating a campaign. Dates are ISO calendar dates; empty means unset.
type CreateCampaignReq struct {
	Title        string
	Description  string
	ProductName  string
	ProductURL   string
	Requirements string

	PricingType  domain.PricingType
	ProductValue int64
	SpherePoints int64
	Slots        int

	ApplicationStart   domain.Date
	ApplicationEnd     domain.Date
	Announcement       domain.Date
	ContentStart       domain.Date
	ContentEnd         domain.Date
	ResultAnnouncement domain.Date
}

// UpdateCampaignReq carries an edit. PaymentStatus is honoured only for
// administrators; nil leaves it unchanged.
type UpdateCampaignReq struct {
	CreateCampaignReq
	PaymentStatus *domain.PaymentStatus
}

// CampaignView is a campaign together with its derived presentation state
// and charge sheet. It is a DTO for the HTTP layer and carries no domain
// behaviour.
type CampaignView struct {
	Campaign      domain.Campaign
	DisplayStatus domain.DisplayStatus
	Pricing       domain.PricingCalculation
}
