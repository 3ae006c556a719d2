package usecase

import (
	"context"
	"time"

	"reviewsphere/internal/core/domain"
	"reviewsphere/internal/core/port"
)

// CampaignUseCase orchestrates the campaign lifecycle: creation, admin
// transitions, payment, applications and reviews. Status is never written
// ahead of time; every read derives the display phase from the stored row
// and the current KST date.
type CampaignUseCase struct {
	campaigns    port.CampaignRepository
	applications port.ApplicationRepository
	settings     port.SettingsRepository

	// now supplies the current instant; overridable in tests.
	now func() time.Time
}

// NewCampaignUseCase creates the usecase with the provided repositories.
func NewCampaignUseCase(campaigns port.CampaignRepository, applications port.ApplicationRepository, settings port.SettingsRepository) *CampaignUseCase {
	return &CampaignUseCase{
		campaigns:    campaigns,
		applications: applications,
		settings:     settings,
		now:          time.Now,
	}
}

func (u *CampaignUseCase) today() domain.Date {
	return domain.TodayIn(u.now())
}

// Create registers a new campaign for the acting advertiser. The campaign
// starts pending and unpaid, awaiting administrator approval, and is
// refundable until its first application arrives.
func (u *CampaignUseCase) Create(ctx context.Context, actor domain.Actor, req port.CreateCampaignReq) (*port.CampaignView, error) {
	if err := validateCampaignReq(req); err != nil {
		return nil, err
	}
	slots := req.Slots
	if slots < 1 {
		slots = 1
	}
	c := domain.Campaign{
		AdvertiserID:       actor.UserID,
		Title:              req.Title,
		Description:        req.Description,
		ProductName:        req.ProductName,
		ProductURL:         req.ProductURL,
		Requirements:       req.Requirements,
		PricingType:        req.PricingType,
		ProductValue:       req.ProductValue,
		SpherePoints:       req.SpherePoints,
		Slots:              slots,
		Status:             domain.StatusPending,
		PaymentStatus:      domain.PaymentUnpaid,
		Refundable:         true,
		ApplicationStart:   req.ApplicationStart,
		ApplicationEnd:     req.ApplicationEnd,
		Announcement:       req.Announcement,
		ContentStart:       req.ContentStart,
		ContentEnd:         req.ContentEnd,
		ResultAnnouncement: req.ResultAnnouncement,
	}
	if err := u.campaigns.Create(ctx, &c); err != nil {
		return nil, err
	}
	return u.view(ctx, c)
}

// Update edits a campaign. A non-administrator may edit only their own
// campaign, and only before the application window opens; once recruiting
// has started the row is frozen for them. Administrators may edit in any
// state and may also toggle the payment status.
func (u *CampaignUseCase) Update(ctx context.Context, actor domain.Actor, id int64, req port.UpdateCampaignReq) error {
	c, err := u.campaigns.Get(ctx, id)
	if err != nil {
		return err
	}
	if c == nil {
		return domain.ErrNotFound
	}
	if !actor.IsAdmin() {
		if c.AdvertiserID != actor.UserID {
			return domain.ErrForbidden
		}
		switch c.Status {
		case domain.StatusSuspended, domain.StatusCompleted, domain.StatusCancelled:
			return domain.Conflict("edit campaign", string(c.Status))
		}
		if !c.ApplicationStart.IsZero() && !u.today().Before(c.ApplicationStart) {
			return domain.Conflict("edit campaign", string(domain.ResolveDisplay(*c, u.today())))
		}
	}
	if err := validateCampaignReq(req.CreateCampaignReq); err != nil {
		return err
	}

	c.Title = req.Title
	c.Description = req.Description
	c.ProductName = req.ProductName
	c.ProductURL = req.ProductURL
	c.Requirements = req.Requirements
	c.PricingType = req.PricingType
	c.ProductValue = req.ProductValue
	c.SpherePoints = req.SpherePoints
	if req.Slots >= 1 {
		c.Slots = req.Slots
	}
	c.ApplicationStart = req.ApplicationStart
	c.ApplicationEnd = req.ApplicationEnd
	c.Announcement = req.Announcement
	c.ContentStart = req.ContentStart
	c.ContentEnd = req.ContentEnd
	c.ResultAnnouncement = req.ResultAnnouncement
	if req.PaymentStatus != nil {
		if !actor.IsAdmin() {
			return domain.ErrForbidden
		}
		c.PaymentStatus = *req.PaymentStatus
	}
	return u.campaigns.Update(ctx, c)
}

// Get returns a campaign with its display phase resolved as of today.
// Advertisers see their own campaigns, administrators everything.
// Influencers see approved campaigns, plus any campaign they applied to:
// a participant still needs the schedule after date completion, since the
// review window runs past the result announcement.
func (u *CampaignUseCase) Get(ctx context.Context, actor domain.Actor, id int64) (*port.CampaignView, error) {
	c, err := u.campaigns.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	if !actor.IsAdmin() {
		switch actor.Role {
		case domain.RoleAdvertiser:
			if c.AdvertiserID != actor.UserID {
				return nil, domain.ErrForbidden
			}
		case domain.RoleInfluencer:
			if domain.ResolveStatus(*c, u.today()) != domain.StatusApproved {
				applied, err := u.hasApplication(ctx, actor.UserID, c.ID)
				if err != nil {
					return nil, err
				}
				if !applied {
					return nil, domain.ErrForbidden
				}
			}
		default:
			return nil, domain.ErrForbidden
		}
	}
	return u.view(ctx, *c)
}

func (u *CampaignUseCase) hasApplication(ctx context.Context, influencerID, campaignID int64) (bool, error) {
	apps, err := u.applications.ListByInfluencer(ctx, influencerID)
	if err != nil {
		return false, err
	}
	for _, a := range apps {
		if a.CampaignID == campaignID {
			return true, nil
		}
	}
	return false, nil
}

// List returns the campaigns visible to the actor with display phases
// resolved as of today.
func (u *CampaignUseCase) List(ctx context.Context, actor domain.Actor) ([]port.CampaignView, error) {
	var (
		rows []domain.Campaign
		err  error
	)
	switch {
	case actor.IsAdmin():
		rows, err = u.campaigns.ListAll(ctx)
	case actor.Role == domain.RoleAdvertiser:
		rows, err = u.campaigns.ListByAdvertiser(ctx, actor.UserID)
	default:
		rows, err = u.campaigns.ListAll(ctx)
	}
	if err != nil {
		return nil, err
	}
	cfg, err := u.settings.FeeConfig(ctx)
	if err != nil {
		return nil, err
	}
	today := u.today()
	views := make([]port.CampaignView, 0, len(rows))
	for _, c := range rows {
		if !actor.IsAdmin() && actor.Role == domain.RoleInfluencer {
			if domain.ResolveStatus(c, today) != domain.StatusApproved {
				continue
			}
		}
		views = append(views, port.CampaignView{
			Campaign:      c,
			DisplayStatus: domain.ResolveDisplay(c, today),
			Pricing:       domain.CalculateFullPricing(cfg, c.PricingType, c.ProductValue, c.SpherePoints),
		})
	}
	return views, nil
}

// Approve moves a pending campaign to approved.
func (u *CampaignUseCase) Approve(ctx context.Context, actor domain.Actor, id int64) error {
	return u.transition(ctx, actor, id, "approve campaign", domain.StatusApproved,
		domain.StatusPending)
}

// Suspend pauses an approved campaign.
func (u *CampaignUseCase) Suspend(ctx context.Context, actor domain.Actor, id int64) error {
	return u.transition(ctx, actor, id, "suspend campaign", domain.StatusSuspended,
		domain.StatusApproved)
}

// Resume returns a suspended campaign to approved.
func (u *CampaignUseCase) Resume(ctx context.Context, actor domain.Actor, id int64) error {
	return u.transition(ctx, actor, id, "resume campaign", domain.StatusApproved,
		domain.StatusSuspended)
}

// Complete closes an approved campaign.
func (u *CampaignUseCase) Complete(ctx context.Context, actor domain.Actor, id int64) error {
	return u.transition(ctx, actor, id, "complete campaign", domain.StatusCompleted,
		domain.StatusApproved)
}

// Cancel terminates a campaign that has not yet completed. The row is
// kept; cancellation is logical.
func (u *CampaignUseCase) Cancel(ctx context.Context, actor domain.Actor, id int64) error {
	return u.transition(ctx, actor, id, "cancel campaign", domain.StatusCancelled,
		domain.StatusPending, domain.StatusApproved, domain.StatusSuspended)
}

// transition applies an administrator state change when the campaign's
// current resolved status is one of from.
func (u *CampaignUseCase) transition(ctx context.Context, actor domain.Actor, id int64, op string, to domain.CampaignStatus, from ...domain.CampaignStatus) error {
	if !actor.IsAdmin() {
		return domain.ErrForbidden
	}
	c, err := u.campaigns.Get(ctx, id)
	if err != nil {
		return err
	}
	if c == nil {
		return domain.ErrNotFound
	}
	current := domain.ResolveStatus(*c, u.today())
	for _, s := range from {
		if current == s {
			return u.campaigns.SetStatus(ctx, id, to)
		}
	}
	return domain.Conflict(op, string(current))
}

// ConfirmPayment marks the campaign paid. Payment is necessary but not
// sufficient for the campaign to surface as recruiting; the schedule
// still decides. Terminal campaigns take no payment.
func (u *CampaignUseCase) ConfirmPayment(ctx context.Context, actor domain.Actor, id int64) error {
	if !actor.IsAdmin() {
		return domain.ErrForbidden
	}
	c, err := u.campaigns.Get(ctx, id)
	if err != nil {
		return err
	}
	if c == nil {
		return domain.ErrNotFound
	}
	current := domain.ResolveStatus(*c, u.today())
	if current == domain.StatusCompleted || current == domain.StatusCancelled {
		return domain.Conflict("confirm payment", string(current))
	}
	return u.campaigns.SetPaymentStatus(ctx, id, domain.PaymentPaid)
}

// Apply records an influencer's application to a recruiting campaign. The
// first application irreversibly locks the campaign against refunds.
func (u *CampaignUseCase) Apply(ctx context.Context, actor domain.Actor, campaignID int64, message string) (*domain.Application, error) {
	if actor.Role != domain.RoleInfluencer {
		return nil, domain.ErrForbidden
	}
	c, err := u.campaigns.Get(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	today := u.today()
	if !domain.CanApply(*c, today) {
		return nil, domain.Conflict("apply to campaign", string(domain.ResolveDisplay(*c, today)))
	}
	app := domain.Application{
		CampaignID:   campaignID,
		InfluencerID: actor.UserID,
		Status:       domain.ApplicationPending,
		Message:      message,
		AppliedAt:    u.now(),
	}
	if err := u.applications.CreateAndLockRefund(ctx, &app); err != nil {
		return nil, err
	}
	return &app, nil
}

// CancelApplication removes the influencer's own pending application.
// Cancellation closes with the application window: past the end date the
// advertiser is already selecting participants.
func (u *CampaignUseCase) CancelApplication(ctx context.Context, actor domain.Actor, applicationID int64) error {
	app, err := u.applications.Get(ctx, applicationID)
	if err != nil {
		return err
	}
	if app == nil {
		return domain.ErrNotFound
	}
	if app.InfluencerID != actor.UserID {
		return domain.ErrForbidden
	}
	if app.Status != domain.ApplicationPending {
		return domain.Conflict("cancel application", string(app.Status))
	}
	c, err := u.campaigns.Get(ctx, app.CampaignID)
	if err != nil {
		return err
	}
	if c != nil && !c.ApplicationEnd.IsZero() && u.today().After(c.ApplicationEnd) {
		return domain.Conflict("cancel application", "application window closed")
	}
	return u.applications.Delete(ctx, applicationID)
}

// ListApplications returns a campaign's applications to its owner or an
// administrator.
func (u *CampaignUseCase) ListApplications(ctx context.Context, actor domain.Actor, campaignID int64) ([]domain.Application, error) {
	c, err := u.campaigns.Get(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	if !actor.IsAdmin() && c.AdvertiserID != actor.UserID {
		return nil, domain.ErrForbidden
	}
	return u.applications.ListByCampaign(ctx, campaignID)
}

// MyApplications returns the acting influencer's own applications.
func (u *CampaignUseCase) MyApplications(ctx context.Context, actor domain.Actor) ([]domain.Application, error) {
	if actor.Role != domain.RoleInfluencer {
		return nil, domain.ErrForbidden
	}
	return u.applications.ListByInfluencer(ctx, actor.UserID)
}

// DecideApplication approves, rejects or resets an application. Resetting
// an approved application is blocked for non-administrators once the
// announcement date has passed.
func (u *CampaignUseCase) DecideApplication(ctx context.Context, actor domain.Actor, applicationID int64, status domain.ApplicationStatus) error {
	switch status {
	case domain.ApplicationPending, domain.ApplicationApproved, domain.ApplicationRejected:
	default:
		return domain.Invalid("status", "unknown application status")
	}
	app, err := u.applications.Get(ctx, applicationID)
	if err != nil {
		return err
	}
	if app == nil {
		return domain.ErrNotFound
	}
	c, err := u.campaigns.Get(ctx, app.CampaignID)
	if err != nil {
		return err
	}
	if c == nil {
		return domain.ErrNotFound
	}
	if !actor.IsAdmin() {
		if c.AdvertiserID != actor.UserID {
			return domain.ErrForbidden
		}
		if status == domain.ApplicationPending && app.Status == domain.ApplicationApproved {
			if !c.Announcement.IsZero() && u.today().After(c.Announcement) {
				return domain.Conflict("unselect application", "announcement published")
			}
		}
	}
	return u.applications.SetStatus(ctx, applicationID, status)
}

// SubmitReview records the review for an approved application, once per
// application and only inside the submission window.
func (u *CampaignUseCase) SubmitReview(ctx context.Context, actor domain.Actor, applicationID int64, postURL, imageURL string) error {
	app, c, err := u.reviewTarget(ctx, actor, applicationID)
	if err != nil {
		return err
	}
	if postURL == "" && imageURL == "" {
		return domain.Invalid("review", "a post URL or an image is required")
	}
	existing, err := u.applications.GetReview(ctx, applicationID)
	if err != nil {
		return err
	}
	if existing != nil {
		return domain.Conflict("submit review", "review already submitted")
	}
	if !domain.ReviewWindowOpen(*c, u.today()) {
		return domain.Conflict("submit review", "outside submission window")
	}
	return u.applications.CreateReview(ctx, &domain.Review{
		ApplicationID: app.ID,
		PostURL:       postURL,
		ImageURL:      imageURL,
		Status:        domain.ReviewPending,
		SubmittedAt:   u.now(),
	})
}

// EditReview replaces the submitted review content inside the window and
// sends the review back to moderation. An approved review is immutable:
// its points are already credited, so resubmitting it for moderation
// would pay out again.
func (u *CampaignUseCase) EditReview(ctx context.Context, actor domain.Actor, applicationID int64, postURL, imageURL string) error {
	_, c, err := u.reviewTarget(ctx, actor, applicationID)
	if err != nil {
		return err
	}
	review, err := u.applications.GetReview(ctx, applicationID)
	if err != nil {
		return err
	}
	if review == nil {
		return domain.ErrNotFound
	}
	if review.Status == domain.ReviewApproved {
		return domain.Conflict("edit review", string(review.Status))
	}
	if !domain.ReviewWindowOpen(*c, u.today()) {
		return domain.Conflict("edit review", "outside submission window")
	}
	if postURL == "" && imageURL == "" && review.PostURL == "" && review.ImageURL == "" {
		return domain.Invalid("review", "a post URL or an image is required")
	}
	if postURL != "" {
		review.PostURL = postURL
	}
	if imageURL != "" {
		review.ImageURL = imageURL
	}
	review.Status = domain.ReviewPending
	review.RejectionReason = ""
	return u.applications.UpdateReview(ctx, review)
}

// reviewTarget loads the application and campaign behind a review
// operation and checks that the actor owns an approved application.
func (u *CampaignUseCase) reviewTarget(ctx context.Context, actor domain.Actor, applicationID int64) (*domain.Application, *domain.Campaign, error) {
	app, err := u.applications.Get(ctx, applicationID)
	if err != nil {
		return nil, nil, err
	}
	if app == nil {
		return nil, nil, domain.ErrNotFound
	}
	if app.InfluencerID != actor.UserID {
		return nil, nil, domain.ErrForbidden
	}
	if app.Status != domain.ApplicationApproved {
		return nil, nil, domain.Conflict("submit review", string(app.Status))
	}
	c, err := u.campaigns.Get(ctx, app.CampaignID)
	if err != nil {
		return nil, nil, err
	}
	if c == nil {
		return nil, nil, domain.ErrNotFound
	}
	return app, c, nil
}

// ModerateReview approves or rejects a submitted review. Approval credits
// the campaign's sphere points to the influencer in one transaction.
func (u *CampaignUseCase) ModerateReview(ctx context.Context, actor domain.Actor, applicationID int64, approve bool, reason string) error {
	if !actor.IsAdmin() {
		return domain.ErrForbidden
	}
	review, err := u.applications.GetReview(ctx, applicationID)
	if err != nil {
		return err
	}
	if review == nil {
		return domain.ErrNotFound
	}
	if review.Status != domain.ReviewPending {
		return domain.Conflict("moderate review", string(review.Status))
	}
	if !approve {
		if reason == "" {
			return domain.Invalid("reason", "a rejection reason is required")
		}
		return u.applications.RejectReview(ctx, applicationID, reason)
	}
	app, err := u.applications.Get(ctx, applicationID)
	if err != nil {
		return err
	}
	if app == nil {
		return domain.ErrNotFound
	}
	c, err := u.campaigns.Get(ctx, app.CampaignID)
	if err != nil {
		return err
	}
	if c == nil {
		return domain.ErrNotFound
	}
	return u.applications.ApproveReviewAndCreditPoints(ctx, applicationID, c.SpherePoints)
}

// PreviewPricing computes the charge sheet for prospective campaign
// parameters using the current fee settings.
func (u *CampaignUseCase) PreviewPricing(ctx context.Context, pt domain.PricingType, productValue, spherePoints int64) (*domain.PricingCalculation, error) {
	if !domain.ValidPricingType(pt) {
		return nil, domain.Invalid("pricing_type", "unknown pricing type")
	}
	if productValue < 0 {
		return nil, domain.Invalid("product_value", "must not be negative")
	}
	if spherePoints < 0 {
		return nil, domain.Invalid("sphere_points", "must not be negative")
	}
	cfg, err := u.settings.FeeConfig(ctx)
	if err != nil {
		return nil, err
	}
	calc := domain.CalculateFullPricing(cfg, pt, productValue, spherePoints)
	return &calc, nil
}

func (u *CampaignUseCase) view(ctx context.Context, c domain.Campaign) (*port.CampaignView, error) {
	cfg, err := u.settings.FeeConfig(ctx)
	if err != nil {
		return nil, err
	}
	return &port.CampaignView{
		Campaign:      c,
		DisplayStatus: domain.ResolveDisplay(c, u.today()),
		Pricing:       domain.CalculateFullPricing(cfg, c.PricingType, c.ProductValue, c.SpherePoints),
	}, nil
}

func validateCampaignReq(req port.CreateCampaignReq) error {
	if req.Title == "" {
		return domain.Invalid("title", "campaign title is required")
	}
	if !domain.ValidPricingType(req.PricingType) {
		return domain.Invalid("pricing_type", "unknown pricing type")
	}
	if req.ProductValue < 0 {
		return domain.Invalid("product_value", "must not be negative")
	}
	if req.SpherePoints < 0 {
		return domain.Invalid("sphere_points", "must not be negative")
	}
	return nil
}
