package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"reviewsphere/internal/core/domain"
	"reviewsphere/internal/core/port"
	"reviewsphere/internal/core/port/mocks"

	"github.com/stretchr/testify/mock"
)

var (
	admin      = domain.Actor{UserID: 1, Role: domain.RoleAdmin}
	advertiser = domain.Actor{UserID: 10, Role: domain.RoleAdvertiser}
	influencer = domain.Actor{UserID: 20, Role: domain.RoleInfluencer}
)

// clockAt pins the usecase clock to noon KST on the given date.
func clockAt(d domain.Date) func() time.Time {
	return func() time.Time {
		return time.Date(d.Year, d.Month, d.Day, 12, 0, 0, 0, domain.KST)
	}
}

// recruitingCampaign is paid and approved with an application window of
// June 1-10, announcement June 12, content June 15-30, results July 5.
func recruitingCampaign() *domain.Campaign {
	return &domain.Campaign{
		ID:                 1,
		AdvertiserID:       advertiser.UserID,
		Title:              "Summer skincare set",
		PricingType:        domain.PricingProductWithPoints,
		ProductValue:       50000,
		SpherePoints:       10000,
		Slots:              5,
		Status:             domain.StatusApproved,
		PaymentStatus:      domain.PaymentPaid,
		Refundable:         true,
		ApplicationStart:   domain.NewDate(2026, time.June, 1),
		ApplicationEnd:     domain.NewDate(2026, time.June, 10),
		Announcement:       domain.NewDate(2026, time.June, 12),
		ContentStart:       domain.NewDate(2026, time.June, 15),
		ContentEnd:         domain.NewDate(2026, time.June, 30),
		ResultAnnouncement: domain.NewDate(2026, time.July, 5),
	}
}

func newCampaignUseCase(t *testing.T, today domain.Date) (*CampaignUseCase, *mocks.MockCampaignRepository, *mocks.MockApplicationRepository, *mocks.MockSettingsRepository) {
	campaigns := mocks.NewMockCampaignRepository(t)
	applications := mocks.NewMockApplicationRepository(t)
	settings := mocks.NewMockSettingsRepository(t)

	svc := NewCampaignUseCase(campaigns, applications, settings)
	svc.now = clockAt(today)
	return svc, campaigns, applications, settings
}

func TestApplyLocksRefund(t *testing.T) {
	svc, campaigns, applications, _ := newCampaignUseCase(t, domain.NewDate(2026, time.June, 5))

	campaigns.EXPECT().
		Get(mock.Anything, int64(1)).
		Return(recruitingCampaign(), nil)
	applications.EXPECT().
		CreateAndLockRefund(mock.Anything, mock.AnythingOfType("*domain.Application")).
		Run(func(ctx context.Context, app *domain.Application) {
			app.ID = 7
		}).
		Return(nil)

	app, err := svc.Apply(context.Background(), influencer, 1, "pick me")
	if err != nil {
		t.Fatalf("Apply error: %v", err)
	}
	if app.ID != 7 {
		t.Fatalf("expected repo-assigned id 7, got %d", app.ID)
	}
	if app.CampaignID != 1 || app.InfluencerID != influencer.UserID {
		t.Fatalf("unexpected application %+v", app)
	}
	if app.Status != domain.ApplicationPending {
		t.Fatalf("expected pending application, got %q", app.Status)
	}
}

func TestApplyOutsideWindow(t *testing.T) {
	// June 11 is past the application end but inside the content period,
	// so the campaign displays as in_progress.
	svc, campaigns, _, _ := newCampaignUseCase(t, domain.NewDate(2026, time.June, 11))

	campaigns.EXPECT().
		Get(mock.Anything, int64(1)).
		Return(recruitingCampaign(), nil)

	_, err := svc.Apply(context.Background(), influencer, 1, "")
	var conflict *domain.StateConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected StateConflictError, got %v", err)
	}
	if conflict.Status != string(domain.DisplayInProgress) {
		t.Fatalf("conflict status = %q, want %q", conflict.Status, domain.DisplayInProgress)
	}
}

func TestApplyUnpaidCampaign(t *testing.T) {
	svc, campaigns, _, _ := newCampaignUseCase(t, domain.NewDate(2026, time.June, 5))

	c := recruitingCampaign()
	c.PaymentStatus = domain.PaymentUnpaid
	campaigns.EXPECT().
		Get(mock.Anything, int64(1)).
		Return(c, nil)

	_, err := svc.Apply(context.Background(), influencer, 1, "")
	var conflict *domain.StateConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected StateConflictError, got %v", err)
	}
}

func TestApplyRoleAndDuplicate(t *testing.T) {
	svc, campaigns, applications, _ := newCampaignUseCase(t, domain.NewDate(2026, time.June, 5))

	if _, err := svc.Apply(context.Background(), advertiser, 1, ""); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for an advertiser, got %v", err)
	}

	campaigns.EXPECT().
		Get(mock.Anything, int64(1)).
		Return(recruitingCampaign(), nil)
	applications.EXPECT().
		CreateAndLockRefund(mock.Anything, mock.AnythingOfType("*domain.Application")).
		Return(port.ErrDuplicateApplication)

	if _, err := svc.Apply(context.Background(), influencer, 1, ""); !errors.Is(err, port.ErrDuplicateApplication) {
		t.Fatalf("expected ErrDuplicateApplication, got %v", err)
	}
}

func TestAdminTransitions(t *testing.T) {
	type transition func(*CampaignUseCase, context.Context, domain.Actor, int64) error

	tests := []struct {
		name    string
		stored  domain.CampaignStatus
		op      transition
		want    domain.CampaignStatus
		wantErr bool
	}{
		{"approve pending", domain.StatusPending, (*CampaignUseCase).Approve, domain.StatusApproved, false},
		{"approve twice", domain.StatusApproved, (*CampaignUseCase).Approve, "", true},
		{"suspend approved", domain.StatusApproved, (*CampaignUseCase).Suspend, domain.StatusSuspended, false},
		{"suspend pending", domain.StatusPending, (*CampaignUseCase).Suspend, "", true},
		{"resume suspended", domain.StatusSuspended, (*CampaignUseCase).Resume, domain.StatusApproved, false},
		{"complete approved", domain.StatusApproved, (*CampaignUseCase).Complete, domain.StatusCompleted, false},
		{"cancel pending", domain.StatusPending, (*CampaignUseCase).Cancel, domain.StatusCancelled, false},
		{"cancel suspended", domain.StatusSuspended, (*CampaignUseCase).Cancel, domain.StatusCancelled, false},
		{"cancel completed", domain.StatusCompleted, (*CampaignUseCase).Cancel, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, campaigns, _, _ := newCampaignUseCase(t, domain.NewDate(2026, time.June, 5))

			c := recruitingCampaign()
			c.Status = tt.stored
			campaigns.EXPECT().
				Get(mock.Anything, int64(1)).
				Return(c, nil)
			if !tt.wantErr {
				campaigns.EXPECT().
					SetStatus(mock.Anything, int64(1), tt.want).
					Return(nil)
			}

			err := tt.op(svc, context.Background(), admin, 1)
			if tt.wantErr {
				var conflict *domain.StateConflictError
				if !errors.As(err, &conflict) {
					t.Fatalf("expected StateConflictError, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestTransitionRequiresAdmin(t *testing.T) {
	svc, _, _, _ := newCampaignUseCase(t, domain.NewDate(2026, time.June, 5))

	if err := svc.Approve(context.Background(), advertiser, 1); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestTransitionSeesDateCompletion(t *testing.T) {
	// The stored status is still approved, but the result announcement has
	// passed, so the resolved status is completed and suspension must fail.
	svc, campaigns, _, _ := newCampaignUseCase(t, domain.NewDate(2026, time.July, 6))

	campaigns.EXPECT().
		Get(mock.Anything, int64(1)).
		Return(recruitingCampaign(), nil)

	err := svc.Suspend(context.Background(), admin, 1)
	var conflict *domain.StateConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected StateConflictError, got %v", err)
	}
	if conflict.Status != string(domain.StatusCompleted) {
		t.Fatalf("conflict status = %q, want completed", conflict.Status)
	}
}

func TestUpdateFrozenOnceRecruiting(t *testing.T) {
	// On the first day of the window the advertiser may no longer edit.
	svc, campaigns, _, _ := newCampaignUseCase(t, domain.NewDate(2026, time.June, 1))

	campaigns.EXPECT().
		Get(mock.Anything, int64(1)).
		Return(recruitingCampaign(), nil)

	req := port.UpdateCampaignReq{CreateCampaignReq: port.CreateCampaignReq{
		Title:       "new title",
		PricingType: domain.PricingProductWithPoints,
	}}
	err := svc.Update(context.Background(), advertiser, 1, req)
	var conflict *domain.StateConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected StateConflictError, got %v", err)
	}
}

func TestUpdatePaymentToggleIsAdminOnly(t *testing.T) {
	svc, campaigns, _, _ := newCampaignUseCase(t, domain.NewDate(2026, time.May, 1))

	campaigns.EXPECT().
		Get(mock.Anything, int64(1)).
		Return(recruitingCampaign(), nil)

	paid := domain.PaymentPaid
	req := port.UpdateCampaignReq{
		CreateCampaignReq: port.CreateCampaignReq{
			Title:       "still mine",
			PricingType: domain.PricingProductWithPoints,
		},
		PaymentStatus: &paid,
	}
	if err := svc.Update(context.Background(), advertiser, 1, req); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestCreateStartsPendingAndRefundable(t *testing.T) {
	svc, campaigns, _, settings := newCampaignUseCase(t, domain.NewDate(2026, time.May, 1))

	campaigns.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*domain.Campaign")).
		Run(func(ctx context.Context, c *domain.Campaign) {
			c.ID = 42
		}).
		Return(nil)
	settings.EXPECT().
		FeeConfig(mock.Anything).
		Return(domain.FeeConfig{}, nil)

	view, err := svc.Create(context.Background(), advertiser, port.CreateCampaignReq{
		Title:        "Summer skincare set",
		PricingType:  domain.PricingProductWithPoints,
		ProductValue: 50000,
		SpherePoints: 10000,
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	c := view.Campaign
	if c.ID != 42 || c.AdvertiserID != advertiser.UserID {
		t.Fatalf("unexpected campaign %+v", c)
	}
	if c.Status != domain.StatusPending || c.PaymentStatus != domain.PaymentUnpaid || !c.Refundable {
		t.Fatalf("new campaign must start pending, unpaid and refundable: %+v", c)
	}
	if c.Slots != 1 {
		t.Fatalf("Slots = %d, want the default 1", c.Slots)
	}
	if view.Pricing.TotalCost != 73000 {
		t.Fatalf("TotalCost = %d, want 73000 with default fees", view.Pricing.TotalCost)
	}
}

func TestCancelApplicationAfterWindowCloses(t *testing.T) {
	svc, campaigns, applications, _ := newCampaignUseCase(t, domain.NewDate(2026, time.June, 11))

	applications.EXPECT().
		Get(mock.Anything, int64(7)).
		Return(&domain.Application{ID: 7, CampaignID: 1, InfluencerID: influencer.UserID, Status: domain.ApplicationPending}, nil)
	campaigns.EXPECT().
		Get(mock.Anything, int64(1)).
		Return(recruitingCampaign(), nil)

	err := svc.CancelApplication(context.Background(), influencer, 7)
	var conflict *domain.StateConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected StateConflictError, got %v", err)
	}
}

func TestDecideApplicationUnselectAfterAnnouncement(t *testing.T) {
	// June 13 is past the announcement date; the advertiser may no longer
	// take an approval back, but an administrator may.
	app := &domain.Application{ID: 7, CampaignID: 1, InfluencerID: influencer.UserID, Status: domain.ApplicationApproved}

	svc, campaigns, applications, _ := newCampaignUseCase(t, domain.NewDate(2026, time.June, 13))
	applications.EXPECT().Get(mock.Anything, int64(7)).Return(app, nil)
	campaigns.EXPECT().Get(mock.Anything, int64(1)).Return(recruitingCampaign(), nil)

	err := svc.DecideApplication(context.Background(), advertiser, 7, domain.ApplicationPending)
	var conflict *domain.StateConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected StateConflictError for the advertiser, got %v", err)
	}

	svc, campaigns, applications, _ = newCampaignUseCase(t, domain.NewDate(2026, time.June, 13))
	applications.EXPECT().Get(mock.Anything, int64(7)).Return(app, nil)
	campaigns.EXPECT().Get(mock.Anything, int64(1)).Return(recruitingCampaign(), nil)
	applications.EXPECT().SetStatus(mock.Anything, int64(7), domain.ApplicationPending).Return(nil)

	if err := svc.DecideApplication(context.Background(), admin, 7, domain.ApplicationPending); err != nil {
		t.Fatalf("unexpected error for the admin: %v", err)
	}
}

func TestSubmitReviewWindow(t *testing.T) {
	app := &domain.Application{ID: 7, CampaignID: 1, InfluencerID: influencer.UserID, Status: domain.ApplicationApproved}

	// Inside the window the review lands in moderation.
	svc, campaigns, applications, _ := newCampaignUseCase(t, domain.NewDate(2026, time.June, 20))
	applications.EXPECT().Get(mock.Anything, int64(7)).Return(app, nil)
	campaigns.EXPECT().Get(mock.Anything, int64(1)).Return(recruitingCampaign(), nil)
	applications.EXPECT().GetReview(mock.Anything, int64(7)).Return(nil, nil)
	applications.EXPECT().
		CreateReview(mock.Anything, mock.AnythingOfType("*domain.Review")).
		Run(func(ctx context.Context, r *domain.Review) {
			if r.Status != domain.ReviewPending {
				t.Errorf("new review status = %q, want pending", r.Status)
			}
		}).
		Return(nil)

	if err := svc.SubmitReview(context.Background(), influencer, 7, "https://blog.example/post", ""); err != nil {
		t.Fatalf("SubmitReview error: %v", err)
	}

	// Before the content period the window is closed.
	svc, campaigns, applications, _ = newCampaignUseCase(t, domain.NewDate(2026, time.June, 13))
	applications.EXPECT().Get(mock.Anything, int64(7)).Return(app, nil)
	campaigns.EXPECT().Get(mock.Anything, int64(1)).Return(recruitingCampaign(), nil)
	applications.EXPECT().GetReview(mock.Anything, int64(7)).Return(nil, nil)

	err := svc.SubmitReview(context.Background(), influencer, 7, "https://blog.example/post", "")
	var conflict *domain.StateConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected StateConflictError, got %v", err)
	}
}

func TestEditReviewApprovedIsImmutable(t *testing.T) {
	// Approval already credited the campaign's points; an edit would send
	// the review back to moderation and a second approval would pay again.
	app := &domain.Application{ID: 7, CampaignID: 1, InfluencerID: influencer.UserID, Status: domain.ApplicationApproved}

	svc, campaigns, applications, _ := newCampaignUseCase(t, domain.NewDate(2026, time.June, 20))
	applications.EXPECT().Get(mock.Anything, int64(7)).Return(app, nil)
	campaigns.EXPECT().Get(mock.Anything, int64(1)).Return(recruitingCampaign(), nil)
	applications.EXPECT().
		GetReview(mock.Anything, int64(7)).
		Return(&domain.Review{ID: 3, ApplicationID: 7, PostURL: "https://blog.example/post", Status: domain.ReviewApproved}, nil)

	err := svc.EditReview(context.Background(), influencer, 7, "https://blog.example/edited", "")
	var conflict *domain.StateConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected StateConflictError, got %v", err)
	}
	if conflict.Status != string(domain.ReviewApproved) {
		t.Fatalf("conflict status = %q, want approved", conflict.Status)
	}

	// A rejected review may be resubmitted; the edit resets moderation.
	svc, campaigns, applications, _ = newCampaignUseCase(t, domain.NewDate(2026, time.June, 20))
	applications.EXPECT().Get(mock.Anything, int64(7)).Return(app, nil)
	campaigns.EXPECT().Get(mock.Anything, int64(1)).Return(recruitingCampaign(), nil)
	applications.EXPECT().
		GetReview(mock.Anything, int64(7)).
		Return(&domain.Review{ID: 3, ApplicationID: 7, PostURL: "https://blog.example/post", Status: domain.ReviewRejected, RejectionReason: "blurry photos"}, nil)
	applications.EXPECT().
		UpdateReview(mock.Anything, mock.AnythingOfType("*domain.Review")).
		Run(func(ctx context.Context, rv *domain.Review) {
			if rv.Status != domain.ReviewPending || rv.RejectionReason != "" {
				t.Errorf("edited review must return to pending with the reason cleared: %+v", rv)
			}
		}).
		Return(nil)

	if err := svc.EditReview(context.Background(), influencer, 7, "https://blog.example/edited", ""); err != nil {
		t.Fatalf("EditReview error: %v", err)
	}
}

func TestModerateReviewApprovalCreditsPoints(t *testing.T) {
	svc, campaigns, applications, _ := newCampaignUseCase(t, domain.NewDate(2026, time.July, 1))

	applications.EXPECT().
		GetReview(mock.Anything, int64(7)).
		Return(&domain.Review{ID: 3, ApplicationID: 7, Status: domain.ReviewPending}, nil)
	applications.EXPECT().
		Get(mock.Anything, int64(7)).
		Return(&domain.Application{ID: 7, CampaignID: 1, InfluencerID: influencer.UserID, Status: domain.ApplicationApproved}, nil)
	campaigns.EXPECT().
		Get(mock.Anything, int64(1)).
		Return(recruitingCampaign(), nil)
	applications.EXPECT().
		ApproveReviewAndCreditPoints(mock.Anything, int64(7), int64(10000)).
		Return(nil)

	if err := svc.ModerateReview(context.Background(), admin, 7, true, ""); err != nil {
		t.Fatalf("ModerateReview error: %v", err)
	}
}

func TestModerateReviewRejectionNeedsReason(t *testing.T) {
	svc, _, applications, _ := newCampaignUseCase(t, domain.NewDate(2026, time.July, 1))

	applications.EXPECT().
		GetReview(mock.Anything, int64(7)).
		Return(&domain.Review{ID: 3, ApplicationID: 7, Status: domain.ReviewPending}, nil)

	err := svc.ModerateReview(context.Background(), admin, 7, false, "")
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestGetCompletedCampaignAsParticipant(t *testing.T) {
	// July 6 is past the result announcement, so the campaign resolves
	// completed; a participant still needs it for the review grace window.
	svc, campaigns, applications, settings := newCampaignUseCase(t, domain.NewDate(2026, time.July, 6))

	campaigns.EXPECT().
		Get(mock.Anything, int64(1)).
		Return(recruitingCampaign(), nil)
	applications.EXPECT().
		ListByInfluencer(mock.Anything, influencer.UserID).
		Return([]domain.Application{{ID: 7, CampaignID: 1, InfluencerID: influencer.UserID, Status: domain.ApplicationApproved}}, nil)
	settings.EXPECT().
		FeeConfig(mock.Anything).
		Return(domain.FeeConfig{}, nil)

	view, err := svc.Get(context.Background(), influencer, 1)
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if view.DisplayStatus != domain.DisplayCompleted {
		t.Fatalf("DisplayStatus = %q, want completed", view.DisplayStatus)
	}

	// Without an application the campaign stays hidden.
	svc, campaigns, applications, _ = newCampaignUseCase(t, domain.NewDate(2026, time.July, 6))
	campaigns.EXPECT().
		Get(mock.Anything, int64(1)).
		Return(recruitingCampaign(), nil)
	applications.EXPECT().
		ListByInfluencer(mock.Anything, influencer.UserID).
		Return(nil, nil)

	if _, err := svc.Get(context.Background(), influencer, 1); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestConfirmPaymentTerminalStates(t *testing.T) {
	svc, campaigns, _, _ := newCampaignUseCase(t, domain.NewDate(2026, time.May, 1))

	cancelled := recruitingCampaign()
	cancelled.Status = domain.StatusCancelled
	cancelled.PaymentStatus = domain.PaymentUnpaid
	campaigns.EXPECT().
		Get(mock.Anything, int64(1)).
		Return(cancelled, nil)

	err := svc.ConfirmPayment(context.Background(), admin, 1)
	var conflict *domain.StateConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected StateConflictError, got %v", err)
	}
	if conflict.Status != string(domain.StatusCancelled) {
		t.Fatalf("conflict status = %q, want cancelled", conflict.Status)
	}

	svc, campaigns, _, _ = newCampaignUseCase(t, domain.NewDate(2026, time.May, 1))
	pending := recruitingCampaign()
	pending.Status = domain.StatusPending
	pending.PaymentStatus = domain.PaymentUnpaid
	campaigns.EXPECT().
		Get(mock.Anything, int64(1)).
		Return(pending, nil)
	campaigns.EXPECT().
		SetPaymentStatus(mock.Anything, int64(1), domain.PaymentPaid).
		Return(nil)

	if err := svc.ConfirmPayment(context.Background(), admin, 1); err != nil {
		t.Fatalf("ConfirmPayment error: %v", err)
	}
}

func TestListHidesNonApprovedFromInfluencers(t *testing.T) {
	svc, campaigns, _, settings := newCampaignUseCase(t, domain.NewDate(2026, time.June, 5))

	visible := recruitingCampaign()
	pending := recruitingCampaign()
	pending.ID = 2
	pending.Status = domain.StatusPending

	campaigns.EXPECT().
		ListAll(mock.Anything).
		Return([]domain.Campaign{*visible, *pending}, nil)
	settings.EXPECT().
		FeeConfig(mock.Anything).
		Return(domain.FeeConfig{}, nil)

	views, err := svc.List(context.Background(), influencer)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(views) != 1 {
		t.Fatalf("expected 1 visible campaign, got %d", len(views))
	}
	if views[0].Campaign.ID != 1 || views[0].DisplayStatus != domain.DisplayRecruiting {
		t.Fatalf("unexpected view %+v", views[0])
	}
}
