package port

import (
	"context"
	"errors"

	"reviewsphere/internal/core/domain"
)

// ErrDuplicateApplication is returned when an influencer applies twice to
// the same campaign.
var ErrDuplicateApplication = errors.New("already applied to this campaign")

// CampaignRepository is the persistence port for campaigns. Implementations
// must be concurrency-safe; each write is a single atomic statement scoped
// to one row. Lookup methods return (nil, nil) when the row is absent.
type CampaignRepository interface {
	// Create inserts a campaign and fills its ID and timestamps.
	Create(ctx context.Context, c *domain.Campaign) error
	// Get returns a campaign by id.
	Get(ctx context.Context, id int64) (*domain.Campaign, error)
	// ListByAdvertiser returns every campaign owned by the advertiser,
	// newest first.
	ListByAdvertiser(ctx context.Context, advertiserID int64) ([]domain.Campaign, error)
	// ListAll returns every campaign, newest first.
	ListAll(ctx context.Context) ([]domain.Campaign, error)
	// Update rewrites the mutable fields of a campaign.
	Update(ctx context.Context, c *domain.Campaign) error
	// SetStatus updates only the persisted status.
	SetStatus(ctx context.Context, id int64, status domain.CampaignStatus) error
	// SetPaymentStatus updates only the payment status.
	SetPaymentStatus(ctx context.Context, id int64, status domain.PaymentStatus) error
}

// ApplicationRepository is the persistence port for applications and their
// reviews.
type ApplicationRepository interface {
	// CreateAndLockRefund inserts an application and, in the same
	// transaction, irreversibly clears the campaign's refundable flag.
	// Returns ErrDuplicateApplication when the (campaign, influencer)
	// pair already exists.
	CreateAndLockRefund(ctx context.Context, app *domain.Application) error
	// Get returns an application by id.
	Get(ctx context.Context, id int64) (*domain.Application, error)
	// ListByCampaign returns all applications for a campaign, newest first.
	ListByCampaign(ctx context.Context, campaignID int64) ([]domain.Application, error)
	// ListByInfluencer returns all applications made by an influencer.
	ListByInfluencer(ctx context.Context, influencerID int64) ([]domain.Application, error)
	// Delete removes an application (influencer cancellation).
	Delete(ctx context.Context, id int64) error
	// SetStatus updates an application's status and review timestamp.
	SetStatus(ctx context.Context, id int64, status domain.ApplicationStatus) error

	// CreateReview inserts the review owned by an application.
	CreateReview(ctx context.Context, r *domain.Review) error
	// GetReview returns the review for an application, if any.
	GetReview(ctx context.Context, applicationID int64) (*domain.Review, error)
	// UpdateReview rewrites the submitted content of a review and resets
	// its moderation status to pending.
	UpdateReview(ctx context.Context, r *domain.Review) error
	// ApproveReviewAndCreditPoints marks the review approved and, in the
	// same transaction, credits the campaign's sphere points to the
	// influencer's balance.
	ApproveReviewAndCreditPoints(ctx context.Context, applicationID int64, points int64) error
	// RejectReview marks the review rejected with a reason.
	RejectReview(ctx context.Context, applicationID int64, reason string) error
}
