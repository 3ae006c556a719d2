package port

import (
	"context"
	"errors"
	"time"

	"reviewsphere/internal/core/domain"
)

// ErrInsufficientPoints is returned when a withdrawal would overdraw the
// influencer's point balance.
var ErrInsufficientPoints = errors.New("insufficient point balance")

// SettlementRepository is the persistence port for withdrawal requests and
// the influencer balances they draw on.
type SettlementRepository interface {
	// GetInfluencerProfile returns the settlement slice of an influencer's
	// profile, or (nil, nil) when absent.
	GetInfluencerProfile(ctx context.Context, userID int64) (*domain.InfluencerProfile, error)
	// CreateRequestAndDeductPoints inserts the request and, in the same
	// transaction, deducts the amount from the influencer's balance.
	// Returns ErrInsufficientPoints when the balance is too low.
	CreateRequestAndDeductPoints(ctx context.Context, r *domain.WithdrawalRequest) error
	// GetRequest returns a withdrawal request by id.
	GetRequest(ctx context.Context, id int64) (*domain.WithdrawalRequest, error)
	// ListRequests returns withdrawal requests, optionally filtered by
	// status, newest first.
	ListRequests(ctx context.Context, status *domain.WithdrawalStatus) ([]domain.WithdrawalRequest, error)
	// ListRequestsByInfluencer returns an influencer's own requests.
	ListRequestsByInfluencer(ctx context.Context, influencerID int64) ([]domain.WithdrawalRequest, error)
	// SetRequestStatus records a new status and its timestamp.
	SetRequestStatus(ctx context.Context, id int64, status domain.WithdrawalStatus, at time.Time) error
	// RejectRequestAndRefundPoints marks the request rejected and, in the
	// same transaction, credits the amount back to the influencer.
	RejectRequestAndRefundPoints(ctx context.Context, id int64, reason string, at time.Time) error
	// ListSettlements returns the payout overview rows for approved
	// applications, used by administrators for settlement export.
	ListSettlements(ctx context.Context) ([]SettlementRow, error)
}

// SettlementRow is one line of the administrator settlement overview.
type SettlementRow struct {
	ApplicationID     int64
	CampaignID        int64
	CampaignTitle     string
	SpherePoints      int64
	InfluencerID      int64
	AccountHolderName string
	BankName          string
	AccountNumber     string
	ContactPhone      string
	PostURL           string
	SubmittedAt       *time.Time
	ReviewedAt        *time.Time
}

// SettingsRepository is the persistence port for the administrator-mutable
// platform settings, including the fee configuration.
type SettingsRepository interface {
	// FeeConfig loads the current fee settings. Missing keys are left
	// zero so domain fallbacks apply.
	FeeConfig(ctx context.Context) (domain.FeeConfig, error)
	// All returns every setting as raw key/value pairs.
	All(ctx context.Context) (map[string]string, error)
	// Set writes one setting.
	Set(ctx context.Context, key, value string) error
}
