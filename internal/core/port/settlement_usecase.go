package port

import (
	"context"

	"reviewsphere/internal/core/domain"
)

// SettlementUseCase defines the point withdrawal operations exposed by the
// core.
type SettlementUseCase interface {
	// RequestWithdrawal validates the amount, balance, bank account and
	// KYC fields, computes the withholding tax and persists the request
	// with status requested, deducting the points in the same transaction.
	RequestWithdrawal(ctx context.Context, actor domain.Actor, req WithdrawalReq) (*domain.WithdrawalRequest, error)
	// ListWithdrawals returns the actor's own requests, or every request
	// (optionally filtered by status) for an administrator.
	ListWithdrawals(ctx context.Context, actor domain.Actor, status *domain.WithdrawalStatus) ([]domain.WithdrawalRequest, error)

	// ApproveWithdrawal marks a requested withdrawal approved.
	// Administrator only.
	ApproveWithdrawal(ctx context.Context, actor domain.Actor, id int64) error
	// RejectWithdrawal marks a requested withdrawal rejected and refunds
	// the deducted points. Administrator only.
	RejectWithdrawal(ctx context.Context, actor domain.Actor, id int64, reason string) error
	// MarkWithdrawalPaid marks an approved withdrawal paid. Administrator
	// only.
	MarkWithdrawalPaid(ctx context.Context, actor domain.Actor, id int64) error

	// Settlements returns the payout overview for approved applications.
	// Administrator only.
	Settlements(ctx context.Context, actor domain.Actor) ([]SettlementRow, error)
}

// WithdrawalReq carries an influencer's withdrawal submission. Bank fields
// are read from the influencer's profile, not from the request.
type WithdrawalReq struct {
	Amount int64
	KYC    domain.KYC
}
