package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"reviewsphere/internal/core/domain"
	"reviewsphere/internal/core/port"
)

// SettlementUseCase handles point withdrawals: request validation,
// withholding tax, and the administrator review lifecycle.
type SettlementUseCase struct {
	settlements port.SettlementRepository

	// now supplies the current instant; overridable in tests.
	now func() time.Time
}

// NewSettlementUseCase creates the usecase with the provided repository.
func NewSettlementUseCase(settlements port.SettlementRepository) *SettlementUseCase {
	return &SettlementUseCase{settlements: settlements, now: time.Now}
}

// RequestWithdrawal validates and persists a withdrawal request. The
// requested amount is deducted from the influencer's balance in the same
// transaction that inserts the request; a later rejection refunds it.
func (u *SettlementUseCase) RequestWithdrawal(ctx context.Context, actor domain.Actor, req port.WithdrawalReq) (*domain.WithdrawalRequest, error) {
	if actor.Role != domain.RoleInfluencer {
		return nil, domain.ErrForbidden
	}
	profile, err := u.settlements.GetInfluencerProfile(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, domain.ErrNotFound
	}
	if err := domain.ValidateWithdrawalAmount(req.Amount, profile.SpherePoints); err != nil {
		return nil, err
	}
	if !profile.HasBankAccount() {
		return nil, domain.Invalid("bank_account", "bank account details are missing from the profile")
	}
	if err := req.KYC.Validate(); err != nil {
		return nil, err
	}

	tax := domain.WithholdingTax(req.Amount)
	r := domain.WithdrawalRequest{
		Reference:      uuid.NewString(),
		InfluencerID:   actor.UserID,
		Amount:         req.Amount,
		WithholdingTax: tax,
		NetPayout:      req.Amount - tax,
		BankName:       profile.BankName,
		AccountNumber:  profile.AccountNumber,
		AccountHolder:  profile.AccountHolderName,
		KYC:            req.KYC,
		Status:         domain.WithdrawalRequested,
		RequestedAt:    u.now(),
	}
	if err := u.settlements.CreateRequestAndDeductPoints(ctx, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// ListWithdrawals returns the actor's own requests, or all requests
// (optionally filtered by status) for an administrator.
func (u *SettlementUseCase) ListWithdrawals(ctx context.Context, actor domain.Actor, status *domain.WithdrawalStatus) ([]domain.WithdrawalRequest, error) {
	if actor.IsAdmin() {
		return u.settlements.ListRequests(ctx, status)
	}
	return u.settlements.ListRequestsByInfluencer(ctx, actor.UserID)
}

// ApproveWithdrawal marks a requested withdrawal approved. Only the status
// and timestamp are recorded; the transfer itself happens off-platform.
func (u *SettlementUseCase) ApproveWithdrawal(ctx context.Context, actor domain.Actor, id int64) error {
	r, err := u.adminRequest(ctx, actor, id)
	if err != nil {
		return err
	}
	if r.Status != domain.WithdrawalRequested {
		return domain.Conflict("approve withdrawal", string(r.Status))
	}
	return u.settlements.SetRequestStatus(ctx, id, domain.WithdrawalApproved, u.now())
}

// RejectWithdrawal marks a requested withdrawal rejected and refunds the
// deducted points.
func (u *SettlementUseCase) RejectWithdrawal(ctx context.Context, actor domain.Actor, id int64, reason string) error {
	r, err := u.adminRequest(ctx, actor, id)
	if err != nil {
		return err
	}
	if r.Status != domain.WithdrawalRequested {
		return domain.Conflict("reject withdrawal", string(r.Status))
	}
	if reason == "" {
		return domain.Invalid("reason", "a rejection reason is required")
	}
	return u.settlements.RejectRequestAndRefundPoints(ctx, id, reason, u.now())
}

// MarkWithdrawalPaid records that an approved withdrawal has been paid out.
func (u *SettlementUseCase) MarkWithdrawalPaid(ctx context.Context, actor domain.Actor, id int64) error {
	r, err := u.adminRequest(ctx, actor, id)
	if err != nil {
		return err
	}
	if r.Status != domain.WithdrawalApproved {
		return domain.Conflict("mark withdrawal paid", string(r.Status))
	}
	return u.settlements.SetRequestStatus(ctx, id, domain.WithdrawalPaid, u.now())
}

// Settlements returns the payout overview rows for approved applications.
func (u *SettlementUseCase) Settlements(ctx context.Context, actor domain.Actor) ([]port.SettlementRow, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	return u.settlements.ListSettlements(ctx)
}

func (u *SettlementUseCase) adminRequest(ctx context.Context, actor domain.Actor, id int64) (*domain.WithdrawalRequest, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	r, err := u.settlements.GetRequest(ctx, id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, domain.ErrNotFound
	}
	return r, nil
}
