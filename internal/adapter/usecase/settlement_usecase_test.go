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

func payableProfile() *domain.InfluencerProfile {
	return &domain.InfluencerProfile{
		UserID:            influencer.UserID,
		AccountHolderName: "Kim Jiwoo",
		BankName:          "Kookmin Bank",
		AccountNumber:     "110-123-456789",
		ContactPhone:      "010-1234-5678",
		SpherePoints:      50000,
	}
}

func withdrawalReq(amount int64) port.WithdrawalReq {
	return port.WithdrawalReq{
		Amount: amount,
		KYC: domain.KYC{
			RealName:              "Kim Jiwoo",
			ResidentNumberPartial: "950315",
			ContactPhone:          "010-1234-5678",
			IDCardImage:           "kyc/id-card.jpg",
			BankbookImage:         "kyc/bankbook.jpg",
			PrivacyConsent:        true,
		},
	}
}

func newSettlementUseCase(t *testing.T) (*SettlementUseCase, *mocks.MockSettlementRepository) {
	repo := mocks.NewMockSettlementRepository(t)
	svc := NewSettlementUseCase(repo)
	svc.now = func() time.Time {
		return time.Date(2026, time.July, 10, 12, 0, 0, 0, domain.KST)
	}
	return svc, repo
}

func TestRequestWithdrawal(t *testing.T) {
	svc, repo := newSettlementUseCase(t)

	repo.EXPECT().
		GetInfluencerProfile(mock.Anything, influencer.UserID).
		Return(payableProfile(), nil)
	repo.EXPECT().
		CreateRequestAndDeductPoints(mock.Anything, mock.AnythingOfType("*domain.WithdrawalRequest")).
		Run(func(ctx context.Context, r *domain.WithdrawalRequest) {
			r.ID = 5
		}).
		Return(nil)

	r, err := svc.RequestWithdrawal(context.Background(), influencer, withdrawalReq(30000))
	if err != nil {
		t.Fatalf("RequestWithdrawal error: %v", err)
	}
	if r.ID != 5 {
		t.Fatalf("expected repo-assigned id 5, got %d", r.ID)
	}
	if r.WithholdingTax != 6600 {
		t.Fatalf("WithholdingTax = %d, want 6600", r.WithholdingTax)
	}
	if r.NetPayout != 23400 {
		t.Fatalf("NetPayout = %d, want 23400", r.NetPayout)
	}
	if r.Status != domain.WithdrawalRequested {
		t.Fatalf("Status = %q, want requested", r.Status)
	}
	if r.Reference == "" {
		t.Fatal("expected a generated reference")
	}
	if r.BankName != "Kookmin Bank" || r.AccountHolder != "Kim Jiwoo" {
		t.Fatalf("bank details not copied from the profile: %+v", r)
	}
}

func TestRequestWithdrawalValidation(t *testing.T) {
	tests := []struct {
		name string
		mod  func(*port.WithdrawalReq, *domain.InfluencerProfile)
	}{
		{"amount not a whole unit", func(req *port.WithdrawalReq, p *domain.InfluencerProfile) {
			req.Amount = 15000
		}},
		{"amount below the minimum", func(req *port.WithdrawalReq, p *domain.InfluencerProfile) {
			req.Amount = 5000
		}},
		{"amount over the balance", func(req *port.WithdrawalReq, p *domain.InfluencerProfile) {
			p.SpherePoints = 20000
		}},
		{"no bank account on the profile", func(req *port.WithdrawalReq, p *domain.InfluencerProfile) {
			p.AccountNumber = ""
		}},
		{"missing privacy consent", func(req *port.WithdrawalReq, p *domain.InfluencerProfile) {
			req.KYC.PrivacyConsent = false
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newSettlementUseCase(t)

			req := withdrawalReq(30000)
			profile := payableProfile()
			tt.mod(&req, profile)

			repo.EXPECT().
				GetInfluencerProfile(mock.Anything, influencer.UserID).
				Return(profile, nil)

			_, err := svc.RequestWithdrawal(context.Background(), influencer, req)
			var verr *domain.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
		})
	}
}

func TestRequestWithdrawalAccess(t *testing.T) {
	svc, repo := newSettlementUseCase(t)

	if _, err := svc.RequestWithdrawal(context.Background(), advertiser, withdrawalReq(30000)); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for an advertiser, got %v", err)
	}

	repo.EXPECT().
		GetInfluencerProfile(mock.Anything, influencer.UserID).
		Return(nil, nil)
	if _, err := svc.RequestWithdrawal(context.Background(), influencer, withdrawalReq(30000)); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound without a profile, got %v", err)
	}
}

func TestRequestWithdrawalInsufficientBalanceRace(t *testing.T) {
	// The balance check passes on read but another request drains the
	// points before the transaction commits; the repository error wins.
	svc, repo := newSettlementUseCase(t)

	repo.EXPECT().
		GetInfluencerProfile(mock.Anything, influencer.UserID).
		Return(payableProfile(), nil)
	repo.EXPECT().
		CreateRequestAndDeductPoints(mock.Anything, mock.AnythingOfType("*domain.WithdrawalRequest")).
		Return(port.ErrInsufficientPoints)

	if _, err := svc.RequestWithdrawal(context.Background(), influencer, withdrawalReq(30000)); !errors.Is(err, port.ErrInsufficientPoints) {
		t.Fatalf("expected ErrInsufficientPoints, got %v", err)
	}
}

func TestWithdrawalLifecycle(t *testing.T) {
	requested := &domain.WithdrawalRequest{ID: 5, InfluencerID: influencer.UserID, Amount: 30000, Status: domain.WithdrawalRequested}
	approved := &domain.WithdrawalRequest{ID: 5, InfluencerID: influencer.UserID, Amount: 30000, Status: domain.WithdrawalApproved}

	t.Run("approve requested", func(t *testing.T) {
		svc, repo := newSettlementUseCase(t)
		repo.EXPECT().GetRequest(mock.Anything, int64(5)).Return(requested, nil)
		repo.EXPECT().
			SetRequestStatus(mock.Anything, int64(5), domain.WithdrawalApproved, mock.AnythingOfType("time.Time")).
			Return(nil)
		if err := svc.ApproveWithdrawal(context.Background(), admin, 5); err != nil {
			t.Fatalf("ApproveWithdrawal error: %v", err)
		}
	})

	t.Run("approve twice", func(t *testing.T) {
		svc, repo := newSettlementUseCase(t)
		repo.EXPECT().GetRequest(mock.Anything, int64(5)).Return(approved, nil)
		err := svc.ApproveWithdrawal(context.Background(), admin, 5)
		var conflict *domain.StateConflictError
		if !errors.As(err, &conflict) {
			t.Fatalf("expected StateConflictError, got %v", err)
		}
	})

	t.Run("reject refunds points", func(t *testing.T) {
		svc, repo := newSettlementUseCase(t)
		repo.EXPECT().GetRequest(mock.Anything, int64(5)).Return(requested, nil)
		repo.EXPECT().
			RejectRequestAndRefundPoints(mock.Anything, int64(5), "bank account mismatch", mock.AnythingOfType("time.Time")).
			Return(nil)
		if err := svc.RejectWithdrawal(context.Background(), admin, 5, "bank account mismatch"); err != nil {
			t.Fatalf("RejectWithdrawal error: %v", err)
		}
	})

	t.Run("reject needs a reason", func(t *testing.T) {
		svc, repo := newSettlementUseCase(t)
		repo.EXPECT().GetRequest(mock.Anything, int64(5)).Return(requested, nil)
		err := svc.RejectWithdrawal(context.Background(), admin, 5, "")
		var verr *domain.ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
	})

	t.Run("pay approved", func(t *testing.T) {
		svc, repo := newSettlementUseCase(t)
		repo.EXPECT().GetRequest(mock.Anything, int64(5)).Return(approved, nil)
		repo.EXPECT().
			SetRequestStatus(mock.Anything, int64(5), domain.WithdrawalPaid, mock.AnythingOfType("time.Time")).
			Return(nil)
		if err := svc.MarkWithdrawalPaid(context.Background(), admin, 5); err != nil {
			t.Fatalf("MarkWithdrawalPaid error: %v", err)
		}
	})

	t.Run("pay before approval", func(t *testing.T) {
		svc, repo := newSettlementUseCase(t)
		repo.EXPECT().GetRequest(mock.Anything, int64(5)).Return(requested, nil)
		err := svc.MarkWithdrawalPaid(context.Background(), admin, 5)
		var conflict *domain.StateConflictError
		if !errors.As(err, &conflict) {
			t.Fatalf("expected StateConflictError, got %v", err)
		}
	})

	t.Run("admin only", func(t *testing.T) {
		svc, _ := newSettlementUseCase(t)
		if err := svc.ApproveWithdrawal(context.Background(), influencer, 5); !errors.Is(err, domain.ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})
}

func TestListWithdrawals(t *testing.T) {
	svc, repo := newSettlementUseCase(t)

	status := domain.WithdrawalRequested
	repo.EXPECT().
		ListRequests(mock.Anything, &status).
		Return([]domain.WithdrawalRequest{{ID: 5}}, nil)
	repo.EXPECT().
		ListRequestsByInfluencer(mock.Anything, influencer.UserID).
		Return([]domain.WithdrawalRequest{{ID: 6}}, nil)

	rows, err := svc.ListWithdrawals(context.Background(), admin, &status)
	if err != nil || len(rows) != 1 || rows[0].ID != 5 {
		t.Fatalf("admin list = %v, %v", rows, err)
	}

	// A non-administrator always gets their own requests; the filter does
	// not apply.
	rows, err = svc.ListWithdrawals(context.Background(), influencer, &status)
	if err != nil || len(rows) != 1 || rows[0].ID != 6 {
		t.Fatalf("influencer list = %v, %v", rows, err)
	}
}

func TestSettlementsAdminOnly(t *testing.T) {
	svc, repo := newSettlementUseCase(t)

	if _, err := svc.Settlements(context.Background(), advertiser); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	repo.EXPECT().
		ListSettlements(mock.Anything).
		Return([]port.SettlementRow{{ApplicationID: 7, CampaignID: 1, SpherePoints: 10000}}, nil)

	rows, err := svc.Settlements(context.Background(), admin)
	if err != nil {
		t.Fatalf("Settlements error: %v", err)
	}
	if len(rows) != 1 || rows[0].ApplicationID != 7 {
		t.Fatalf("unexpected rows %+v", rows)
	}
}
