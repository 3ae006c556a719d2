package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"reviewsphere/internal/core/domain"
	"reviewsphere/internal/core/port"
)

// SettlementRepository implements port.SettlementRepository using pgxpool.
// Point deductions are transactional against a row lock so concurrent
// requests cannot overdraw a balance.
type SettlementRepository struct {
	pool *pgxpool.Pool
}

// NewSettlementRepository returns a new repository instance.
func NewSettlementRepository(pool *pgxpool.Pool) *SettlementRepository {
	return &SettlementRepository{pool: pool}
}

// GetInfluencerProfile returns the settlement slice of an influencer's
// profile, or (nil, nil) when absent.
func (r *SettlementRepository) GetInfluencerProfile(ctx context.Context, userID int64) (*domain.InfluencerProfile, error) {
	var p domain.InfluencerProfile
	err := r.pool.QueryRow(ctx, `SELECT user_id, account_holder_name, bank_name, account_number, contact_phone, sphere_points
        FROM influencer_profiles WHERE user_id = $1`, userID).
		Scan(&p.UserID, &p.AccountHolderName, &p.BankName, &p.AccountNumber, &p.ContactPhone, &p.SpherePoints)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

const withdrawalColumns = `id, reference, influencer_id, amount, withholding_tax, net_payout,
       bank_name, account_number, account_holder,
       real_name, resident_number_partial, contact_phone, id_card_image, bankbook_image, privacy_consent,
       status, rejection_reason, requested_at, reviewed_at, paid_at`

func scanWithdrawal(row scanner) (domain.WithdrawalRequest, error) {
	var w domain.WithdrawalRequest
	err := row.Scan(
		&w.ID, &w.Reference, &w.InfluencerID, &w.Amount, &w.WithholdingTax, &w.NetPayout,
		&w.BankName, &w.AccountNumber, &w.AccountHolder,
		&w.RealName, &w.ResidentNumberPartial, &w.ContactPhone, &w.IDCardImage, &w.BankbookImage, &w.PrivacyConsent,
		&w.Status, &w.RejectionReason, &w.RequestedAt, &w.ReviewedAt, &w.PaidAt,
	)
	return w, err
}

// CreateRequestAndDeductPoints inserts the request and deducts the amount
// from the influencer's balance under a row lock.
func (r *SettlementRepository) CreateRequestAndDeductPoints(ctx context.Context, w *domain.WithdrawalRequest) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			_ = tx.Commit(ctx)
		}
	}()

	var balance int64
	err = tx.QueryRow(ctx, `SELECT sphere_points FROM influencer_profiles WHERE user_id = $1 FOR UPDATE`,
		w.InfluencerID).Scan(&balance)
	if errors.Is(err, pgx.ErrNoRows) {
		err = domain.ErrNotFound
		return err
	}
	if err != nil {
		return err
	}
	if balance < w.Amount {
		err = port.ErrInsufficientPoints
		return err
	}

	_, err = tx.Exec(ctx, `UPDATE influencer_profiles SET sphere_points = sphere_points - $1, updated_at = now()
        WHERE user_id = $2`, w.Amount, w.InfluencerID)
	if err != nil {
		return err
	}

	err = tx.QueryRow(ctx, `INSERT INTO withdrawal_requests
        (reference, influencer_id, amount, withholding_tax, net_payout,
         bank_name, account_number, account_holder,
         real_name, resident_number_partial, contact_phone, id_card_image, bankbook_image, privacy_consent,
         status, requested_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16)
        RETURNING id`,
		w.Reference, w.InfluencerID, w.Amount, w.WithholdingTax, w.NetPayout,
		w.BankName, w.AccountNumber, w.AccountHolder,
		w.RealName, w.ResidentNumberPartial, w.ContactPhone, w.IDCardImage, w.BankbookImage, w.PrivacyConsent,
		w.Status, w.RequestedAt,
	).Scan(&w.ID)
	return err
}

// GetRequest returns a withdrawal request by id, or (nil, nil) when absent.
func (r *SettlementRepository) GetRequest(ctx context.Context, id int64) (*domain.WithdrawalRequest, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+withdrawalColumns+` FROM withdrawal_requests WHERE id = $1`, id)
	w, err := scanWithdrawal(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &w, nil
}

// ListRequests returns withdrawal requests, optionally filtered by status.
func (r *SettlementRepository) ListRequests(ctx context.Context, status *domain.WithdrawalStatus) ([]domain.WithdrawalRequest, error) {
	query := `SELECT ` + withdrawalColumns + ` FROM withdrawal_requests`
	args := []any{}
	if status != nil {
		query += ` WHERE status = $1`
		args = append(args, *status)
	}
	query += ` ORDER BY requested_at DESC`
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.WithdrawalRequest, error) {
		return scanWithdrawal(row)
	})
}

// ListRequestsByInfluencer returns an influencer's own requests.
func (r *SettlementRepository) ListRequestsByInfluencer(ctx context.Context, influencerID int64) ([]domain.WithdrawalRequest, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+withdrawalColumns+` FROM withdrawal_requests
        WHERE influencer_id = $1 ORDER BY requested_at DESC`, influencerID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.WithdrawalRequest, error) {
		return scanWithdrawal(row)
	})
}

// SetRequestStatus records a new status and its timestamp. Paid requests
// get a paid_at timestamp, every other transition a reviewed_at one.
func (r *SettlementRepository) SetRequestStatus(ctx context.Context, id int64, status domain.WithdrawalStatus, at time.Time) error {
	column := "reviewed_at"
	if status == domain.WithdrawalPaid {
		column = "paid_at"
	}
	tag, err := r.pool.Exec(ctx, `UPDATE withdrawal_requests SET status = $1, `+column+` = $2 WHERE id = $3`,
		status, at, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// RejectRequestAndRefundPoints marks the request rejected and credits the
// amount back to the influencer in the same transaction.
func (r *SettlementRepository) RejectRequestAndRefundPoints(ctx context.Context, id int64, reason string, at time.Time) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			_ = tx.Commit(ctx)
		}
	}()

	var (
		influencerID int64
		amount       int64
	)
	err = tx.QueryRow(ctx, `UPDATE withdrawal_requests SET status = 'rejected', rejection_reason = $1, reviewed_at = $2
        WHERE id = $3 AND status = 'requested' RETURNING influencer_id, amount`, reason, at, id).
		Scan(&influencerID, &amount)
	if errors.Is(err, pgx.ErrNoRows) {
		err = domain.ErrNotFound
		return err
	}
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx, `UPDATE influencer_profiles SET sphere_points = sphere_points + $1, updated_at = now()
        WHERE user_id = $2`, amount, influencerID)
	return err
}

// ListSettlements returns the payout overview rows for approved
// applications, joined with campaign, profile and review details.
func (r *SettlementRepository) ListSettlements(ctx context.Context) ([]port.SettlementRow, error) {
	rows, err := r.pool.Query(ctx, `SELECT
            a.id, c.id, c.title, c.sphere_points, a.influencer_id,
            COALESCE(ip.account_holder_name, ''), COALESCE(ip.bank_name, ''),
            COALESCE(ip.account_number, ''), COALESCE(ip.contact_phone, ''),
            COALESCE(r.post_url, ''), r.submitted_at, a.reviewed_at
        FROM applications a
        JOIN campaigns c ON a.campaign_id = c.id
        LEFT JOIN influencer_profiles ip ON a.influencer_id = ip.user_id
        LEFT JOIN reviews r ON a.id = r.application_id
        WHERE a.status = 'approved'
        ORDER BY a.reviewed_at DESC NULLS LAST`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (port.SettlementRow, error) {
		var s port.SettlementRow
		err := row.Scan(&s.ApplicationID, &s.CampaignID, &s.CampaignTitle, &s.SpherePoints, &s.InfluencerID,
			&s.AccountHolderName, &s.BankName, &s.AccountNumber, &s.ContactPhone,
			&s.PostURL, &s.SubmittedAt, &s.ReviewedAt)
		return s, err
	})
}
