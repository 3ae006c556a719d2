package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"reviewsphere/internal/core/domain"
	"reviewsphere/internal/core/port"
)

// ApplicationRepository implements port.ApplicationRepository using pgxpool.
type ApplicationRepository struct {
	pool *pgxpool.Pool
}

// NewApplicationRepository returns a new repository instance.
func NewApplicationRepository(pool *pgxpool.Pool) *ApplicationRepository {
	return &ApplicationRepository{pool: pool}
}

const applicationColumns = `id, campaign_id, influencer_id, status, message, applied_at, reviewed_at`

func scanApplication(row scanner) (domain.Application, error) {
	var a domain.Application
	err := row.Scan(&a.ID, &a.CampaignID, &a.InfluencerID, &a.Status, &a.Message, &a.AppliedAt, &a.ReviewedAt)
	return a, err
}

// CreateAndLockRefund inserts an application and clears the campaign's
// refundable flag in the same transaction. The unique index on
// (campaign_id, influencer_id) enforces one application per pair.
func (r *ApplicationRepository) CreateAndLockRefund(ctx context.Context, app *domain.Application) error {
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

	err = tx.QueryRow(ctx, `INSERT INTO applications (campaign_id, influencer_id, status, message, applied_at)
        VALUES ($1,$2,$3,$4,$5) RETURNING id`,
		app.CampaignID, app.InfluencerID, app.Status, app.Message, app.AppliedAt,
	).Scan(&app.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			err = port.ErrDuplicateApplication
		}
		return err
	}

	_, err = tx.Exec(ctx, `UPDATE campaigns SET refundable = FALSE, updated_at = now() WHERE id = $1`, app.CampaignID)
	return err
}

// Get returns an application by id, or (nil, nil) when absent.
func (r *ApplicationRepository) Get(ctx context.Context, id int64) (*domain.Application, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+applicationColumns+` FROM applications WHERE id = $1`, id)
	a, err := scanApplication(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// ListByCampaign returns all applications for a campaign, newest first.
func (r *ApplicationRepository) ListByCampaign(ctx context.Context, campaignID int64) ([]domain.Application, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+applicationColumns+` FROM applications
        WHERE campaign_id = $1 ORDER BY applied_at DESC`, campaignID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Application, error) {
		return scanApplication(row)
	})
}

// ListByInfluencer returns all applications made by an influencer.
func (r *ApplicationRepository) ListByInfluencer(ctx context.Context, influencerID int64) ([]domain.Application, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+applicationColumns+` FROM applications
        WHERE influencer_id = $1 ORDER BY applied_at DESC`, influencerID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Application, error) {
		return scanApplication(row)
	})
}

// Delete removes an application.
func (r *ApplicationRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM applications WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SetStatus updates an application's status and records the review time.
func (r *ApplicationRepository) SetStatus(ctx context.Context, id int64, status domain.ApplicationStatus) error {
	tag, err := r.pool.Exec(ctx, `UPDATE applications SET status = $1, reviewed_at = now() WHERE id = $2`, status, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

const reviewColumns = `id, application_id, post_url, image_url, status, rejection_reason, submitted_at, reviewed_at`

func scanReview(row scanner) (domain.Review, error) {
	var rv domain.Review
	err := row.Scan(&rv.ID, &rv.ApplicationID, &rv.PostURL, &rv.ImageURL, &rv.Status,
		&rv.RejectionReason, &rv.SubmittedAt, &rv.ReviewedAt)
	return rv, err
}

// CreateReview inserts the review owned by an application.
func (r *ApplicationRepository) CreateReview(ctx context.Context, rv *domain.Review) error {
	return r.pool.QueryRow(ctx, `INSERT INTO reviews (application_id, post_url, image_url, status, submitted_at)
        VALUES ($1,$2,$3,$4,$5) RETURNING id`,
		rv.ApplicationID, rv.PostURL, rv.ImageURL, rv.Status, rv.SubmittedAt,
	).Scan(&rv.ID)
}

// GetReview returns the review for an application, or (nil, nil) when absent.
func (r *ApplicationRepository) GetReview(ctx context.Context, applicationID int64) (*domain.Review, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+reviewColumns+` FROM reviews WHERE application_id = $1`, applicationID)
	rv, err := scanReview(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rv, nil
}

// UpdateReview rewrites the submitted content and moderation state.
func (r *ApplicationRepository) UpdateReview(ctx context.Context, rv *domain.Review) error {
	tag, err := r.pool.Exec(ctx, `UPDATE reviews SET post_url = $1, image_url = $2, status = $3,
        rejection_reason = $4, submitted_at = now(), reviewed_at = NULL WHERE application_id = $5`,
		rv.PostURL, rv.ImageURL, rv.Status, rv.RejectionReason, rv.ApplicationID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ApproveReviewAndCreditPoints marks the review approved and credits the
// campaign's sphere points to the influencer in the same transaction.
func (r *ApplicationRepository) ApproveReviewAndCreditPoints(ctx context.Context, applicationID int64, points int64) error {
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

	tag, err := tx.Exec(ctx, `UPDATE reviews SET status = 'approved', rejection_reason = '', reviewed_at = now()
        WHERE application_id = $1`, applicationID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		err = domain.ErrNotFound
		return err
	}
	if points > 0 {
		_, err = tx.Exec(ctx, `INSERT INTO influencer_profiles (user_id, sphere_points)
            SELECT influencer_id, $1 FROM applications WHERE id = $2
            ON CONFLICT (user_id) DO UPDATE SET
                sphere_points = influencer_profiles.sphere_points + EXCLUDED.sphere_points,
                updated_at = now()`, points, applicationID)
	}
	return err
}

// RejectReview marks the review rejected with a reason.
func (r *ApplicationRepository) RejectReview(ctx context.Context, applicationID int64, reason string) error {
	tag, err := r.pool.Exec(ctx, `UPDATE reviews SET status = 'rejected', rejection_reason = $1, reviewed_at = now()
        WHERE application_id = $2`, reason, applicationID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
