package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"reviewsphere/internal/core/domain"
)

// CampaignRepository implements port.CampaignRepository using pgxpool.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

const campaignColumns = `id, advertiser_id, title, description, product_name, product_url, requirements,
       pricing_type, product_value, sphere_points, slots, status, payment_status, refundable,
       application_start, application_end, announcement, content_start, content_end, result_announcement,
       created_at, updated_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanCampaign(row scanner) (domain.Campaign, error) {
	var (
		c                                                domain.Campaign
		appStart, appEnd, announce, cStart, cEnd, result *time.Time
	)
	err := row.Scan(
		&c.ID,
		&c.AdvertiserID,
		&c.Title,
		&c.Description,
		&c.ProductName,
		&c.ProductURL,
		&c.Requirements,
		&c.PricingType,
		&c.ProductValue,
		&c.SpherePoints,
		&c.Slots,
		&c.Status,
		&c.PaymentStatus,
		&c.Refundable,
		&appStart,
		&appEnd,
		&announce,
		&cStart,
		&cEnd,
		&result,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return c, err
	}
	c.ApplicationStart = dateFromSQL(appStart)
	c.ApplicationEnd = dateFromSQL(appEnd)
	c.Announcement = dateFromSQL(announce)
	c.ContentStart = dateFromSQL(cStart)
	c.ContentEnd = dateFromSQL(cEnd)
	c.ResultAnnouncement = dateFromSQL(result)
	return c, nil
}

// dateToSQL converts a civil date to a nullable SQL DATE value.
func dateToSQL(d domain.Date) *time.Time {
	if d.IsZero() {
		return nil
	}
	t := time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
	return &t
}

func dateFromSQL(t *time.Time) domain.Date {
	if t == nil {
		return domain.Date{}
	}
	return domain.DateOf(*t)
}

// Create inserts a campaign and fills its ID and timestamps.
func (r *CampaignRepository) Create(ctx context.Context, c *domain.Campaign) error {
	return r.pool.QueryRow(ctx, `INSERT INTO campaigns
        (advertiser_id, title, description, product_name, product_url, requirements,
         pricing_type, product_value, sphere_points, slots, status, payment_status, refundable,
         application_start, application_end, announcement, content_start, content_end, result_announcement)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19)
        RETURNING id, created_at, updated_at`,
		c.AdvertiserID, c.Title, c.Description, c.ProductName, c.ProductURL, c.Requirements,
		c.PricingType, c.ProductValue, c.SpherePoints, c.Slots, c.Status, c.PaymentStatus, c.Refundable,
		dateToSQL(c.ApplicationStart), dateToSQL(c.ApplicationEnd), dateToSQL(c.Announcement),
		dateToSQL(c.ContentStart), dateToSQL(c.ContentEnd), dateToSQL(c.ResultAnnouncement),
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

// Get returns a campaign by id, or (nil, nil) when absent.
func (r *CampaignRepository) Get(ctx context.Context, id int64) (*domain.Campaign, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = $1`, id)
	c, err := scanCampaign(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ListByAdvertiser returns the advertiser's campaigns, newest first.
func (r *CampaignRepository) ListByAdvertiser(ctx context.Context, advertiserID int64) ([]domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+campaignColumns+` FROM campaigns
        WHERE advertiser_id = $1 ORDER BY created_at DESC`, advertiserID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		return scanCampaign(row)
	})
}

// ListAll returns every campaign, newest first.
func (r *CampaignRepository) ListAll(ctx context.Context) ([]domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+campaignColumns+` FROM campaigns ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		return scanCampaign(row)
	})
}

// Update rewrites the mutable fields of a campaign.
func (r *CampaignRepository) Update(ctx context.Context, c *domain.Campaign) error {
	tag, err := r.pool.Exec(ctx, `UPDATE campaigns SET
        title = $1, description = $2, product_name = $3, product_url = $4, requirements = $5,
        pricing_type = $6, product_value = $7, sphere_points = $8, slots = $9, payment_status = $10,
        application_start = $11, application_end = $12, announcement = $13,
        content_start = $14, content_end = $15, result_announcement = $16,
        updated_at = now()
        WHERE id = $17`,
		c.Title, c.Description, c.ProductName, c.ProductURL, c.Requirements,
		c.PricingType, c.ProductValue, c.SpherePoints, c.Slots, c.PaymentStatus,
		dateToSQL(c.ApplicationStart), dateToSQL(c.ApplicationEnd), dateToSQL(c.Announcement),
		dateToSQL(c.ContentStart), dateToSQL(c.ContentEnd), dateToSQL(c.ResultAnnouncement),
		c.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SetStatus updates only the persisted status.
func (r *CampaignRepository) SetStatus(ctx context.Context, id int64, status domain.CampaignStatus) error {
	tag, err := r.pool.Exec(ctx, `UPDATE campaigns SET status = $1, updated_at = now() WHERE id = $2`, status, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SetPaymentStatus updates only the payment status.
func (r *CampaignRepository) SetPaymentStatus(ctx context.Context, id int64, status domain.PaymentStatus) error {
	tag, err := r.pool.Exec(ctx, `UPDATE campaigns SET payment_status = $1, updated_at = now() WHERE id = $2`, status, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
