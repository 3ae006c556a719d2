package postgres

import (
	"context"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"reviewsphere/internal/core/domain"
)

// SettingsRepository implements port.SettingsRepository over the
// system_settings key/value table. Fee keys follow the pattern
// fixed_fee_<pricing_type> plus the single points_fee_rate key.
type SettingsRepository struct {
	pool *pgxpool.Pool
}

// NewSettingsRepository returns a new repository instance.
func NewSettingsRepository(pool *pgxpool.Pool) *SettingsRepository {
	return &SettingsRepository{pool: pool}
}

const (
	fixedFeeKeyPrefix = "fixed_fee_"
	pointsFeeRateKey  = "points_fee_rate"
)

// FeeConfig loads the current fee settings. Unknown or malformed values
// are skipped so domain fallbacks apply.
func (r *SettingsRepository) FeeConfig(ctx context.Context) (domain.FeeConfig, error) {
	cfg := domain.FeeConfig{FixedFees: make(map[domain.PricingType]int64)}
	rows, err := r.pool.Query(ctx, `SELECT setting_key, setting_value FROM system_settings`)
	if err != nil {
		return cfg, err
	}
	defer rows.Close()
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return cfg, err
		}
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			continue
		}
		switch {
		case key == pointsFeeRateKey:
			cfg.PointsFeeRatePct = n
		case strings.HasPrefix(key, fixedFeeKeyPrefix):
			pt := domain.PricingType(strings.TrimPrefix(key, fixedFeeKeyPrefix))
			if domain.ValidPricingType(pt) {
				cfg.FixedFees[pt] = n
			}
		}
	}
	return cfg, rows.Err()
}

// All returns every setting as raw key/value pairs.
func (r *SettingsRepository) All(ctx context.Context) (map[string]string, error) {
	rows, err := r.pool.Query(ctx, `SELECT setting_key, setting_value FROM system_settings ORDER BY setting_key`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	settings := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, err
		}
		settings[key] = value
	}
	return settings, rows.Err()
}

// Set writes one setting, inserting or overwriting.
func (r *SettingsRepository) Set(ctx context.Context, key, value string) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO system_settings (setting_key, setting_value)
        VALUES ($1, $2)
        ON CONFLICT (setting_key) DO UPDATE SET setting_value = EXCLUDED.setting_value, updated_at = now()`,
		key, value)
	return err
}
