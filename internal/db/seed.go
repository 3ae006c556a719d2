package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Seed inserts demo data: fee settings, a few campaigns in different
// lifecycle phases, influencer profiles with point balances, and
// applications with reviews.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	settings := map[string]string{
		"fixed_fee_points_only":          "10000",
		"fixed_fee_purchase_with_points": "12000",
		"fixed_fee_product_only":         "10000",
		"fixed_fee_product_with_points":  "15000",
		"fixed_fee_voucher_only":         "10000",
		"fixed_fee_voucher_with_points":  "15000",
		"points_fee_rate":                "30",
	}
	for key, value := range settings {
		_, err := db.Exec(ctx, `INSERT INTO system_settings (setting_key, setting_value)
            VALUES ($1, $2) ON CONFLICT DO NOTHING`, key, value)
		if err != nil {
			return err
		}
	}

	today := time.Now()
	type seedCampaign struct {
		title         string
		status        string
		payment       string
		pricingType   string
		productValue  int64
		spherePoints  int64
		appStartDays  int
		appEndDays    int
		contentDays   int
		announcedDays int
	}
	campaigns := []seedCampaign{
		{"Spring skincare launch", "pending", "unpaid", "product_with_points", 50000, 10000, 3, 10, 30, 35},
		{"Cafe voucher review", "approved", "paid", "voucher_only", 30000, 0, -2, 5, 20, 25},
		{"Fitness app points push", "approved", "paid", "points_only", 0, 20000, -10, -3, 14, 21},
		{"Winter campaign (closed)", "completed", "paid", "product_only", 80000, 0, -60, -50, -30, -25},
	}
	for i, sc := range campaigns {
		day := func(offset int) time.Time { return today.AddDate(0, 0, offset) }
		_, err := db.Exec(ctx, `INSERT INTO campaigns
            (id, advertiser_id, title, pricing_type, product_value, sphere_points, slots,
             status, payment_status,
             application_start, application_end, announcement, content_start, content_end, result_announcement)
            VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)
            ON CONFLICT DO NOTHING`,
			i+1, 1, sc.title, sc.pricingType, sc.productValue, sc.spherePoints, 5,
			sc.status, sc.payment,
			day(sc.appStartDays), day(sc.appEndDays), day(sc.appEndDays+2),
			day(sc.appEndDays+3), day(sc.contentDays), day(sc.announcedDays))
		if err != nil {
			return err
		}
	}

	for i := 1; i <= 3; i++ {
		_, err := db.Exec(ctx, `INSERT INTO influencer_profiles
            (user_id, account_holder_name, bank_name, account_number, contact_phone, sphere_points)
            VALUES ($1,$2,$3,$4,$5,$6) ON CONFLICT DO NOTHING`,
			100+i, fmt.Sprintf("Influencer %d", i), "KB Bank", fmt.Sprintf("110-%03d-456789", i),
			fmt.Sprintf("010-0000-%04d", i), int64(50000*i))
		if err != nil {
			return err
		}
	}

	// Applications against the recruiting campaign; the campaign stops
	// being refundable once these exist.
	for i := 1; i <= 2; i++ {
		var appID int64
		err := db.QueryRow(ctx, `INSERT INTO applications (campaign_id, influencer_id, status, message)
            VALUES ($1,$2,$3,$4) ON CONFLICT DO NOTHING RETURNING id`,
			2, 100+i, "approved", "Looking forward to this one").Scan(&appID)
		if err != nil {
			continue
		}
		_, err = db.Exec(ctx, `UPDATE campaigns SET refundable = FALSE WHERE id = 2`)
		if err != nil {
			return err
		}
		_, err = db.Exec(ctx, `INSERT INTO reviews (application_id, post_url, status)
            VALUES ($1,$2,'pending') ON CONFLICT DO NOTHING`,
			appID, fmt.Sprintf("https://blog.example.com/review-%d", appID))
		if err != nil {
			return err
		}
	}
	return nil
}
