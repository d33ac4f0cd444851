package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Seed inserts demo data into the tilecast database: a few channels, one
// tile with its adgroup sets, and a spread of deployed and scheduled
// distributions per channel.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	now := time.Now().UTC()

	channels := []string{"desktop", "android", "desktop-prerelease"}
	for i, name := range channels {
		_, err := db.Exec(ctx, `INSERT INTO channels (id, name, created_at)
VALUES ($1, $2, $3) ON CONFLICT DO NOTHING`, i+1, name, now)
		if err != nil {
			return err
		}
	}

	var adgroupID int64
	err := db.QueryRow(ctx, `INSERT INTO adgroups
    (locale, name, explanation, check_inadjacency, channel_id, created_at)
VALUES ('en-US', 'Demo adgroup', 'Suggested for example.com visitors', FALSE, 1, $1)
RETURNING id`, now).Scan(&adgroupID)
	if err != nil {
		return err
	}
	for _, site := range []string{"example.com", "example.org"} {
		_, err = db.Exec(ctx, `INSERT INTO adgroup_sites (adgroup_id, site, created_at)
VALUES ($1, $2, $3)`, adgroupID, site, now)
		if err != nil {
			return err
		}
	}
	_, err = db.Exec(ctx, `INSERT INTO adgroup_categories (adgroup_id, category)
VALUES ($1, 'technology')`, adgroupID)
	if err != nil {
		return err
	}
	_, err = db.Exec(ctx, `INSERT INTO tiles
    (target_url, bg_color, title_bg_color, title, type, image_uri, enhanced_image_uri, locale, adgroup_id, created_at)
VALUES ('https://example.com', '#ffffff', '#ffffff', 'Demo tile', 'affiliate',
        'https://cdn.example.com/demo.png', 'https://cdn.example.com/demo@2x.png', 'en-US', $1, $2)`,
		adgroupID, now)
	if err != nil {
		return err
	}

	// Per channel: a few already-deployed distributions and a couple of
	// future-scheduled ones.
	for channelID := 1; channelID <= len(channels); channelID++ {
		for i := 0; i < 5; i++ {
			url := fmt.Sprintf("https://cdn.example.com/distributions/%s.json", uuid.NewString())
			createdAt := now.Add(-time.Duration(i) * time.Hour)
			_, err = db.Exec(ctx, `INSERT INTO distributions
    (url, channel_id, deployed, scheduled_start_date, created_at)
VALUES ($1, $2, TRUE, NULL, $3)`, url, channelID, createdAt)
			if err != nil {
				return err
			}
		}
		for i := 1; i <= 2; i++ {
			url := fmt.Sprintf("https://cdn.example.com/distributions/%s.json", uuid.NewString())
			scheduled := now.Add(time.Duration(i) * 24 * time.Hour)
			_, err = db.Exec(ctx, `INSERT INTO distributions
    (url, channel_id, deployed, scheduled_start_date, created_at)
VALUES ($1, $2, FALSE, $3, $4)`, url, channelID, scheduled, now)
			if err != nil {
				return err
			}
		}
	}
	return nil
}
