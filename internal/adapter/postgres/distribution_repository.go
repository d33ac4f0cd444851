package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"tilecast/internal/core/domain"
	"tilecast/internal/core/port"
)

// DistributionRepository implements port.DistributionRepository using
// pgxpool for PostgreSQL. Top-N-per-channel listings are expressed with
// row_number() window ranking; stores without window functions would need
// per-channel queries merged in process.
type DistributionRepository struct {
	pool *pgxpool.Pool
}

// NewDistributionRepository returns a new repository instance.
func NewDistributionRepository(pool *pgxpool.Pool) *DistributionRepository {
	return &DistributionRepository{pool: pool}
}

// Insert stores one distribution row in its own transaction.
func (r *DistributionRepository) Insert(ctx context.Context, req port.ScheduleReq) error {
	return withTx(ctx, r.pool, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
			INSERT INTO distributions (url, channel_id, deployed, scheduled_start_date, created_at)
			VALUES ($1, $2, $3, $4, $5)`,
			req.URL, req.ChannelID, req.Deployed, req.ScheduledAt, time.Now().UTC())
		return err
	})
}

// ListRecent ranks all distributions within their channel by creation
// time descending, keeps rank <= limit and folds the result into a
// per-channel map. Channels without rows never appear in the map.
func (r *DistributionRepository) ListRecent(ctx context.Context, limit int) (map[int64][]port.RecentDistribution, error) {
	rows, err := r.pool.Query(ctx, `
		WITH ranked AS (
			SELECT channel_id, url, created_at,
			       row_number() OVER (PARTITION BY channel_id ORDER BY created_at DESC) AS row_num
			FROM distributions
		)
		SELECT channel_id, url, created_at
		FROM ranked
		WHERE row_num <= $1
		ORDER BY created_at DESC`,
		limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	channels := make(map[int64][]port.RecentDistribution)
	for rows.Next() {
		var (
			channelID int64
			d         port.RecentDistribution
		)
		if err = rows.Scan(&channelID, &d.URL, &d.CreatedAt); err != nil {
			return nil, err
		}
		channels[channelID] = append(channels[channelID], d)
	}
	return channels, rows.Err()
}

// ListUpcoming ranks never-deployed scheduled distributions within their
// channel by scheduled time ascending. Rows whose schedule was cleared
// (NULL) never surface here. A non-nil notBefore bounds the window from
// below; nil means no lower bound.
func (r *DistributionRepository) ListUpcoming(ctx context.Context, limit int, notBefore *time.Time) (map[int64][]port.UpcomingDistribution, error) {
	rows, err := r.pool.Query(ctx, `
		WITH ranked AS (
			SELECT id, channel_id, url, created_at, scheduled_start_date,
			       row_number() OVER (PARTITION BY channel_id ORDER BY scheduled_start_date ASC) AS row_num
			FROM distributions
			WHERE deployed = FALSE
			  AND scheduled_start_date IS NOT NULL
			  AND ($2::timestamptz IS NULL OR scheduled_start_date >= $2)
		)
		SELECT id, channel_id, url, created_at, scheduled_start_date
		FROM ranked
		WHERE row_num <= $1
		ORDER BY scheduled_start_date ASC`,
		limit, notBefore)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	channels := make(map[int64][]port.UpcomingDistribution)
	for rows.Next() {
		var (
			channelID int64
			d         port.UpcomingDistribution
		)
		if err = rows.Scan(&d.ID, &channelID, &d.URL, &d.CreatedAt, &d.ScheduledAt); err != nil {
			return nil, err
		}
		channels[channelID] = append(channels[channelID], d)
	}
	return channels, rows.Err()
}

// ListDue returns never-deployed distributions scheduled inside
// [from, to]. BETWEEN is inclusive on both ends, matching the dispatch
// window contract.
func (r *DistributionRepository) ListDue(ctx context.Context, from, to time.Time) ([]domain.Distribution, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, url, channel_id, deployed, scheduled_start_date, created_at
		FROM distributions
		WHERE deployed = FALSE
		  AND scheduled_start_date BETWEEN $1 AND $2`,
		from, to)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Distribution, error) {
		var d domain.Distribution
		err := row.Scan(&d.ID, &d.URL, &d.ChannelID, &d.Deployed, &d.ScheduledStart, &d.CreatedAt)
		return d, err
	})
}

// Unschedule clears a pending schedule. The guard on a non-NULL schedule
// makes an already-fired, already-unscheduled or nonexistent id an
// ErrNotFound rather than a silent no-op. Deployed is left untouched.
func (r *DistributionRepository) Unschedule(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE distributions
		SET scheduled_start_date = NULL
		WHERE id = $1 AND scheduled_start_date IS NOT NULL`,
		id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return port.ErrNotFound
	}
	return nil
}

// MarkDeployed records a successful publish. Callers treat due listings
// as snapshots, so a row that changed state in between surfaces as
// ErrNotFound here.
func (r *DistributionRepository) MarkDeployed(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `UPDATE distributions SET deployed = TRUE WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return port.ErrNotFound
	}
	return nil
}
