package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"tilecast/internal/core/domain"
	"tilecast/internal/core/port"
)

// ChannelRepository implements port.ChannelRepository using pgxpool for
// PostgreSQL. Channels are created by an external admin path; this
// repository is read-only.
type ChannelRepository struct {
	pool *pgxpool.Pool
}

// NewChannelRepository returns a new repository instance.
func NewChannelRepository(pool *pgxpool.Pool) *ChannelRepository {
	return &ChannelRepository{pool: pool}
}

// List returns channels ordered by id ascending, capped at limit.
func (r *ChannelRepository) List(ctx context.Context, limit int) ([]port.ChannelInfo, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, created_at FROM channels ORDER BY id ASC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (port.ChannelInfo, error) {
		var c domain.Channel
		if err := row.Scan(&c.ID, &c.Name, &c.CreatedAt); err != nil {
			return port.ChannelInfo{}, err
		}
		return port.ChannelInfo{ID: c.ID, Name: c.Name, CreatedAt: c.CreatedAt}, nil
	})
}
