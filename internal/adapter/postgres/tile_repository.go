package postgres

import (
	"context"
	"slices"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"tilecast/internal/core/domain"
	"tilecast/internal/core/port"
)

// TileRepository implements port.TileRepository using pgxpool for
// PostgreSQL.
type TileRepository struct {
	pool *pgxpool.Pool
}

// NewTileRepository returns a new repository instance.
func NewTileRepository(pool *pgxpool.Pool) *TileRepository {
	return &TileRepository{pool: pool}
}

// tileMatchQuery narrows candidates on every scalar field. Nullable
// columns use IS NOT DISTINCT FROM so a nil bound matches only a NULL
// column. The order by tile id keeps the scan deterministic when
// historical duplicates tie on scalars.
const tileMatchQuery = `
	SELECT t.id, t.adgroup_id
	FROM tiles t
	JOIN adgroups a ON a.id = t.adgroup_id
	WHERE t.target_url = $1
	  AND t.bg_color = $2
	  AND t.title_bg_color = $3
	  AND t.title = $4
	  AND t.type = $5
	  AND t.image_uri = $6
	  AND t.enhanced_image_uri = $7
	  AND t.locale = $8
	  AND a.locale = $8
	  AND a.start_date IS NOT DISTINCT FROM $9::date
	  AND a.end_date IS NOT DISTINCT FROM $10::date
	  AND a.start_date_dt IS NOT DISTINCT FROM $11
	  AND a.end_date_dt IS NOT DISTINCT FROM $12
	  AND a.frequency_cap_daily IS NOT DISTINCT FROM $13
	  AND a.frequency_cap_total IS NOT DISTINCT FROM $14
	  AND a.name = $15
	  AND a.explanation = $16
	  AND a.check_inadjacency = $17
	  AND a.channel_id = $18
	ORDER BY t.id ASC`

// FindExisting returns the identities of a tile equal to spec, or nil
// when none matches. Scalar equality is cheap and runs once; the two set
// comparisons cost a query each, so they run per candidate and
// short-circuit on the first full match.
func (r *TileRepository) FindExisting(ctx context.Context, spec port.TileSpec) (*port.TileIDs, error) {
	return findExisting(ctx, r.pool, spec)
}

func findExisting(ctx context.Context, q querier, spec port.TileSpec) (*port.TileIDs, error) {
	rows, err := q.Query(ctx, tileMatchQuery,
		spec.TargetURL, spec.BgColor, spec.TitleBgColor, spec.Title,
		spec.Type, spec.ImageURI, spec.EnhancedImageURI, spec.Locale,
		spec.StartDate, spec.EndDate, spec.StartDateDt, spec.EndDateDt,
		spec.FrequencyCapDaily, spec.FrequencyCapTotal,
		spec.AdgroupName, spec.Explanation, spec.CheckInadjacency, spec.ChannelID,
	)
	if err != nil {
		return nil, err
	}
	candidates, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (port.TileIDs, error) {
		var ids port.TileIDs
		err := row.Scan(&ids.TileID, &ids.AdgroupID)
		return ids, err
	})
	if err != nil {
		return nil, err
	}

	wantSites := normalizeSet(spec.FrecentSites)
	wantCategories := normalizeSet(spec.Categories)

	for _, ids := range candidates {
		sites, err := adgroupSet(ctx, q, `SELECT site FROM adgroup_sites WHERE adgroup_id = $1`, ids.AdgroupID)
		if err != nil {
			return nil, err
		}
		if !slices.Equal(sites, wantSites) {
			continue
		}
		categories, err := adgroupSet(ctx, q, `SELECT category FROM adgroup_categories WHERE adgroup_id = $1`, ids.AdgroupID)
		if err != nil {
			return nil, err
		}
		if slices.Equal(categories, wantCategories) {
			return &ids, nil
		}
	}
	return nil, nil
}

// adgroupSet fetches one set-valued attribute of an adgroup in its
// normalized (sorted, de-duplicated) form.
func adgroupSet(ctx context.Context, q querier, query string, adgroupID int64) ([]string, error) {
	rows, err := q.Query(ctx, query, adgroupID)
	if err != nil {
		return nil, err
	}
	values, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (string, error) {
		var v string
		err := row.Scan(&v)
		return v, err
	})
	if err != nil {
		return nil, err
	}
	return normalizeSet(values), nil
}

// Create inserts the adgroup, its site and category sets and the tile in
// one transaction. No duplicate check is performed; callers pair this
// with FindExisting or use Ensure.
func (r *TileRepository) Create(ctx context.Context, spec port.TileSpec) (port.TileIDs, error) {
	var ids port.TileIDs
	err := withTx(ctx, r.pool, func(tx pgx.Tx) error {
		var err error
		ids, err = createTile(ctx, tx, spec)
		return err
	})
	return ids, err
}

func createTile(ctx context.Context, tx pgx.Tx, spec port.TileSpec) (port.TileIDs, error) {
	var ids port.TileIDs

	// One timestamp for every row produced by this call.
	now := time.Now().UTC()

	adgroup := domain.Adgroup{
		Locale:            spec.Locale,
		StartDate:         spec.StartDate,
		EndDate:           spec.EndDate,
		StartDateDt:       spec.StartDateDt,
		EndDateDt:         spec.EndDateDt,
		Name:              spec.AdgroupName,
		Explanation:       spec.Explanation,
		FrequencyCapDaily: spec.FrequencyCapDaily,
		FrequencyCapTotal: spec.FrequencyCapTotal,
		CheckInadjacency:  spec.CheckInadjacency,
		ChannelID:         spec.ChannelID,
		CreatedAt:         now,
	}
	err := tx.QueryRow(ctx, `
		INSERT INTO adgroups (
			locale, start_date, end_date, start_date_dt, end_date_dt,
			name, explanation, frequency_cap_daily, frequency_cap_total,
			check_inadjacency, channel_id, created_at
		) VALUES ($1, $2::date, $3::date, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id`,
		adgroup.Locale, adgroup.StartDate, adgroup.EndDate, adgroup.StartDateDt, adgroup.EndDateDt,
		adgroup.Name, adgroup.Explanation, adgroup.FrequencyCapDaily, adgroup.FrequencyCapTotal,
		adgroup.CheckInadjacency, adgroup.ChannelID, adgroup.CreatedAt,
	).Scan(&ids.AdgroupID)
	if err != nil {
		return ids, err
	}

	if len(spec.FrecentSites) > 0 {
		b := &pgx.Batch{}
		for _, s := range spec.FrecentSites {
			site := domain.AdgroupSite{AdgroupID: ids.AdgroupID, Site: s, CreatedAt: now}
			b.Queue(`INSERT INTO adgroup_sites (adgroup_id, site, created_at) VALUES ($1, $2, $3)`,
				site.AdgroupID, site.Site, site.CreatedAt)
		}
		if err = tx.SendBatch(ctx, b).Close(); err != nil {
			return ids, err
		}
	}

	if len(spec.Categories) > 0 {
		b := &pgx.Batch{}
		for _, c := range spec.Categories {
			category := domain.AdgroupCategory{AdgroupID: ids.AdgroupID, Category: c}
			b.Queue(`INSERT INTO adgroup_categories (adgroup_id, category) VALUES ($1, $2)`,
				category.AdgroupID, category.Category)
		}
		if err = tx.SendBatch(ctx, b).Close(); err != nil {
			return ids, err
		}
	}

	tile := domain.Tile{
		TargetURL:        spec.TargetURL,
		BgColor:          spec.BgColor,
		TitleBgColor:     spec.TitleBgColor,
		Title:            spec.Title,
		Type:             spec.Type,
		ImageURI:         spec.ImageURI,
		EnhancedImageURI: spec.EnhancedImageURI,
		Locale:           spec.Locale,
		AdgroupID:        ids.AdgroupID,
		CreatedAt:        now,
	}
	err = tx.QueryRow(ctx, `
		INSERT INTO tiles (
			target_url, bg_color, title_bg_color, title, type,
			image_uri, enhanced_image_uri, locale, adgroup_id, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`,
		tile.TargetURL, tile.BgColor, tile.TitleBgColor, tile.Title, tile.Type,
		tile.ImageURI, tile.EnhancedImageURI, tile.Locale, tile.AdgroupID, tile.CreatedAt,
	).Scan(&ids.TileID)
	return ids, err
}

// Ensure looks the tile up and creates it on a miss, all inside one
// transaction holding an advisory lock keyed by the candidate's
// normalized attributes. Concurrent ensure calls for the same tile
// serialise on the lock, so only one of them creates rows.
func (r *TileRepository) Ensure(ctx context.Context, spec port.TileSpec) (port.TileIDs, bool, error) {
	var (
		ids     port.TileIDs
		created bool
	)
	err := withTx(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, lockKey(spec)); err != nil {
			return err
		}
		existing, err := findExisting(ctx, tx, spec)
		if err != nil {
			return err
		}
		if existing != nil {
			ids = *existing
			return nil
		}
		ids, err = createTile(ctx, tx, spec)
		created = err == nil
		return err
	})
	if err != nil {
		return port.TileIDs{}, false, err
	}
	return ids, created, nil
}
