package port

import (
	"context"
	"time"
)

// TileSpec carries the full attribute set identifying a tile and its
// adgroup. Matching uses every field: scalar fields with strict equality
// and the two set fields as sorted de-duplicated sets. There are no
// defaults and no partial matching.
type TileSpec struct {
	TargetURL        string
	BgColor          string
	TitleBgColor     string
	Title            string
	Type             string
	ImageURI         string
	EnhancedImageURI string
	Locale           string

	AdgroupName string
	Explanation string

	// Calendar-date bounds and precise timestamp bounds. All four match
	// independently; nil matches only nil.
	StartDate   *time.Time
	EndDate     *time.Time
	StartDateDt *time.Time
	EndDateDt   *time.Time

	// nil means unlimited.
	FrequencyCapDaily *int32
	FrequencyCapTotal *int32

	CheckInadjacency bool
	ChannelID        int64

	FrecentSites []string
	Categories   []string
}

// TileIDs pairs the identities produced by a tile creation or lookup.
type TileIDs struct {
	TileID    int64 `json:"tile_id"`
	AdgroupID int64 `json:"adgroup_id"`
}

// TileRepository is the persistence port for the tile matcher. It is an
// outbound port in hexagonal architecture.
type TileRepository interface {
	// FindExisting returns the identities of a tile semantically equal to
	// spec, or nil when no such tile exists. Scalar fields narrow
	// candidates in a single query ordered by tile id ascending; site and
	// category sets are then compared per candidate.
	FindExisting(ctx context.Context, spec TileSpec) (*TileIDs, error)
	// Create inserts the adgroup, its site and category sets and the tile
	// in one transaction and returns the new identities. It performs no
	// duplicate check.
	Create(ctx context.Context, spec TileSpec) (TileIDs, error)
	// Ensure runs FindExisting and, on a miss, Create inside a single
	// transaction holding an advisory lock derived from spec, so two
	// concurrent callers cannot both create the same tile. The boolean
	// reports whether a new tile was created.
	Ensure(ctx context.Context, spec TileSpec) (TileIDs, bool, error)
}

// TileUseCase is the inbound port exposing tile matching to adapters.
type TileUseCase interface {
	Exists(ctx context.Context, spec TileSpec) (*TileIDs, error)
	Create(ctx context.Context, spec TileSpec) (TileIDs, error)
	Ensure(ctx context.Context, spec TileSpec) (TileIDs, bool, error)
}
