package port

import (
	"context"
	"errors"
	"time"

	"tilecast/internal/core/domain"
)

var (
	// ErrNotFound reports that no row (or not exactly one row) matched a
	// targeted mutation.
	ErrNotFound = errors.New("resource not found")
	// ErrInvalidWindow reports a dispatch window outside 1..59 minutes.
	ErrInvalidWindow = errors.New("minutes needs to be a number between 1..59 inclusive")
)

// ScheduleReq describes a distribution insert. When ScheduledAt is
// non-nil the Deployed flag is forced to false; a distribution is either
// already deployed or scheduled for the future, never both.
type ScheduleReq struct {
	URL         string
	ChannelID   int64
	Deployed    bool
	ScheduledAt *time.Time
}

// RecentDistribution is one entry of the per-channel recent listing.
type RecentDistribution struct {
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"created_at"`
}

// UpcomingDistribution is one entry of the per-channel upcoming listing.
type UpcomingDistribution struct {
	ID          int64     `json:"id"`
	URL         string    `json:"url"`
	CreatedAt   time.Time `json:"created_at"`
	ScheduledAt time.Time `json:"scheduled_at"`
}

// DistributionRepository is the persistence port for the distribution
// scheduler.
type DistributionRepository interface {
	// Insert stores one distribution row in its own transaction with the
	// creation timestamp taken once at call time.
	Insert(ctx context.Context, req ScheduleReq) error
	// ListRecent returns, per channel, at most limit distributions ordered
	// by creation time descending. Channels without distributions are
	// absent from the map.
	ListRecent(ctx context.Context, limit int) (map[int64][]RecentDistribution, error)
	// ListUpcoming returns, per channel, at most limit never-deployed
	// distributions with a schedule, ordered by scheduled time ascending.
	// A non-nil notBefore excludes rows scheduled earlier than it.
	ListUpcoming(ctx context.Context, limit int, notBefore *time.Time) (map[int64][]UpcomingDistribution, error)
	// ListDue returns every never-deployed distribution whose scheduled
	// start falls in [from, to], inclusive on both ends, across all
	// channels.
	ListDue(ctx context.Context, from, to time.Time) ([]domain.Distribution, error)
	// Unschedule clears the scheduled start of the identified
	// distribution. It returns ErrNotFound unless exactly one scheduled
	// row matched. The deployed flag is left untouched.
	Unschedule(ctx context.Context, id int64) error
	// MarkDeployed flips the deployed flag after a successful publish.
	MarkDeployed(ctx context.Context, id int64) error
}

// DistributionUseCase is the inbound port exposing the scheduler to
// adapters. Limits default to 100 when non-positive.
type DistributionUseCase interface {
	Schedule(ctx context.Context, req ScheduleReq) error
	ListRecent(ctx context.Context, limit int) (map[int64][]RecentDistribution, error)
	ListUpcoming(ctx context.Context, limit, leniencyMinutes int, includePast bool) (map[int64][]UpcomingDistribution, error)
	// DueForDispatch validates minutes (1..59) before touching the store
	// and resolves the window [at-minutes, at]. A zero at means now.
	DueForDispatch(ctx context.Context, minutes int, at time.Time) ([]domain.Distribution, error)
	Unschedule(ctx context.Context, id int64) error
	MarkDeployed(ctx context.Context, id int64) error
}
