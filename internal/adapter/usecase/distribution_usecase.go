package usecase

import (
	"context"
	"time"

	"tilecast/internal/core/domain"
	"tilecast/internal/core/port"
)

const (
	// defaultLimit caps per-channel listing results when the caller does
	// not supply a positive limit.
	defaultLimit = 100
	// defaultLeniencyMinutes tolerates upcoming rows whose scheduled time
	// has just passed.
	defaultLeniencyMinutes = 15
)

// DistributionUseCase provides the distribution scheduler operations over
// a DistributionRepository.
type DistributionUseCase struct {
	repo port.DistributionRepository
}

// NewDistributionUseCase creates a new usecase with the provided
// repository.
func NewDistributionUseCase(repo port.DistributionRepository) *DistributionUseCase {
	return &DistributionUseCase{repo: repo}
}

// Schedule inserts one distribution. A distribution cannot be both
// pre-deployed and scheduled for the future: a non-nil schedule time
// forces deployed to false regardless of the caller's flag.
func (u *DistributionUseCase) Schedule(ctx context.Context, req port.ScheduleReq) error {
	if req.ScheduledAt != nil {
		req.Deployed = false
	}
	return u.repo.Insert(ctx, req)
}

// ListRecent returns per channel the most recently created distributions,
// capped at limit per channel.
func (u *DistributionUseCase) ListRecent(ctx context.Context, limit int) (map[int64][]port.RecentDistribution, error) {
	if limit <= 0 {
		limit = defaultLimit
	}
	return u.repo.ListRecent(ctx, limit)
}

// ListUpcoming returns per channel the never-deployed scheduled
// distributions, capped at limit per channel and ordered by scheduled
// time. Unless includePast is set, rows scheduled more than
// leniencyMinutes before now are excluded.
func (u *DistributionUseCase) ListUpcoming(ctx context.Context, limit, leniencyMinutes int, includePast bool) (map[int64][]port.UpcomingDistribution, error) {
	if limit <= 0 {
		limit = defaultLimit
	}
	var notBefore *time.Time
	if !includePast {
		if leniencyMinutes < 0 {
			leniencyMinutes = defaultLeniencyMinutes
		}
		cutoff := time.Now().UTC().Add(-time.Duration(leniencyMinutes) * time.Minute)
		notBefore = &cutoff
	}
	return u.repo.ListUpcoming(ctx, limit, notBefore)
}

// DueForDispatch resolves the trailing window [at-minutes, at] and
// returns every never-deployed distribution scheduled inside it. The
// window must be 1 through 59 minutes; validation fails before any store
// access. A zero at means now. Intended to be polled at least hourly with
// minutes covering the poll interval so no row is skipped between polls.
func (u *DistributionUseCase) DueForDispatch(ctx context.Context, minutes int, at time.Time) ([]domain.Distribution, error) {
	if minutes <= 0 || minutes >= 60 {
		return nil, port.ErrInvalidWindow
	}
	if at.IsZero() {
		at = time.Now().UTC()
	}
	from := at.Add(-time.Duration(minutes) * time.Minute)
	return u.repo.ListDue(ctx, from, at)
}

// Unschedule clears a pending schedule without deploying. It fails with
// port.ErrNotFound unless exactly one scheduled row matched the id.
func (u *DistributionUseCase) Unschedule(ctx context.Context, id int64) error {
	return u.repo.Unschedule(ctx, id)
}

// MarkDeployed records a successful publish for a distribution returned
// by DueForDispatch.
func (u *DistributionUseCase) MarkDeployed(ctx context.Context, id int64) error {
	return u.repo.MarkDeployed(ctx, id)
}
