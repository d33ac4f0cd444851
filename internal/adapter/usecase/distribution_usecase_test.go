package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"tilecast/internal/core/domain"
	"tilecast/internal/core/port"
	"tilecast/internal/core/port/mocks"
)

// TestScheduleForcesDeployedFalse ensures a scheduled distribution can
// never be inserted as already deployed, whatever the caller passed.
func TestScheduleForcesDeployedFalse(t *testing.T) {
	repo := mocks.NewMockDistributionRepository(t)

	scheduled := time.Now().UTC().Add(time.Hour)
	repo.EXPECT().
		Insert(mock.Anything, mock.AnythingOfType("port.ScheduleReq")).
		Run(func(_ context.Context, req port.ScheduleReq) {
			if req.Deployed {
				t.Errorf("deployed flag not forced to false for scheduled insert")
			}
		}).
		Return(nil)

	svc := NewDistributionUseCase(repo)
	err := svc.Schedule(context.Background(), port.ScheduleReq{
		URL:         "https://cdn.example.com/d.json",
		ChannelID:   1,
		Deployed:    true,
		ScheduledAt: &scheduled,
	})
	if err != nil {
		t.Fatalf("Schedule error: %v", err)
	}
}

// TestScheduleKeepsDeployedWithoutSchedule ensures an immediate deploy
// passes through untouched.
func TestScheduleKeepsDeployedWithoutSchedule(t *testing.T) {
	repo := mocks.NewMockDistributionRepository(t)

	repo.EXPECT().
		Insert(mock.Anything, port.ScheduleReq{URL: "https://cdn.example.com/d.json", ChannelID: 2, Deployed: true}).
		Return(nil)

	svc := NewDistributionUseCase(repo)
	err := svc.Schedule(context.Background(), port.ScheduleReq{
		URL:       "https://cdn.example.com/d.json",
		ChannelID: 2,
		Deployed:  true,
	})
	if err != nil {
		t.Fatalf("Schedule error: %v", err)
	}
}

func TestDueForDispatchValidatesWindow(t *testing.T) {
	for _, minutes := range []int{-5, 0, 60, 120} {
		svc := NewDistributionUseCase(mocks.NewMockDistributionRepository(t))
		_, err := svc.DueForDispatch(context.Background(), minutes, time.Time{})
		if !errors.Is(err, port.ErrInvalidWindow) {
			t.Fatalf("minutes=%d: got %v, want ErrInvalidWindow", minutes, err)
		}
	}
}

func TestDueForDispatchWindowBounds(t *testing.T) {
	at := time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC)

	for _, minutes := range []int{1, 59} {
		repo := mocks.NewMockDistributionRepository(t)
		repo.EXPECT().
			ListDue(mock.Anything, at.Add(-time.Duration(minutes)*time.Minute), at).
			Return([]domain.Distribution{{ID: 7}}, nil)

		svc := NewDistributionUseCase(repo)
		due, err := svc.DueForDispatch(context.Background(), minutes, at)
		if err != nil {
			t.Fatalf("minutes=%d: unexpected error %v", minutes, err)
		}
		if len(due) != 1 || due[0].ID != 7 {
			t.Fatalf("minutes=%d: unexpected result %v", minutes, due)
		}
	}
}

func TestDueForDispatchDefaultsToNow(t *testing.T) {
	repo := mocks.NewMockDistributionRepository(t)

	before := time.Now().UTC()
	repo.EXPECT().
		ListDue(mock.Anything, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Run(func(_ context.Context, from, to time.Time) {
			if to.Before(before) {
				t.Errorf("window end %v precedes call time %v", to, before)
			}
			if got := to.Sub(from); got != 30*time.Minute {
				t.Errorf("window width: got %v, want 30m", got)
			}
		}).
		Return(nil, nil)

	svc := NewDistributionUseCase(repo)
	if _, err := svc.DueForDispatch(context.Background(), 30, time.Time{}); err != nil {
		t.Fatalf("DueForDispatch error: %v", err)
	}
}

func TestListRecentDefaultsLimit(t *testing.T) {
	repo := mocks.NewMockDistributionRepository(t)
	repo.EXPECT().
		ListRecent(mock.Anything, 100).
		Return(map[int64][]port.RecentDistribution{}, nil)

	svc := NewDistributionUseCase(repo)
	if _, err := svc.ListRecent(context.Background(), 0); err != nil {
		t.Fatalf("ListRecent error: %v", err)
	}
}

func TestListUpcomingAppliesLeniency(t *testing.T) {
	repo := mocks.NewMockDistributionRepository(t)

	before := time.Now().UTC()
	repo.EXPECT().
		ListUpcoming(mock.Anything, 5, mock.Anything).
		Run(func(_ context.Context, _ int, notBefore *time.Time) {
			if notBefore == nil {
				t.Errorf("expected a lower bound when include_past is false")
				return
			}
			lag := before.Sub(*notBefore)
			if lag < 14*time.Minute || lag > 16*time.Minute {
				t.Errorf("lower bound %v not ~15m before now", *notBefore)
			}
		}).
		Return(map[int64][]port.UpcomingDistribution{}, nil)

	svc := NewDistributionUseCase(repo)
	if _, err := svc.ListUpcoming(context.Background(), 5, 15, false); err != nil {
		t.Fatalf("ListUpcoming error: %v", err)
	}
}

func TestListUpcomingIncludePastDropsLowerBound(t *testing.T) {
	repo := mocks.NewMockDistributionRepository(t)
	repo.EXPECT().
		ListUpcoming(mock.Anything, 100, (*time.Time)(nil)).
		Return(map[int64][]port.UpcomingDistribution{}, nil)

	svc := NewDistributionUseCase(repo)
	if _, err := svc.ListUpcoming(context.Background(), 0, 15, true); err != nil {
		t.Fatalf("ListUpcoming error: %v", err)
	}
}

func TestUnschedulePropagatesNotFound(t *testing.T) {
	repo := mocks.NewMockDistributionRepository(t)
	repo.EXPECT().
		Unschedule(mock.Anything, int64(42)).
		Return(port.ErrNotFound)

	svc := NewDistributionUseCase(repo)
	if err := svc.Unschedule(context.Background(), 42); !errors.Is(err, port.ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}
