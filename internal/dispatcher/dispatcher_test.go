package dispatcher

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"tilecast/internal/adapter/usecase"
	"tilecast/internal/config/configs"
	"tilecast/internal/core/domain"
	"tilecast/internal/core/port/mocks"
)

type capturePublisher struct {
	published []int64
	fail      map[int64]bool
}

func (p *capturePublisher) Publish(_ context.Context, dist domain.Distribution) error {
	if p.fail[dist.ID] {
		return errors.New("publish failed")
	}
	p.published = append(p.published, dist.ID)
	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// TestDispatchDeploysDueDistributions ensures a poll publishes every due
// row and marks each success deployed.
func TestDispatchDeploysDueDistributions(t *testing.T) {
	repo := mocks.NewMockDistributionRepository(t)
	at := time.Date(2026, 8, 26, 9, 0, 0, 0, time.UTC)
	scheduled := at.Add(-10 * time.Minute)

	due := []domain.Distribution{
		{ID: 1, URL: "https://cdn.example.com/1.json", ChannelID: 1, ScheduledStart: &scheduled},
		{ID: 2, URL: "https://cdn.example.com/2.json", ChannelID: 2, ScheduledStart: &scheduled},
	}
	repo.EXPECT().
		ListDue(mock.Anything, at.Add(-30*time.Minute), at).
		Return(due, nil)
	repo.EXPECT().MarkDeployed(mock.Anything, int64(1)).Return(nil)
	repo.EXPECT().MarkDeployed(mock.Anything, int64(2)).Return(nil)

	pub := &capturePublisher{}
	d := New(usecase.NewDistributionUseCase(repo), pub, discardLogger(),
		configs.Dispatcher{Interval: 15 * time.Minute, WindowMinutes: 30})

	if got := d.Dispatch(context.Background(), at); got != 2 {
		t.Fatalf("deployed count: got %d, want 2", got)
	}
	if len(pub.published) != 2 {
		t.Fatalf("published: got %v, want both rows", pub.published)
	}
}

// TestDispatchSkipsFailedPublish ensures a publish failure leaves the row
// scheduled so a later poll can retry it.
func TestDispatchSkipsFailedPublish(t *testing.T) {
	repo := mocks.NewMockDistributionRepository(t)
	at := time.Date(2026, 8, 26, 9, 0, 0, 0, time.UTC)
	scheduled := at.Add(-5 * time.Minute)

	due := []domain.Distribution{
		{ID: 1, ScheduledStart: &scheduled},
		{ID: 2, ScheduledStart: &scheduled},
	}
	repo.EXPECT().
		ListDue(mock.Anything, mock.Anything, mock.Anything).
		Return(due, nil)
	// Only the successful publish may be marked deployed.
	repo.EXPECT().MarkDeployed(mock.Anything, int64(2)).Return(nil)

	pub := &capturePublisher{fail: map[int64]bool{1: true}}
	d := New(usecase.NewDistributionUseCase(repo), pub, discardLogger(),
		configs.Dispatcher{Interval: 15 * time.Minute, WindowMinutes: 30})

	if got := d.Dispatch(context.Background(), at); got != 1 {
		t.Fatalf("deployed count: got %d, want 1", got)
	}
}

// TestDispatchToleratesVanishedRow ensures a row unscheduled between the
// due query and the deploy mark is logged and skipped, not fatal.
func TestDispatchToleratesVanishedRow(t *testing.T) {
	repo := mocks.NewMockDistributionRepository(t)
	at := time.Date(2026, 8, 26, 9, 0, 0, 0, time.UTC)
	scheduled := at.Add(-5 * time.Minute)

	repo.EXPECT().
		ListDue(mock.Anything, mock.Anything, mock.Anything).
		Return([]domain.Distribution{{ID: 9, ScheduledStart: &scheduled}}, nil)
	repo.EXPECT().
		MarkDeployed(mock.Anything, int64(9)).
		Return(errors.New("no rows affected"))

	pub := &capturePublisher{}
	d := New(usecase.NewDistributionUseCase(repo), pub, discardLogger(),
		configs.Dispatcher{Interval: 15 * time.Minute, WindowMinutes: 30})

	if got := d.Dispatch(context.Background(), at); got != 0 {
		t.Fatalf("deployed count: got %d, want 0", got)
	}
}
