package dispatcher

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"tilecast/internal/config/configs"
	"tilecast/internal/core/domain"
	"tilecast/internal/core/port"
)

// Publisher delivers a due distribution to its channel. Implementations
// must be safe for repeated delivery attempts of the same distribution.
type Publisher interface {
	Publish(ctx context.Context, dist domain.Distribution) error
}

// LogPublisher is the default Publisher. It only records the publish; a
// deployment wires a real transport here.
type LogPublisher struct {
	Logger *slog.Logger
}

// Publish logs the distribution and reports success.
func (p *LogPublisher) Publish(_ context.Context, dist domain.Distribution) error {
	p.Logger.Info("publishing distribution",
		slog.Int64("distribution_id", dist.ID),
		slog.Int64("channel_id", dist.ChannelID),
		slog.String("url", dist.URL))
	return nil
}

// Dispatcher periodically resolves due distributions and fires them. Each
// poll fetches the never-deployed rows scheduled inside the trailing
// window, publishes them and marks successes deployed. The due set is a
// snapshot, not a lease: a row may be unscheduled between the query and
// the deploy mark, in which case the mark fails and is logged, not
// retried.
type Dispatcher struct {
	dists  port.DistributionUseCase
	pub    Publisher
	logger *slog.Logger

	interval      time.Duration
	windowMinutes int
}

// New creates a dispatcher from its configuration. The window must cover
// at least the poll interval or rows scheduled between two polls would be
// skipped; that is the operator's responsibility.
func New(dists port.DistributionUseCase, pub Publisher, logger *slog.Logger, cfg configs.Dispatcher) *Dispatcher {
	return &Dispatcher{
		dists:         dists,
		pub:           pub,
		logger:        logger,
		interval:      cfg.Interval,
		windowMinutes: cfg.WindowMinutes,
	}
}

// Run polls until ctx is cancelled.
func (d *Dispatcher) Run(ctx context.Context) {
	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	d.logger.Info("dispatcher started",
		slog.Duration("interval", d.interval),
		slog.Int("window_minutes", d.windowMinutes))

	for {
		select {
		case <-ctx.Done():
			d.logger.Info("dispatcher stopped")
			return
		case <-ticker.C:
			d.Dispatch(ctx, time.Now().UTC())
		}
	}
}

// Dispatch runs a single poll for the window ending at `at`. It returns
// the number of distributions successfully deployed.
func (d *Dispatcher) Dispatch(ctx context.Context, at time.Time) int {
	log := d.logger.With(slog.String("run_id", uuid.NewString()))

	due, err := d.dists.DueForDispatch(ctx, d.windowMinutes, at)
	if err != nil {
		log.Error("due query error", slog.Any("error", err))
		return 0
	}
	if len(due) == 0 {
		return 0
	}
	log.Info("found due distributions", slog.Int("count", len(due)))

	deployed := 0
	for _, dist := range due {
		if err = d.pub.Publish(ctx, dist); err != nil {
			log.Error("publish error",
				slog.Int64("distribution_id", dist.ID), slog.Any("error", err))
			continue
		}
		if err = d.dists.MarkDeployed(ctx, dist.ID); err != nil {
			// The row may have been unscheduled since the due query.
			log.Error("mark deployed error",
				slog.Int64("distribution_id", dist.ID), slog.Any("error", err))
			continue
		}
		deployed++
	}
	return deployed
}
