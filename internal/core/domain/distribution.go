package domain

import "time"

// Distribution is a publish event of a tile-set URL to a channel. A row
// is either already deployed or scheduled for a future time, never both
// at creation. ScheduledStart is nil once a distribution has been
// unscheduled or was inserted as immediately deployed.
type Distribution struct {
	ID             int64
	URL            string
	ChannelID      int64
	Deployed       bool
	ScheduledStart *time.Time
	CreatedAt      time.Time
}
