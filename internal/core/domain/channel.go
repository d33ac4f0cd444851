package domain

import "time"

// Channel is a named publishing destination. Channels partition both
// campaign groups and distributions and are immutable once referenced;
// they are created by an external admin path and read-only here.
type Channel struct {
	ID        int64
	Name      string
	CreatedAt time.Time
}
