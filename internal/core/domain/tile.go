package domain

import "time"

// Tile is a single ad unit shown to users. Every tile created through
// this service references exactly one adgroup, created in the same unit
// of work.
type Tile struct {
	ID               int64
	TargetURL        string
	BgColor          string
	TitleBgColor     string
	Title            string
	Type             string
	ImageURI         string
	EnhancedImageURI string
	Locale           string
	AdgroupID        int64
	CreatedAt        time.Time
}
