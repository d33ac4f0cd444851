package domain

import "time"

// Adgroup is the shared targeting and business-rule record a tile belongs
// to. Date bounds are carried twice: as calendar dates and as precise
// timestamps. All four bounds participate independently in identity
// matching. Frequency caps are nil for unlimited.
type Adgroup struct {
	ID                int64
	Locale            string
	StartDate         *time.Time
	EndDate           *time.Time
	StartDateDt       *time.Time
	EndDateDt         *time.Time
	Name              string
	Explanation       string
	FrequencyCapDaily *int32
	FrequencyCapTotal *int32
	CheckInadjacency  bool
	ChannelID         int64
	CreatedAt         time.Time
}

// AdgroupSite is one member of an adgroup's frecent-site set. Rows may
// repeat a site value; comparisons collapse duplicates.
type AdgroupSite struct {
	ID        int64
	AdgroupID int64
	Site      string
	CreatedAt time.Time
}

// AdgroupCategory is one member of an adgroup's category set.
type AdgroupCategory struct {
	ID        int64
	AdgroupID int64
	Category  string
}
