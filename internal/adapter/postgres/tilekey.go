package postgres

import (
	"crypto/sha256"
	"encoding/binary"
	"io"
	"slices"
	"strconv"
	"time"

	"tilecast/internal/core/port"
)

// normalizeSet returns a sorted copy of in with duplicates collapsed.
// Set-valued tile attributes compare through this form, so element order
// and repetition never affect matching.
func normalizeSet(in []string) []string {
	out := slices.Clone(in)
	slices.Sort(out)
	return slices.Compact(out)
}

// lockKey derives a deterministic 64-bit advisory-lock key from the
// candidate's normalized attribute set. Two specs that are semantically
// equal (same scalars, same sets regardless of order or duplicates)
// produce the same key, which serialises concurrent ensure calls for the
// same tile.
func lockKey(spec port.TileSpec) int64 {
	h := sha256.New()

	writeField := func(s string) {
		_, _ = io.WriteString(h, s)
		_, _ = h.Write([]byte{0})
	}
	writeTime := func(t *time.Time) {
		if t == nil {
			writeField("-")
			return
		}
		writeField(t.UTC().Format(time.RFC3339Nano))
	}
	writeCap := func(c *int32) {
		if c == nil {
			writeField("-")
			return
		}
		writeField(strconv.FormatInt(int64(*c), 10))
	}

	writeField(spec.TargetURL)
	writeField(spec.BgColor)
	writeField(spec.TitleBgColor)
	writeField(spec.Title)
	writeField(spec.Type)
	writeField(spec.ImageURI)
	writeField(spec.EnhancedImageURI)
	writeField(spec.Locale)
	writeField(spec.AdgroupName)
	writeField(spec.Explanation)
	writeTime(spec.StartDate)
	writeTime(spec.EndDate)
	writeTime(spec.StartDateDt)
	writeTime(spec.EndDateDt)
	writeCap(spec.FrequencyCapDaily)
	writeCap(spec.FrequencyCapTotal)
	writeField(strconv.FormatBool(spec.CheckInadjacency))
	writeField(strconv.FormatInt(spec.ChannelID, 10))
	for _, s := range normalizeSet(spec.FrecentSites) {
		writeField(s)
	}
	writeField("\x1f")
	for _, c := range normalizeSet(spec.Categories) {
		writeField(c)
	}

	sum := h.Sum(nil)
	return int64(binary.BigEndian.Uint64(sum[:8]))
}
