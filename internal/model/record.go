package model

import (
	"strconv"
	"strings"
	"time"
)

// Sentinels substituted when upstream metadata is missing
const (
	// YearUnknown is shown when an entry has no release year
	YearUnknown = "----"

	// ResolutionUnknown is shown when the first media variant is absent or
	// has no resolution
	ResolutionUnknown = "UNK"
)

// RecentWindow is how long a newly added item keeps its "new" badge
const RecentWindow = 7 * 24 * time.Hour

// DisplayRecord is the flat, render-ready projection of one library entry.
// It is immutable once built.
type DisplayRecord struct {
	ID         string
	Title      string
	Year       string // 4-digit numeral or YearUnknown
	Status     ProcessStatus
	Resolution string // uppercased, or ResolutionUnknown
	AudioCodec string // uppercased, or empty
	Rating     float64
	AddedAt    time.Time // zero when upstream omits addedAt
}

// BuildRecord projects a library entry into a DisplayRecord. The
// projection is pure and total: missing fields degrade to sentinels and it
// never fails. Re-projecting the same entry always yields the same record.
func BuildRecord(entry LibraryEntry) DisplayRecord {
	record := DisplayRecord{
		ID:         entry.RatingKey,
		Title:      entry.Title,
		Year:       YearUnknown,
		Status:     StatusPending,
		Resolution: ResolutionUnknown,
		Rating:     entry.AudienceRating,
	}

	if entry.Year > 0 {
		record.Year = strconv.Itoa(entry.Year)
	}

	if len(entry.Media) > 0 {
		first := entry.Media[0]
		if res := strings.TrimSpace(first.VideoResolution); res != "" {
			record.Resolution = strings.ToUpper(res)
		}
		record.AudioCodec = strings.ToUpper(strings.TrimSpace(first.AudioCodec))
	}

	if HasMarkerTag(NormalizeLabels(entry.Label)) {
		record.Status = StatusProcessed
	}

	if entry.AddedAt > 0 {
		record.AddedAt = time.Unix(entry.AddedAt, 0)
	}

	return record
}

// IsRecentlyAdded returns true while the record is inside RecentWindow.
// Records without an addedAt timestamp are never recent.
func (dr DisplayRecord) IsRecentlyAdded() bool {
	if dr.AddedAt.IsZero() {
		return false
	}
	return time.Since(dr.AddedAt) <= RecentWindow
}

// DisplayRating returns the audience rating formatted to one decimal, or
// "—" when the entry carries no rating
func (dr DisplayRecord) DisplayRating() string {
	if dr.Rating <= 0 {
		return "—"
	}
	return strconv.FormatFloat(dr.Rating, 'f', 1, 64)
}

// DisplayMeta returns the compact "resolution · codec" line for list rows.
// The codec part is omitted when unknown.
func (dr DisplayRecord) DisplayMeta() string {
	if dr.AudioCodec == "" {
		return dr.Resolution
	}
	return dr.Resolution + " · " + dr.AudioCodec
}
