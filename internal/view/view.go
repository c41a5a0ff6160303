// Package view derives everything the dashboard and the command-line client
// display from the three record collections. Functions here never mutate
// their input; callers pass an explicit State instead of sharing globals.
package view

import (
	"sort"
	"time"

	"github.com/atinyakov/catfeed/internal/models"
)

// Display limits of the compact views.
const (
	FeedingLimit = 20
	MessageLimit = 5
	GalleryLimit = 10
)

const (
	DisplayLayout = "2006/01/02 15:04"
	DayLayout     = "2006/01/02"
)

// State holds the last fetched copy of every collection. A fetch replaces a
// collection wholesale.
type State struct {
	Feedings []models.FeedingRecord `json:"feedings" yaml:"feedings"`
	Messages []models.Message       `json:"messages" yaml:"messages"`
	Images   []models.ImageRecord   `json:"images" yaml:"images"`
}

// FormatTime renders ts in loc as YYYY/MM/DD HH:mm.
func FormatTime(ts models.Timestamp, loc *time.Location) string {
	return ts.In(location(loc)).Format(DisplayLayout)
}

func location(loc *time.Location) *time.Location {
	if loc == nil {
		return time.Local
	}
	return loc
}

// newestFirst returns a copy of records sorted by timestamp descending.
// Records with equal timestamps keep their storage order.
func newestFirst[T any](records []T, at func(T) time.Time) []T {
	out := make([]T, len(records))
	copy(out, records)
	sort.SliceStable(out, func(i, j int) bool {
		return at(out[i]).After(at(out[j]))
	})
	return out
}

func take[T any](records []T, limit int) []T {
	if limit >= 0 && len(records) > limit {
		return records[:limit]
	}
	return records
}

func active[T any](records []T, deleted func(T) bool) []T {
	out := make([]T, 0, len(records))
	for _, r := range records {
		if !deleted(r) {
			out = append(out, r)
		}
	}
	return out
}

func feedingTime(r models.FeedingRecord) time.Time { return r.Timestamp.Time }
func messageTime(m models.Message) time.Time       { return m.Timestamp.Time }
func imageTime(i models.ImageRecord) time.Time     { return i.Timestamp.Time }

func feedingDeleted(r models.FeedingRecord) bool { return r.State.IsDeleted() }
func messageDeleted(m models.Message) bool       { return m.State.IsDeleted() }
