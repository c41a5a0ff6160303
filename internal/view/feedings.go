package view

import (
	"sort"
	"time"

	"github.com/atinyakov/catfeed/internal/models"
)

// FeedingRow is one line of a feeding log.
type FeedingRow struct {
	ID        int64
	When      string
	Type      models.FeedingType
	Deleted   bool
	CanDelete bool
}

// ActiveFeedings returns at most limit non-deleted feedings, newest first.
// A negative limit returns them all.
func ActiveFeedings(records []models.FeedingRecord, limit int) []models.FeedingRecord {
	return take(newestFirst(active(records, feedingDeleted), feedingTime), limit)
}

// AllFeedings returns every feeding, deleted ones included, newest first.
func AllFeedings(records []models.FeedingRecord) []models.FeedingRecord {
	return newestFirst(records, feedingTime)
}

// FeedingRows formats records for display. Deleted rows carry no delete action.
func FeedingRows(records []models.FeedingRecord, loc *time.Location) []FeedingRow {
	rows := make([]FeedingRow, 0, len(records))
	for _, r := range records {
		rows = append(rows, FeedingRow{
			ID:        r.ID,
			When:      FormatTime(r.Timestamp, loc),
			Type:      r.Type,
			Deleted:   r.State.IsDeleted(),
			CanDelete: !r.State.IsDeleted(),
		})
	}
	return rows
}

// ChartPoint is one bar of the feeding frequency chart.
type ChartPoint struct {
	Day   string `json:"day" yaml:"day"`
	Count int    `json:"count" yaml:"count"`
}

// FeedingChart counts active feedings per calendar day in loc, oldest day
// first. Days without feedings are absent from the series.
func FeedingChart(records []models.FeedingRecord, loc *time.Location) []ChartPoint {
	loc = location(loc)

	counts := map[string]int{}
	var days []string
	for _, r := range active(records, feedingDeleted) {
		day := r.Timestamp.In(loc).Format(DayLayout)
		if counts[day] == 0 {
			days = append(days, day)
		}
		counts[day]++
	}

	// DayLayout sorts lexically in date order.
	sort.Strings(days)

	points := make([]ChartPoint, 0, len(days))
	for _, d := range days {
		points = append(points, ChartPoint{Day: d, Count: counts[d]})
	}
	return points
}
