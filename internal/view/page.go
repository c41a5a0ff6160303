package view

import "time"

// Page is the fully derived dashboard: what both the HTML dashboard and the
// text renderer draw.
type Page struct {
	Feedings    []FeedingRow
	AllFeedings []FeedingRow
	Latest      []MessageRow
	MostLiked   []MessageRow
	AllMessages []MessageRow
	Gallery     []ImageTile
	Chart       []ChartPoint
	ChartMax    int
}

// NewPage derives a Page from s. Times are shown in loc.
func NewPage(s *State, loc *time.Location) Page {
	if s == nil {
		s = &State{}
	}

	p := Page{
		Feedings:    FeedingRows(ActiveFeedings(s.Feedings, FeedingLimit), loc),
		AllFeedings: FeedingRows(AllFeedings(s.Feedings), loc),
		Latest:      MessageRows(LatestMessages(s.Messages, MessageLimit), loc),
		MostLiked:   MessageRows(MostLikedMessages(s.Messages, MessageLimit), loc),
		AllMessages: MessageRows(AllMessages(s.Messages), loc),
		Gallery:     ImageTiles(Gallery(s.Images, GalleryLimit), loc),
		Chart:       FeedingChart(s.Feedings, loc),
	}

	for _, c := range p.Chart {
		if c.Count > p.ChartMax {
			p.ChartMax = c.Count
		}
	}

	return p
}

// BarPercent is the height of a chart bar relative to the busiest day.
func (p Page) BarPercent(count int) int {
	if p.ChartMax == 0 {
		return 0
	}
	return count * 100 / p.ChartMax
}
