package view

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const barWidth = 30

// TextRenderer draws a Page for a terminal. Styling degrades to plain text
// when w is not a terminal.
type TextRenderer struct {
	w       io.Writer
	heading lipgloss.Style
	muted   lipgloss.Style
	bar     lipgloss.Style
}

func NewTextRenderer(w io.Writer) *TextRenderer {
	r := lipgloss.NewRenderer(w)
	return &TextRenderer{
		w:       w,
		heading: r.NewStyle().Bold(true).Foreground(lipgloss.Color("63")),
		muted:   r.NewStyle().Faint(true).Strikethrough(true),
		bar:     r.NewStyle().Foreground(lipgloss.Color("39")),
	}
}

// Feedings prints rows; deleted rows are marked and muted.
func (t *TextRenderer) Feedings(title string, rows []FeedingRow) error {
	lines := make([]string, 0, len(rows))
	for _, r := range rows {
		line := fmt.Sprintf("%d  %s  %s", r.ID, r.When, r.Type)
		if r.Deleted {
			line = t.muted.Render(line) + " (Deleted)"
		}
		lines = append(lines, line)
	}
	return t.section(title, lines, "No feedings yet.")
}

func (t *TextRenderer) Messages(title string, rows []MessageRow) error {
	lines := make([]string, 0, len(rows))
	for _, m := range rows {
		line := fmt.Sprintf("%d  %s  %s  ♥ %d", m.ID, m.When, m.Content, m.Likes)
		if m.Deleted {
			line = t.muted.Render(line) + " (Deleted)"
		}
		lines = append(lines, line)
	}
	return t.section(title, lines, "No messages yet.")
}

func (t *TextRenderer) Gallery(tiles []ImageTile) error {
	lines := make([]string, 0, len(tiles))
	for _, img := range tiles {
		lines = append(lines, fmt.Sprintf("%d  %s  %s", img.ID, img.When, shortURL(img.URL)))
	}
	return t.section("Gallery", lines, "No images yet.")
}

// Chart prints one horizontal bar per day, scaled to the busiest day.
func (t *TextRenderer) Chart(points []ChartPoint) error {
	peak := 0
	for _, p := range points {
		peak = max(peak, p.Count)
	}

	lines := make([]string, 0, len(points))
	for _, p := range points {
		width := p.Count * barWidth / peak
		lines = append(lines, fmt.Sprintf("%s %s %d", p.Day, t.bar.Render(strings.Repeat("█", max(width, 1))), p.Count))
	}
	return t.section("Feedings per day", lines, "No feedings yet.")
}

// Page prints the same sections as the HTML dashboard.
func (t *TextRenderer) Page(p Page) error {
	steps := []func() error{
		func() error { return t.Feedings("Recent feedings", p.Feedings) },
		func() error { return t.Chart(p.Chart) },
		func() error { return t.Messages("Latest messages", p.Latest) },
		func() error { return t.Messages("Most liked", p.MostLiked) },
		func() error { return t.Gallery(p.Gallery) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}

func (t *TextRenderer) section(title string, lines []string, empty string) error {
	if len(lines) == 0 {
		lines = []string{empty}
	}
	_, err := fmt.Fprintf(t.w, "%s\n%s\n\n", t.heading.Render(title), strings.Join(lines, "\n"))
	return err
}

// shortURL keeps data URLs from flooding the terminal.
func shortURL(u string) string {
	if strings.HasPrefix(u, "data:") {
		if i := strings.IndexByte(u, ','); i > 0 {
			return u[:i] + ",… (" + fmt.Sprint(len(u)) + " bytes)"
		}
	}
	return u
}
