package view

import (
	"sort"
	"time"

	"github.com/atinyakov/catfeed/internal/models"
)

type MessageRow struct {
	ID        int64
	When      string
	Content   string
	Likes     int
	Deleted   bool
	CanDelete bool
}

// LatestMessages returns at most limit non-deleted messages, newest first.
func LatestMessages(msgs []models.Message, limit int) []models.Message {
	return take(newestFirst(active(msgs, messageDeleted), messageTime), limit)
}

// MostLikedMessages returns at most limit non-deleted messages ordered by
// likes. Equal likes keep the newest first.
func MostLikedMessages(msgs []models.Message, limit int) []models.Message {
	out := newestFirst(active(msgs, messageDeleted), messageTime)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Likes > out[j].Likes
	})
	return take(out, limit)
}

// AllMessages returns every message, deleted ones included, newest first.
func AllMessages(msgs []models.Message) []models.Message {
	return newestFirst(msgs, messageTime)
}

func MessageRows(msgs []models.Message, loc *time.Location) []MessageRow {
	rows := make([]MessageRow, 0, len(msgs))
	for _, m := range msgs {
		rows = append(rows, MessageRow{
			ID:        m.ID,
			When:      FormatTime(m.Timestamp, loc),
			Content:   m.Content,
			Likes:     m.Likes,
			Deleted:   m.State.IsDeleted(),
			CanDelete: !m.State.IsDeleted(),
		})
	}
	return rows
}
