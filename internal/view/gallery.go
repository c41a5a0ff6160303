package view

import (
	"time"

	"github.com/atinyakov/catfeed/internal/models"
)

type ImageTile struct {
	ID   int64
	When string
	URL  string
}

// Gallery returns the limit most recent images.
func Gallery(images []models.ImageRecord, limit int) []models.ImageRecord {
	return take(newestFirst(images, imageTime), limit)
}

func ImageTiles(images []models.ImageRecord, loc *time.Location) []ImageTile {
	tiles := make([]ImageTile, 0, len(images))
	for _, img := range images {
		tiles = append(tiles, ImageTile{
			ID:   img.ID,
			When: FormatTime(img.Timestamp, loc),
			URL:  img.URL,
		})
	}
	return tiles
}
