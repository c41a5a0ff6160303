// Package models defines the persisted records of the three resources
// (feedings, messages, images) and the request bodies accepted by the API.
package models

// Record is implemented by every stored entity.
type Record interface {
	RecordID() int64
}

// FeedingType is the kind of food given to the cat.
type FeedingType string

const (
	CatCan  FeedingType = "Cat Can"
	CatFood FeedingType = "Cat Food"
	Other   FeedingType = "Other"
)

// FeedingTypes lists the accepted feeding types in display order.
var FeedingTypes = []FeedingType{CatCan, CatFood, Other}

// Valid reports whether t is one of FeedingTypes.
func (t FeedingType) Valid() bool {
	for _, known := range FeedingTypes {
		if t == known {
			return true
		}
	}
	return false
}

// FeedingRecord is a single feeding event.
type FeedingRecord struct {
	// ID is derived from the creation time in milliseconds.
	ID        int64       `json:"id" yaml:"id"`
	Timestamp Timestamp   `json:"timestamp" yaml:"timestamp"`
	Type      FeedingType `json:"type" yaml:"type"`
	State     State       `json:"deleted" yaml:"deleted"`
}

func (r FeedingRecord) RecordID() int64 { return r.ID }

// Message is a short note on the message board.
type Message struct {
	ID        int64     `json:"id" yaml:"id"`
	Timestamp Timestamp `json:"timestamp" yaml:"timestamp"`
	Content   string    `json:"content" yaml:"content"`
	Likes     int       `json:"likes" yaml:"likes"`
	State     State     `json:"deleted" yaml:"deleted"`
}

func (m Message) RecordID() int64 { return m.ID }

// ImageRecord is a gallery entry. URL is either a data URL or an external link.
// Images are immutable once created.
type ImageRecord struct {
	ID        int64     `json:"id" yaml:"id"`
	Timestamp Timestamp `json:"timestamp" yaml:"timestamp"`
	URL       string    `json:"url" yaml:"url"`
}

func (i ImageRecord) RecordID() int64 { return i.ID }

// Resource names; they double as file names and Postgres partition keys.
const (
	ResourceFeedings = "feedings"
	ResourceMessages = "messages"
	ResourceImages   = "images"
)
