package models

import (
	"fmt"
	"strings"
)

// ValidationError describes a request body rejected by the API.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func invalid(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Msg: fmt.Sprintf(format, args...)}
}

// ErrorResponse is the body of every 4xx/5xx JSON response.
type ErrorResponse struct {
	Message string `json:"message"`
}

// FeedingRequest is the body of POST /api/feedings.
type FeedingRequest struct {
	Type      FeedingType `json:"type"`
	Timestamp *Timestamp  `json:"timestamp,omitempty"`
}

func (r FeedingRequest) Validate() error {
	if !r.Type.Valid() {
		return invalid("type", "Feeding type must be one of %q, %q, %q", CatCan, CatFood, Other)
	}
	return nil
}

// FeedingPatch is the body of PUT /api/feedings/{id}. Nil fields are left untouched.
type FeedingPatch struct {
	ID        *int64       `json:"id,omitempty"`
	Type      *FeedingType `json:"type,omitempty"`
	Timestamp *Timestamp   `json:"timestamp,omitempty"`
	Deleted   *bool        `json:"deleted,omitempty"`
}

func (p FeedingPatch) Validate(id int64) error {
	if p.ID != nil && *p.ID != id {
		return invalid("id", "Record id %d does not match path id %d", *p.ID, id)
	}
	if p.Type != nil && !p.Type.Valid() {
		return invalid("type", "Feeding type must be one of %q, %q, %q", CatCan, CatFood, Other)
	}
	return nil
}

// Apply merges the patch over r.
func (p FeedingPatch) Apply(r FeedingRecord) FeedingRecord {
	if p.Type != nil {
		r.Type = *p.Type
	}
	if p.Timestamp != nil {
		r.Timestamp = *p.Timestamp
	}
	if p.Deleted != nil {
		r.State = r.State.Apply(*p.Deleted)
	}
	return r
}

// MessageRequest is the body of POST /api/messages.
type MessageRequest struct {
	Content   string     `json:"content"`
	Likes     *int       `json:"likes,omitempty"`
	Timestamp *Timestamp `json:"timestamp,omitempty"`
}

func (r MessageRequest) Validate() error {
	if strings.TrimSpace(r.Content) == "" {
		return invalid("content", "Message content must not be empty")
	}
	if r.Likes != nil && *r.Likes < 0 {
		return invalid("likes", "Likes must not be negative")
	}
	return nil
}

// MessagePatch is the body of PUT /api/messages/{id}.
type MessagePatch struct {
	ID        *int64     `json:"id,omitempty"`
	Content   *string    `json:"content,omitempty"`
	Likes     *int       `json:"likes,omitempty"`
	Timestamp *Timestamp `json:"timestamp,omitempty"`
	Deleted   *bool      `json:"deleted,omitempty"`
}

func (p MessagePatch) Validate(id int64) error {
	if p.ID != nil && *p.ID != id {
		return invalid("id", "Record id %d does not match path id %d", *p.ID, id)
	}
	if p.Content != nil && strings.TrimSpace(*p.Content) == "" {
		return invalid("content", "Message content must not be empty")
	}
	if p.Likes != nil && *p.Likes < 0 {
		return invalid("likes", "Likes must not be negative")
	}
	return nil
}

// Apply merges the patch over m.
func (p MessagePatch) Apply(m Message) Message {
	if p.Content != nil {
		m.Content = *p.Content
	}
	if p.Likes != nil {
		m.Likes = *p.Likes
	}
	if p.Timestamp != nil {
		m.Timestamp = *p.Timestamp
	}
	if p.Deleted != nil {
		m.State = m.State.Apply(*p.Deleted)
	}
	return m
}

// ImageRequest is the body of POST /api/images/upload.
type ImageRequest struct {
	URL       string     `json:"url"`
	Timestamp *Timestamp `json:"timestamp,omitempty"`
}

func (r ImageRequest) Validate() error {
	if strings.TrimSpace(r.URL) == "" {
		return invalid("url", "No image URL provided")
	}
	return nil
}
