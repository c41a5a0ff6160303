// Package service implements the record API on top of storage collections:
// it assigns ids and timestamps, merges partial updates and keeps soft
// deletes one-way.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/atinyakov/catfeed/internal/models"
	"github.com/atinyakov/catfeed/internal/storage"
)

var (
	// ErrNotFound is returned when no record has the requested id.
	ErrNotFound = errors.New("record not found")

	// ErrUnavailable is returned when the collection could not even be read
	// for an update, so no record was produced.
	ErrUnavailable = errors.New("storage unavailable")
)

type RecordService struct {
	feedings storage.Collection[models.FeedingRecord]
	messages storage.Collection[models.Message]
	images   storage.Collection[models.ImageRecord]
	logger   *zap.Logger
	now      func() time.Time
}

type Option func(*RecordService)

// WithClock replaces time.Now, which drives both ids and timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *RecordService) {
		s.now = now
	}
}

func NewRecords(
	feedings storage.Collection[models.FeedingRecord],
	messages storage.Collection[models.Message],
	images storage.Collection[models.ImageRecord],
	logger *zap.Logger,
	opts ...Option,
) *RecordService {
	s := &RecordService{
		feedings: feedings,
		messages: messages,
		images:   images,
		logger:   logger,
		now:      time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *RecordService) PingContext(ctx context.Context) error {
	return errors.Join(
		s.feedings.PingContext(ctx),
		s.messages.PingContext(ctx),
		s.images.PingContext(ctx),
	)
}

// persisted drops storage.ErrWrite: the caller still gets the record, only
// durability is lost, and the collection already logged the failure.
func (s *RecordService) persisted(resource string, id int64, err error) error {
	if errors.Is(err, storage.ErrWrite) {
		s.logger.Warn("record not persisted",
			zap.String("resource", resource),
			zap.Int64("id", id),
			zap.Error(err),
		)
		return nil
	}
	return err
}

func (s *RecordService) stamp(requested *models.Timestamp) (time.Time, models.Timestamp) {
	now := s.now()
	if requested != nil {
		return now, *requested
	}
	return now, models.NewTimestamp(now)
}

// nextID is the creation time in milliseconds, bumped past the largest
// existing id so ids stay unique within a collection.
func nextID[T models.Record](now time.Time, records []T) int64 {
	id := now.UnixMilli()
	for _, r := range records {
		if r.RecordID() >= id {
			id = r.RecordID() + 1
		}
	}
	return id
}

func indexOf[T models.Record](records []T, id int64) int {
	for i, r := range records {
		if r.RecordID() == id {
			return i
		}
	}
	return -1
}

// create prepends a new record; storage order is most recent first.
func create[T models.Record](ctx context.Context, c storage.Collection[T], now time.Time, build func(id int64) T) (T, error) {
	var (
		created T
		applied bool
	)
	err := c.Update(ctx, func(records []T) ([]T, error) {
		created = build(nextID(now, records))
		applied = true
		return append([]T{created}, records...), nil
	})
	return created, unapplied(applied, err)
}

func update[T models.Record](ctx context.Context, c storage.Collection[T], id int64, apply func(T) T) (T, error) {
	var (
		updated T
		applied bool
	)
	err := c.Update(ctx, func(records []T) ([]T, error) {
		i := indexOf(records, id)
		if i < 0 {
			return nil, ErrNotFound
		}

		records[i] = apply(records[i])
		updated = records[i]
		applied = true
		return records, nil
	})
	return updated, unapplied(applied, err)
}

// unapplied turns a storage failure that happened before fn ran into
// ErrUnavailable, so it is not mistaken for a lost-durability success.
func unapplied(applied bool, err error) error {
	if err == nil || applied {
		return err
	}
	if errors.Is(err, storage.ErrWrite) || errors.Is(err, storage.ErrUnreadable) {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return err
}
