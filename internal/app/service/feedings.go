package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/atinyakov/catfeed/internal/metrics"
	"github.com/atinyakov/catfeed/internal/models"
)

func (s *RecordService) Feedings(ctx context.Context) []models.FeedingRecord {
	return s.feedings.Load(ctx)
}

func (s *RecordService) CreateFeeding(ctx context.Context, req models.FeedingRequest) (*models.FeedingRecord, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now, ts := s.stamp(req.Timestamp)
	r, err := create(ctx, s.feedings, now, func(id int64) models.FeedingRecord {
		return models.FeedingRecord{
			ID:        id,
			Timestamp: ts,
			Type:      req.Type,
			State:     models.Active,
		}
	})
	if err = s.persisted(models.ResourceFeedings, r.ID, err); err != nil {
		return nil, err
	}

	metrics.RecordsCreated.WithLabelValues(models.ResourceFeedings).Inc()
	s.logger.Info("feeding recorded", zap.Int64("id", r.ID), zap.String("type", string(r.Type)))

	return &r, nil
}

// UpdateFeeding merges patch over the stored record. Deleting twice is a no-op
// and a deleted record never comes back.
func (s *RecordService) UpdateFeeding(ctx context.Context, id int64, patch models.FeedingPatch) (*models.FeedingRecord, error) {
	if err := patch.Validate(id); err != nil {
		return nil, err
	}

	r, err := update(ctx, s.feedings, id, patch.Apply)
	if err = s.persisted(models.ResourceFeedings, id, err); err != nil {
		return nil, err
	}

	s.logger.Debug("feeding updated", zap.Int64("id", id), zap.Stringer("state", r.State))
	return &r, nil
}
