package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/atinyakov/catfeed/internal/metrics"
	"github.com/atinyakov/catfeed/internal/models"
)

func (s *RecordService) Messages(ctx context.Context) []models.Message {
	return s.messages.Load(ctx)
}

func (s *RecordService) CreateMessage(ctx context.Context, req models.MessageRequest) (*models.Message, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	likes := 0
	if req.Likes != nil {
		likes = *req.Likes
	}

	now, ts := s.stamp(req.Timestamp)
	m, err := create(ctx, s.messages, now, func(id int64) models.Message {
		return models.Message{
			ID:        id,
			Timestamp: ts,
			Content:   req.Content,
			Likes:     likes,
			State:     models.Active,
		}
	})
	if err = s.persisted(models.ResourceMessages, m.ID, err); err != nil {
		return nil, err
	}

	metrics.RecordsCreated.WithLabelValues(models.ResourceMessages).Inc()
	s.logger.Info("message posted", zap.Int64("id", m.ID))

	return &m, nil
}

func (s *RecordService) UpdateMessage(ctx context.Context, id int64, patch models.MessagePatch) (*models.Message, error) {
	if err := patch.Validate(id); err != nil {
		return nil, err
	}

	m, err := update(ctx, s.messages, id, patch.Apply)
	if err = s.persisted(models.ResourceMessages, id, err); err != nil {
		return nil, err
	}

	return &m, nil
}

// LikeMessage increments likes inside the serialized update, so concurrent
// likes are never lost.
func (s *RecordService) LikeMessage(ctx context.Context, id int64) (*models.Message, error) {
	m, err := update(ctx, s.messages, id, func(m models.Message) models.Message {
		m.Likes++
		return m
	})
	if err = s.persisted(models.ResourceMessages, id, err); err != nil {
		return nil, err
	}

	s.logger.Debug("message liked", zap.Int64("id", id), zap.Int("likes", m.Likes))
	return &m, nil
}
