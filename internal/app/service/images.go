package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/atinyakov/catfeed/internal/metrics"
	"github.com/atinyakov/catfeed/internal/models"
)

func (s *RecordService) Images(ctx context.Context) []models.ImageRecord {
	return s.images.Load(ctx)
}

// UploadImage stores the image URL as given; data URLs are kept inline.
func (s *RecordService) UploadImage(ctx context.Context, req models.ImageRequest) (*models.ImageRecord, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now, ts := s.stamp(req.Timestamp)
	img, err := create(ctx, s.images, now, func(id int64) models.ImageRecord {
		return models.ImageRecord{
			ID:        id,
			Timestamp: ts,
			URL:       req.URL,
		}
	})
	if err = s.persisted(models.ResourceImages, img.ID, err); err != nil {
		return nil, err
	}

	metrics.RecordsCreated.WithLabelValues(models.ResourceImages).Inc()
	s.logger.Info("image uploaded", zap.Int64("id", img.ID), zap.Int("size", len(img.URL)))

	return &img, nil
}
