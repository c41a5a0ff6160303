package service

import (
	"context"

	"github.com/atinyakov/catfeed/internal/models"
)

//go:generate mockgen -destination=../../mocks/mock_service.go -package=mocks github.com/atinyakov/catfeed/internal/app/service RecordServiceIface

// RecordServiceIface is what the HTTP handlers need from the service layer.
type RecordServiceIface interface {
	Feedings(ctx context.Context) []models.FeedingRecord
	CreateFeeding(ctx context.Context, req models.FeedingRequest) (*models.FeedingRecord, error)
	UpdateFeeding(ctx context.Context, id int64, patch models.FeedingPatch) (*models.FeedingRecord, error)

	Messages(ctx context.Context) []models.Message
	CreateMessage(ctx context.Context, req models.MessageRequest) (*models.Message, error)
	UpdateMessage(ctx context.Context, id int64, patch models.MessagePatch) (*models.Message, error)
	LikeMessage(ctx context.Context, id int64) (*models.Message, error)

	Images(ctx context.Context) []models.ImageRecord
	UploadImage(ctx context.Context, req models.ImageRequest) (*models.ImageRecord, error)

	PingContext(ctx context.Context) error
}
