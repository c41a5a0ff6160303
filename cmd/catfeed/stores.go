package main

import (
	"path/filepath"

	"go.uber.org/zap"

	"github.com/atinyakov/catfeed/internal/config"
	"github.com/atinyakov/catfeed/internal/models"
	"github.com/atinyakov/catfeed/internal/repository"
	"github.com/atinyakov/catfeed/internal/storage"
)

type stores struct {
	feedings storage.Collection[models.FeedingRecord]
	messages storage.Collection[models.Message]
	images   storage.Collection[models.ImageRecord]
	close    func() error
}

// openStores picks the record store: memory when forced, Postgres when a DSN
// is set, otherwise one JSON file per resource under the data directory, and
// memory when there is no data directory either.
func openStores(options *config.Options, zapLogger *zap.Logger) (*stores, error) {
	noop := func() error { return nil }

	switch {
	case options.InMemory:
		zapLogger.Info("using in memory storage")
		return memoryStores(), nil

	case options.DatabaseDSN != "":
		zapLogger.Info("using db")
		db, err := repository.InitDB(options.DatabaseDSN, zapLogger)
		if err != nil {
			return nil, err
		}
		zapLogger.Info("Database connected and table ready.")

		return &stores{
			feedings: repository.NewPostgresCollection[models.FeedingRecord](db, models.ResourceFeedings, zapLogger),
			messages: repository.NewPostgresCollection[models.Message](db, models.ResourceMessages, zapLogger),
			images:   repository.NewPostgresCollection[models.ImageRecord](db, models.ResourceImages, zapLogger),
			close:    db.Close,
		}, nil

	case options.DataDir != "":
		zapLogger.Info("using files", zap.String("dir", options.DataDir))

		feedings, err := storage.NewFileStorage[models.FeedingRecord](resourceFile(options.DataDir, models.ResourceFeedings), zapLogger)
		if err != nil {
			return nil, err
		}
		messages, err := storage.NewFileStorage[models.Message](resourceFile(options.DataDir, models.ResourceMessages), zapLogger)
		if err != nil {
			return nil, err
		}
		images, err := storage.NewFileStorage[models.ImageRecord](resourceFile(options.DataDir, models.ResourceImages), zapLogger)
		if err != nil {
			return nil, err
		}

		return &stores{feedings: feedings, messages: messages, images: images, close: noop}, nil

	default:
		zapLogger.Info("using in memory storage")
		return memoryStores(), nil
	}
}

func memoryStores() *stores {
	return &stores{
		feedings: storage.CreateMemoryStorage[models.FeedingRecord](),
		messages: storage.CreateMemoryStorage[models.Message](),
		images:   storage.CreateMemoryStorage[models.ImageRecord](),
		close:    func() error { return nil },
	}
}

func resourceFile(dir, resource string) string {
	return filepath.Join(dir, resource+".json")
}
