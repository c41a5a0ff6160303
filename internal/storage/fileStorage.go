package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/atinyakov/catfeed/internal/metrics"
)

// FileStorage persists a collection as a pretty-printed JSON array in a
// single file.
type FileStorage[T any] struct {
	mu       sync.Mutex
	path     string
	resource string
	logger   *zap.Logger
}

// NewFileStorage makes sure the directory of p exists and initializes the
// file with an empty array when it is absent.
func NewFileStorage[T any](p string, logger *zap.Logger) (*FileStorage[T], error) {
	if err := os.MkdirAll(filepath.Dir(p), 0770); err != nil {
		return nil, err
	}

	fs := &FileStorage[T]{
		path:     p,
		resource: strings.TrimSuffix(filepath.Base(p), filepath.Ext(p)),
		logger:   logger.With(zap.String("path", p)),
	}

	if _, err := os.Stat(p); errors.Is(err, os.ErrNotExist) {
		if err := fs.save(make([]T, 0)); err != nil {
			return nil, err
		}
		fs.logger.Info("initialized empty collection")
	}

	return fs, nil
}

func (fs *FileStorage[T]) Load(_ context.Context) []T {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	records, _ := fs.load()
	return records
}

func (fs *FileStorage[T]) Update(_ context.Context, fn func([]T) ([]T, error)) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	current, err := fs.load()
	if err != nil {
		return err
	}

	records, err := fn(current)
	if err != nil {
		return err
	}

	if err := fs.save(records); err != nil {
		metrics.StoreErrors.WithLabelValues(fs.resource, "save").Inc()
		fs.logger.Error("cannot write collection", zap.Error(err))
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}

	return nil
}

// PingContext checks that the backing file is still reachable.
func (fs *FileStorage[T]) PingContext(_ context.Context) error {
	_, err := os.Stat(fs.path)
	return err
}

// load returns every record it can decode. A missing file is an empty
// collection; any other read or decode failure is reported as ErrUnreadable
// along with the records that did decode.
func (fs *FileStorage[T]) load() ([]T, error) {
	records := make([]T, 0)

	b, err := os.ReadFile(fs.path)
	if errors.Is(err, os.ErrNotExist) {
		fs.logger.Warn("collection file is missing, treating as empty")
		return records, nil
	}
	if err != nil {
		return records, fs.unreadable("cannot read collection", err)
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return records, fs.unreadable("cannot parse collection", err)
	}

	var bad error
	for i, item := range raw {
		var rec T
		if err := json.Unmarshal(item, &rec); err != nil {
			bad = fs.unreadable("skipping undecodable record", fmt.Errorf("record %d: %w", i, err))
			continue
		}
		records = append(records, rec)
	}

	return records, bad
}

func (fs *FileStorage[T]) unreadable(msg string, err error) error {
	metrics.StoreErrors.WithLabelValues(fs.resource, "load").Inc()
	fs.logger.Warn(msg, zap.Error(err))
	return fmt.Errorf("%w: %s: %v", ErrUnreadable, fs.path, err)
}

// save writes to a temp file next to the target and renames it over the
// target, so readers never observe a partial write.
func (fs *FileStorage[T]) save(records []T) error {
	b, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(fs.path), "."+filepath.Base(fs.path)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), fs.mode()); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), fs.path)
}

func (fs *FileStorage[T]) mode() os.FileMode {
	if info, err := os.Stat(fs.path); err == nil {
		return info.Mode().Perm()
	}
	return 0660
}
