package storage

import (
	"context"
	"sync"
)

// MemoryStorage keeps a collection in process memory only.
type MemoryStorage[T any] struct {
	mu      sync.RWMutex
	records []T
}

func CreateMemoryStorage[T any]() *MemoryStorage[T] {
	return &MemoryStorage[T]{
		records: make([]T, 0),
	}
}

func (m *MemoryStorage[T]) Load(_ context.Context) []T {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return append(make([]T, 0, len(m.records)), m.records...)
}

func (m *MemoryStorage[T]) Update(_ context.Context, fn func([]T) ([]T, error)) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	records, err := fn(append(make([]T, 0, len(m.records)), m.records...))
	if err != nil {
		return err
	}

	m.records = records
	return nil
}

func (m *MemoryStorage[T]) PingContext(_ context.Context) error {
	return nil
}
