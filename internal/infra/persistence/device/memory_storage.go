package device

import (
	"context"
	"sync"
)

// MemoryStorage is an in-process DeviceStorage. Contents vanish with the process.
type MemoryStorage struct {
	mu    sync.RWMutex
	items map[string]string
	quota int
}

// NewMemoryStorage creates an empty store with the given per-item quota.
func NewMemoryStorage(quota int) *MemoryStorage {
	return &MemoryStorage{
		items: make(map[string]string),
		quota: quota,
	}
}

// GetItem implements repository.DeviceStorage.
func (s *MemoryStorage) GetItem(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.items[key]

	return value, ok, nil
}

// SetItem implements repository.DeviceStorage.
func (s *MemoryStorage) SetItem(_ context.Context, key, value string) error {
	if err := checkQuota(s.quota, key, value); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[key] = value

	return nil
}

// RemoveItem implements repository.DeviceStorage.
func (s *MemoryStorage) RemoveItem(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, key)

	return nil
}
