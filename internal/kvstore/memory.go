package kvstore

import (
	"context"
	"encoding/json"
	"sync"
	"time"
)

type memoryEntry struct {
	data      []byte
	updatedAt time.Time
}

// MemoryStore is the in-memory Store used in tests and single-process
// development runs.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry

	// Now is swappable so staleness can be tested deterministically.
	Now func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		Now:     time.Now,
	}
}

func memoryKey(namespace, key string) string {
	return namespace + "/" + key
}

func (s *MemoryStore) Get(ctx context.Context, namespace, key string, dest interface{}) (bool, error) {
	s.mu.RLock()
	entry, ok := s.entries[memoryKey(namespace, key)]
	s.mu.RUnlock()
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(entry.data, dest)
}

func (s *MemoryStore) GetFresh(ctx context.Context, namespace, key string, maxAge time.Duration, dest interface{}) (bool, error) {
	s.mu.RLock()
	entry, ok := s.entries[memoryKey(namespace, key)]
	s.mu.RUnlock()
	if !ok {
		return false, nil
	}
	if IsStale(entry.updatedAt, maxAge, s.Now()) {
		_ = s.Delete(ctx, namespace, key)
		return false, nil
	}
	return true, json.Unmarshal(entry.data, dest)
}

func (s *MemoryStore) Set(ctx context.Context, namespace, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.entries[memoryKey(namespace, key)] = memoryEntry{data: data, updatedAt: s.Now()}
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, namespace, key string) error {
	s.mu.Lock()
	delete(s.entries, memoryKey(namespace, key))
	s.mu.Unlock()
	return nil
}
