package leaderboard

import (
	"context"
	"sync"
)

// MemoryStore keeps the leaderboard in memory only
type MemoryStore struct {
	mu      sync.RWMutex
	entries []Entry
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Load returns a copy of the stored list
func (m *MemoryStore) Load(ctx context.Context) ([]Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Entry, len(m.entries))
	copy(out, m.entries)
	return out, nil
}

// Save replaces the stored list with a copy of entries
func (m *MemoryStore) Save(ctx context.Context, entries []Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = make([]Entry, len(entries))
	copy(m.entries, entries)
	return nil
}

// Close does nothing
func (m *MemoryStore) Close() error {
	return nil
}
