package likes

import (
	"context"
	"sync"
)

// MemoryStore keeps flags for the lifetime of the process
type MemoryStore struct {
	mu    sync.RWMutex
	flags map[string]map[string]struct{}
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{flags: make(map[string]map[string]struct{})}
}

func (m *MemoryStore) Has(_ context.Context, clientID, key string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.flags[clientID][key]
	return ok, nil
}

func (m *MemoryStore) Set(_ context.Context, clientID, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	client, ok := m.flags[clientID]
	if !ok {
		client = make(map[string]struct{})
		m.flags[clientID] = client
	}
	client[key] = struct{}{}
	return nil
}

func (m *MemoryStore) Close() error { return nil }
