package sessions

import (
	"context"
	"sync"
	"time"
)

// MemoryStore keeps sessions in a mutex-guarded map. Suitable for a
// single-process bot; use the Redis store when running more than one
// webserver replica.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]*Data
}

func NewMemory() *MemoryStore {
	return &MemoryStore{
		data: make(map[string]*Data),
	}
}

func (m *MemoryStore) Get(ctx context.Context, id string) (*Data, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	d, ok := m.data[id]

	if !ok || d.Expired(time.Now()) {
		return nil, nil
	}

	cp := *d
	return &cp, nil
}

func (m *MemoryStore) Put(ctx context.Context, d *Data) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	cp := *d
	m.data[d.ID] = &cp
	return nil
}

func (m *MemoryStore) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.data, id)
	return nil
}

func (m *MemoryStore) DeleteExpired(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()

	for id, d := range m.data {
		if d.Expired(now) {
			delete(m.data, id)
		}
	}

	return nil
}
