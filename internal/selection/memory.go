package selection

import (
	"context"
	"sync"
)

// MemoryStore is an in-memory Store used when the database is disabled or
// unreachable. Selections then last for the process lifetime only.
type MemoryStore struct {
	mu   sync.RWMutex
	sets map[string][]string
}

// NewMemoryStore creates an empty in-memory selection store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sets: make(map[string][]string)}
}

func key(profileID, slot string) string {
	return profileID + "\x00" + slot
}

func (m *MemoryStore) Get(ctx context.Context, profileID, slot string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ids, ok := m.sets[key(profileID, slot)]
	if !ok {
		return []string{}, nil
	}
	out := make([]string, len(ids))
	copy(out, ids)
	return out, nil
}

func (m *MemoryStore) Put(ctx context.Context, profileID, slot string, ids []string) error {
	stored := make([]string, len(ids))
	copy(stored, ids)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.sets[key(profileID, slot)] = stored
	return nil
}

func (m *MemoryStore) Delete(ctx context.Context, profileID, slot string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sets, key(profileID, slot))
	return nil
}

// Ensure MemoryStore implements Store
var _ Store = (*MemoryStore)(nil)
