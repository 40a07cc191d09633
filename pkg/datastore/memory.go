package datastore

import (
	"sync"

	"github.com/arthur-debert/legacychain/pkg/types"
)

type memoryStore struct {
	mu      sync.RWMutex
	records map[types.Identity]types.WillRecord
}

// NewMemory returns an empty in-memory Store. Records are copied on the
// way in and out, so callers never share state with the store.
func NewMemory() Store {
	return &memoryStore{records: make(map[types.Identity]types.WillRecord)}
}

func (m *memoryStore) Get(owner types.Identity) (*types.WillRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, ok := m.records[owner]
	if !ok {
		return nil, nil
	}
	clone := rec.Clone()
	return &clone, nil
}

func (m *memoryStore) Set(owner types.Identity, record types.WillRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.records[owner] = record.Clone()
	return nil
}
