package testutil

import (
	"fmt"
	"sync"

	"github.com/arthur-debert/legacychain/pkg/datastore"
	"github.com/arthur-debert/legacychain/pkg/types"
)

// MockStore is a mock implementation of datastore.Store for testing
type MockStore struct {
	mu            sync.RWMutex
	records       map[types.Identity]types.WillRecord
	calls         []string
	errorOn       string
	errorToReturn error
}

// NewMockStore creates a new empty MockStore
func NewMockStore() *MockStore {
	return &MockStore{
		records: make(map[types.Identity]types.WillRecord),
		calls:   []string{},
	}
}

// Get returns a copy of the stored record, or nil
func (m *MockStore) Get(owner types.Identity) (*types.WillRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = append(m.calls, fmt.Sprintf("Get(%s)", owner))

	if m.errorOn == "Get" {
		return nil, m.errorToReturn
	}

	rec, ok := m.records[owner]
	if !ok {
		return nil, nil
	}
	clone := rec.Clone()
	return &clone, nil
}

// Set stores a copy of record
func (m *MockStore) Set(owner types.Identity, record types.WillRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = append(m.calls, fmt.Sprintf("Set(%s)", owner))

	if m.errorOn == "Set" {
		return m.errorToReturn
	}

	m.records[owner] = record.Clone()
	return nil
}

// WithError configures the mock to return an error for a specific method
func (m *MockStore) WithError(method string, err error) *MockStore {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.errorOn = method
	m.errorToReturn = err
	return m
}

// WithRecord pre-configures a record without recording a call
func (m *MockStore) WithRecord(owner types.Identity, record types.WillRecord) *MockStore {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.records[owner] = record.Clone()
	return m
}

// GetCalls returns all recorded method calls
func (m *MockStore) GetCalls() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]string, len(m.calls))
	copy(result, m.calls)
	return result
}

// GetRecords returns a copy of every stored record
func (m *MockStore) GetRecords() map[types.Identity]types.WillRecord {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make(map[types.Identity]types.WillRecord, len(m.records))
	for k, v := range m.records {
		result[k] = v.Clone()
	}
	return result
}

// Verify interface compliance
var _ datastore.Store = (*MockStore)(nil)
