package datastore

import "github.com/arthur-debert/legacychain/pkg/types"

// Store persists will records keyed by owner identity.
type Store interface {
	// Get returns the record stored for owner, or nil when there is none.
	Get(owner types.Identity) (*types.WillRecord, error)

	// Set stores record under owner, replacing any previous record.
	Set(owner types.Identity, record types.WillRecord) error
}
