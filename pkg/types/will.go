package types

// WillRecord is the persisted state of one owner's will.
//
// Executed is monotonic: it starts false when the record is created and is
// only ever flipped to true by an execution.
type WillRecord struct {
	// ContentHash is an opaque fingerprint of the will document.
	ContentHash string `json:"content_hash" toml:"content_hash" yaml:"content_hash"`

	// Beneficiaries are stored in the order given. Duplicates are kept.
	Beneficiaries []Identity `json:"beneficiaries" toml:"beneficiaries" yaml:"beneficiaries"`

	// Executed marks the will as finalized.
	Executed bool `json:"executed" toml:"executed" yaml:"executed"`
}

// NewWillRecord returns an unexecuted record holding a copy of beneficiaries
func NewWillRecord(contentHash string, beneficiaries []Identity) WillRecord {
	return WillRecord{
		ContentHash:   contentHash,
		Beneficiaries: copyIdentities(beneficiaries),
		Executed:      false,
	}
}

// Clone returns a deep copy of the record
func (w WillRecord) Clone() WillRecord {
	w.Beneficiaries = copyIdentities(w.Beneficiaries)
	return w
}

func copyIdentities(ids []Identity) []Identity {
	out := make([]Identity, len(ids))
	copy(out, ids)
	return out
}
