package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewWillRecord(t *testing.T) {
	beneficiaries := []Identity{"B1", "B2", "B1"}
	rec := NewWillRecord("abc123", beneficiaries)

	assert.Equal(t, "abc123", rec.ContentHash)
	assert.Equal(t, []Identity{"B1", "B2", "B1"}, rec.Beneficiaries)
	assert.False(t, rec.Executed)

	// The record must not alias the caller's slice
	beneficiaries[0] = "X"
	assert.Equal(t, Identity("B1"), rec.Beneficiaries[0])
}

func TestNewWillRecord_EmptyInputs(t *testing.T) {
	rec := NewWillRecord("", nil)

	assert.Equal(t, "", rec.ContentHash)
	assert.NotNil(t, rec.Beneficiaries)
	assert.Empty(t, rec.Beneficiaries)
}

func TestWillRecordClone(t *testing.T) {
	rec := WillRecord{ContentHash: "h", Beneficiaries: []Identity{"B1"}, Executed: true}
	clone := rec.Clone()

	clone.Beneficiaries[0] = "B9"
	clone.Executed = false

	assert.Equal(t, Identity("B1"), rec.Beneficiaries[0])
	assert.True(t, rec.Executed)
}

func TestIdentity(t *testing.T) {
	tests := []struct {
		name   string
		id     Identity
		isZero bool
	}{
		{"empty", "", true},
		{"whitespace", "  \t", true},
		{"address", "GBRPYHIL2CI3FNQ4BXLFMNDLFJUNPU2HY3ZMFSHONUCEOASW7QC7OX2H", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.isZero, tt.id.IsZero())
			assert.Equal(t, string(tt.id), tt.id.String())
		})
	}
}

func TestIdentitiesRoundTrip(t *testing.T) {
	in := []string{"B2", "B1", "B2"}
	ids := Identities(in)

	assert.Equal(t, []Identity{"B2", "B1", "B2"}, ids)
	assert.Equal(t, in, Strings(ids))
	assert.Empty(t, Identities(nil))
}
