package auth_test

import (
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/legacychain/pkg/auth"
	"github.com/arthur-debert/legacychain/pkg/errors"
	"github.com/arthur-debert/legacychain/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOwnerMatch(t *testing.T) {
	tests := []struct {
		name     string
		caller   types.Identity
		identity types.Identity
		wantErr  bool
	}{
		{"caller is owner", "GOWNER", "GOWNER", false},
		{"caller is someone else", "GMALLORY", "GOWNER", true},
		{"empty caller", "", "GOWNER", true},
		{"empty caller for empty identity", "", "", true},
		{"blank caller is an identity", "   ", "   ", false},
		{"blank caller for someone else", "   ", "GOWNER", true},
		{"case differs", "gowner", "GOWNER", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := auth.OwnerMatch{}.RequireAuth(tt.caller, tt.identity)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrUnauthorized))
			assert.Equal(t, tt.identity.String(), errors.GetErrorDetails(err)["identity"])
		})
	}
}

func TestAllowAll(t *testing.T) {
	assert.NoError(t, auth.AllowAll{}.RequireAuth("", "GOWNER"))
	assert.NoError(t, auth.AllowAll{}.RequireAuth("GMALLORY", "GOWNER"))
}

func TestFunc(t *testing.T) {
	sentinel := stderrors.New("denied")
	var gotCaller, gotIdentity types.Identity

	authz := auth.Func(func(caller, identity types.Identity) error {
		gotCaller, gotIdentity = caller, identity
		return sentinel
	})

	err := authz.RequireAuth("GCALLER", "GOWNER")
	assert.ErrorIs(t, err, sentinel)
	assert.Equal(t, types.Identity("GCALLER"), gotCaller)
	assert.Equal(t, types.Identity("GOWNER"), gotIdentity)
}

func TestFromMode(t *testing.T) {
	a, err := auth.FromMode("owner")
	require.NoError(t, err)
	assert.IsType(t, auth.OwnerMatch{}, a)

	a, err = auth.FromMode("")
	require.NoError(t, err)
	assert.IsType(t, auth.OwnerMatch{}, a)

	a, err = auth.FromMode("none")
	require.NoError(t, err)
	assert.IsType(t, auth.AllowAll{}, a)

	_, err = auth.FromMode("multisig")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
}
