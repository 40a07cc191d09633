// pkg/registry/registry_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: Mock store, in-memory store
// PURPOSE: Test will creation, lookup and one-shot execution

package registry_test

import (
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/legacychain/pkg/auth"
	"github.com/arthur-debert/legacychain/pkg/datastore"
	"github.com/arthur-debert/legacychain/pkg/errors"
	"github.com/arthur-debert/legacychain/pkg/registry"
	"github.com/arthur-debert/legacychain/pkg/testutil"
	"github.com/arthur-debert/legacychain/pkg/types"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	owner   types.Identity = "GOWNER"
	mallory types.Identity = "GMALLORY"
	b1      types.Identity = "GBENEFICIARY1"
	b2      types.Identity = "GBENEFICIARY2"
)

func newRegistry(store datastore.Store, opts ...registry.Option) *registry.Registry {
	opts = append([]registry.Option{registry.WithLogger(zerolog.Nop())}, opts...)
	return registry.New(store, auth.OwnerMatch{}, opts...)
}

func TestGet_BeforeCreate(t *testing.T) {
	reg := newRegistry(datastore.NewMemory())

	for _, id := range []types.Identity{owner, mallory, ""} {
		rec, err := reg.Get(id)
		require.NoError(t, err)
		assert.Nil(t, rec, "no record expected for %q", id)
	}
}

func TestCreate(t *testing.T) {
	tests := []struct {
		name          string
		contentHash   string
		beneficiaries []types.Identity
		want          []types.Identity
	}{
		{"typical will", "abc123", []types.Identity{b1, b2}, []types.Identity{b1, b2}},
		{"empty hash", "", []types.Identity{b1}, []types.Identity{b1}},
		{"no beneficiaries", "abc123", nil, []types.Identity{}},
		{"duplicates kept in order", "abc123", []types.Identity{b2, b1, b2}, []types.Identity{b2, b1, b2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := newRegistry(datastore.NewMemory())

			require.NoError(t, reg.Create(owner, owner, tt.contentHash, tt.beneficiaries))

			rec, err := reg.Get(owner)
			require.NoError(t, err)
			require.NotNil(t, rec)
			assert.Equal(t, types.WillRecord{
				ContentHash:   tt.contentHash,
				Beneficiaries: tt.want,
				Executed:      false,
			}, *rec)
		})
	}
}

func TestCreate_DoesNotAliasInput(t *testing.T) {
	reg := newRegistry(datastore.NewMemory())
	beneficiaries := []types.Identity{b1, b2}

	require.NoError(t, reg.Create(owner, owner, "abc123", beneficiaries))
	beneficiaries[0] = mallory

	rec, err := reg.Get(owner)
	require.NoError(t, err)
	assert.Equal(t, []types.Identity{b1, b2}, rec.Beneficiaries)
}

func TestCreate_Unauthorized(t *testing.T) {
	store := testutil.NewMockStore().
		WithRecord(owner, types.NewWillRecord("original", []types.Identity{b1}))
	reg := newRegistry(store)

	err := reg.Create(mallory, owner, "forged", []types.Identity{mallory})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnauthorized))

	// The authorizer runs before the store is touched
	assert.Empty(t, store.GetCalls())

	rec, err := reg.Get(owner)
	require.NoError(t, err)
	assert.Equal(t, "original", rec.ContentHash)
	assert.Equal(t, []types.Identity{b1}, rec.Beneficiaries)
}

func TestCreate_UncodedAuthorizerErrorIsUnauthorized(t *testing.T) {
	denied := stderrors.New("signature mismatch")
	authz := auth.Func(func(caller, identity types.Identity) error { return denied })
	reg := registry.New(datastore.NewMemory(), authz, registry.WithLogger(zerolog.Nop()))

	err := reg.Create(owner, owner, "abc123", nil)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnauthorized))
	assert.ErrorIs(t, err, denied)
}

func TestCreate_AuthorizesExactlyOnce(t *testing.T) {
	var calls []types.Identity
	authz := auth.Func(func(caller, identity types.Identity) error {
		calls = append(calls, caller, identity)
		return nil
	})
	reg := registry.New(datastore.NewMemory(), authz, registry.WithLogger(zerolog.Nop()))

	require.NoError(t, reg.Create(owner, owner, "abc123", nil))
	require.NoError(t, reg.Execute(owner, owner))
	_, err := reg.Get(owner)
	require.NoError(t, err)

	assert.Equal(t, []types.Identity{owner, owner}, calls)
}

func TestCreate_StoreFailure(t *testing.T) {
	boom := errors.New(errors.ErrStoreWrite, "disk full")
	store := testutil.NewMockStore().WithError("Set", boom)
	reg := newRegistry(store)

	err := reg.Create(owner, owner, "abc123", nil)
	assert.ErrorIs(t, err, boom)
	assert.True(t, errors.IsErrorCode(err, errors.ErrStoreWrite))
}

func TestCreate_OverwritesExistingRecord(t *testing.T) {
	reg := newRegistry(datastore.NewMemory())

	require.NoError(t, reg.Create(owner, owner, "first", []types.Identity{b1}))
	require.NoError(t, reg.Create(owner, owner, "second", []types.Identity{b2}))

	rec, err := reg.Get(owner)
	require.NoError(t, err)
	assert.Equal(t, "second", rec.ContentHash)
	assert.Equal(t, []types.Identity{b2}, rec.Beneficiaries)
}

// Re-creating an executed will silently resets it to unexecuted. This
// destroys completed-will state and is kept until the policy is decided.
func TestCreate_OverwritesExecutedRecord(t *testing.T) {
	reg := newRegistry(datastore.NewMemory())

	require.NoError(t, reg.Create(owner, owner, "abc123", []types.Identity{b1}))
	require.NoError(t, reg.Execute(owner, owner))

	require.NoError(t, reg.Create(owner, owner, "replacement", nil))

	rec, err := reg.Get(owner)
	require.NoError(t, err)
	assert.False(t, rec.Executed)
	assert.Equal(t, "replacement", rec.ContentHash)

	// And it can be executed again
	require.NoError(t, reg.Execute(owner, owner))
}

func TestExecute(t *testing.T) {
	reg := newRegistry(datastore.NewMemory())
	require.NoError(t, reg.Create(owner, owner, "abc123", []types.Identity{b1, b2}))

	require.NoError(t, reg.Execute(owner, owner))

	rec, err := reg.Get(owner)
	require.NoError(t, err)
	assert.Equal(t, types.WillRecord{
		ContentHash:   "abc123",
		Beneficiaries: []types.Identity{b1, b2},
		Executed:      true,
	}, *rec)
}

func TestExecute_Twice(t *testing.T) {
	store := testutil.NewMockStore()
	reg := newRegistry(store)
	require.NoError(t, reg.Create(owner, owner, "abc123", []types.Identity{b1, b2}))
	require.NoError(t, reg.Execute(owner, owner))

	before := store.GetRecords()[owner]
	callsBefore := len(store.GetCalls())

	err := reg.Execute(owner, owner)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrAlreadyExecuted))
	assert.Equal(t, owner.String(), errors.GetErrorDetails(err)["owner"])

	// Only the read happened; nothing was written
	calls := store.GetCalls()
	assert.Equal(t, []string{"Get(GOWNER)"}, calls[callsBefore:])
	assert.Equal(t, before, store.GetRecords()[owner])
}

func TestExecute_MissingRecordIsNoop(t *testing.T) {
	store := testutil.NewMockStore()
	reg := newRegistry(store)

	require.NoError(t, reg.Execute(owner, owner))

	assert.Equal(t, []string{"Get(GOWNER)"}, store.GetCalls())
	rec, err := reg.Get(owner)
	require.NoError(t, err)
	assert.Nil(t, rec)
}

// Execute does not check the caller: anyone can execute anyone's will.
// This mirrors the current behavior and is expected to change.
func TestExecute_AnyCallerCanExecute(t *testing.T) {
	reg := newRegistry(datastore.NewMemory())
	require.NoError(t, reg.Create(owner, owner, "abc123", []types.Identity{b1}))

	require.NoError(t, reg.Execute(mallory, owner))

	rec, err := reg.Get(owner)
	require.NoError(t, err)
	assert.True(t, rec.Executed)

	require.NoError(t, reg.Execute("", "GNOBODY"))
}

func TestExecute_HookReceivesUnexecutedRecord(t *testing.T) {
	hook := testutil.NewRecordingHook(nil)
	reg := newRegistry(datastore.NewMemory(), registry.WithExecutionHook(hook.Hook))
	require.NoError(t, reg.Create(owner, owner, "abc123", []types.Identity{b1, b2}))

	require.NoError(t, reg.Execute(owner, owner))

	calls := hook.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, owner, calls[0].Owner)
	assert.Equal(t, "abc123", calls[0].Record.ContentHash)
	assert.Equal(t, []types.Identity{b1, b2}, calls[0].Record.Beneficiaries)
	assert.False(t, calls[0].Record.Executed)

	// Already executed and missing wills never reach the hook
	_ = reg.Execute(owner, owner)
	_ = reg.Execute(owner, "GNOBODY")
	assert.Len(t, hook.Calls(), 1)
}

func TestExecute_HookFailureLeavesRecordUnexecuted(t *testing.T) {
	transferFailed := stderrors.New("transfer failed")
	hook := testutil.NewRecordingHook(transferFailed)
	reg := newRegistry(datastore.NewMemory(), registry.WithExecutionHook(hook.Hook))
	require.NoError(t, reg.Create(owner, owner, "abc123", nil))

	err := reg.Execute(owner, owner)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrExecutionHook))
	assert.ErrorIs(t, err, transferFailed)

	rec, err := reg.Get(owner)
	require.NoError(t, err)
	assert.False(t, rec.Executed)
}

func TestExecute_StoreReadFailure(t *testing.T) {
	boom := errors.New(errors.ErrStoreRead, "unreadable")
	store := testutil.NewMockStore().
		WithRecord(owner, types.NewWillRecord("abc123", nil)).
		WithError("Get", boom)
	reg := newRegistry(store)

	assert.ErrorIs(t, reg.Execute(owner, owner), boom)

	_, err := reg.Get(owner)
	assert.ErrorIs(t, err, boom)
}

func TestExecute_StoreWriteFailure(t *testing.T) {
	boom := errors.New(errors.ErrStoreWrite, "disk full")
	store := testutil.NewMockStore().
		WithRecord(owner, types.NewWillRecord("abc123", nil)).
		WithError("Set", boom)
	reg := newRegistry(store)

	assert.ErrorIs(t, reg.Execute(owner, owner), boom)
	assert.False(t, store.GetRecords()[owner].Executed)
}

func TestGet_ReturnsCopy(t *testing.T) {
	reg := newRegistry(datastore.NewMemory())
	require.NoError(t, reg.Create(owner, owner, "abc123", []types.Identity{b1}))

	rec, err := reg.Get(owner)
	require.NoError(t, err)
	rec.Executed = true
	rec.Beneficiaries[0] = mallory

	again, err := reg.Get(owner)
	require.NoError(t, err)
	assert.False(t, again.Executed)
	assert.Equal(t, []types.Identity{b1}, again.Beneficiaries)
}

func TestWillLifecycle(t *testing.T) {
	reg := newRegistry(datastore.NewMemory())

	require.NoError(t, reg.Create(owner, owner, "abc123", []types.Identity{b1, b2}))

	rec, err := reg.Get(owner)
	require.NoError(t, err)
	assert.Equal(t, types.WillRecord{ContentHash: "abc123", Beneficiaries: []types.Identity{b1, b2}, Executed: false}, *rec)

	require.NoError(t, reg.Execute(owner, owner))

	rec, err = reg.Get(owner)
	require.NoError(t, err)
	assert.Equal(t, types.WillRecord{ContentHash: "abc123", Beneficiaries: []types.Identity{b1, b2}, Executed: true}, *rec)

	err = reg.Execute(owner, owner)
	assert.True(t, errors.IsErrorCode(err, errors.ErrAlreadyExecuted))

	rec, err = reg.Get(owner)
	require.NoError(t, err)
	assert.Equal(t, types.WillRecord{ContentHash: "abc123", Beneficiaries: []types.Identity{b1, b2}, Executed: true}, *rec)
}
