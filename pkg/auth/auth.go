// Package auth implements the identity and authorization checks the will
// registry performs before mutating state.
package auth

import (
	"github.com/arthur-debert/legacychain/pkg/errors"
	"github.com/arthur-debert/legacychain/pkg/types"
)

// Mode names accepted by FromMode
const (
	ModeOwner = "owner"
	ModeNone  = "none"
)

// Authorizer verifies that the current call was authorized by identity.
type Authorizer interface {
	// RequireAuth fails with an UNAUTHORIZED error when caller cannot act
	// on behalf of identity.
	RequireAuth(caller, identity types.Identity) error
}

// Func adapts a plain function to the Authorizer interface
type Func func(caller, identity types.Identity) error

// RequireAuth calls f
func (f Func) RequireAuth(caller, identity types.Identity) error {
	return f(caller, identity)
}

// OwnerMatch authorizes a call only when the caller is the identity itself.
// Identities are opaque: only the empty caller is treated as absent.
type OwnerMatch struct{}

// RequireAuth implements Authorizer
func (OwnerMatch) RequireAuth(caller, identity types.Identity) error {
	if caller == "" {
		return errors.New(errors.ErrUnauthorized, "no caller identity presented").
			WithDetail("caller", "").
			WithDetail("identity", identity.String())
	}
	if caller != identity {
		return errors.Newf(errors.ErrUnauthorized, "caller %q is not authorized to act for %q", caller, identity).
			WithDetail("caller", caller.String()).
			WithDetail("identity", identity.String())
	}
	return nil
}

// AllowAll authorizes every call. It exists for tests and for hosts that
// authenticate callers before they reach the registry.
type AllowAll struct{}

// RequireAuth implements Authorizer
func (AllowAll) RequireAuth(types.Identity, types.Identity) error {
	return nil
}

// FromMode returns the authorizer configured by name
func FromMode(mode string) (Authorizer, error) {
	switch mode {
	case ModeOwner, "":
		return OwnerMatch{}, nil
	case ModeNone:
		return AllowAll{}, nil
	default:
		return nil, errors.Newf(errors.ErrConfigValid, "unknown auth mode: %s", mode).
			WithDetail("mode", mode)
	}
}
