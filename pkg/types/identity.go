package types

import "strings"

// Identity is an opaque principal: a will owner, a beneficiary or the
// caller of an operation. No format is enforced.
type Identity string

// String returns the identity as a plain string
func (i Identity) String() string {
	return string(i)
}

// IsZero reports whether the identity is empty or whitespace only
func (i Identity) IsZero() bool {
	return strings.TrimSpace(string(i)) == ""
}

// Identities converts a list of strings into identities, preserving order
// and duplicates.
func Identities(values []string) []Identity {
	out := make([]Identity, 0, len(values))
	for _, v := range values {
		out = append(out, Identity(v))
	}
	return out
}

// Strings converts a list of identities back into plain strings
func Strings(ids []Identity) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, string(id))
	}
	return out
}
