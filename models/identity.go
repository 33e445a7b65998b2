// SPDX-License-Identifier: Apache-2.0

package models

// Identity is an opaque handle identifying a party on a given platform,
// e.g. "@alice" on X or a bare phone number on WhatsApp. Identities are not
// globally unique across platforms; scoping is implicit in which platform
// adapter produced the value.
type Identity string

// Sentinel identities returned when an adapter cannot resolve a handle.
// Callers must treat them as "no key available" — downstream key lookups
// fail with a not-found error instead of raising here.
const (
	// UnknownLocalIdentity is returned when the local (sending) identity
	// cannot be determined from the host page.
	UnknownLocalIdentity Identity = "@unknown_user"

	// UnknownPeerIdentity is returned when the conversation peer cannot be
	// determined from the host page.
	UnknownPeerIdentity Identity = "@unknown_dest_user"
)

// IsUnknown reports whether the identity is one of the resolution-failure
// sentinels.
func (i Identity) IsUnknown() bool {
	return i == "" || i == UnknownLocalIdentity || i == UnknownPeerIdentity
}

// String implements fmt.Stringer.
func (i Identity) String() string {
	return string(i)
}
