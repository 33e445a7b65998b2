// SPDX-License-Identifier: Apache-2.0

// Package validators checks the structural shape of control-channel
// requests before they reach the crypto layer. It rejects blank or
// malformed handles, empty or oversized armored material and unknown
// encryption modes, leaving cryptographic validity of keys and
// ciphertext to the engine that parses them.
package validators

import "context"

// Validator checks an input value, optionally restricted to a set of
// named fields. With no fields given, implementations apply every rule
// they know for the input's type.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
