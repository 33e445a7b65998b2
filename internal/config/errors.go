package config

import "errors"

// Validation errors returned by [Config.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates a malformed control-channel
	// address (not a host:port pair).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")

	// ErrNonLocalAddress indicates the control channel was configured to
	// bind a non-loopback interface, which would expose key material and
	// plaintext beyond the local machine.
	ErrNonLocalAddress = errors.New("control channel must bind a loopback address")

	// ErrInvalidStorageConfigs indicates invalid keyring storage settings
	// (for example, an empty database path).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
)
