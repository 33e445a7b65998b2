package service

import "errors"

var (
	// ErrIdentityUnresolved is returned when the platform adapter could
	// not determine the identities an operation needs.
	ErrIdentityUnresolved = errors.New("identity could not be resolved")

	// ErrUnsupportedHost is returned when no platform adapter exists for
	// the snapshot's host.
	ErrUnsupportedHost = errors.New("unsupported host")

	// ErrNoComposer is returned when the snapshot carries no writable
	// composer to encrypt from.
	ErrNoComposer = errors.New("no composer in snapshot")

	// ErrEmptyMessage is returned when the composer holds no text.
	ErrEmptyMessage = errors.New("empty message")

	// ErrDisallowedContent is returned when the composer text contains
	// codepoints the host's selection handling corrupts. The send is
	// rejected rather than silently mangled.
	ErrDisallowedContent = errors.New("message contains unsupported characters")

	// ErrInvalidKeyProvided is returned when an imported key does not
	// parse as armored key material.
	ErrInvalidKeyProvided = errors.New("invalid key provided")
)
