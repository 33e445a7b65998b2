package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyHandle      = errors.New("handle is required")
	ErrInvalidHandle    = errors.New("handle must not contain whitespace")
	ErrEmptyArmoredKey  = errors.New("armored key is required")
	ErrWrongKeyBlock    = errors.New("key block does not match the keyring namespace")
	ErrUnknownMode      = errors.New("unknown encryption mode")
	ErrNoSnapshotHost   = errors.New("snapshot host is required")
	ErrOversizedPayload = errors.New("payload exceeds the allowed size")
)
