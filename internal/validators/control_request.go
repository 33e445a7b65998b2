package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/eddieoz/openxrypt/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	// FieldHandle targets the platform handle a key is stored under.
	FieldHandle = "handle"

	// FieldArmoredKey targets the armored key material of a put-key request.
	FieldArmoredKey = "armored_key"

	// FieldPublicKeyBlock enforces that armored key material submitted to
	// the public namespace is not a private key block.
	FieldPublicKeyBlock = "public key block"

	// FieldPrivateKeyBlock enforces that armored key material submitted to
	// the private namespace is not a public key block.
	FieldPrivateKeyBlock = "private key block"

	// FieldMode targets the encryption mode of an encrypt request.
	FieldMode = "mode"

	// FieldSnapshotHost targets the hostname of a submitted page snapshot.
	FieldSnapshotHost = "snapshot host"
)

const (
	privateKeyBlockMarker = "PGP PRIVATE KEY BLOCK"
	publicKeyBlockMarker  = "PGP PUBLIC KEY BLOCK"

	// maxArmoredKeySize caps put-key payloads well above any realistic key
	// size. Cryptographic validity is the crypto engine's concern; this only
	// stops grossly oversized bodies from reaching it.
	maxArmoredKeySize = 1 << 20
)

type ControlRequestValidator struct {
}

func NewControlRequestValidator() Validator {
	return &ControlRequestValidator{}
}

func (v *ControlRequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.PutKeyRequest:
		return v.validatePutKeyRequest(ctx, value, fields...)
	case *models.PutKeyRequest:
		return v.validatePutKeyRequest(ctx, *value, fields...)

	case models.EncryptRequest:
		return v.validateEncryptRequest(ctx, value, fields...)
	case *models.EncryptRequest:
		return v.validateEncryptRequest(ctx, *value, fields...)

	case models.ScanRequest:
		return v.validateScanRequest(ctx, value, fields...)
	case *models.ScanRequest:
		return v.validateScanRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *ControlRequestValidator) validatePutKeyRequest(_ context.Context, req models.PutKeyRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldHandle, FieldArmoredKey}
	}

	for _, field := range fields {
		switch field {
		case FieldHandle:
			handle := req.Handle.String()
			if handle == "" {
				return ErrEmptyHandle
			}
			if strings.ContainsAny(handle, " \t\n\r") {
				return ErrInvalidHandle
			}
		case FieldArmoredKey:
			if strings.TrimSpace(req.ArmoredKey) == "" {
				return ErrEmptyArmoredKey
			}
			if len(req.ArmoredKey) > maxArmoredKeySize {
				return ErrOversizedPayload
			}
		case FieldPublicKeyBlock:
			if strings.Contains(req.ArmoredKey, privateKeyBlockMarker) {
				return fmt.Errorf("%w: private key submitted to the public keyring", ErrWrongKeyBlock)
			}
		case FieldPrivateKeyBlock:
			if strings.Contains(req.ArmoredKey, publicKeyBlockMarker) {
				return fmt.Errorf("%w: public key submitted to the private keyring", ErrWrongKeyBlock)
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}

func (v *ControlRequestValidator) validateEncryptRequest(_ context.Context, req models.EncryptRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldMode, FieldSnapshotHost}
	}

	for _, field := range fields {
		switch field {
		case FieldMode:
			if req.Mode != models.ModeDM && req.Mode != models.ModePost {
				return fmt.Errorf("%w: %q", ErrUnknownMode, req.Mode)
			}
		case FieldSnapshotHost:
			if strings.TrimSpace(req.Snapshot.Host) == "" {
				return ErrNoSnapshotHost
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}

func (v *ControlRequestValidator) validateScanRequest(_ context.Context, req models.ScanRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldSnapshotHost}
	}

	for _, field := range fields {
		switch field {
		case FieldSnapshotHost:
			if strings.TrimSpace(req.Snapshot.Host) == "" {
				return ErrNoSnapshotHost
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}
