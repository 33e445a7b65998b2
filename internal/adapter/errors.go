package adapter

import "errors"

var (
	// ErrBadRequest is returned when the daemon rejects the request shape
	// (HTTP 400): unknown mode, missing fields, malformed JSON.
	ErrBadRequest = errors.New("bad request")

	// ErrNotFound is returned when the addressed resource does not exist
	// (HTTP 404): unknown keyring namespace or no key for the handle.
	ErrNotFound = errors.New("not found")

	// ErrUnprocessable is returned when the request is well-formed but the
	// operation cannot be carried out (HTTP 422): disallowed composer
	// content, unresolved identities, encryption failure.
	ErrUnprocessable = errors.New("unprocessable request")

	// ErrInternalServerError is returned on HTTP 500.
	ErrInternalServerError = errors.New("internal server error")
)
