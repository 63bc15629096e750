package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")

	// ErrMalformedResponse is returned when a 2xx response lacks the
	// expected envelope payload.
	ErrMalformedResponse = errors.New("malformed server response")
)
