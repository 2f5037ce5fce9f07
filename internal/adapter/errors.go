package adapter

import "errors"

// Sentinel errors returned by the authority adapter. HTTP status codes are
// translated into them by mapHTTPError.
var (
	// ErrBadRequest is returned for 400 responses.
	ErrBadRequest = errors.New("bad request")
	// ErrNotFound is returned for 404 responses, e.g. an unknown session id.
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned for 409 responses, e.g. answering a finished session.
	ErrConflict = errors.New("conflict")
	// ErrInternalServerError is returned for 500 responses.
	ErrInternalServerError = errors.New("internal server error")
	// ErrUnavailable is returned for 502, 503 and 504 responses.
	ErrUnavailable = errors.New("authority unavailable")
	// ErrMalformedResponse is returned when a 2xx body cannot be decoded or
	// lacks required fields.
	ErrMalformedResponse = errors.New("malformed authority response")
)
