package errorutil

import "errors"

// ErrMalformedPayload is a base error type for documents or request bodies
// that cannot be decoded into the analytics model.
var ErrMalformedPayload = errors.New("malformed payload")

// ErrUnexpectedStatus represents a non-2xx response from the ingest endpoint.
var ErrUnexpectedStatus = errors.New("unexpected response status")
