package codec

import "errors"

var (
	// ErrMalformed indicates the payload could not be decoded as its declared format.
	ErrMalformed = errors.New("malformed document")
	// ErrNotText indicates a fallback payload is not valid UTF-8.
	ErrNotText = errors.New("payload is not valid text")
)
