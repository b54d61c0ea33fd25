package fsop

import "errors"

var (
	ErrTruncated       = errors.New("fsop: truncated container")
	ErrNameTooLong     = errors.New("fsop: encoded name exceeds 255 bytes")
	ErrMissingIndex    = errors.New("fsop: sidecar index not found")
	ErrInvalidIndex    = errors.New("fsop: invalid sidecar index")
	ErrIncompleteEntry = errors.New("fsop: incomplete index entry")
	ErrLimitExceeded   = errors.New("fsop: limit exceeded")
)
