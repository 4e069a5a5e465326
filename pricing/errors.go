package pricing

import "errors"

var (
	// ErrInvalidParams reports market or contract inputs no engine can price.
	ErrInvalidParams = errors.New("pricing: invalid parameters")

	// ErrUnsupported reports an engine asked for an exercise style it cannot value.
	ErrUnsupported = errors.New("pricing: unsupported")
)
