package tag

import "errors"

var (
	// ErrInvalidArgument reports a nil or non-compound root, an empty
	// path, or another caller precondition violation.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrTypeMismatch reports a tag whose variant differs from the one
	// required.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrUnsupportedType reports a Go value with no tag conversion.
	ErrUnsupportedType = errors.New("unsupported type")
)
