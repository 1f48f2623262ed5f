package tagmap

import (
	"fmt"

	"github.com/signadot/tagtree/tag"
)

// TypeError reports a tag whose variant does not match the Go type
// requested from it. It unwraps to tag.ErrTypeMismatch.
type TypeError struct {
	Expected string
	Actual   tag.Type
	Message  string
}

func (e *TypeError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = fmt.Sprintf("expected %s, got %s", e.Expected, e.Actual)
	}
	return fmt.Sprintf("type error: %s", msg)
}

func (e *TypeError) Unwrap() error {
	return tag.ErrTypeMismatch
}

// UnsupportedTypeError reports a Go type with no conversion to or from a
// tag. It unwraps to tag.ErrUnsupportedType.
type UnsupportedTypeError struct {
	// Elem is set to the position of the offending element when the
	// value was found inside a collection.
	Elem  string
	Value any
	// FromTag is set when converting a tag to Value's type failed.
	FromTag bool
}

func (e *UnsupportedTypeError) Error() string {
	what := fmt.Sprintf("can't create a tag of %T", e.Value)
	if e.FromTag {
		what = fmt.Sprintf("can't convert a tag to %T", e.Value)
	}
	if e.Elem != "" {
		return fmt.Sprintf("unsupported type at %s: %s", e.Elem, what)
	}
	return "unsupported type: " + what
}

func (e *UnsupportedTypeError) Unwrap() error {
	return tag.ErrUnsupportedType
}
