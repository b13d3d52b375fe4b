package tuple

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange is returned by positional access outside [0, Len()).
	ErrIndexOutOfRange = errors.New("tuple: index out of range")

	// ErrNilElement is returned by OfStrings when an input value is nil.
	ErrNilElement = errors.New("tuple: nil value has no string form")
)

// TypeError reports a mismatch between an element's dynamic type and the
// type requested by a typed accessor.
type TypeError struct {
	Index    int
	Expected string
	Actual   string
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("tuple: type error at index %d: expected %s, got %s",
		e.Index, e.Expected, e.Actual)
}
