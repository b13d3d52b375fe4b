package schema

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrDuplicateAttribute is returned by the builder when registering a
	// name that already exists.
	ErrDuplicateAttribute = errors.New("schema: attribute already exists")

	// ErrAttributeNotFound is returned by lookups for unknown names.
	ErrAttributeNotFound = errors.New("schema: attribute not found")

	// ErrAttributeIndexNotFound is returned by lookups for out-of-range
	// attribute indices.
	ErrAttributeIndexNotFound = errors.New("schema: attribute index not found")
)

// ViolationError reports a failed schema check: a value count that differs
// from the attribute count, or a value whose dynamic type is not the
// declared type at its position.
type ViolationError struct {
	Attribute string
	Index     int
	Declared  reflect.Type
	Actual    reflect.Type
	Message   string
}

func (e *ViolationError) Error() string {
	if e.Message != "" {
		return "schema violation: " + e.Message
	}
	// "any" renders unconstrained declared types; a missing actual type is
	// a nil value, not an unconstrained one
	actual := "nil"
	if e.Actual != nil {
		actual = e.Actual.String()
	}
	return fmt.Sprintf("schema violation: attribute %q (index=%d) declared %s, got %s",
		e.Attribute, e.Index, typeName(e.Declared), actual)
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "any"
	}
	return t.String()
}
