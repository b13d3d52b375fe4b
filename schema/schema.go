package schema

import (
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/signadot/tuple-format/go-tuple/debug"
	"github.com/signadot/tuple-format/go-tuple/tuple"
)

// Schema is an immutable ordered mapping of attribute names to positional
// indices and declared types. Build one with a Builder. A nil declared type
// means the attribute is unconstrained.
type Schema struct {
	attrs []string
	index map[string]int
	types []reflect.Type
}

// Len returns the number of attributes.
func (s *Schema) Len() int {
	return len(s.attrs)
}

// Attributes returns the attribute names in declaration order.
func (s *Schema) Attributes() []string {
	return slices.Clone(s.attrs)
}

// HasAttribute reports whether name is declared.
func (s *Schema) HasAttribute(name string) bool {
	_, ok := s.index[name]
	return ok
}

// Index returns the position of the named attribute.
func (s *Schema) Index(name string) (int, error) {
	i, ok := s.index[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrAttributeNotFound, name)
	}
	return i, nil
}

// Attribute returns the name of the attribute at index.
func (s *Schema) Attribute(index int) (string, error) {
	if index < 0 || index >= len(s.attrs) {
		return "", fmt.Errorf("%w: %d", ErrAttributeIndexNotFound, index)
	}
	return s.attrs[index], nil
}

// Type returns the declared type at index; nil means unconstrained.
func (s *Schema) Type(index int) (reflect.Type, error) {
	if index < 0 || index >= len(s.types) {
		return nil, fmt.Errorf("%w: %d", ErrAttributeIndexNotFound, index)
	}
	return s.types[index], nil
}

// TypeOf returns the declared type of the named attribute.
func (s *Schema) TypeOf(name string) (reflect.Type, error) {
	i, err := s.Index(name)
	if err != nil {
		return nil, err
	}
	return s.types[i], nil
}

// Check verifies that actual is exactly the declared type at index. An
// unconstrained attribute accepts any type.
func (s *Schema) Check(index int, actual reflect.Type) error {
	declared, err := s.Type(index)
	if err != nil {
		return err
	}
	if declared == nil {
		return nil
	}
	if declared != actual {
		return &ViolationError{
			Attribute: s.attrs[index],
			Index:     index,
			Declared:  declared,
			Actual:    actual,
		}
	}
	return nil
}

// CheckAttribute verifies that actual is exactly the declared type of the
// named attribute.
func (s *Schema) CheckAttribute(name string, actual reflect.Type) error {
	i, err := s.Index(name)
	if err != nil {
		return err
	}
	return s.Check(i, actual)
}

// CheckValues verifies that values matches the schema: same count as the
// attributes, and every value's dynamic type exactly the declared type at
// its position.
func (s *Schema) CheckValues(values ...any) error {
	if debug.Check() {
		debug.Logf("schema check: %d values against %d attributes\n", len(values), len(s.attrs))
	}
	if len(values) != len(s.attrs) {
		return &ViolationError{
			Message: fmt.Sprintf("got %d values for %d attributes", len(values), len(s.attrs)),
		}
	}
	for i, v := range values {
		if err := s.Check(i, reflect.TypeOf(v)); err != nil {
			return err
		}
	}
	return nil
}

// CheckTuple verifies that t's elements match the schema.
func (s *Schema) CheckTuple(t *tuple.Tuple) error {
	return s.CheckValues(t.ToSlice()...)
}

// String renders the schema as an indexed attribute listing.
func (s *Schema) String() string {
	var sb strings.Builder
	sb.WriteString("TupleSchema: {\n")
	for i, name := range s.attrs {
		fmt.Fprintf(&sb, "\t%d: %s [%s]\n", i, name, typeName(s.types[i]))
	}
	sb.WriteString("}")
	return sb.String()
}
