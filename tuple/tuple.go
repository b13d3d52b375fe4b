package tuple

import (
	"fmt"
	"reflect"
	"slices"
)

// Tuple is an immutable ordered sequence of heterogeneous values.
// The zero value is not meaningful; use Of, FromSlice, OfStrings or Empty.
type Tuple struct {
	values []any
}

var emptyTuple = &Tuple{}

// Empty returns the canonical zero-length tuple. It compares equal to any
// other zero-length tuple; the shared instance only avoids allocation.
func Empty() *Tuple {
	return emptyTuple
}

// Of builds a new tuple containing the given values in order.
func Of(values ...any) *Tuple {
	return FromSlice(values)
}

// FromSlice builds a new tuple copying the given slice. Later changes to
// the slice do not affect the tuple.
func FromSlice(values []any) *Tuple {
	if len(values) == 0 {
		return emptyTuple
	}
	return &Tuple{values: slices.Clone(values)}
}

// OfStrings builds a tuple whose elements are the string form of each
// input value. A nil input has no string form and yields an error.
func OfStrings(values ...any) (*Tuple, error) {
	if len(values) == 0 {
		return emptyTuple, nil
	}
	strs := make([]any, len(values))
	for i, v := range values {
		if v == nil {
			return nil, fmt.Errorf("%w: value at index %d", ErrNilElement, i)
		}
		strs[i] = stringify(v)
	}
	return &Tuple{values: strs}, nil
}

// Len returns the number of elements.
func (t *Tuple) Len() int {
	return len(t.values)
}

// IsEmpty reports whether the tuple has no elements.
func (t *Tuple) IsEmpty() bool {
	return len(t.values) == 0
}

// At returns the element at index i.
func (t *Tuple) At(i int) (any, error) {
	if i < 0 || i >= len(t.values) {
		return nil, fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, i, len(t.values))
	}
	return t.values[i], nil
}

// StringAt returns the string form of the element at index i.
func (t *Tuple) StringAt(i int) (string, error) {
	v, err := t.At(i)
	if err != nil {
		return "", err
	}
	return stringify(v), nil
}

// First returns the element at index 0.
func (t *Tuple) First() (any, error) {
	return t.At(0)
}

// Last returns the element at index Len()-1.
func (t *Tuple) Last() (any, error) {
	return t.At(len(t.values) - 1)
}

// Get returns the element of t at index i as type T. It fails with a
// *TypeError if the element's dynamic type is not exactly T.
func Get[T any](t *Tuple, i int) (T, error) {
	var zero T
	v, err := t.At(i)
	if err != nil {
		return zero, err
	}
	res, ok := v.(T)
	if !ok {
		return zero, &TypeError{
			Index:    i,
			Expected: reflect.TypeFor[T]().String(),
			Actual:   typeName(v),
		}
	}
	return res, nil
}

// ToSlice returns a copy of the tuple's elements.
func (t *Tuple) ToSlice() []any {
	return slices.Clone(t.values)
}

// TypedValues materializes the tuple's elements into a []T. It fails with a
// *TypeError at the first element whose dynamic type is not exactly T.
func TypedValues[T any](t *Tuple) ([]T, error) {
	res := make([]T, len(t.values))
	for i, v := range t.values {
		tv, ok := v.(T)
		if !ok {
			return nil, &TypeError{
				Index:    i,
				Expected: reflect.TypeFor[T]().String(),
				Actual:   typeName(v),
			}
		}
		res[i] = tv
	}
	return res, nil
}

// Equal reports structural equality: same length and pairwise equal
// elements. Nested tuples are compared recursively.
func (t *Tuple) Equal(o *Tuple) bool {
	if t == o {
		return true
	}
	if o == nil {
		return false
	}
	if len(t.values) != len(o.values) {
		return false
	}
	for i, v := range t.values {
		if !elemEqual(v, o.values[i]) {
			return false
		}
	}
	return true
}

func elemEqual(a, b any) bool {
	if ta, ok := a.(*Tuple); ok {
		tb, ok := b.(*Tuple)
		if !ok {
			return false
		}
		// a typed-nil tuple element equals only another nil tuple
		if ta == nil || tb == nil {
			return ta == tb
		}
		return ta.Equal(tb)
	}
	if _, ok := b.(*Tuple); ok {
		return false
	}
	return reflect.DeepEqual(a, b)
}

func typeName(v any) string {
	if v == nil {
		return "nil"
	}
	return reflect.TypeOf(v).String()
}
