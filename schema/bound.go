package schema

import (
	"iter"
	"reflect"

	"github.com/signadot/tuple-format/go-tuple/tuple"
)

// Bound couples a tuple with the schema its values were checked against.
// Many Bound values may share one schema; each exclusively owns its tuple.
type Bound struct {
	schema *Schema
	tuple  *tuple.Tuple
}

// Bind validates values against s and wraps them into a bound tuple. It
// fails with the schema's violation error when validation fails.
func Bind(s *Schema, values ...any) (*Bound, error) {
	if err := s.CheckValues(values...); err != nil {
		return nil, err
	}
	return &Bound{schema: s, tuple: tuple.Of(values...)}, nil
}

// BindTuple validates t's elements against s and binds them.
func BindTuple(s *Schema, t *tuple.Tuple) (*Bound, error) {
	if err := s.CheckTuple(t); err != nil {
		return nil, err
	}
	return &Bound{schema: s, tuple: t}, nil
}

// Schema returns the schema this tuple is bound to.
func (b *Bound) Schema() *Schema {
	return b.schema
}

// AsTuple returns the unbound tuple view of the values.
func (b *Bound) AsTuple() *tuple.Tuple {
	return b.tuple
}

// Len returns the number of values, equal to the schema's attribute count.
func (b *Bound) Len() int {
	return b.schema.Len()
}

// Value returns the value of the named attribute without type checking.
// Callers asserting the result to a concrete type are on their own; use
// Get for checked access.
func (b *Bound) Value(name string) (any, error) {
	i, err := b.schema.Index(name)
	if err != nil {
		return nil, err
	}
	return b.tuple.At(i)
}

// At returns the value at index without type checking.
func (b *Bound) At(index int) (any, error) {
	return b.tuple.At(index)
}

// Get returns the value of the named attribute as type T, after verifying
// that T is exactly the attribute's declared type.
func Get[T any](b *Bound, name string) (T, error) {
	var zero T
	i, err := b.schema.Index(name)
	if err != nil {
		return zero, err
	}
	if err := b.schema.Check(i, reflect.TypeFor[T]()); err != nil {
		return zero, err
	}
	return tuple.Get[T](b.tuple, i)
}

// CompareTo orders the bound tuple by its underlying tuple's ordering.
func (b *Bound) CompareTo(o any) int {
	if ob, ok := o.(*Bound); ok && ob != nil {
		return b.tuple.CompareTo(ob.tuple)
	}
	return b.tuple.CompareTo(o)
}

// Equal reports whether o is bound to the same schema with a structurally
// equal tuple.
func (b *Bound) Equal(o *Bound) bool {
	if b == o {
		return true
	}
	if o == nil {
		return false
	}
	return b.schema == o.schema && b.tuple.Equal(o.tuple)
}

// All returns an index/value iterator over the bound values in order.
func (b *Bound) All() iter.Seq2[int, any] {
	return b.tuple.All()
}

// Values returns a value iterator over the bound values in order.
func (b *Bound) Values() iter.Seq[any] {
	return b.tuple.Values()
}

// String renders the underlying tuple prefixed with a bound tuple tag.
func (b *Bound) String() string {
	return "BoundTuple: " + b.tuple.String()
}
