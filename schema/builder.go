package schema

import (
	"fmt"
	"maps"
	"reflect"
	"slices"
	"sync"
)

// Builder accumulates attribute declarations for schemas. Accumulation
// operations are individually serialized so one builder may be shared
// across goroutines; Build snapshots the state accumulated so far and the
// builder remains usable afterward.
type Builder struct {
	mu    sync.Mutex
	attrs []string
	index map[string]int
	types []reflect.Type
}

func NewBuilder() *Builder {
	return &Builder{index: map[string]int{}}
}

// AddAttribute registers a new attribute at the next index. A nil type
// declares the attribute unconstrained. Registering a name twice fails
// with ErrDuplicateAttribute.
func (b *Builder) AddAttribute(name string, typ reflect.Type) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.index[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateAttribute, name)
	}
	b.index[name] = len(b.attrs)
	b.attrs = append(b.attrs, name)
	b.types = append(b.types, typ)
	return nil
}

// AddAttributeOf registers a new attribute declared with type T.
func AddAttributeOf[T any](b *Builder, name string) error {
	return b.AddAttribute(name, reflect.TypeFor[T]())
}

// Has reports whether an attribute with the given name has been declared.
func (b *Builder) Has(name string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	_, ok := b.index[name]
	return ok
}

// Attributes returns the names declared so far, in order.
func (b *Builder) Attributes() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return slices.Clone(b.attrs)
}

// Build produces an immutable snapshot of the accumulated declarations.
// Schemas built earlier are unaffected by later additions.
func (b *Builder) Build() *Schema {
	b.mu.Lock()
	defer b.mu.Unlock()
	return &Schema{
		attrs: slices.Clone(b.attrs),
		index: maps.Clone(b.index),
		types: slices.Clone(b.types),
	}
}
