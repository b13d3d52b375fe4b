// Package typereg maps stable names to runtime types so encoded values can
// be reconstructed in another process, provided the same types are
// registered there.
package typereg

import (
	"errors"
	"fmt"
	"maps"
	"reflect"
	"slices"
	"sync"
)

var (
	ErrUnknownName    = errors.New("typereg: no type registered under name")
	ErrUnknownType    = errors.New("typereg: type not registered")
	ErrAlreadyDefined = errors.New("typereg: already registered")
)

// Registry is a bidirectional map between names and reflect.Types. It is
// safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	types map[string]reflect.Type
	names map[reflect.Type]string
}

func NewRegistry() *Registry {
	return &Registry{
		types: map[string]reflect.Type{},
		names: map[reflect.Type]string{},
	}
}

// RegisterType registers t under name. Both the name and the type must be
// unused.
func (r *Registry) RegisterType(name string, t reflect.Type) error {
	if name == "" {
		return fmt.Errorf("typereg: empty name")
	}
	if t == nil {
		return fmt.Errorf("typereg: nil type for %q", name)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if prev, ok := r.types[name]; ok {
		return fmt.Errorf("%w: name %q -> %s", ErrAlreadyDefined, name, prev)
	}
	if prev, ok := r.names[t]; ok {
		return fmt.Errorf("%w: type %s -> %q", ErrAlreadyDefined, t, prev)
	}
	r.types[name] = t
	r.names[t] = name
	return nil
}

// TypeFor resolves a registered name to its type.
func (r *Registry) TypeFor(name string) (reflect.Type, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.types[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownName, name)
	}
	return t, nil
}

// NameFor resolves a registered type to its name.
func (r *Registry) NameFor(t reflect.Type) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	name, ok := r.names[t]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownType, t)
	}
	return name, nil
}

// Names returns all registered names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.types))
}

// Default is the process-wide registry, pre-seeded with Go builtins.
var Default = NewRegistry()

// Register registers T under name in the Default registry.
func Register[T any](name string) error {
	return Default.RegisterType(name, reflect.TypeFor[T]())
}

// MustRegister is Register, panicking on error. Intended for package init.
func MustRegister[T any](name string) {
	if err := Register[T](name); err != nil {
		panic(err)
	}
}

func init() {
	MustRegister[string]("string")
	MustRegister[bool]("bool")
	MustRegister[int]("int")
	MustRegister[int8]("int8")
	MustRegister[int16]("int16")
	MustRegister[int32]("int32")
	MustRegister[int64]("int64")
	MustRegister[uint]("uint")
	MustRegister[uint8]("uint8")
	MustRegister[uint16]("uint16")
	MustRegister[uint32]("uint32")
	MustRegister[uint64]("uint64")
	MustRegister[float32]("float32")
	MustRegister[float64]("float64")
}
