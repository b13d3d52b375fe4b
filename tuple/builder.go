package tuple

// Builder accumulates values for a tuple, avoiding intermediate tuple
// allocations when composing one incrementally. A Builder is single-owner;
// it is not safe for concurrent use.
type Builder struct {
	values []any
}

func NewBuilder() *Builder {
	return &Builder{}
}

// Insert inserts values at the given index, shifting later values forward.
// The index is clamped into [0, len].
func (b *Builder) Insert(index int, values ...any) *Builder {
	if index < 0 {
		index = 0
	}
	if index > len(b.values) {
		index = len(b.values)
	}
	b.values = append(b.values[:index], append(append([]any(nil), values...), b.values[index:]...)...)
	return b
}

// Add appends values at the end.
func (b *Builder) Add(values ...any) *Builder {
	b.values = append(b.values, values...)
	return b
}

// InsertHead inserts values at the head.
func (b *Builder) InsertHead(values ...any) *Builder {
	return b.Insert(0, values...)
}

// Build returns a tuple of the accumulated values. The builder remains
// usable; further additions do not affect previously built tuples.
func (b *Builder) Build() *Tuple {
	return FromSlice(b.values)
}
