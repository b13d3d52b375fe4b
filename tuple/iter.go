package tuple

import "iter"

// All returns an index/value iterator over the tuple's elements in order.
// Each call yields a fresh iteration; there is no mutation surface.
func (t *Tuple) All() iter.Seq2[int, any] {
	return func(yield func(int, any) bool) {
		for i, v := range t.values {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Values returns a value iterator over the tuple's elements in order.
func (t *Tuple) Values() iter.Seq[any] {
	return func(yield func(any) bool) {
		for _, v := range t.values {
			if !yield(v) {
				return
			}
		}
	}
}
