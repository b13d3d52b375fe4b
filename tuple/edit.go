package tuple

import "fmt"

// Insert returns a new tuple with values inserted before position index.
// The index is clamped into [0, Len()]. With no values it returns the
// receiver unchanged.
func (t *Tuple) Insert(index int, values ...any) *Tuple {
	if len(values) == 0 {
		return t
	}
	if index < 0 {
		index = 0
	}
	if index > len(t.values) {
		index = len(t.values)
	}
	vs := make([]any, 0, len(t.values)+len(values))
	vs = append(vs, t.values[:index]...)
	vs = append(vs, values...)
	vs = append(vs, t.values[index:]...)
	return &Tuple{values: vs}
}

// Append returns a new tuple with values added at the end.
func (t *Tuple) Append(values ...any) *Tuple {
	return t.Insert(len(t.values), values...)
}

// Push returns a new tuple with values inserted at the head.
func (t *Tuple) Push(values ...any) *Tuple {
	return t.Insert(0, values...)
}

// Remove returns a new tuple with the elements at the given positions
// removed. Indexes may be unordered or duplicated; positions outside the
// tuple are ignored. The relative order of kept elements is preserved.
func (t *Tuple) Remove(indexes ...int) *Tuple {
	drop := make(map[int]bool, len(indexes))
	for _, i := range indexes {
		drop[i] = true
	}
	vs := make([]any, 0, len(t.values))
	for i, v := range t.values {
		if !drop[i] {
			vs = append(vs, v)
		}
	}
	if len(vs) == 0 {
		return emptyTuple
	}
	if len(vs) == len(t.values) {
		return t
	}
	return &Tuple{values: vs}
}

// RemoveRange returns a new tuple with the half-open range [from, to)
// excised.
func (t *Tuple) RemoveRange(from, to int) (*Tuple, error) {
	if err := t.checkRange(from, to); err != nil {
		return nil, err
	}
	if from == to {
		return t, nil
	}
	vs := make([]any, 0, len(t.values)-(to-from))
	vs = append(vs, t.values[:from]...)
	vs = append(vs, t.values[to:]...)
	if len(vs) == 0 {
		return emptyTuple, nil
	}
	return &Tuple{values: vs}, nil
}

// Concat returns a new tuple holding the receiver's elements followed by
// o's. When o is empty the receiver is returned unchanged; sharing the
// representation is safe because tuples are immutable.
func (t *Tuple) Concat(o *Tuple) *Tuple {
	if o == nil || o.IsEmpty() {
		return t
	}
	if t.IsEmpty() {
		return o
	}
	vs := make([]any, 0, len(t.values)+len(o.values))
	vs = append(vs, t.values...)
	vs = append(vs, o.values...)
	return &Tuple{values: vs}
}

// Sub returns a new tuple over the half-open range [from, to). An empty
// receiver is returned as is, whatever the range.
func (t *Tuple) Sub(from, to int) (*Tuple, error) {
	if t.IsEmpty() {
		return t, nil
	}
	if err := t.checkRange(from, to); err != nil {
		return nil, err
	}
	if from == to {
		return emptyTuple, nil
	}
	return &Tuple{values: append([]any(nil), t.values[from:to]...)}, nil
}

// Head returns a tuple with all elements of the receiver except the last.
func (t *Tuple) Head() *Tuple {
	if t.IsEmpty() {
		return t
	}
	res, _ := t.Sub(0, len(t.values)-1)
	return res
}

// Tail returns a tuple with all elements of the receiver except the first.
func (t *Tuple) Tail() *Tuple {
	if t.IsEmpty() {
		return t
	}
	res, _ := t.Sub(1, len(t.values))
	return res
}

func (t *Tuple) checkRange(from, to int) error {
	if from < 0 || to > len(t.values) || from > to {
		return fmt.Errorf("%w: range [%d, %d), length %d",
			ErrIndexOutOfRange, from, to, len(t.values))
	}
	return nil
}
