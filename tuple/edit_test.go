package tuple

import (
	"errors"
	"testing"
)

func TestInsert(t *testing.T) {
	base := Of("a", "b", "c")
	tests := []struct {
		name  string
		index int
		vals  []any
		want  *Tuple
	}{
		{"middle", 1, []any{"x", "y"}, Of("a", "x", "y", "b", "c")},
		{"head", 0, []any{"x"}, Of("x", "a", "b", "c")},
		{"end", 3, []any{"x"}, Of("a", "b", "c", "x")},
		{"clamped low", -5, []any{"x"}, Of("x", "a", "b", "c")},
		{"clamped high", 100, []any{"x"}, Of("a", "b", "c", "x")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := base.Insert(tt.index, tt.vals...)
			if !got.Equal(tt.want) {
				t.Errorf("Insert = %v, want %v", got, tt.want)
			}
			if !base.Equal(Of("a", "b", "c")) {
				t.Errorf("receiver mutated: %v", base)
			}
		})
	}

	if got := base.Insert(1); got != base {
		t.Errorf("no-value Insert did not return the receiver")
	}
}

func TestAppendPush(t *testing.T) {
	base := Of(1, 2)
	if got := base.Append(3, 4); !got.Equal(Of(1, 2, 3, 4)) {
		t.Errorf("Append = %v", got)
	}
	if got := base.Push(0); !got.Equal(Of(0, 1, 2)) {
		t.Errorf("Push = %v", got)
	}
}

func TestRemove(t *testing.T) {
	base := Of("a", "b", "c", "d")
	tests := []struct {
		name    string
		indexes []int
		want    *Tuple
	}{
		{"single", []int{1}, Of("a", "c", "d")},
		{"unordered", []int{3, 0}, Of("b", "c")},
		{"duplicated", []int{1, 1, 1}, Of("a", "c", "d")},
		{"out of range ignored", []int{7, -1, 2}, Of("a", "b", "d")},
		{"none", nil, base},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := base.Remove(tt.indexes...)
			if !got.Equal(tt.want) {
				t.Errorf("Remove = %v, want %v", got, tt.want)
			}
		})
	}

	if got := Of("a").Remove(0); got != Empty() {
		t.Errorf("removing everything did not return the canonical empty tuple")
	}
}

func TestRemoveRange(t *testing.T) {
	base := Of(0, 1, 2, 3, 4)
	got, err := base.RemoveRange(1, 3)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(Of(0, 3, 4)) {
		t.Errorf("RemoveRange = %v", got)
	}

	if _, err := base.RemoveRange(3, 1); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("inverted range err = %v", err)
	}
	if _, err := base.RemoveRange(0, 6); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("overlong range err = %v", err)
	}
}

// removing a range and re-inserting the removed slice at the same position
// reconstructs the original tuple.
func TestRemoveInsertReconstruction(t *testing.T) {
	base := Of("a", "b", "c", "d", "e")
	for from := 0; from <= base.Len(); from++ {
		for to := from; to <= base.Len(); to++ {
			removed, err := base.Sub(from, to)
			if err != nil {
				t.Fatalf("Sub(%d, %d): %v", from, to, err)
			}
			rest, err := base.RemoveRange(from, to)
			if err != nil {
				t.Fatalf("RemoveRange(%d, %d): %v", from, to, err)
			}
			back := rest.Insert(from, removed.ToSlice()...)
			if !back.Equal(base) {
				t.Errorf("[%d, %d): reconstructed %v, want %v", from, to, back, base)
			}
		}
	}
}

func TestConcat(t *testing.T) {
	a := Of(1, 2)
	b := Of(3)
	if got := a.Concat(b); !got.Equal(Of(1, 2, 3)) {
		t.Errorf("Concat = %v", got)
	}
	// identity element: representation is shared, not copied
	if got := a.Concat(Empty()); got != a {
		t.Errorf("Concat(Empty()) did not return the receiver")
	}
	// associativity
	c := Of("x", "y")
	left := a.Concat(b).Concat(c)
	right := a.Concat(b.Concat(c))
	if !left.Equal(right) {
		t.Errorf("concat not associative: %v vs %v", left, right)
	}
}

func TestSub(t *testing.T) {
	base := Of(0, 1, 2, 3)
	got, err := base.Sub(1, 3)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(Of(1, 2)) {
		t.Errorf("Sub = %v", got)
	}

	if _, err := base.Sub(2, 5); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("Sub out of range err = %v", err)
	}

	// an empty tuple ignores the range and returns itself
	e := Empty()
	got, err = e.Sub(5, 9)
	if err != nil || got != e {
		t.Errorf("empty Sub = %v, %v", got, err)
	}
}

func TestHeadTail(t *testing.T) {
	base := Of("a", "b", "c")
	if got := base.Head(); !got.Equal(Of("a", "b")) {
		t.Errorf("Head = %v", got)
	}
	if got := base.Tail(); !got.Equal(Of("b", "c")) {
		t.Errorf("Tail = %v", got)
	}
	if got := Empty().Head(); got != Empty() {
		t.Errorf("Head on empty = %v", got)
	}
	if got := Empty().Tail(); got != Empty() {
		t.Errorf("Tail on empty = %v", got)
	}

	// head plus the removed last element reconstructs the original
	last, err := base.Last()
	if err != nil {
		t.Fatal(err)
	}
	if got := base.Head().Append(last); !got.Equal(base) {
		t.Errorf("Head+Append = %v, want %v", got, base)
	}
	// symmetric for tail and the first element
	first, err := base.First()
	if err != nil {
		t.Fatal(err)
	}
	if got := base.Tail().Push(first); !got.Equal(base) {
		t.Errorf("Tail+Push = %v, want %v", got, base)
	}
}
