package tuple

import (
	"cmp"
	"strings"
)

// CompareTo returns an integer comparing the tuple with o.
// The result will be 0 if t==o order-wise, negative if t < o, and positive
// if t > o.
//
// The comparison is lexicographic over element string forms:
//   - a nil comparand sorts before any tuple
//   - between two tuples, the empty one sorts first; otherwise the shared
//     prefix is compared element by element on string forms and the first
//     difference decides; equal prefixes tie-break on length
//   - against a non-tuple, an empty tuple sorts first; otherwise the
//     concatenation of the tuple's element string forms is compared with
//     o's string form
//
// The ordering is total but only consistent with Equal when element string
// forms uniquely determine equality.
func (t *Tuple) CompareTo(o any) int {
	if o == nil {
		return 1
	}
	if b, ok := o.(*Tuple); ok {
		if b == nil {
			return 1
		}
		if b.Len() == 0 && t.Len() != 0 {
			return 1
		}
		if t.Len() == 0 && b.Len() != 0 {
			return -1
		}
		n := min(t.Len(), b.Len())
		for i := 0; i < n; i++ {
			c := strings.Compare(stringify(t.values[i]), stringify(b.values[i]))
			if c != 0 {
				return c
			}
		}
		return cmp.Compare(t.Len(), b.Len())
	}
	if t.Len() == 0 {
		return -1
	}
	var sb strings.Builder
	for _, v := range t.values {
		sb.WriteString(stringify(v))
	}
	return strings.Compare(sb.String(), stringify(o))
}
