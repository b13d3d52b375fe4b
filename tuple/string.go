package tuple

import (
	"fmt"
	"strings"
)

// String renders the tuple as "(e0, e1, ...)"; the empty tuple renders "()".
func (t *Tuple) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, v := range t.values {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(stringify(v))
	}
	sb.WriteByte(')')
	return sb.String()
}

func stringify(v any) string {
	return fmt.Sprint(v)
}
