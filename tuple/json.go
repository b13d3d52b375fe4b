package tuple

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/signadot/tuple-format/go-tuple/debug"
	"github.com/signadot/tuple-format/go-tuple/typereg"
)

func init() {
	typereg.MustRegister[*Tuple]("tuple")
}

type jsonElem struct {
	Type  string          `json:"type"`
	Value json.RawMessage `json:"value,omitempty"`
}

const nullTypeName = "null"

// MarshalJSON encodes the tuple as an array of type-tagged elements. Every
// element's dynamic type must be registered in typereg.Default.
func (t *Tuple) MarshalJSON() ([]byte, error) {
	elems := make([]jsonElem, len(t.values))
	for i, v := range t.values {
		if v == nil {
			elems[i] = jsonElem{Type: nullTypeName}
			continue
		}
		name, err := typereg.Default.NameFor(reflect.TypeOf(v))
		if err != nil {
			return nil, fmt.Errorf("tuple: cannot encode element %d: %w", i, err)
		}
		raw, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("tuple: cannot encode element %d: %w", i, err)
		}
		elems[i] = jsonElem{Type: name, Value: raw}
	}
	return json.Marshal(elems)
}

// UnmarshalJSON decodes an array of type-tagged elements. Element types are
// resolved through typereg.Default.
func (t *Tuple) UnmarshalJSON(d []byte) error {
	var elems []jsonElem
	if err := json.Unmarshal(d, &elems); err != nil {
		return err
	}
	if debug.Codec() {
		debug.Logf("tuple decode: %d elements\n", len(elems))
	}
	if len(elems) == 0 {
		t.values = nil
		return nil
	}
	vs := make([]any, len(elems))
	for i, e := range elems {
		if e.Type == nullTypeName {
			vs[i] = nil
			continue
		}
		rt, err := typereg.Default.TypeFor(e.Type)
		if err != nil {
			return fmt.Errorf("tuple: cannot decode element %d: %w", i, err)
		}
		p := reflect.New(rt)
		if err := json.Unmarshal(e.Value, p.Interface()); err != nil {
			return fmt.Errorf("tuple: cannot decode element %d: %w", i, err)
		}
		vs[i] = p.Elem().Interface()
	}
	t.values = vs
	return nil
}
