package schema

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/signadot/tuple-format/go-tuple/tuple"
	"github.com/signadot/tuple-format/go-tuple/typereg"
)

type jsonAttr struct {
	Name string `json:"name"`
	Type string `json:"type,omitempty"`
}

// MarshalJSON encodes the schema as an ordered attribute list. Every
// declared type must be registered in typereg.Default; unconstrained
// attributes carry no type name.
func (s *Schema) MarshalJSON() ([]byte, error) {
	attrs := make([]jsonAttr, len(s.attrs))
	for i, name := range s.attrs {
		attrs[i].Name = name
		if s.types[i] == nil {
			continue
		}
		tn, err := typereg.Default.NameFor(s.types[i])
		if err != nil {
			return nil, fmt.Errorf("schema: cannot encode attribute %q: %w", name, err)
		}
		attrs[i].Type = tn
	}
	return json.Marshal(struct {
		Attributes []jsonAttr `json:"attributes"`
	}{Attributes: attrs})
}

// UnmarshalJSON decodes an attribute list, resolving type names through
// typereg.Default.
func (s *Schema) UnmarshalJSON(d []byte) error {
	var tmp struct {
		Attributes []jsonAttr `json:"attributes"`
	}
	if err := json.Unmarshal(d, &tmp); err != nil {
		return err
	}
	b := NewBuilder()
	for _, a := range tmp.Attributes {
		var rt reflect.Type
		if a.Type != "" {
			var err error
			rt, err = typereg.Default.TypeFor(a.Type)
			if err != nil {
				return fmt.Errorf("schema: cannot decode attribute %q: %w", a.Name, err)
			}
		}
		if err := b.AddAttribute(a.Name, rt); err != nil {
			return err
		}
	}
	*s = *b.Build()
	return nil
}

type jsonBound struct {
	Schema *Schema      `json:"schema"`
	Tuple  *tuple.Tuple `json:"tuple"`
}

// MarshalJSON encodes the bound tuple as its schema and its values.
func (b *Bound) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonBound{Schema: b.schema, Tuple: b.tuple})
}

// UnmarshalJSON decodes a schema and values, then re-binds so the
// construction-time type check is re-established.
func (b *Bound) UnmarshalJSON(d []byte) error {
	var tmp jsonBound
	if err := json.Unmarshal(d, &tmp); err != nil {
		return err
	}
	if tmp.Schema == nil || tmp.Tuple == nil {
		return fmt.Errorf("schema: bound tuple requires schema and tuple")
	}
	bound, err := BindTuple(tmp.Schema, tmp.Tuple)
	if err != nil {
		return err
	}
	*b = *bound
	return nil
}
