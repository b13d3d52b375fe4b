package eval

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/tuple-format/go-tuple/schema"
)

func personSchema(t *testing.T) *schema.Schema {
	t.Helper()
	b := schema.NewBuilder()
	for _, err := range []error{
		schema.AddAttributeOf[string](b, "NAME"),
		schema.AddAttributeOf[string](b, "SURNAME"),
		schema.AddAttributeOf[int](b, "AGE"),
	} {
		if err != nil {
			t.Fatal(err)
		}
	}
	return b.Build()
}

func bind(t *testing.T, s *schema.Schema, vs ...any) *schema.Bound {
	t.Helper()
	b, err := schema.Bind(s, vs...)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func TestEnv(t *testing.T) {
	s := personSchema(t)
	b := bind(t, s, "Bilbo", "Baggins", 111)
	want := map[string]any{"NAME": "Bilbo", "SURNAME": "Baggins", "AGE": 111}
	if diff := cmp.Diff(want, Env(b)); diff != "" {
		t.Errorf("Env mismatch:\n%s", diff)
	}
}

func TestMatch(t *testing.T) {
	s := personSchema(t)
	bilbo := bind(t, s, "Bilbo", "Baggins", 111)

	tests := []struct {
		name string
		expr string
		want bool
	}{
		{"age compare", "AGE > 100", true},
		{"age compare false", "AGE < 100", false},
		{"string equality", `SURNAME == "Baggins"`, true},
		{"conjunction", `AGE > 100 && NAME == "Bilbo"`, true},
		{"attr function", `attr("NAME") == "Bilbo"`, true},
		{"tuplestr function", `tuplestr() == "(Bilbo, Baggins, 111)"`, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Match(bilbo, tt.expr)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("Match(%q) = %v, want %v", tt.expr, got, tt.want)
			}
		})
	}
}

func TestMatchErrors(t *testing.T) {
	s := personSchema(t)
	b := bind(t, s, "Bilbo", "Baggins", 111)
	if _, err := Match(b, "AGE >"); err == nil {
		t.Errorf("malformed expression compiled")
	}
	if _, err := Match(b, `attr("MIDDLE")`); err == nil {
		t.Errorf("unknown attribute evaluated")
	}
}

func TestEval(t *testing.T) {
	s := personSchema(t)
	b := bind(t, s, "Bilbo", "Baggins", 111)
	v, err := Eval(b, "AGE + 1")
	if err != nil {
		t.Fatal(err)
	}
	if n, ok := v.(int); !ok || n != 112 {
		t.Errorf("Eval = %v (%T), want 112", v, v)
	}
}

func TestSelect(t *testing.T) {
	s := personSchema(t)
	bs := []*schema.Bound{
		bind(t, s, "Bilbo", "Baggins", 111),
		bind(t, s, "Frodo", "Baggins", 33),
		bind(t, s, "Samwise", "Gamgee", 38),
	}
	got, err := Select(bs, `SURNAME == "Baggins"`)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0] != bs[0] || got[1] != bs[1] {
		t.Errorf("Select = %v", got)
	}

	if _, err := Select(bs, "AGE >"); err == nil {
		t.Errorf("Select with bad expression did not fail")
	}
}
