package schema

import (
	"errors"
	"reflect"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/tuple-format/go-tuple/tuple"
)

func personSchema(t *testing.T) *Schema {
	t.Helper()
	b := NewBuilder()
	for _, add := range []error{
		AddAttributeOf[string](b, "NAME"),
		AddAttributeOf[string](b, "SURNAME"),
		AddAttributeOf[int](b, "AGE"),
	} {
		if add != nil {
			t.Fatal(add)
		}
	}
	return b.Build()
}

func TestBuilder(t *testing.T) {
	b := NewBuilder()
	if err := AddAttributeOf[string](b, "NAME"); err != nil {
		t.Fatal(err)
	}
	if err := b.AddAttribute("EXTRA", nil); err != nil {
		t.Fatal(err)
	}
	if !b.Has("NAME") || b.Has("AGE") {
		t.Errorf("Has misreports membership")
	}
	if diff := cmp.Diff([]string{"NAME", "EXTRA"}, b.Attributes()); diff != "" {
		t.Errorf("Attributes mismatch:\n%s", diff)
	}

	err := AddAttributeOf[int](b, "NAME")
	if !errors.Is(err, ErrDuplicateAttribute) {
		t.Errorf("duplicate err = %v, want ErrDuplicateAttribute", err)
	}
}

func TestBuilderSnapshots(t *testing.T) {
	b := NewBuilder()
	if err := AddAttributeOf[string](b, "A"); err != nil {
		t.Fatal(err)
	}
	first := b.Build()
	if err := AddAttributeOf[string](b, "B"); err != nil {
		t.Fatal(err)
	}
	second := b.Build()

	if first.Len() != 1 {
		t.Errorf("first snapshot grew: %v", first.Attributes())
	}
	if second.Len() != 2 || !second.HasAttribute("B") {
		t.Errorf("second snapshot = %v", second.Attributes())
	}
}

func TestBuilderConcurrent(t *testing.T) {
	b := NewBuilder()
	var wg sync.WaitGroup
	names := []string{"A", "B", "C", "D", "E", "F", "G", "H"}
	for _, name := range names {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := AddAttributeOf[int](b, name); err != nil {
				t.Errorf("AddAttribute(%s): %v", name, err)
			}
		}()
	}
	wg.Wait()
	s := b.Build()
	if s.Len() != len(names) {
		t.Fatalf("Len = %d, want %d", s.Len(), len(names))
	}
	for _, name := range names {
		i, err := s.Index(name)
		if err != nil {
			t.Fatal(err)
		}
		got, err := s.Attribute(i)
		if err != nil || got != name {
			t.Errorf("Attribute(Index(%s)) = %q, %v", name, got, err)
		}
	}
}

func TestSchemaLookups(t *testing.T) {
	s := personSchema(t)
	if diff := cmp.Diff([]string{"NAME", "SURNAME", "AGE"}, s.Attributes()); diff != "" {
		t.Errorf("Attributes mismatch:\n%s", diff)
	}
	i, err := s.Index("AGE")
	if err != nil || i != 2 {
		t.Errorf("Index(AGE) = %d, %v", i, err)
	}
	typ, err := s.TypeOf("AGE")
	if err != nil || typ != reflect.TypeFor[int]() {
		t.Errorf("TypeOf(AGE) = %v, %v", typ, err)
	}

	if _, err := s.Index("MIDDLE"); !errors.Is(err, ErrAttributeNotFound) {
		t.Errorf("Index err = %v", err)
	}
	if _, err := s.Attribute(7); !errors.Is(err, ErrAttributeIndexNotFound) {
		t.Errorf("Attribute err = %v", err)
	}
	if _, err := s.Type(-1); !errors.Is(err, ErrAttributeIndexNotFound) {
		t.Errorf("Type err = %v", err)
	}
}

func TestCheck(t *testing.T) {
	s := personSchema(t)
	if err := s.CheckValues("Bilbo", "Baggins", 111); err != nil {
		t.Fatalf("valid values: %v", err)
	}
	if err := s.CheckTuple(tuple.Of("Bilbo", "Baggins", 111)); err != nil {
		t.Fatalf("valid tuple: %v", err)
	}

	var ve *ViolationError
	err := s.CheckValues("Bilbo", "Baggins", "111")
	if !errors.As(err, &ve) {
		t.Fatalf("wrong type err = %v, want *ViolationError", err)
	}
	if ve.Attribute != "AGE" || ve.Index != 2 {
		t.Errorf("ViolationError = %+v", ve)
	}

	if err := s.CheckValues("Bilbo", "Baggins"); !errors.As(err, &ve) {
		t.Errorf("arity err = %v, want *ViolationError", err)
	}
}

// exact type identity, not assignability: an int64 does not conform to a
// declared int, and a nil value conforms to nothing declared.
func TestCheckExactness(t *testing.T) {
	s := personSchema(t)
	if err := s.CheckValues("Bilbo", "Baggins", int64(111)); err == nil {
		t.Errorf("int64 passed a declared int check")
	}
	err := s.CheckValues("Bilbo", nil, 111)
	if err == nil {
		t.Fatalf("nil passed a declared string check")
	}
	var verr *ViolationError
	if !errors.As(err, &verr) {
		t.Fatalf("err = %T, want *ViolationError", err)
	}
	if !strings.Contains(verr.Error(), "got nil") {
		t.Errorf("Error() = %q, want a \"got nil\" actual", verr.Error())
	}
}

func TestCheckUnconstrained(t *testing.T) {
	b := NewBuilder()
	if err := b.AddAttribute("ANY", nil); err != nil {
		t.Fatal(err)
	}
	s := b.Build()
	for _, v := range []any{1, "x", 2.5, nil, tuple.Of(1)} {
		if err := s.CheckValues(v); err != nil {
			t.Errorf("unconstrained attribute rejected %v: %v", v, err)
		}
	}
}

func TestCheckByAttribute(t *testing.T) {
	s := personSchema(t)
	if err := s.CheckAttribute("AGE", reflect.TypeFor[int]()); err != nil {
		t.Errorf("CheckAttribute = %v", err)
	}
	if err := s.CheckAttribute("AGE", reflect.TypeFor[string]()); err == nil {
		t.Errorf("CheckAttribute accepted a wrong type")
	}
	if err := s.CheckAttribute("MIDDLE", reflect.TypeFor[string]()); !errors.Is(err, ErrAttributeNotFound) {
		t.Errorf("CheckAttribute err = %v", err)
	}
}

func TestSchemaString(t *testing.T) {
	s := personSchema(t)
	want := "TupleSchema: {\n\t0: NAME [string]\n\t1: SURNAME [string]\n\t2: AGE [int]\n}"
	if got := s.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
