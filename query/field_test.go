package query

import (
	"testing"

	"github.com/paulmach/orb"
)

func TestFieldBuilderMatchesDirectCalls(t *testing.T) {
	viaField := New("user").
		Field(NewField("age").IsGreaterThan(20).IsLessThanOrEqualTo(40)).
		Field(NewField("friend").IsIn("joe", "bob", "alice"))

	direct := New("user").
		GreaterThan("age", 20).
		LessThanOrEqualTo("age", 40).
		In("friend", "joe", "bob", "alice")

	got := viaField.Params()
	want := direct.Params()
	if len(got) != len(want) {
		t.Fatalf("expected %d params, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("param %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestFieldEqualitySpecialCases(t *testing.T) {
	q := New("user").Field(NewField("name").IsEqualTo(nil))
	expectSingleParam(t, q, "name[null]", "true")

	q = New("user").Field(NewField("name").IsEqualTo(""))
	expectSingleParam(t, q, "name[empty]", "true")

	q = New("user").Field(NewField("name").IsNotEqualTo(nil))
	expectSingleParam(t, q, "name[null]", "false")
}

func TestFieldNullChecks(t *testing.T) {
	q := New("user").Field(NewField("name").IsNull())
	expectSingleParam(t, q, "name[null]", "true")

	q = New("user").Field(NewField("name").IsNotNull())
	expectSingleParam(t, q, "name[null]", "false")
}

func TestFieldGeo(t *testing.T) {
	q := New("places").Field(NewField("location").IsNearWithinMiles(orb.Point{10, 20}, 5))
	expectSingleParam(t, q, "location[near]", "10,20,0.0012637112672496589")

	box := orb.Bound{Min: orb.Point{-5, -10}, Max: orb.Point{5, 10}}
	q = New("places").Field(NewField("location").IsWithinBox(box))
	expectSingleParam(t, q, "location[within]", "-5,-10,5,10")
}

func TestFieldOrdering(t *testing.T) {
	q := New("user").
		Field(NewField("age").IsGreaterThan(20).IsOrderedBy(Descending))

	if got := q.Headers()[OrderByHeader]; got != "age:desc" {
		t.Errorf("expected order-by header %q, got %q", "age:desc", got)
	}
	expectSingleParam(t, q, "age[gt]", "20")
}

func TestFieldName(t *testing.T) {
	f := NewField("age")
	if f.Name() != "age" {
		t.Errorf("expected field name age, got %q", f.Name())
	}
}
