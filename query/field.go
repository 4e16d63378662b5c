package query

import "github.com/paulmach/orb"

// Field accumulates several constraints against a single field without
// repeating its name, then folds back into a Query via Query.Field:
//
//	q := query.New("user").
//	    Field(query.NewField("age").IsGreaterThan(20).IsLessThanOrEqualTo(40)).
//	    Field(query.NewField("friend").IsIn("joe", "bob", "alice"))
//
// It is plain sugar over the Query builder operations with a pinned field
// name; folding it in is a plain union, not a logical grouping.
type Field struct {
	name string
	q    *Query
}

// NewField starts building constraints scoped to the named field.
func NewField(name string) *Field {
	return &Field{name: name, q: New("")}
}

// Name returns the field the builder is scoped to.
func (f *Field) Name() string { return f.name }

// Query returns the accumulated constraints as a query fragment.
func (f *Field) Query() *Query { return f.q }

// IsEqualTo constrains the field to equal value.
func (f *Field) IsEqualTo(value any) *Field {
	f.q.EqualTo(f.name, value)
	return f
}

// IsNotEqualTo constrains the field to differ from value.
func (f *Field) IsNotEqualTo(value any) *Field {
	f.q.NotEqualTo(f.name, value)
	return f
}

// IsLessThan constrains the field to be less than value.
func (f *Field) IsLessThan(value any) *Field {
	f.q.LessThan(f.name, value)
	return f
}

// IsLessThanOrEqualTo constrains the field to be at most value.
func (f *Field) IsLessThanOrEqualTo(value any) *Field {
	f.q.LessThanOrEqualTo(f.name, value)
	return f
}

// IsGreaterThan constrains the field to be greater than value.
func (f *Field) IsGreaterThan(value any) *Field {
	f.q.GreaterThan(f.name, value)
	return f
}

// IsGreaterThanOrEqualTo constrains the field to be at least value.
func (f *Field) IsGreaterThanOrEqualTo(value any) *Field {
	f.q.GreaterThanOrEqualTo(f.name, value)
	return f
}

// IsIn constrains the field to match one of values.
func (f *Field) IsIn(values ...string) *Field {
	f.q.In(f.name, values...)
	return f
}

// IsNull constrains the field to hold no value.
func (f *Field) IsNull() *Field {
	f.q.IsNull(f.name)
	return f
}

// IsNotNull constrains the field to hold a value.
func (f *Field) IsNotNull() *Field {
	f.q.IsNotNull(f.name)
	return f
}

// IsNear constrains the field to geo points sorted by distance from point.
func (f *Field) IsNear(point orb.Point) *Field {
	f.q.Near(f.name, point)
	return f
}

// IsNearWithinMiles constrains the field to geo points at most maxDistanceMi
// miles from point, sorted by distance.
func (f *Field) IsNearWithinMiles(point orb.Point, maxDistanceMi float64) *Field {
	f.q.NearWithinMiles(f.name, point, maxDistanceMi)
	return f
}

// IsNearWithinKilometers constrains the field to geo points at most
// maxDistanceKm kilometers from point, sorted by distance.
func (f *Field) IsNearWithinKilometers(point orb.Point, maxDistanceKm float64) *Field {
	f.q.NearWithinKilometers(f.name, point, maxDistanceKm)
	return f
}

// IsWithinRadiusMiles constrains the field to geo points at most radiusMi
// miles from point.
func (f *Field) IsWithinRadiusMiles(point orb.Point, radiusMi float64) *Field {
	f.q.WithinRadiusMiles(f.name, point, radiusMi)
	return f
}

// IsWithinRadiusKilometers constrains the field to geo points at most
// radiusKm kilometers from point.
func (f *Field) IsWithinRadiusKilometers(point orb.Point, radiusKm float64) *Field {
	f.q.WithinRadiusKilometers(f.name, point, radiusKm)
	return f
}

// IsWithinBox constrains the field to geo points inside the bounding box.
func (f *Field) IsWithinBox(box orb.Bound) *Field {
	f.q.WithinBox(f.name, box)
	return f
}

// IsOrderedBy appends a sort directive for the field.
func (f *Field) IsOrderedBy(ordering Ordering) *Field {
	f.q.OrderBy(f.name, ordering)
	return f
}
