package depot

import "github.com/depot-labs/depot-go/query"

// Query builds filter, ordering, and pagination expressions.
// This is re-exported from the query package for convenience.
type Query = query.Query

// Param is one flattened constraint key/value pair.
// This is re-exported from the query package for convenience.
type Param = query.Param

// NewQuery creates a query against the named object schema.
//
// Example:
//
//	q := depot.NewQuery("user").EqualTo("name", "joe")
func NewQuery(objectName string) *Query {
	return query.New(objectName)
}

// NewField starts a field-scoped constraint builder, folded back into a
// query with Query.Field.
//
// Example:
//
//	q := depot.NewQuery("user").
//	    Field(depot.NewField("age").IsGreaterThan(20).IsLessThanOrEqualTo(40))
func NewField(name string) *query.Field {
	return query.NewField(name)
}
