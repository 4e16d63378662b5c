package query

import "fmt"

// operator identifies a constraint operator. The wire form is the field name
// suffixed with the bracketed tag, e.g. "age[lt]". Plain equality carries no
// tag at all; the backend reads an unmarked key as equality.
type operator string

const (
	opLessThan           operator = "lt"
	opGreaterThan        operator = "gt"
	opLessThanOrEqual    operator = "lte"
	opGreaterThanOrEqual operator = "gte"
	opIn                 operator = "in"
	opNear               operator = "near"
	opWithin             operator = "within"
	opNotEqual           operator = "ne"
	opNull               operator = "null"
	opEmpty              operator = "empty"
)

// tag returns the bracketed key suffix for the operator.
func (o operator) tag() string {
	return "[" + string(o) + "]"
}

// Ordering represents ascending or descending sort order.
type Ordering string

const (
	Ascending  Ordering = "asc"
	Descending Ordering = "desc"
)

// JoinMode is the logical join declared for one level of a query.
// The zero value means no join has been declared yet, and either may
// still be chosen.
type JoinMode string

const (
	JoinUnset JoinMode = ""
	JoinAnd   JoinMode = "AND"
	JoinOr    JoinMode = "OR"
)

// Directive names carried as request headers rather than query parameters.
const (
	RangeHeader   = "Range"
	OrderByHeader = "X-OrderBy"
)

// Ordinal group prefix formats. Each fold-in wraps the absorbed constraints
// in one of these segments so sibling groups at the same level stay distinct
// and the backend can rebuild the boolean tree from key prefixes alone.
const (
	orPrefixFormat  = "[or%d]."
	andPrefixFormat = "[and%d]."
)

// Param is one flattened constraint: a wire key and its string value.
type Param struct {
	Key   string
	Value string
}

// JoinStateError indicates an attempt to mix AND and OR at the same level
// of a query. Start a sub-query and fold it in with AndAnyOf or OrAllOf
// instead, which adds a parenthesized level.
type JoinStateError struct {
	// Declared is the join mode the query already holds.
	Declared JoinMode
	// Requested is the conflicting mode the failed call implied.
	Requested JoinMode
}

func (e *JoinStateError) Error() string {
	return fmt.Sprintf("mixing AND and OR at the same query level is not allowed (query is %s, requested %s)", e.Declared, e.Requested)
}
