package query

import (
	"fmt"
	"strconv"
	"strings"
)

// Query accumulates filter constraints, ordering and pagination directives
// for a single datastore object, and flattens them into the wire form the
// backend understands: flat key/value query parameters plus two request
// headers. Not thread-safe - callers must serialize access.
type Query struct {
	objectName string
	headers    map[string]string
	clauses    clauseSet
	groups     []*group
	mode       JoinMode
	orCount    int
	andCount   int
}

// New creates a query against the named object schema. The name may be
// empty and assigned later via SetObjectName.
func New(objectName string) *Query {
	return &Query{
		objectName: objectName,
		headers:    make(map[string]string),
		orCount:    1,
		andCount:   1,
	}
}

// ObjectName returns the schema being queried against.
func (q *Query) ObjectName() string { return q.objectName }

// SetObjectName sets the schema being queried against.
func (q *Query) SetObjectName(name string) { q.objectName = name }

// Mode returns the join mode declared for the top level of this query.
func (q *Query) Mode() JoinMode { return q.mode }

// clauseSet is an insertion-ordered key/value set. Re-setting an existing
// key replaces its value in place, so flatten order stays stable for a
// given sequence of builder calls.
type clauseSet struct {
	keys []string
	vals map[string]string
}

func (c *clauseSet) set(key, value string) {
	if c.vals == nil {
		c.vals = make(map[string]string)
	}
	if _, ok := c.vals[key]; !ok {
		c.keys = append(c.keys, key)
	}
	c.vals[key] = value
}

func (c *clauseSet) clone() clauseSet {
	var cp clauseSet
	for _, k := range c.keys {
		cp.set(k, c.vals[k])
	}
	return cp
}

// group is one folded-in sub-query: its clauses are joined under mode and
// wrapped in the ordinal prefix segment when flattened. The clauses are a
// snapshot taken at fold time; later mutation of the source query does not
// reach into the group.
type group struct {
	mode    JoinMode
	ordinal int
	clauses clauseSet
	groups  []*group
}

func (g *group) prefix() string {
	format := andPrefixFormat
	if g.mode == JoinOr {
		format = orPrefixFormat
	}
	return fmt.Sprintf(format, g.ordinal)
}

func (g *group) clone() *group {
	cp := &group{mode: g.mode, ordinal: g.ordinal, clauses: g.clauses.clone()}
	for _, sub := range g.groups {
		cp.groups = append(cp.groups, sub.clone())
	}
	return cp
}

// absorb unions other into g. Sub-groups that collide on (mode, ordinal)
// union recursively; in the flat key space they occupy the same prefix, so
// keeping them separate would emit duplicate keys.
func (g *group) absorb(other *group) {
	for _, k := range other.clauses.keys {
		g.clauses.set(k, other.clauses.vals[k])
	}
	for _, sub := range other.groups {
		g.groups = absorbGroup(g.groups, sub)
	}
}

func absorbGroup(groups []*group, g *group) []*group {
	for _, have := range groups {
		if have.mode == g.mode && have.ordinal == g.ordinal {
			have.absorb(g)
			return groups
		}
	}
	return append(groups, g)
}

// snapshot deep-copies the query's own clause tree (without the top-level
// OR wrap) into a new group node.
func (q *Query) snapshot(mode JoinMode, ordinal int) *group {
	g := &group{mode: mode, ordinal: ordinal, clauses: q.clauses.clone()}
	for _, sub := range q.groups {
		g.groups = append(g.groups, sub.clone())
	}
	return g
}

// formatValue renders an operand as its wire string. Strings pass through
// verbatim; everything else gets its natural decimal rendering. Values are
// never validated - domain legality is the backend's concern.
func formatValue(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

func (q *Query) put(field string, op operator, value string) *Query {
	q.clauses.set(field+op.tag(), value)
	return q
}

// EqualTo constrains field to equal value. A nil value routes to IsNull and
// an empty string routes to an explicit "field is empty" constraint, since
// the backend cannot tell an empty-string equality from "no value".
func (q *Query) EqualTo(field string, value any) *Query {
	if value == nil {
		return q.IsNull(field)
	}
	if s, ok := value.(string); ok && s == "" {
		return q.put(field, opEmpty, "true")
	}
	q.clauses.set(field, formatValue(value))
	return q
}

// NotEqualTo constrains field to differ from value. A nil value routes to
// IsNotNull and an empty string to "field is empty = false", mirroring
// EqualTo's special cases.
func (q *Query) NotEqualTo(field string, value any) *Query {
	if value == nil {
		return q.IsNotNull(field)
	}
	if s, ok := value.(string); ok && s == "" {
		return q.put(field, opEmpty, "false")
	}
	return q.put(field, opNotEqual, formatValue(value))
}

// LessThan constrains field to be less than value (string or integer).
func (q *Query) LessThan(field string, value any) *Query {
	return q.put(field, opLessThan, formatValue(value))
}

// LessThanOrEqualTo constrains field to be at most value.
func (q *Query) LessThanOrEqualTo(field string, value any) *Query {
	return q.put(field, opLessThanOrEqual, formatValue(value))
}

// GreaterThan constrains field to be greater than value.
func (q *Query) GreaterThan(field string, value any) *Query {
	return q.put(field, opGreaterThan, formatValue(value))
}

// GreaterThanOrEqualTo constrains field to be at least value.
func (q *Query) GreaterThanOrEqualTo(field string, value any) *Query {
	return q.put(field, opGreaterThanOrEqual, formatValue(value))
}

// In constrains field to match one of values. Values are joined with a
// single comma; embedded commas are not escaped (known wire limitation).
func (q *Query) In(field string, values ...string) *Query {
	return q.put(field, opIn, strings.Join(values, ","))
}

// IsNull constrains field to hold no value.
func (q *Query) IsNull(field string) *Query {
	return q.put(field, opNull, "true")
}

// IsNotNull constrains field to hold a value. Shares a key with IsNull, so
// the last of the two calls wins.
func (q *Query) IsNotNull(field string) *Query {
	return q.put(field, opNull, "false")
}

// OrderBy appends a sort directive for field. Repeated calls accumulate in
// call order, which is the backend's tie-break priority.
func (q *Query) OrderBy(field string, ordering Ordering) *Query {
	buf := q.headers[OrderByHeader]
	if buf != "" {
		buf += ","
	}
	q.headers[OrderByHeader] = buf + field + ":" + string(ordering)
	return q
}

// InRange restricts results to objects start through end, both inclusive.
func (q *Query) InRange(start, end int) *Query {
	q.headers[RangeHeader] = fmt.Sprintf("objects=%d-%d", start, end)
	return q
}

// InRangeFrom restricts results to all objects from start (inclusive) on.
func (q *Query) InRangeFrom(start int) *Query {
	q.headers[RangeHeader] = fmt.Sprintf("objects=%d-", start)
	return q
}

// And declares the top-level constraints of this query to be joined by AND.
// This is the backend's default join, so the call only reads naturally; it
// returns a *JoinStateError if the query is already marked OR.
func (q *Query) And() error {
	if q.mode == JoinOr {
		return &JoinStateError{Declared: JoinOr, Requested: JoinAnd}
	}
	q.mode = JoinAnd
	return nil
}

// Or declares the top-level constraints of this query to be joined by OR.
// Returns a *JoinStateError if the query is already marked AND.
func (q *Query) Or() error {
	if q.mode == JoinAnd {
		return &JoinStateError{Declared: JoinAnd, Requested: JoinOr}
	}
	q.mode = JoinOr
	return nil
}

// AndAnyOf folds sub in as a parenthesized OR group joined to this query by
// AND, giving A && (B || C || ...). The sub-query's own constraints are
// snapshotted under the next [or{N}]. prefix; sub is read, never mutated.
// Returns a *JoinStateError if the query is already marked OR.
func (q *Query) AndAnyOf(sub *Query) error {
	if q.mode == JoinOr {
		return &JoinStateError{Declared: JoinOr, Requested: JoinAnd}
	}
	q.mode = JoinAnd
	q.groups = absorbGroup(q.groups, sub.snapshot(JoinOr, q.orCount))
	q.orCount++
	return nil
}

// OrAllOf folds sub in as a parenthesized AND group joined to this query by
// OR, giving A || (B && C && ...). The sub-query's own constraints are
// snapshotted under the next [and{N}]. prefix; sub is read, never mutated.
// Returns a *JoinStateError if the query is already marked AND.
func (q *Query) OrAllOf(sub *Query) error {
	if q.mode == JoinAnd {
		return &JoinStateError{Declared: JoinAnd, Requested: JoinOr}
	}
	q.mode = JoinOr
	q.groups = absorbGroup(q.groups, sub.snapshot(JoinAnd, q.andCount))
	q.andCount++
	return nil
}

// Merge unions other's directives and top-level constraints into this query
// with no prefixing and no join-mode check. This is how a field-scoped
// sub-builder's output folds back into its parent; it is not a logical
// grouping operation. Values from other win on key collisions.
func (q *Query) Merge(other *Query) *Query {
	for k, v := range other.headers {
		q.headers[k] = v
	}
	for _, k := range other.clauses.keys {
		q.clauses.set(k, other.clauses.vals[k])
	}
	for _, g := range other.groups {
		q.groups = absorbGroup(q.groups, g.clone())
	}
	return q
}

// Field merges the constraints accumulated on a field-scoped builder.
func (q *Query) Field(f *Field) *Query {
	return q.Merge(f.Query())
}

// Params flattens the constraints into ordered wire key/value pairs. If the
// query's top level is marked OR, every key gets one extra [or{N}]. prefix
// to signal the non-default join; the unprefixed key space always reads as
// AND. Order follows builder-call order and is stable.
func (q *Query) Params() []Param {
	prefix := ""
	if q.mode == JoinOr {
		prefix = fmt.Sprintf(orPrefixFormat, q.orCount)
	}
	var out []Param
	for _, k := range q.clauses.keys {
		out = append(out, Param{Key: prefix + k, Value: q.clauses.vals[k]})
	}
	for _, g := range q.groups {
		out = g.emit(prefix, out)
	}
	return out
}

func (g *group) emit(prefix string, out []Param) []Param {
	p := prefix + g.prefix()
	for _, k := range g.clauses.keys {
		out = append(out, Param{Key: p + k, Value: g.clauses.vals[k]})
	}
	for _, sub := range g.groups {
		out = sub.emit(p, out)
	}
	return out
}

// Headers returns a copy of the accumulated directive headers.
func (q *Query) Headers() map[string]string {
	out := make(map[string]string, len(q.headers))
	for k, v := range q.headers {
		out[k] = v
	}
	return out
}
