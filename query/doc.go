// Package query builds and encodes filter, ordering, and pagination
// expressions for the Depot REST datastore.
//
// The backend only understands flat, prefix-namespaced query arguments, so
// this package does the one genuinely structural job in the SDK: it lets
// callers compose a possibly nested boolean filter over named fields and
// flattens it into plain key/value parameters and headers the transport
// layer can send as-is.
//
// # Basic Usage
//
// Build constraints fluently and flatten on demand:
//
//	q := query.New("user").
//	    GreaterThan("age", 20).
//	    LessThanOrEqualTo("age", 40).
//	    In("friend", "joe", "bob", "alice")
//
//	params := q.Params()   // age[gt]=20, age[lte]=40, friend[in]=joe,bob,alice
//	headers := q.Headers() // ordering and pagination directives
//
// # Operators
//
// Constraint keys are the field name plus a bracketed operator tag; plain
// equality carries no tag. Supported tags: [lt], [gt], [lte], [gte], [in],
// [near], [within], [ne], [null], [empty].
//
// EqualTo and NotEqualTo special-case two operands: nil routes to the null
// check, and the empty string routes to the [empty] operator, because the
// wire format cannot distinguish an empty-string equality from "no value".
//
// # Boolean Grouping
//
// Constraints on one query level are joined by AND unless declared
// otherwise. Parenthesized sub-expressions are added by folding a sub-query
// in:
//
//	sub := query.New("").EqualTo("role", "admin").EqualTo("role", "editor")
//	if err := q.AndAnyOf(sub); err != nil { ... } // q AND (admin OR editor)
//
// Folded-in constraints get an ordinal [or{N}]. or [and{N}]. key prefix so
// the backend can rebuild the boolean tree from key prefixes alone. Mixing
// AND and OR at one level is the package's single invariant violation and
// returns a *JoinStateError at the offending call.
//
// # Geospatial Constraints
//
// Geo operands are orb.Point (longitude, latitude) and orb.Bound values
// from github.com/paulmach/orb. Distances are converted to radians before
// encoding:
//
//	q.NearWithinMiles("location", orb.Point{-122.42, 37.77}, 5)
//
// # Ordering and Pagination
//
// OrderBy and InRange accumulate header directives rather than constraint
// parameters; see OrderByHeader and RangeHeader.
//
// # Concurrency
//
// A Query is a plain mutable value with no internal locking. Do not share
// one across goroutines without external synchronization.
package query
