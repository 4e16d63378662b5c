// Package depot provides a client SDK for the Depot REST object datastore.
//
// The depot package keeps a deliberately small surface:
//   - Building filter, ordering, and pagination expressions via the query
//     sub-package's fluent API
//   - Flattening those expressions into the backend's flat, prefix-namespaced
//     wire format (URL query parameters plus directive headers)
//   - Materializing an *http.Request for a built query
//
// # Quick Start
//
// Build and flatten a query, then hand the request to any HTTP client:
//
//	package main
//
//	import (
//	    "context"
//	    "log"
//	    "net/http"
//
//	    "github.com/depot-labs/depot-go"
//	    "github.com/depot-labs/depot-go/query"
//	)
//
//	func main() {
//	    q := query.New("user").
//	        GreaterThan("age", 20).
//	        LessThanOrEqualTo("age", 40).
//	        In("friend", "joe", "bob", "alice").
//	        OrderBy("age", query.Descending).
//	        InRange(0, 10)
//
//	    req, err := depot.NewQueryRequest(context.Background(), depot.Config{
//	        BaseURL: "https://api.example.com",
//	    }, q)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    resp, err := http.DefaultClient.Do(req)
//	    // ...
//	}
//
// # Request Lifecycle
//
// The package builds requests but does NOT execute them. This gives users
// full control over:
//   - Transport, TLS, and proxy configuration
//   - Authentication and request signing
//   - Retries, timeouts, and response handling
//
// # Logging
//
// Request construction logs at debug level via the Config.Logger, falling
// back to log/slog's slog.Default().
//
// # Concurrency
//
// Queries are plain mutable values with no internal locking; do not share
// one across goroutines without external synchronization. Config values are
// immutable after construction and safe to share.
package depot
