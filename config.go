package depot

import (
	"errors"
	"log/slog"
)

// Config contains client-side configuration for talking to a Depot REST
// datastore. The SDK builds requests from it but never executes them; the
// caller owns the HTTP client, TLS setup, and credentials.
type Config struct {
	// BaseURL is the API root, e.g. "https://api.example.com".
	// REQUIRED: MUST be non-empty.
	BaseURL string

	// APIVersion selects the REST API version path segment.
	// OPTIONAL: Uses DefaultAPIVersion if empty.
	APIVersion string

	// UserAgent is sent with every built request.
	// OPTIONAL: Uses DefaultUserAgent if empty.
	UserAgent string

	// Logger for internal logging.
	// OPTIONAL: Uses slog.Default() if nil.
	Logger *slog.Logger
}

// Defaults applied for optional Config fields.
const (
	DefaultAPIVersion = "v0"
	DefaultUserAgent  = "depot-go"
)

func (c Config) apiVersion() string {
	if c.APIVersion == "" {
		return DefaultAPIVersion
	}
	return c.APIVersion
}

func (c Config) userAgent() string {
	if c.UserAgent == "" {
		return DefaultUserAgent
	}
	return c.UserAgent
}

func (c Config) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.Default()
	}
	return c.Logger
}

// Standard errors returned by the depot package.
var (
	// ErrInvalidConfig indicates Config validation failed.
	ErrInvalidConfig = errors.New("invalid client config")

	// ErrNoObjectName indicates a query without an object name was used
	// where one is required to build a request path.
	ErrNoObjectName = errors.New("query has no object name")
)
