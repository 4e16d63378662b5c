package depot

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/depot-labs/depot-go/query"
)

// NewQueryRequest materializes a built query as a GET request against the
// configured datastore: flattened constraints become URL query parameters
// and directives become request headers. The request is not executed; send
// it with any http.Client after attaching credentials.
func NewQueryRequest(ctx context.Context, cfg Config, q *query.Query) (*http.Request, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("%w: base URL is required", ErrInvalidConfig)
	}
	if q.ObjectName() == "" {
		return nil, ErrNoObjectName
	}

	u, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	u = u.JoinPath(cfg.apiVersion(), q.ObjectName())

	params := q.Params()
	values := make(url.Values, len(params))
	for _, p := range params {
		values.Add(p.Key, p.Value)
	}
	u.RawQuery = values.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", cfg.userAgent())
	for name, value := range q.Headers() {
		req.Header.Set(name, value)
	}

	cfg.logger().Debug("built query request",
		"object", q.ObjectName(),
		"params", len(params),
		"url", u.String(),
	)
	return req, nil
}

// EncodeParams renders flattened constraints as a raw query string without
// building a request. Useful for logging and tests.
func EncodeParams(params []Param) string {
	var b strings.Builder
	for i, p := range params {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(p.Key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p.Value))
	}
	return b.String()
}
