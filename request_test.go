package depot

import (
	"context"
	"errors"
	"testing"

	"github.com/depot-labs/depot-go/query"
)

func TestNewQueryRequest(t *testing.T) {
	q := query.New("user").
		GreaterThan("age", 20).
		In("friend", "joe", "bob").
		OrderBy("age", query.Descending).
		InRange(0, 10)

	req, err := NewQueryRequest(context.Background(), Config{BaseURL: "https://api.example.com"}, q)
	if err != nil {
		t.Fatalf("NewQueryRequest failed: %v", err)
	}

	if req.Method != "GET" {
		t.Errorf("expected GET, got %s", req.Method)
	}
	if req.URL.Path != "/v0/user" {
		t.Errorf("expected path /v0/user, got %s", req.URL.Path)
	}

	values := req.URL.Query()
	if got := values.Get("age[gt]"); got != "20" {
		t.Errorf("expected age[gt]=20, got %q", got)
	}
	if got := values.Get("friend[in]"); got != "joe,bob" {
		t.Errorf("expected friend[in]=joe,bob, got %q", got)
	}

	if got := req.Header.Get(query.RangeHeader); got != "objects=0-10" {
		t.Errorf("expected range header objects=0-10, got %q", got)
	}
	if got := req.Header.Get(query.OrderByHeader); got != "age:desc" {
		t.Errorf("expected order-by header age:desc, got %q", got)
	}
	if got := req.Header.Get("User-Agent"); got != DefaultUserAgent {
		t.Errorf("expected user agent %q, got %q", DefaultUserAgent, got)
	}
	if got := req.Header.Get("Accept"); got != "application/json" {
		t.Errorf("expected accept application/json, got %q", got)
	}
}

func TestNewQueryRequestConfigOverrides(t *testing.T) {
	q := query.New("user")
	req, err := NewQueryRequest(context.Background(), Config{
		BaseURL:    "https://api.example.com",
		APIVersion: "v2",
		UserAgent:  "myapp/1.0",
	}, q)
	if err != nil {
		t.Fatalf("NewQueryRequest failed: %v", err)
	}
	if req.URL.Path != "/v2/user" {
		t.Errorf("expected path /v2/user, got %s", req.URL.Path)
	}
	if got := req.Header.Get("User-Agent"); got != "myapp/1.0" {
		t.Errorf("expected user agent myapp/1.0, got %q", got)
	}
}

func TestNewQueryRequestRequiresBaseURL(t *testing.T) {
	_, err := NewQueryRequest(context.Background(), Config{}, query.New("user"))
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestNewQueryRequestRequiresObjectName(t *testing.T) {
	_, err := NewQueryRequest(context.Background(), Config{BaseURL: "https://api.example.com"}, query.New(""))
	if !errors.Is(err, ErrNoObjectName) {
		t.Fatalf("expected ErrNoObjectName, got %v", err)
	}
}

func TestNewQueryRequestOrGroupKeys(t *testing.T) {
	q := NewQuery("user").EqualTo("city", "sf")
	sub := NewQuery("").EqualTo("role", "admin").EqualTo("level", 3)
	if err := q.AndAnyOf(sub); err != nil {
		t.Fatalf("AndAnyOf failed: %v", err)
	}

	req, err := NewQueryRequest(context.Background(), Config{BaseURL: "https://api.example.com"}, q)
	if err != nil {
		t.Fatalf("NewQueryRequest failed: %v", err)
	}

	values := req.URL.Query()
	if got := values.Get("[or1].role"); got != "admin" {
		t.Errorf("expected [or1].role=admin, got %q", got)
	}
	if got := values.Get("[or1].level"); got != "3" {
		t.Errorf("expected [or1].level=3, got %q", got)
	}
}

func TestEncodeParams(t *testing.T) {
	params := []Param{
		{Key: "age[gt]", Value: "20"},
		{Key: "friend[in]", Value: "joe,bob"},
	}
	got := EncodeParams(params)
	want := "age%5Bgt%5D=20&friend%5Bin%5D=joe%2Cbob"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}

	if got := EncodeParams(nil); got != "" {
		t.Errorf("expected empty string for no params, got %q", got)
	}
}
