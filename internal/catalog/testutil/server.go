// Package testutil provides helpers for storefront HTTP tests.
package testutil

import (
	"bytes"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"

	"finitefield.org/shoe-catalog/internal/catalog/httpserver"
	"finitefield.org/shoe-catalog/internal/catalog/shoes"
)

// ServerOption customises the HTTP server configuration for tests.
type ServerOption func(*httpserver.Config)

// WithShoesService wires a custom listing service.
func WithShoesService(service shoes.Service) ServerOption {
	return func(cfg *httpserver.Config) {
		cfg.ShoesService = service
	}
}

// WithClock pins the time used to resolve card variants.
func WithClock(now time.Time) ServerOption {
	return func(cfg *httpserver.Config) {
		cfg.Clock = func() time.Time { return now }
	}
}

// NewServer constructs an httptest server running the storefront stack.
func NewServer(t testing.TB, opts ...ServerOption) *httptest.Server {
	t.Helper()

	cfg := httpserver.Config{
		Address:      ":0",
		ShoesService: shoes.NewStaticService(nil),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	srv, err := httpserver.New(cfg)
	if err != nil {
		t.Fatalf("build server: %v", err)
	}
	ts := httptest.NewServer(srv.Handler)
	t.Cleanup(ts.Close)
	return ts
}

// ParseHTML parses the provided HTML payload into a goquery document for assertions.
func ParseHTML(t testing.TB, body []byte) *goquery.Document {
	t.Helper()

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}
	return doc
}
