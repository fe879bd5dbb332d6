package middleware

import (
	"context"
	"net/http"
	"testing"

	"github.com/ansg191/trakt"
	"github.com/ansg191/trakt/trakttest"
)

func TestUserAgent(t *testing.T) {
	var got string
	next := func(ctx context.Context, req *trakt.HTTPRequest) (*trakt.HTTPResponse, error) {
		got = req.Header.Get("User-Agent")
		return trakttest.NewResponse(http.StatusOK).Build(), nil
	}

	req := newRequest()
	if _, err := UserAgent("trakt-cli/1.0")(context.Background(), req, next); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "trakt-cli/1.0" {
		t.Errorf("expected user agent trakt-cli/1.0, got %q", got)
	}
	if req.Header.Get("User-Agent") != "" {
		t.Error("expected the caller's request to be left unchanged")
	}

	req.Header.Set("User-Agent", "custom")
	if _, err := UserAgent("trakt-cli/1.0")(context.Background(), req, next); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "custom" {
		t.Errorf("expected existing user agent to win, got %q", got)
	}
}

func TestUserAgentNilHeader(t *testing.T) {
	var got string
	next := func(ctx context.Context, req *trakt.HTTPRequest) (*trakt.HTTPResponse, error) {
		got = req.Header.Get("User-Agent")
		return trakttest.NewResponse(http.StatusOK).Build(), nil
	}
	req := &trakt.HTTPRequest{Method: http.MethodGet, URL: "https://api.trakt.tv/genres/movies"}
	if _, err := UserAgent("ua")(context.Background(), req, next); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "ua" {
		t.Errorf("expected user agent ua, got %q", got)
	}
}
