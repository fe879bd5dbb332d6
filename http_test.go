package trakt

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"
)

func TestHTTPRequestNewRequest(t *testing.T) {
	hr := &HTTPRequest{
		Method: http.MethodPost,
		URL:    "https://api.trakt.tv/checkin",
		Header: http.Header{"Trakt-Api-Key": {"abc"}},
		Body:   []byte(`{"message":"hi"}`),
	}
	req, err := hr.NewRequest(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Method != http.MethodPost {
		t.Errorf("expected POST, got %s", req.Method)
	}
	if got := req.Header.Get("trakt-api-key"); got != "abc" {
		t.Errorf("expected api key header, got %q", got)
	}
	body, _ := io.ReadAll(req.Body)
	if string(body) != `{"message":"hi"}` {
		t.Errorf("unexpected body %q", body)
	}

	req.Header.Set("X-Extra", "1")
	if hr.Header.Get("X-Extra") != "" {
		t.Error("expected NewRequest to copy headers")
	}
}

func TestHTTPRequestNewRequestNoBody(t *testing.T) {
	req, err := (&HTTPRequest{Method: http.MethodGet, URL: "https://api.trakt.tv/genres/movies"}).NewRequest(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Body != nil {
		t.Error("expected nil body")
	}
	if req.Header == nil {
		t.Error("expected non-nil header")
	}
}

func TestReadResponse(t *testing.T) {
	res := &http.Response{
		StatusCode: 200,
		Header:     http.Header{"X-Pagination-Page": {"2"}},
		Body:       io.NopCloser(strings.NewReader(`[]`)),
	}
	hr, err := ReadResponse(res)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hr.StatusCode != 200 || string(hr.Body) != "[]" || hr.Header.Get("X-Pagination-Page") != "2" {
		t.Errorf("unexpected response %+v", hr)
	}
}
