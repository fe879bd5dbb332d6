// Package trakttest provides testing helpers for code built on the trakt bindings.
// It does not import any api package and can be used from any of them.
package trakttest

import (
	"bytes"
	"errors"
	"net/http"
	"strconv"
	"testing"

	"github.com/goccy/go-json"

	"github.com/ansg191/trakt"
)

// ResponseBuilder helps construct HTTPResponse values with a fluent API.
type ResponseBuilder struct {
	status int
	header http.Header
	body   []byte
}

// NewResponse creates a builder for a response with the given status.
func NewResponse(status int) *ResponseBuilder {
	return &ResponseBuilder{
		status: status,
		header: make(http.Header),
	}
}

// WithJSON sets the body to the JSON encoding of v.
func (b *ResponseBuilder) WithJSON(v any) *ResponseBuilder {
	data, err := json.Marshal(v)
	if err != nil {
		panic("trakttest: " + err.Error())
	}
	b.body = data
	b.header.Set("Content-Type", "application/json")
	return b
}

// WithBody sets the raw body.
func (b *ResponseBuilder) WithBody(body string) *ResponseBuilder {
	b.body = []byte(body)
	b.header.Set("Content-Type", "application/json")
	return b
}

func (b *ResponseBuilder) WithHeader(key, value string) *ResponseBuilder {
	b.header.Set(key, value)
	return b
}

// WithPagination sets the four X-Pagination-* headers.
func (b *ResponseBuilder) WithPagination(page, limit, pageCount, itemCount int) *ResponseBuilder {
	b.header.Set(trakt.HeaderPage, strconv.Itoa(page))
	b.header.Set(trakt.HeaderLimit, strconv.Itoa(limit))
	b.header.Set(trakt.HeaderPageCount, strconv.Itoa(pageCount))
	b.header.Set(trakt.HeaderItemCount, strconv.Itoa(itemCount))
	return b
}

// WithError sets the body to the API's error envelope.
func (b *ResponseBuilder) WithError(code, description string) *ResponseBuilder {
	return b.WithJSON(&trakt.APIError{Message: code, Description: description})
}

func (b *ResponseBuilder) Build() *trakt.HTTPResponse {
	return &trakt.HTTPResponse{
		StatusCode: b.status,
		Header:     b.header.Clone(),
		Body:       bytes.Clone(b.body),
	}
}

// Context returns a Context for the production base URL with a test client id.
func Context() trakt.Context {
	return trakt.NewContext(trakt.DefaultBaseURL, "test-client-id")
}

// AssertURL checks the URL of a built request.
func AssertURL(t testing.TB, req *trakt.HTTPRequest, expected string) {
	t.Helper()
	if req.URL != expected {
		t.Errorf("expected URL %s, got %s", expected, req.URL)
	}
}

// AssertHeader checks that a request header has the expected value.
func AssertHeader(t testing.TB, req *trakt.HTTPRequest, key, expected string) {
	t.Helper()
	actual := req.Header.Get(key)
	if actual != expected {
		t.Errorf("expected header %s=%s, got %s", key, expected, actual)
	}
}

// AssertJSONBody compares the request body with expected as JSON values,
// ignoring formatting and key order.
func AssertJSONBody(t testing.TB, req *trakt.HTTPRequest, expected string) {
	t.Helper()

	var expectedData, actualData any
	if err := json.Unmarshal([]byte(expected), &expectedData); err != nil {
		t.Fatalf("invalid expected JSON: %v", err)
	}
	if err := json.Unmarshal(req.Body, &actualData); err != nil {
		t.Fatalf("failed to decode request body: %v\nBody: %s", err, req.Body)
	}

	expectedStr, _ := json.MarshalIndent(expectedData, "", "  ")
	actualStr, _ := json.MarshalIndent(actualData, "", "  ")
	if string(expectedStr) != string(actualStr) {
		t.Errorf("body mismatch:\nExpected:\n%s\nActual:\n%s", expectedStr, actualStr)
	}
}

// AssertBuildError checks that err is a BuildError of the given kind and returns it.
func AssertBuildError(t testing.TB, err error, kind trakt.BuildErrorKind) *trakt.BuildError {
	t.Helper()
	var be *trakt.BuildError
	if !errors.As(err, &be) {
		t.Fatalf("expected *trakt.BuildError, got %T (%v)", err, err)
	}
	if be.Kind != kind {
		t.Errorf("expected build error kind %s, got %s", kind, be.Kind)
	}
	return be
}

// AssertParseError checks that err is a ParseError of the given kind and returns it.
func AssertParseError(t testing.TB, err error, kind trakt.ParseErrorKind) *trakt.ParseError {
	t.Helper()
	var pe *trakt.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *trakt.ParseError, got %T (%v)", err, err)
	}
	if pe.Kind != kind {
		t.Errorf("expected parse error kind %s, got %s", kind, pe.Kind)
	}
	return pe
}
