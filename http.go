package trakt

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
)

// HTTPRequest is a transport-agnostic HTTP request produced by Build.
type HTTPRequest struct {
	Method string
	URL    string
	Header http.Header
	Body   []byte
}

// NewRequest converts r into a *http.Request bound to ctx.
func (r *HTTPRequest) NewRequest(ctx context.Context) (*http.Request, error) {
	var body io.Reader
	if len(r.Body) > 0 {
		body = bytes.NewReader(r.Body)
	}
	req, err := http.NewRequestWithContext(ctx, r.Method, r.URL, body)
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}
	req.Header = r.Header.Clone()
	if req.Header == nil {
		req.Header = make(http.Header)
	}
	return req, nil
}

// HTTPResponse is a transport-agnostic HTTP response consumed by Parse.
type HTTPResponse struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// ReadResponse reads and closes res.Body.
func ReadResponse(res *http.Response) (*HTTPResponse, error) {
	defer res.Body.Close()
	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}
	return &HTTPResponse{
		StatusCode: res.StatusCode,
		Header:     res.Header,
		Body:       body,
	}, nil
}
