package trakttest

import (
	"context"
	"errors"
	"net/http"
	"slices"
	"sync"

	"github.com/ansg191/trakt"
)

type route struct {
	meta  trakt.Metadata
	match func(*trakt.HTTPRequest) bool
	serve func(context.Context, *trakt.HTTPRequest) (*trakt.HTTPResponse, error)
}

// Fake is an in-memory API. Handlers registered with Handle receive decoded
// request values and return typed responses; Fake does the HTTP conversion
// in both directions with the endpoint's own binding. It implements the
// transport Sender interface and is safe for concurrent use.
type Fake struct {
	mu       sync.Mutex
	routes   []route
	requests []*trakt.HTTPRequest
}

func NewFake() *Fake {
	return &Fake{}
}

// Handle routes requests matching e to fn. Routes are tried in registration order.
// An *trakt.APIError returned by fn is answered with its status and the error
// envelope; any other error becomes a 500.
func Handle[Req, Res any](f *Fake, e *trakt.Endpoint[Req, Res], fn func(ctx context.Context, req Req) (Res, error)) {
	r := route{
		meta:  e.Metadata(),
		match: e.Matches,
		serve: func(ctx context.Context, hr *trakt.HTTPRequest) (*trakt.HTTPResponse, error) {
			req, err := e.DecodeRequest(hr)
			if err != nil {
				return errorResponse(trakt.NewAPIError(http.StatusBadRequest, err.Error())), nil
			}
			res, err := fn(ctx, req)
			if err != nil {
				var apiErr *trakt.APIError
				if errors.As(err, &apiErr) {
					return errorResponse(apiErr), nil
				}
				return errorResponse(trakt.NewAPIError(http.StatusInternalServerError, err.Error())), nil
			}
			return e.EncodeResponse(res)
		},
	}
	f.mu.Lock()
	f.routes = append(f.routes, r)
	f.mu.Unlock()
}

// Send records hr and answers it. Unrouted requests get a 404, and endpoints
// requiring auth get a 401 when hr has no bearer token.
func (f *Fake) Send(ctx context.Context, hr *trakt.HTTPRequest) (*trakt.HTTPResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f.mu.Lock()
	f.requests = append(f.requests, hr)
	routes := slices.Clone(f.routes)
	f.mu.Unlock()

	for _, r := range routes {
		if !r.match(hr) {
			continue
		}
		if r.meta.Auth == trakt.AuthRequired && hr.Header.Get("Authorization") == "" {
			return errorResponse(trakt.NewAPIError(http.StatusUnauthorized, "invalid_grant")), nil
		}
		return r.serve(ctx, hr)
	}
	return errorResponse(trakt.NewAPIError(http.StatusNotFound, "")), nil
}

// Requests returns the requests sent so far, oldest first.
func (f *Fake) Requests() []*trakt.HTTPRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.requests)
}

func errorResponse(e *trakt.APIError) *trakt.HTTPResponse {
	res := NewResponse(e.StatusCode)
	if e.Message != "" || e.Description != "" {
		res.WithJSON(e)
	}
	return res.Build()
}
