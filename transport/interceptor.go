package transport

import (
	"context"

	"github.com/ansg191/trakt"
)

// Handler is the next step in an interceptor chain.
type Handler func(ctx context.Context, req *trakt.HTTPRequest) (*trakt.HTTPResponse, error)

// Interceptor wraps every exchange a Client performs.
//
// An interceptor can:
//   - Inspect or modify the request before calling next
//   - Inspect or replace the response after calling next
//   - Short-circuit by returning without calling next
//
// Requests are already built and validated when they reach the chain.
type Interceptor func(ctx context.Context, req *trakt.HTTPRequest, next Handler) (*trakt.HTTPResponse, error)

// chainInterceptors combines interceptors into one.
// The first interceptor in the slice is the outer-most one (runs first).
func chainInterceptors(interceptors []Interceptor) Interceptor {
	if len(interceptors) == 0 {
		return nil
	}
	if len(interceptors) == 1 {
		return interceptors[0]
	}
	return func(ctx context.Context, req *trakt.HTTPRequest, handler Handler) (*trakt.HTTPResponse, error) {
		// i[0] -> i[1] -> ... -> handler
		chain := handler
		for i := len(interceptors) - 1; i >= 0; i-- {
			current := interceptors[i]
			next := chain
			chain = func(ctx context.Context, req *trakt.HTTPRequest) (*trakt.HTTPResponse, error) {
				return current(ctx, req, next)
			}
		}
		return chain(ctx, req)
	}
}
