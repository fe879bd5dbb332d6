package middleware

import (
	"context"
	"net/http"

	"github.com/ansg191/trakt"
	"github.com/ansg191/trakt/transport"
)

// UserAgent sets the User-Agent header on every request that does not
// already carry one. The API asks clients to identify themselves.
func UserAgent(ua string) transport.Interceptor {
	return func(ctx context.Context, req *trakt.HTTPRequest, next transport.Handler) (*trakt.HTTPResponse, error) {
		if req.Header.Get("User-Agent") != "" {
			return next(ctx, req)
		}
		r := *req
		r.Header = req.Header.Clone()
		if r.Header == nil {
			r.Header = make(http.Header)
		}
		r.Header.Set("User-Agent", ua)
		return next(ctx, &r)
	}
}
