package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/ansg191/trakt"
	"github.com/ansg191/trakt/transport"
)

// Logging creates an interceptor that logs each exchange using slog.
// It logs the start and end of each request, including status and duration.
// Tokens travel in headers, which are never logged.
func Logging(logger *slog.Logger) transport.Interceptor {
	if logger == nil {
		logger = slog.Default()
	}

	return func(ctx context.Context, req *trakt.HTTPRequest, next transport.Handler) (*trakt.HTTPResponse, error) {
		start := time.Now()

		logger.InfoContext(ctx, "request started",
			slog.String("method", req.Method),
			slog.String("url", req.URL),
		)

		res, err := next(ctx, req)
		duration := time.Since(start)

		if err != nil {
			logger.ErrorContext(ctx, "request failed",
				slog.String("method", req.Method),
				slog.String("url", req.URL),
				slog.Duration("duration", duration),
				slog.Any("error", err),
			)
		} else {
			logger.InfoContext(ctx, "request completed",
				slog.String("method", req.Method),
				slog.String("url", req.URL),
				slog.Int("status", res.StatusCode),
				slog.Duration("duration", duration),
			)
		}

		return res, err
	}
}
