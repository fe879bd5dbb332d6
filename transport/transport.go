// Package transport sends built requests over HTTP.
//
// The root package only converts between typed values and [trakt.HTTPRequest] /
// [trakt.HTTPResponse]. A [Client] closes the loop: it builds a request with its
// [trakt.Context], passes it through the interceptor chain to a [Sender], and
// parses the result.
package transport

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/ansg191/trakt"
)

// Sender performs one HTTP exchange.
type Sender interface {
	Send(ctx context.Context, req *trakt.HTTPRequest) (*trakt.HTTPResponse, error)
}

// SenderFunc adapts a function to a Sender.
type SenderFunc func(ctx context.Context, req *trakt.HTTPRequest) (*trakt.HTTPResponse, error)

func (f SenderFunc) Send(ctx context.Context, req *trakt.HTTPRequest) (*trakt.HTTPResponse, error) {
	return f(ctx, req)
}

// HTTPSender sends requests with Client, or http.DefaultClient when Client is nil.
type HTTPSender struct {
	Client *http.Client
}

func (s HTTPSender) Send(ctx context.Context, req *trakt.HTTPRequest) (*trakt.HTTPResponse, error) {
	hreq, err := req.NewRequest(ctx)
	if err != nil {
		return nil, err
	}
	c := s.Client
	if c == nil {
		c = http.DefaultClient
	}
	res, err := c.Do(hreq)
	if err != nil {
		return nil, err
	}
	return trakt.ReadResponse(res)
}

// Client sends typed requests. Configure it before first use; it is safe for
// concurrent use afterwards.
type Client struct {
	sender       Sender
	tctx         trakt.Context
	interceptors []Interceptor
	chain        Interceptor
	logger       *slog.Logger
}

// NewClient returns a Client that sends through sender with the settings in tctx.
func NewClient(sender Sender, tctx trakt.Context) *Client {
	return &Client{sender: sender, tctx: tctx}
}

// WithInterceptor appends interceptors. The first one added runs outermost.
func (c *Client) WithInterceptor(i ...Interceptor) *Client {
	c.interceptors = append(c.interceptors, i...)
	c.chain = chainInterceptors(c.interceptors)
	return c
}

// WithLogger sets a custom logger for the client.
// If not set, slog.Default() will be used.
func (c *Client) WithLogger(logger *slog.Logger) *Client {
	c.logger = logger
	return c
}

// Context returns the settings every request is built with.
func (c *Client) Context() trakt.Context { return c.tctx }

func (c *Client) log() *slog.Logger {
	if c.logger == nil {
		return slog.Default()
	}
	return c.logger
}

// Send builds req, sends it and parses the response into res.
// Build and parse failures are returned as *trakt.BuildError and *trakt.ParseError.
func (c *Client) Send(ctx context.Context, req trakt.Request, res trakt.Response) error {
	hr, err := req.Build(c.tctx)
	if err != nil {
		return err
	}
	raw, err := c.do(ctx, hr)
	if err != nil {
		return err
	}
	return res.Parse(raw)
}

func (c *Client) do(ctx context.Context, hr *trakt.HTTPRequest) (*trakt.HTTPResponse, error) {
	c.log().DebugContext(ctx, "sending request",
		slog.String("method", hr.Method),
		slog.String("url", hr.URL),
	)
	var (
		raw *trakt.HTTPResponse
		err error
	)
	if c.chain == nil {
		raw, err = c.sender.Send(ctx, hr)
	} else {
		raw, err = c.chain(ctx, hr, c.sender.Send)
	}
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", hr.Method, hr.URL, err)
	}
	return raw, nil
}

// Do sends req and returns the parsed response.
//
//	res, err := transport.Do[movies.SummaryResponse](ctx, client, movies.SummaryRequest{ID: id})
func Do[Res any, PRes interface {
	*Res
	trakt.Response
}](ctx context.Context, c *Client, req trakt.Request) (Res, error) {
	var res Res
	if err := c.Send(ctx, req, PRes(&res)); err != nil {
		var zero Res
		return zero, err
	}
	return res, nil
}
