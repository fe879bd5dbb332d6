package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/goccy/go-json"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"

	"github.com/ansg191/trakt/internal/config"
	"github.com/ansg191/trakt/middleware"
	"github.com/ansg191/trakt/transport"
)

// Globals are flags shared by every command. Non-empty values override the
// configuration file and environment.
type Globals struct {
	Config   string `help:"Config file (default: $TRAKT_CONFIG or the user config dir)." type:"path"`
	LogLevel string `help:"Log level: debug, info, warn or error." name:"log-level"`
	BaseURL  string `help:"API root URL." name:"base-url"`
	ClientID string `help:"API client id." name:"client-id"`
	Token    string `help:"OAuth access token."`
}

// load returns the merged configuration and configures logging.
func (g *Globals) load() (config.Config, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return config.Config{}, err
	}
	for dst, src := range map[*string]string{
		&cfg.LogLevel:   g.LogLevel,
		&cfg.BaseURL:    g.BaseURL,
		&cfg.ClientID:   g.ClientID,
		&cfg.OAuthToken: g.Token,
	} {
		if src != "" {
			*dst = src
		}
	}
	initLogging(cfg.Level())
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// client returns a transport.Client configured for live calls.
func (g *Globals) client() (*transport.Client, time.Duration, error) {
	cfg, err := g.load()
	if err != nil {
		return nil, 0, err
	}
	logger := slog.Default()
	c := transport.NewClient(transport.HTTPSender{Client: &http.Client{Timeout: cfg.Timeout}}, cfg.Context()).
		WithLogger(logger).
		WithInterceptor(
			middleware.UserAgent("trakt-cli/"+Version()),
			middleware.Logging(logger),
		)
	return c, cfg.Timeout, nil
}

// initLogging configures slog with tint for coloured output on a terminal.
func initLogging(level slog.Level) {
	slog.SetDefault(slog.New(tint.NewHandler(colorable.NewColorable(os.Stderr), &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05.000",
		NoColor:    !isatty.IsTerminal(os.Stderr.Fd()),
	})))
}

// signalContext returns a context cancelled on interrupt or after timeout.
func signalContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	ctx, cancel := context.WithTimeout(ctx, timeout)
	return ctx, func() {
		cancel()
		stop()
	}
}

func printJSON(v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	b = append(b, '\n')
	_, err = os.Stdout.Write(b)
	return err
}
