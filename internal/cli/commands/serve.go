package commands

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/logsculpt/logsculpt/internal/server"
)

// ServeOptions holds command-line options for the serve command.
type ServeOptions struct {
	Addr     string
	LogLevel string
	LogJSON  bool
}

// NewServeCommand creates the serve command.
func NewServeCommand() *cobra.Command {
	opts := &ServeOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the parse/edit API over HTTP",
		Long: `Run a local HTTP API exposing the core transforms:

  GET  /healthz     Liveness check
  POST /api/parse   Log text -> structured records, keys, args
  POST /api/series  Log text -> per-metric chart series
  POST /api/apply   Log text + edit operations -> rewritten log text

Each request is handled as one atomic invocation of the pure core; the
server keeps no state between requests.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(opts)
		},
	}

	cmd.Flags().StringVar(&opts.Addr, "addr", "127.0.0.1:8080", "Listen address")
	cmd.Flags().StringVar(&opts.LogLevel, "log-level", "info", "Log level (debug|info|warn|error)")
	cmd.Flags().BoolVar(&opts.LogJSON, "log-json", false, "Emit JSON logs")

	return cmd
}

func runServe(opts *ServeOptions) error {
	logger := newLogger(opts.LogLevel, opts.LogJSON)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.New(opts.Addr, logger).Run(ctx)
}

// newLogger builds a slog.Logger for the requested verbosity and format.
func newLogger(level string, jsonOut bool) *slog.Logger {
	handlerLevel := slog.LevelInfo
	switch strings.ToLower(level) {
	case "debug":
		handlerLevel = slog.LevelDebug
	case "warn":
		handlerLevel = slog.LevelWarn
	case "error":
		handlerLevel = slog.LevelError
	}

	var handler slog.Handler
	if jsonOut {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: handlerLevel})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: handlerLevel})
	}

	return slog.New(handler)
}
