package main

import (
	"fmt"
	"log/slog"
	"net"
	"os"

	"github.com/spf13/cobra"

	"github.com/picklist-dev/picklist/internal/errors"
	"github.com/picklist-dev/picklist/pkg/live"
	"github.com/picklist-dev/picklist/showcase"
)

func serveCmd() *cobra.Command {
	var (
		addr        string
		logLevel    string
		maxSessions int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the live showcase server",
		Long: `Run the showcase server.

Every demo page gets checkbox-level interactivity over WebSocket;
/healthz answers liveness probes and /metrics serves Prometheus
exposition.

Examples:
  picklist serve
  picklist serve --addr=:3000
  picklist serve --log-level=debug`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(addr, logLevel, maxSessions)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", ":8080", "Address to listen on")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	cmd.Flags().IntVar(&maxSessions, "max-sessions", 0, "Maximum concurrent sessions (0 = unlimited)")

	return cmd
}

func runServe(addr, logLevel string, maxSessions int) error {
	if _, _, err := net.SplitHostPort(addr); err != nil {
		return errors.New("E060").WithDetail("cannot listen on %q", addr).Wrap(err)
	}

	config := live.DefaultConfig().
		WithAddress(addr).
		WithMaxSessions(maxSessions).
		WithLogger(newLogger(logLevel))

	printBanner()
	fmt.Printf("  serving on %s\n\n", addr)

	return showcase.NewApp(config).Run()
}

// newLogger builds the CLI's slog logger. Unknown levels fall back to
// info rather than failing the command.
func newLogger(level string) *slog.Logger {
	var l slog.Level
	switch level {
	case "debug":
		l = slog.LevelDebug
	case "warn":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	default:
		l = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l}))
}
