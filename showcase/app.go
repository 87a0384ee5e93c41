// Package showcase is the demo host application: one live page per
// widget feature, wired with request metrics, tracing, and health
// endpoints. It is what `picklist serve` runs and what `picklist
// publish` snapshots.
package showcase

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"

	"github.com/picklist-dev/picklist/pkg/live"
	"github.com/picklist-dev/picklist/pkg/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// App bundles the live server and the surrounding HTTP stack into a
// single handler:
//
//	/healthz     liveness probe
//	/metrics     Prometheus exposition
//	/*           live pages, WebSocket endpoint, client script
type App struct {
	live   *live.Server
	router chi.Router
	config *live.Config
	logger *slog.Logger
}

// NewApp builds the showcase on top of the given live config. A nil
// config uses defaults; a partial config has its zero fields filled in.
func NewApp(config *live.Config) *App {
	if config == nil {
		config = live.DefaultConfig()
	}

	srv := live.New(config)
	for route, pg := range Pages() {
		srv.RegisterPage(route, pg)
	}

	r := chi.NewRouter()
	r.Use(middleware.Prometheus(
		middleware.WithRequestFilter(func(r *http.Request) bool {
			return r.URL.Path != "/metrics" && r.URL.Path != "/healthz"
		}),
	))
	r.Use(middleware.OpenTelemetry())
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())
	r.Handle("/*", srv.Handler())

	return &App{
		live:   srv,
		router: r,
		config: config,
		logger: config.Logger.With("component", "showcase"),
	}
}

// ServeHTTP implements http.Handler.
func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.router.ServeHTTP(w, r)
}

// Handler returns the app for mounting under an existing router.
func (a *App) Handler() http.Handler {
	return a.router
}

// Live exposes the underlying live server.
func (a *App) Live() *live.Server {
	return a.live
}

// Run serves the app on the configured address and blocks until the
// process receives SIGINT or SIGTERM, then drains live sessions and
// stops the listener.
func (a *App) Run() error {
	httpServer := &http.Server{
		Addr:    a.config.Address,
		Handler: a.router,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	a.logger.Info("showcase listening", "addr", a.config.Address)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	select {
	case err := <-errCh:
		return fmt.Errorf("listen: %w", err)
	case sig := <-sigCh:
		a.logger.Info("shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), a.config.ShutdownTimeout)
	defer cancel()

	if err := a.live.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return httpServer.Shutdown(ctx)
}

// Shutdown drains live sessions without stopping a listener. Run calls
// it on its own; use it directly when the app is mounted under an
// outer server.
func (a *App) Shutdown(ctx context.Context) error {
	return a.live.Shutdown(ctx)
}
