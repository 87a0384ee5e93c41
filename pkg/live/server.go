package live

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gorilla/websocket"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/picklist-dev/picklist/internal/errors"
	"github.com/picklist-dev/picklist/pkg/middleware"
	"github.com/picklist-dev/picklist/pkg/render"
)

// Page describes a registered route: a document title, optional inline
// CSS blocks, and a Mount function creating the per-session view.
type Page struct {
	// Title is the document title.
	Title string

	// Styles holds inline CSS blocks emitted in the head.
	Styles []string

	// Mount is called once per page load. The returned View closes over
	// that load's state.
	Mount func() View
}

// Server serves registered pages over HTTP and keeps their sessions live
// over WebSocket.
type Server struct {
	config *Config

	pages   map[string]Page
	pagesMu sync.RWMutex

	sessions   map[string]*Session
	sessionsMu sync.RWMutex

	renderer *render.Renderer
	upgrader websocket.Upgrader

	httpServer *http.Server
	logger     *slog.Logger

	tracer trace.Tracer

	done      chan struct{}
	closeOnce sync.Once
}

// New creates a live server. A nil config uses defaults; a partial config
// has its zero fields filled in.
func New(config *Config) *Server {
	config = withDefaults(config)

	s := &Server{
		config:   config,
		pages:    make(map[string]Page),
		sessions: make(map[string]*Session),
		renderer: render.New(render.Config{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  config.ReadBufferSize,
			WriteBufferSize: config.WriteBufferSize,
			CheckOrigin:     config.CheckOrigin,
		},
		logger: config.Logger.With("component", "live"),
		tracer: otel.Tracer("picklist/live"),
		done:   make(chan struct{}),
	}

	go s.cleanupLoop()
	return s
}

// RegisterPage registers a page under a route path ("/", "/tasks").
// Registering the same route twice replaces the page.
func (s *Server) RegisterPage(route string, page Page) {
	s.pagesMu.Lock()
	defer s.pagesMu.Unlock()
	s.pages[route] = page
}

// Handler returns the server as an http.Handler for mounting under a
// router.
func (s *Server) Handler() http.Handler {
	return s
}

// ServeHTTP dispatches by path: the live endpoint upgrades to WebSocket,
// the client path serves the browser runtime, anything else is a page
// lookup.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case s.config.LivePath:
		s.HandleWebSocket(w, r)
	case s.config.ClientPath:
		serveClientScript(w, r)
	default:
		s.servePage(w, r)
	}
}

// servePage renders a registered page and creates its session.
func (s *Server) servePage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	s.pagesMu.RLock()
	page, ok := s.pages[r.URL.Path]
	s.pagesMu.RUnlock()
	if !ok {
		http.NotFound(w, r)
		return
	}

	if s.config.MaxSessions > 0 && s.SessionCount() >= s.config.MaxSessions {
		s.logger.Warn("session limit reached", "max", s.config.MaxSessions)
		http.Error(w, "too many sessions", http.StatusServiceUnavailable)
		return
	}

	sess := newSession(s.config.Session, s.renderer, s.logger, s.tracer)
	sess.mount(page.Mount())

	s.sessionsMu.Lock()
	s.sessions[sess.ID] = sess
	s.sessionsMu.Unlock()
	middleware.RecordSessionCreate()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if r.Method == http.MethodHead {
		return
	}

	sr := render.NewStreaming(w, render.Config{})
	err := sr.RenderPage(render.Page{
		Body:         sess.Tree(),
		Title:        page.Title,
		Styles:       page.Styles,
		LiveURL:      s.config.LivePath,
		SessionID:    sess.ID,
		ClientScript: s.config.ClientPath,
	})
	if err != nil {
		e := errors.New("E020").Wrap(err)
		s.logger.Error("page render failed", "route", r.URL.Path, "error", e)
		return
	}

	s.logger.Info("page served", "route", r.URL.Path, "session_id", sess.ID)
}

// HandleWebSocket attaches a client connection to its session. The
// session ID comes from the boot script via the "session" query
// parameter; unknown IDs are rejected before the upgrade.
func (s *Server) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("session")

	s.sessionsMu.RLock()
	sess, ok := s.sessions[id]
	s.sessionsMu.RUnlock()
	if !ok || sess.IsClosed() {
		e := errors.New("E001").WithDetail("session %q", id)
		s.logger.Warn("connect rejected", "session_id", id, "error", e.Error())
		http.Error(w, "session not found", http.StatusNotFound)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		e := errors.New("E005").Wrap(err)
		s.logger.Error("upgrade failed", "error", e)
		middleware.RecordWebSocketError("upgrade")
		return
	}

	sess.attach(conn)
	sess.Start()
	s.logger.Info("client connected", "session_id", id, "remote", r.RemoteAddr)
}

// SessionCount returns the number of tracked sessions.
func (s *Server) SessionCount() int {
	s.sessionsMu.RLock()
	defer s.sessionsMu.RUnlock()
	return len(s.sessions)
}

// Session returns a tracked session by ID.
func (s *Server) Session(id string) (*Session, bool) {
	s.sessionsMu.RLock()
	defer s.sessionsMu.RUnlock()
	sess, ok := s.sessions[id]
	return sess, ok
}

// cleanupLoop evicts idle and closed sessions periodically.
func (s *Server) cleanupLoop() {
	ticker := time.NewTicker(s.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.cleanupExpired()
		case <-s.done:
			return
		}
	}
}

// cleanupExpired removes sessions closed by their connection or idle past
// the configured timeout. Pages rendered but never connected expire the
// same way.
func (s *Server) cleanupExpired() {
	cutoff := time.Now().Add(-s.config.Session.IdleTimeout)

	s.sessionsMu.Lock()
	var expired []*Session
	for id, sess := range s.sessions {
		if sess.IsClosed() || sess.LastSeen().Before(cutoff) {
			delete(s.sessions, id)
			expired = append(expired, sess)
		}
	}
	s.sessionsMu.Unlock()

	for _, sess := range expired {
		sess.Close()
	}
	if len(expired) > 0 {
		s.logger.Info("sessions cleaned up", "count", len(expired))
	}
}

// Run starts the HTTP server and blocks until SIGINT/SIGTERM or a listen
// error.
func (s *Server) Run() error {
	s.httpServer = &http.Server{
		Addr:    s.config.Address,
		Handler: s,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", s.config.Address)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("listen: %w", err)
	case sig := <-sigCh:
		s.logger.Info("shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
	defer cancel()
	return s.Shutdown(ctx)
}

// Shutdown closes all sessions and stops the HTTP server if Run started
// one. Safe to call more than once.
func (s *Server) Shutdown(ctx context.Context) error {
	s.closeOnce.Do(func() { close(s.done) })

	s.sessionsMu.Lock()
	sessions := make([]*Session, 0, len(s.sessions))
	for id, sess := range s.sessions {
		sessions = append(sessions, sess)
		delete(s.sessions, id)
	}
	s.sessionsMu.Unlock()

	for _, sess := range sessions {
		sess.Close()
	}

	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
