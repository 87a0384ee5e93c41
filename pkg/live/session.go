package live

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"runtime/debug"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/picklist-dev/picklist/internal/errors"
	"github.com/picklist-dev/picklist/pkg/middleware"
	"github.com/picklist-dev/picklist/pkg/render"
	"github.com/picklist-dev/picklist/pkg/vdom"
)

// View renders the current state of a page as a visual tree. The closure
// owns its state; the runtime calls it after every dispatched event.
type View func() *vdom.VNode

// handlerFunc is a wrapped event handler taking the raw client value.
type handlerFunc func(value string)

// Session is the per-page-load state container. It owns the mounted view,
// the handler registry keyed by hydration ID and event type, and the
// WebSocket connection once the client attaches.
//
// view, handlers, and currentTree are confined to the event loop after
// Start; conn writes are serialized by mu.
type Session struct {
	ID        string
	CreatedAt time.Time

	lastActive atomic.Int64 // unix nanos

	conn   *websocket.Conn
	mu     sync.Mutex // protects conn writes and swaps
	closed atomic.Bool

	sendSeq atomic.Uint64

	view        View
	handlers    map[string]handlerFunc
	currentTree *vdom.VNode
	hidGen      *vdom.HIDGenerator

	events chan eventFrame
	done   chan struct{}

	config   *SessionConfig
	renderer *render.Renderer
	logger   *slog.Logger
	tracer   trace.Tracer

	eventCount atomic.Uint64
	patchCount atomic.Uint64
}

// generateSessionID generates a cryptographically random session ID.
func generateSessionID() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		// Weak session IDs are worse than a crash.
		panic(fmt.Sprintf("crypto/rand failed: %v", err))
	}
	return hex.EncodeToString(b)
}

// newSession creates an unmounted session.
func newSession(config *SessionConfig, renderer *render.Renderer, logger *slog.Logger, tracer trace.Tracer) *Session {
	id := generateSessionID()

	s := &Session{
		ID:        id,
		CreatedAt: time.Now(),
		handlers:  make(map[string]handlerFunc),
		hidGen:    vdom.NewHIDGenerator(),
		events:    make(chan eventFrame, config.MaxEventQueue),
		done:      make(chan struct{}),
		config:    config,
		renderer:  renderer,
		logger:    logger.With("session_id", id),
		tracer:    tracer,
	}
	s.touch()
	return s
}

// mount renders the view for the first time and indexes its handlers.
// The tree is wrapped in a container div so whole-view replacement
// patches have a stable anchor. Every element gets a hydration ID, not
// just interactive ones; patches for text and structure then always have
// an addressable target.
func (s *Session) mount(view View) {
	s.view = view

	root := vdom.Div(view())
	vdom.AssignAllHIDs(root, s.hidGen)
	s.collectHandlers(root)
	s.currentTree = root

	s.logger.Info("mounted view",
		"handlers", len(s.handlers),
		"hid_counter", s.hidGen.Current())
}

// Tree returns the session's current tree. The initial page render embeds
// it so the served HTML matches the handler registry.
func (s *Session) Tree() *vdom.VNode {
	return s.currentTree
}

// collectHandlers walks the tree and registers event handlers under
// compound keys ("h2_onclick").
func (s *Session) collectHandlers(node *vdom.VNode) {
	if node == nil {
		return
	}

	if node.HID != "" {
		for key, value := range node.Props {
			if value == nil || !vdom.IsHandlerKey(key) {
				continue
			}
			handler, ok := wrapHandler(value)
			if !ok {
				s.logger.Warn("unsupported handler type",
					"hid", node.HID,
					"key", key,
					"type", fmt.Sprintf("%T", value))
				continue
			}
			s.handlers[node.HID+"_"+strings.ToLower(key)] = handler
		}
	}

	for _, child := range node.Children {
		s.collectHandlers(child)
	}
}

// wrapHandler coerces the callback types the vdom event helpers accept.
// Click handlers take nothing, checkbox handlers take the client value as
// a bool, input handlers take it as a string.
func wrapHandler(value any) (handlerFunc, bool) {
	switch h := value.(type) {
	case func():
		return func(string) { h() }, true
	case func(bool):
		return func(v string) { h(v == "true") }, true
	case func(string):
		return func(v string) { h(v) }, true
	default:
		return nil, false
	}
}

// handleEvent dispatches a single event from the client.
func (s *Session) handleEvent(ev eventFrame) {
	s.touch()
	s.eventCount.Add(1)

	_, span := s.tracer.Start(context.Background(), "live.event",
		trace.WithAttributes(
			attribute.String("live.session_id", s.ID),
			attribute.String("live.event_type", ev.Event),
			attribute.String("live.event_target", ev.HID),
		))
	defer span.End()

	key := ev.HID + "_on" + strings.ToLower(ev.Event)
	handler, exists := s.handlers[key]
	if !exists {
		s.logger.Warn("handler not found", "hid", ev.HID, "event", ev.Event, "key", key)
		s.sendError(errors.New("E002").WithDetail("no handler for %q", key))
		middleware.RecordEvent("no_handler")
		span.SetStatus(codes.Error, "handler not found")
		return
	}

	ok := s.safeExecute(handler, ev)

	// Re-render even after a panic: the handler may have updated state
	// before failing, and the client should see what the server sees.
	patches := s.rerender()
	span.SetAttributes(attribute.Int("live.patch_count", patches))

	if ok {
		middleware.RecordEvent("ok")
		span.SetStatus(codes.Ok, "")
	} else {
		middleware.RecordEvent("panic")
		span.SetStatus(codes.Error, "handler panicked")
	}
}

// safeExecute runs a handler with panic recovery. A panicking handler
// drops the event; the session stays alive.
func (s *Session) safeExecute(handler handlerFunc, ev eventFrame) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			ok = false
			stack := debug.Stack()
			s.logger.Error("handler panic",
				"panic", r,
				"hid", ev.HID,
				"event", ev.Event,
				"stack", string(stack))
			middleware.RecordHandlerPanic()
			s.sendError(errors.New("E004"))
		}
	}()

	handler(ev.Value)
	return true
}

// rerender computes the next tree's patches and pushes them. Returns the
// number of patches sent.
func (s *Session) rerender() int {
	patches := s.renderNext()
	if len(patches) > 0 {
		s.sendPatches(patches)
	}
	return len(patches)
}

// renderNext renders the view again, diffs against the current tree, and
// swaps in the new tree and handler registry.
func (s *Session) renderNext() []vdom.Patch {
	if s.view == nil {
		return nil
	}

	old := s.currentTree
	next := vdom.Div(s.view())
	vdom.CopyHIDs(old, next)
	vdom.AssignAllHIDs(next, s.hidGen)

	patches := vdom.Diff(old, next)

	// Changes under nodes without hydration IDs (fragment children) cannot
	// be addressed client-side; replace the whole view instead.
	if hasUnanchored(patches) {
		patches = []vdom.Patch{{Op: vdom.PatchReplaceNode, HID: next.HID, Node: next}}
	}

	s.currentTree = next
	s.handlers = make(map[string]handlerFunc, len(s.handlers))
	s.collectHandlers(next)

	return patches
}

// queueEvent hands an event to the event loop without blocking the read
// loop. A full queue drops the event.
func (s *Session) queueEvent(ev eventFrame) error {
	select {
	case s.events <- ev:
		return nil
	default:
		return errors.Newf(errors.CategoryLive, "event queue full")
	}
}

// attach hands the WebSocket connection to the session. A second connect
// for the same session replaces the previous connection.
func (s *Session) attach(conn *websocket.Conn) {
	s.mu.Lock()
	defer s.mu.Unlock()

	old := s.conn
	s.conn = conn
	if old != nil {
		old.Close()
	}
	s.touch()
}

// send writes one frame. Safe for concurrent use; a write error closes
// the session. Frames before the client connects are dropped.
func (s *Session) send(frame any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed.Load() || s.conn == nil {
		return nil
	}

	s.conn.SetWriteDeadline(time.Now().Add(s.config.WriteTimeout))
	if err := s.conn.WriteJSON(frame); err != nil {
		s.logger.Error("write error", "error", err)
		middleware.RecordWebSocketError("write")
		s.closeInternal()
		return err
	}
	return nil
}

// sendPatches converts and pushes a patch batch.
func (s *Session) sendPatches(patches []vdom.Patch) {
	wire, err := convertPatches(s.renderer, patches)
	if err != nil {
		s.logger.Error("patch conversion failed", "error", err)
		return
	}

	frame := patchesFrame{
		Type:    framePatches,
		Seq:     s.sendSeq.Add(1),
		Patches: wire,
	}
	if err := s.send(frame); err != nil {
		return
	}

	s.patchCount.Add(uint64(len(patches)))
	middleware.RecordPatches(len(patches))
}

// sendError reports a coded error to the client.
func (s *Session) sendError(e *errors.Error) {
	s.send(errorFrame{Type: frameError, Code: e.Code, Message: e.Message})
}

// Close shuts the session down. Idempotent.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closeInternal()
}

// closeInternal assumes mu is held.
func (s *Session) closeInternal() {
	if s.closed.Swap(true) {
		return
	}

	close(s.done)
	if s.conn != nil {
		s.conn.Close()
	}
	middleware.RecordSessionDestroy()

	s.logger.Info("session closed",
		"events", s.eventCount.Load(),
		"patches", s.patchCount.Load())
}

// IsClosed reports whether the session has been closed.
func (s *Session) IsClosed() bool {
	return s.closed.Load()
}

// Done returns a channel closed when the session shuts down.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// touch marks the session active now.
func (s *Session) touch() {
	s.lastActive.Store(time.Now().UnixNano())
}

// LastSeen returns the time of the last client activity.
func (s *Session) LastSeen() time.Time {
	return time.Unix(0, s.lastActive.Load())
}

// SessionStats is a point-in-time snapshot of session counters.
type SessionStats struct {
	ID         string
	CreatedAt  time.Time
	LastActive time.Time
	Events     uint64
	Patches    uint64
	Connected  bool
}

// Stats returns a snapshot of the session's counters.
func (s *Session) Stats() SessionStats {
	s.mu.Lock()
	connected := s.conn != nil && !s.closed.Load()
	s.mu.Unlock()

	return SessionStats{
		ID:         s.ID,
		CreatedAt:  s.CreatedAt,
		LastActive: s.LastSeen(),
		Events:     s.eventCount.Load(),
		Patches:    s.patchCount.Load(),
		Connected:  connected,
	}
}
