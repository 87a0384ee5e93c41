package live

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/picklist-dev/picklist/pkg/vdom"
)

var (
	sessionIDRe = regexp.MustCompile(`"session":"([0-9a-f]{32})"`)
	clickHIDRe  = regexp.MustCompile(`data-hid="(h\d+)" data-on-click`)
)

func newTestServer(t *testing.T, config *Config) *Server {
	t.Helper()
	if config == nil {
		config = &Config{}
	}
	if config.Logger == nil {
		config.Logger = discardLogger()
	}
	s := New(config)
	t.Cleanup(func() { _ = s.Shutdown(context.Background()) })
	return s
}

// counterPage is a page whose button click produces a single text patch.
func counterPage() Page {
	return Page{
		Title: "Counter",
		Mount: func() View {
			count := 0
			return func() *vdom.VNode {
				return vdom.Div(vdom.Button(
					"count: "+strconv.Itoa(count),
					vdom.OnClick(func() { count++ }),
				))
			}
		},
	}
}

func getPage(t *testing.T, ts *httptest.Server, path string) (string, string) {
	t.Helper()
	resp, err := http.Get(ts.URL + path)
	if err != nil {
		t.Fatalf("GET %s failed: %v", path, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("GET %s status = %d, want 200", path, resp.StatusCode)
	}

	buf := new(strings.Builder)
	if _, err := io.Copy(buf, resp.Body); err != nil {
		t.Fatalf("read body failed: %v", err)
	}
	body := buf.String()

	m := sessionIDRe.FindStringSubmatch(body)
	if m == nil {
		t.Fatalf("no session ID in page:\n%s", body)
	}
	return body, m[1]
}

func wsURL(t *testing.T, baseURL, path string) string {
	t.Helper()
	if !strings.HasPrefix(baseURL, "http") {
		t.Fatalf("unexpected base URL: %q", baseURL)
	}
	return "ws" + strings.TrimPrefix(baseURL, "http") + path
}

func dialWS(t *testing.T, url string) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("Dial(%q) failed: %v", url, err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func TestServerServesPage(t *testing.T) {
	s := newTestServer(t, nil)
	s.RegisterPage("/", counterPage())

	ts := httptest.NewServer(s.Handler())
	defer ts.Close()

	body, sessionID := getPage(t, ts, "/")

	for _, want := range []string{
		"<!DOCTYPE html>",
		"<title>Counter</title>",
		"count: 0",
		"window.__PICKLIST__",
		`data-on-click`,
		"/picklist/client.js",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("page body missing %q", want)
		}
	}

	if _, ok := s.Session(sessionID); !ok {
		t.Errorf("session %q not tracked after page render", sessionID)
	}
	if got := s.SessionCount(); got != 1 {
		t.Errorf("SessionCount() = %d, want 1", got)
	}
}

func TestServerUnknownRoute(t *testing.T) {
	s := newTestServer(t, nil)
	ts := httptest.NewServer(s.Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/missing")
	if err != nil {
		t.Fatalf("GET failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}

func TestServerPageMethodNotAllowed(t *testing.T) {
	s := newTestServer(t, nil)
	s.RegisterPage("/", counterPage())
	ts := httptest.NewServer(s.Handler())
	defer ts.Close()

	resp, err := http.Post(ts.URL+"/", "text/plain", nil)
	if err != nil {
		t.Fatalf("POST failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", resp.StatusCode)
	}
	if allow := resp.Header.Get("Allow"); !strings.Contains(allow, "GET") {
		t.Errorf("Allow = %q, want GET listed", allow)
	}
}

func TestServerMaxSessions(t *testing.T) {
	s := newTestServer(t, &Config{MaxSessions: 1})
	s.RegisterPage("/", counterPage())
	ts := httptest.NewServer(s.Handler())
	defer ts.Close()

	getPage(t, ts, "/")

	resp, err := http.Get(ts.URL + "/")
	if err != nil {
		t.Fatalf("GET failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503 once the session limit is hit", resp.StatusCode)
	}
}

func TestServerClientScript(t *testing.T) {
	s := newTestServer(t, nil)
	ts := httptest.NewServer(s.Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/picklist/client.js")
	if err != nil {
		t.Fatalf("GET failed: %v", err)
	}
	buf := new(strings.Builder)
	if _, err := io.Copy(buf, resp.Body); err != nil {
		t.Fatalf("read body failed: %v", err)
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "application/javascript") {
		t.Errorf("Content-Type = %q, want application/javascript", ct)
	}
	etag := resp.Header.Get("ETag")
	if etag == "" {
		t.Fatal("no ETag header")
	}
	if !strings.Contains(buf.String(), "WebSocket") {
		t.Error("client script does not mention WebSocket")
	}

	req, _ := http.NewRequest(http.MethodGet, ts.URL+"/picklist/client.js", nil)
	req.Header.Set("If-None-Match", etag)
	resp2, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("conditional GET failed: %v", err)
	}
	resp2.Body.Close()
	if resp2.StatusCode != http.StatusNotModified {
		t.Errorf("conditional status = %d, want 304", resp2.StatusCode)
	}
}

func TestServerWebSocketUnknownSession(t *testing.T) {
	s := newTestServer(t, nil)
	ts := httptest.NewServer(s.Handler())
	defer ts.Close()

	url := wsURL(t, ts.URL, "/picklist/live?session=deadbeef")
	_, resp, err := websocket.DefaultDialer.Dial(url, nil)
	if err == nil {
		t.Fatal("Dial succeeded for an unknown session")
	}
	if resp == nil || resp.StatusCode != http.StatusNotFound {
		t.Errorf("handshake response = %+v, want 404", resp)
	}
}

func TestServerEventRoundTrip(t *testing.T) {
	s := newTestServer(t, nil)
	s.RegisterPage("/", counterPage())
	ts := httptest.NewServer(s.Handler())
	defer ts.Close()

	body, sessionID := getPage(t, ts, "/")

	m := clickHIDRe.FindStringSubmatch(body)
	if m == nil {
		t.Fatalf("no click target in page:\n%s", body)
	}
	buttonHID := m[1]

	conn := dialWS(t, wsURL(t, ts.URL, "/picklist/live?session="+sessionID))

	err := conn.WriteJSON(map[string]string{
		"type":  "event",
		"hid":   buttonHID,
		"event": "click",
	})
	if err != nil {
		t.Fatalf("WriteJSON failed: %v", err)
	}

	var frame struct {
		Type    string `json:"type"`
		Seq     uint64 `json:"seq"`
		Patches []struct {
			Op    string `json:"op"`
			HID   string `json:"hid"`
			Value string `json:"value"`
		} `json:"patches"`
	}
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	if err := conn.ReadJSON(&frame); err != nil {
		t.Fatalf("ReadJSON failed: %v", err)
	}

	if frame.Type != "patches" {
		t.Fatalf("frame type = %q, want %q", frame.Type, "patches")
	}
	if frame.Seq != 1 {
		t.Errorf("seq = %d, want 1", frame.Seq)
	}
	if len(frame.Patches) != 1 {
		t.Fatalf("len(patches) = %d, want 1: %+v", len(frame.Patches), frame.Patches)
	}
	p := frame.Patches[0]
	if p.Op != "set-text" {
		t.Errorf("op = %q, want %q", p.Op, "set-text")
	}
	if p.HID != buttonHID {
		t.Errorf("hid = %q, want %q", p.HID, buttonHID)
	}
	if p.Value != "count: 1" {
		t.Errorf("value = %q, want %q", p.Value, "count: 1")
	}
}

func TestServerWebSocketPingPong(t *testing.T) {
	s := newTestServer(t, nil)
	s.RegisterPage("/", counterPage())
	ts := httptest.NewServer(s.Handler())
	defer ts.Close()

	_, sessionID := getPage(t, ts, "/")
	conn := dialWS(t, wsURL(t, ts.URL, "/picklist/live?session="+sessionID))

	if err := conn.WriteJSON(map[string]any{"type": "ping", "ts": 42}); err != nil {
		t.Fatalf("WriteJSON failed: %v", err)
	}

	var frame struct {
		Type string `json:"type"`
		TS   int64  `json:"ts"`
	}
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	if err := conn.ReadJSON(&frame); err != nil {
		t.Fatalf("ReadJSON failed: %v", err)
	}
	if frame.Type != "pong" || frame.TS != 42 {
		t.Errorf("frame = %+v, want pong with ts 42", frame)
	}
}

func TestServerCleanupExpired(t *testing.T) {
	s := newTestServer(t, nil)
	s.RegisterPage("/", counterPage())
	ts := httptest.NewServer(s.Handler())
	defer ts.Close()

	_, sessionID := getPage(t, ts, "/")
	sess, ok := s.Session(sessionID)
	if !ok {
		t.Fatal("session not tracked")
	}

	sess.lastActive.Store(time.Now().Add(-time.Hour).UnixNano())
	s.cleanupExpired()

	if got := s.SessionCount(); got != 0 {
		t.Errorf("SessionCount() = %d, want 0 after cleanup", got)
	}
	if !sess.IsClosed() {
		t.Error("expired session not closed")
	}
}

func TestServerShutdownClosesSessions(t *testing.T) {
	s := newTestServer(t, nil)
	s.RegisterPage("/", counterPage())
	ts := httptest.NewServer(s.Handler())
	defer ts.Close()

	_, sessionID := getPage(t, ts, "/")
	sess, _ := s.Session(sessionID)

	if err := s.Shutdown(context.Background()); err != nil {
		t.Fatalf("Shutdown() error = %v", err)
	}
	if sess == nil || !sess.IsClosed() {
		t.Error("session still open after Shutdown")
	}
	if got := s.SessionCount(); got != 0 {
		t.Errorf("SessionCount() = %d, want 0", got)
	}
}

func TestServerMountsUnderChi(t *testing.T) {
	s := newTestServer(t, nil)
	s.RegisterPage("/", counterPage())

	r := chi.NewRouter()
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Handle("/*", s.Handler())

	ts := httptest.NewServer(r)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatalf("GET /healthz failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("/healthz status = %d, want 200", resp.StatusCode)
	}

	body, _ := getPage(t, ts, "/")
	if !strings.Contains(body, "count: 0") {
		t.Error("page not served through the router")
	}
}
