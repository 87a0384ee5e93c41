package live

import (
	"encoding/json"
	"time"

	"github.com/gorilla/websocket"

	"github.com/picklist-dev/picklist/internal/errors"
	"github.com/picklist-dev/picklist/pkg/middleware"
)

// Start launches the session's goroutines: the read loop decoding client
// frames, the write loop sending heartbeats, and the event loop
// dispatching handlers. Call after attach.
func (s *Session) Start() {
	s.mu.Lock()
	if s.conn != nil {
		s.conn.SetReadLimit(s.config.MaxMessageSize)
	}
	s.mu.Unlock()

	go s.readLoop()
	go s.writeLoop()
	go s.eventLoop()
}

// readLoop reads frames from the client until the connection drops.
func (s *Session) readLoop() {
	defer s.Close()

	for {
		s.mu.Lock()
		conn := s.conn
		s.mu.Unlock()
		if conn == nil {
			return
		}

		conn.SetReadDeadline(time.Now().Add(s.config.ReadTimeout))
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Warn("read error", "error", err)
				middleware.RecordWebSocketError("read")
			}
			return
		}
		s.touch()

		var frame eventFrame
		if err := json.Unmarshal(data, &frame); err != nil {
			s.logger.Warn("malformed frame", "error", err)
			s.sendError(errors.New("E003"))
			middleware.RecordWebSocketError("decode")
			middleware.RecordEvent("bad_frame")
			continue
		}

		switch frame.Type {
		case frameEvent:
			if err := s.queueEvent(frame); err != nil {
				s.logger.Warn("event dropped", "error", err, "hid", frame.HID)
			}
		case framePing:
			s.sendPong(frame.TS)
		case framePong:
			s.logger.Debug("pong received")
		default:
			s.logger.Warn("unknown frame type", "type", frame.Type)
		}
	}
}

// writeLoop sends heartbeat pings so proxies keep the connection open and
// dead clients are detected within a read timeout.
func (s *Session) writeLoop() {
	ticker := time.NewTicker(s.config.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := s.sendPing(); err != nil {
				return
			}
		case <-s.done:
			return
		}
	}
}

// eventLoop dispatches queued events one at a time. Handler code and the
// current tree are only touched here.
func (s *Session) eventLoop() {
	for {
		select {
		case ev := <-s.events:
			s.handleEvent(ev)
		case <-s.done:
			return
		}
	}
}

func (s *Session) sendPing() error {
	return s.send(pingFrame{Type: framePing, TS: time.Now().UnixMilli()})
}

func (s *Session) sendPong(ts int64) {
	s.send(pingFrame{Type: framePong, TS: ts})
}
