package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
	"webcall-server/internal/observability"
	"webcall-server/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const writeTimeout = 5 * time.Second

// ControllerFactory builds the call controller for one UI connection.
type ControllerFactory func() *session.Controller

type Handler struct {
	newController ControllerFactory
	tracker       *session.Tracker
	upgrader      websocket.Upgrader
	logger        *observability.Logger
}

// New creates the session socket handler. Browser connections are only
// accepted from allowedOrigins; requests without an Origin header are allowed.
func New(newController ControllerFactory, tracker *session.Tracker, allowedOrigins []string, logger *observability.Logger) Handler {
	origins := make(map[string]struct{}, len(allowedOrigins))
	for _, o := range allowedOrigins {
		if o = strings.TrimRight(strings.TrimSpace(o), "/"); o != "" {
			origins[o] = struct{}{}
		}
	}

	return Handler{
		newController: newController,
		tracker:       tracker,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				if origin == "" {
					return true
				}
				if _, ok := origins["*"]; ok {
					return true
				}
				u, err := url.Parse(origin)
				if err != nil {
					return false
				}
				_, ok := origins[u.Scheme+"://"+u.Host]
				return ok
			},
		},
		logger: logger,
	}
}

// command is sent by the UI.
type command struct {
	Type    string `json:"type"`
	AgentID string `json:"agentId,omitempty"`
}

// message is sent to the UI.
type message struct {
	Type    string               `json:"type"`
	Session *session.CallSession `json:"session,omitempty"`
	Level   *float64             `json:"level,omitempty"`
	Code    string               `json:"code,omitempty"`
	Message string               `json:"message,omitempty"`
}

type socket struct {
	conn    *websocket.Conn
	writeMu sync.Mutex
}

func (s *socket) send(m message) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	_ = s.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	return s.conn.WriteJSON(m)
}

// HandleSession serves GET /api/session/ws. Each connection owns one call
// controller; closing the socket ends any call in progress.
func (h *Handler) HandleSession(c *gin.Context) {
	connID := uuid.New().String()
	ctx, cancel := context.WithCancel(observability.WithFields(c.Request.Context(),
		observability.Field{Key: "session_conn_id", Value: connID},
	))
	defer cancel()

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error(ctx, "WebSocket upgrade failed", err)
		return
	}
	defer conn.Close()

	sock := &socket{conn: conn}
	unregister := h.tracker.Register(connID, session.ConnHandle{
		Cancel: cancel,
		Notify: func(code, msg string) error {
			return sock.send(message{Type: "notice", Code: code, Message: msg})
		},
	})
	defer unregister()

	// Closed before unregistering so Tracker.Wait covers call teardown.
	ctrl := h.newController()
	defer ctrl.Close()

	observability.SessionConnectionOpened()
	defer observability.SessionConnectionClosed()
	h.logger.Info(ctx, "session connection established")

	go h.writeLoop(ctx, sock, ctrl)

	// Unblock the reader when the connection is canceled from outside.
	go func() {
		<-ctx.Done()
		_ = conn.Close()
	}()

	h.readLoop(ctx, sock, ctrl)
	h.logger.Info(ctx, "session connection closed")
}

func (h *Handler) readLoop(ctx context.Context, sock *socket, ctrl *session.Controller) {
	for {
		var cmd command
		if err := sock.conn.ReadJSON(&cmd); err != nil {
			if ctx.Err() == nil && !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				h.logger.Warn(ctx, "session read failed", observability.Field{Key: "error", Value: err.Error()})
			}
			return
		}

		switch cmd.Type {
		case "start":
			go h.startCall(ctx, sock, ctrl, cmd.AgentID)
		case "end":
			ctrl.EndCall()
		case "mute":
			ctrl.ToggleMute()
		default:
			h.logger.Debug(ctx, fmt.Sprintf("ignoring session command: %s", cmd.Type))
			_ = sock.send(message{Type: "error", Message: fmt.Sprintf("unknown command %q", cmd.Type)})
		}
	}
}

func (h *Handler) startCall(ctx context.Context, sock *socket, ctrl *session.Controller, agentID string) {
	err := ctrl.StartCall(ctx, agentID)
	switch {
	case err == nil, errors.Is(err, session.ErrAttemptAbandoned):
	case errors.Is(err, session.ErrSessionInProgress):
		_ = sock.send(message{Type: "error", Code: "SESSION_IN_PROGRESS", Message: err.Error()})
	default:
		// Already reflected in the session state.
		h.logger.Warn(ctx, "call attempt failed", observability.Field{Key: "error", Value: err.Error()})
	}
}

func (h *Handler) writeLoop(ctx context.Context, sock *socket, ctrl *session.Controller) {
	updates, stop := ctrl.Watch()
	defer stop()

	for {
		select {
		case <-ctx.Done():
			return
		case s := <-updates:
			if err := sock.send(message{Type: "state", Session: &s}); err != nil {
				return
			}
		case level := <-ctrl.Activity():
			if err := sock.send(message{Type: "activity", Level: &level}); err != nil {
				return
			}
		}
	}
}
