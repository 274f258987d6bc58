package retell

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"
	"webcall-server/internal/observability"
	"webcall-server/internal/session/transport"

	"github.com/gorilla/websocket"
)

const (
	eventBufferSize = 64
	writeTimeout    = 5 * time.Second
)

// RealtimeDialer opens the realtime call socket for a web call access token.
type RealtimeDialer struct {
	url    string
	dialer *websocket.Dialer
	logger *observability.Logger
}

func NewRealtimeDialer(url string, logger *observability.Logger) *RealtimeDialer {
	return &RealtimeDialer{
		url: url,
		dialer: &websocket.Dialer{
			HandshakeTimeout: 10 * time.Second,
		},
		logger: logger,
	}
}

// Dial connects with the access token. The returned transport starts reading
// provider frames immediately; call_started arrives as an event later.
func (d *RealtimeDialer) Dial(ctx context.Context, accessToken string) (transport.Transport, error) {
	header := http.Header{}
	header.Set("Authorization", "Bearer "+accessToken)

	conn, _, err := d.dialer.DialContext(ctx, d.url, header)
	if err != nil {
		return nil, fmt.Errorf("failed to connect realtime socket: %w", err)
	}

	rc := &realtimeConn{
		conn:   conn,
		events: make(chan transport.Event, eventBufferSize),
		done:   make(chan struct{}),
		logger: d.logger,
	}
	go rc.readLoop()

	return rc, nil
}

// frame is the JSON shape exchanged on the realtime socket.
type frame struct {
	Event     string  `json:"event"`
	Message   string  `json:"message,omitempty"`
	Amplitude float64 `json:"amplitude,omitempty"`
	Muted     *bool   `json:"muted,omitempty"`
}

type realtimeConn struct {
	conn      *websocket.Conn
	events    chan transport.Event
	done      chan struct{}
	closeOnce sync.Once
	writeMu   sync.Mutex
	logger    *observability.Logger
}

func (r *realtimeConn) Events() <-chan transport.Event {
	return r.events
}

// SetMuted tells the provider to stop or resume taking microphone audio. It
// does not wait for an acknowledgement.
func (r *realtimeConn) SetMuted(muted bool) error {
	return r.write(frame{Event: "mute", Muted: &muted})
}

func (r *realtimeConn) Close() error {
	var err error
	r.closeOnce.Do(func() {
		close(r.done)
		r.writeMu.Lock()
		_ = r.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		_ = r.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
		r.writeMu.Unlock()
		err = r.conn.Close()
	})
	return err
}

func (r *realtimeConn) write(f frame) error {
	select {
	case <-r.done:
		return errConnClosed
	default:
	}

	r.writeMu.Lock()
	defer r.writeMu.Unlock()
	_ = r.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	return r.conn.WriteJSON(f)
}

var errConnClosed = errors.New("realtime connection closed")

func (r *realtimeConn) readLoop() {
	defer close(r.events)

	ctx := context.Background()
	for {
		_, data, err := r.conn.ReadMessage()
		if err != nil {
			select {
			case <-r.done:
				// Closed locally.
				return
			default:
			}
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				r.logger.Info(ctx, "realtime socket closed by provider")
				r.emit(transport.Event{Kind: transport.KindCallEnded})
				return
			}
			r.logger.Error(ctx, "realtime socket read error", err)
			r.emit(transport.Event{Kind: transport.KindError, Message: fmt.Sprintf("connection lost: %v", err)})
			return
		}

		var f frame
		if err := json.Unmarshal(data, &f); err != nil {
			r.logger.Error(ctx, "failed to parse realtime frame", err)
			continue
		}

		ev, ok := toEvent(f)
		if !ok {
			r.logger.Debug(ctx, fmt.Sprintf("ignoring realtime frame: %s", f.Event))
			continue
		}
		if !r.emit(ev) {
			return
		}
		if ev.Kind == transport.KindCallEnded || ev.Kind == transport.KindError {
			return
		}
	}
}

// emit delivers ev unless the connection was closed locally.
func (r *realtimeConn) emit(ev transport.Event) bool {
	select {
	case r.events <- ev:
		return true
	case <-r.done:
		return false
	}
}

func toEvent(f frame) (transport.Event, bool) {
	switch transport.Kind(f.Event) {
	case transport.KindCallStarted, transport.KindCallEnded,
		transport.KindAgentStartTalking, transport.KindAgentStopTalking:
		return transport.Event{Kind: transport.Kind(f.Event)}, true
	case transport.KindUpdate:
		return transport.Event{Kind: transport.KindUpdate, Level: clamp(f.Amplitude)}, true
	case transport.KindError:
		msg := f.Message
		if msg == "" {
			msg = "Unknown error"
		}
		return transport.Event{Kind: transport.KindError, Message: msg}, true
	default:
		return transport.Event{}, false
	}
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
