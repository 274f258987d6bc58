package session

import (
	"context"
	"fmt"
	"sync"
	"webcall-server/internal/observability"
	"webcall-server/internal/session/transport"
	"webcall-server/internal/webcall/processor"
)

const subscriberBuffer = 16

type clientState int

const (
	clientIdle clientState = iota
	clientConnecting
	clientOngoing
)

// Client owns at most one realtime transport at a time. It is safe for
// concurrent use; events are delivered to subscribers in provider order.
type Client struct {
	dialer transport.Dialer
	logger *observability.Logger

	mu        sync.Mutex
	state     clientState
	callID    string
	cred      *processor.CallCredential
	tr        transport.Transport
	usedCalls map[string]struct{}

	muteMu sync.Mutex
	muted  bool

	subMu sync.Mutex
	subs  map[*subscriber]struct{}
}

type subscriber struct {
	ch   chan Event
	done chan struct{}
	once sync.Once
}

func NewClient(dialer transport.Dialer, logger *observability.Logger) *Client {
	return &Client{
		dialer:    dialer,
		logger:    logger,
		usedCalls: make(map[string]struct{}),
		subs:      make(map[*subscriber]struct{}),
	}
}

// Start opens the transport with cred. It returns once the connection is
// established; EventStarted follows when the provider begins the call.
// A second Start while connecting or ongoing fails with ErrSessionInProgress
// and leaves the current attempt alone.
func (c *Client) Start(ctx context.Context, cred processor.CallCredential) error {
	if cred.AccessToken == "" || cred.CallID == "" {
		return ErrInvalidCredential
	}

	c.mu.Lock()
	if c.state != clientIdle {
		c.mu.Unlock()
		return ErrSessionInProgress
	}
	if _, used := c.usedCalls[cred.CallID]; used {
		c.mu.Unlock()
		return ErrCredentialConsumed
	}
	c.usedCalls[cred.CallID] = struct{}{}
	c.state = clientConnecting
	c.callID = cred.CallID
	c.cred = &cred
	c.mu.Unlock()

	ctx = observability.WithFields(ctx, observability.Field{Key: "call_id", Value: cred.CallID})

	tr, err := c.dialer.Dial(ctx, cred.AccessToken)

	c.mu.Lock()
	if c.state != clientConnecting || c.callID != cred.CallID {
		// Stopped while dialing.
		c.mu.Unlock()
		if tr != nil {
			_ = tr.Close()
		}
		return ErrAttemptAbandoned
	}
	if err != nil {
		c.state = clientIdle
		c.cred = nil
		c.mu.Unlock()

		c.logger.Error(ctx, "failed to open realtime transport", err)
		c.publish(Event{Kind: EventError, CallID: cred.CallID, Message: err.Error()})
		return fmt.Errorf("%w: %v", ErrTransport, err)
	}
	c.tr = tr
	c.mu.Unlock()

	c.muteMu.Lock()
	if c.muted {
		if err := tr.SetMuted(true); err != nil {
			c.logger.Warn(ctx, "failed to apply mute to new transport", observability.Field{Key: "error", Value: err.Error()})
		}
	}
	c.muteMu.Unlock()

	go c.pump(ctx, cred.CallID, tr)
	return nil
}

// Stop tears down the current transport. It is safe to call at any time and
// more than once.
func (c *Client) Stop() {
	c.mu.Lock()
	tr := c.tr
	c.tr = nil
	c.state = clientIdle
	c.cred = nil
	c.mu.Unlock()

	if tr != nil {
		_ = tr.Close()
	}
}

// StopCall is Stop for callID only. It leaves a newer attempt alone.
func (c *Client) StopCall(callID string) {
	c.mu.Lock()
	if c.callID != callID || c.state == clientIdle {
		c.mu.Unlock()
		return
	}
	tr := c.tr
	c.tr = nil
	c.state = clientIdle
	c.cred = nil
	c.mu.Unlock()

	if tr != nil {
		_ = tr.Close()
	}
}

// ToggleMute flips the outbound audio mute flag and returns the new value. The
// flag survives across attempts.
func (c *Client) ToggleMute() bool {
	c.muteMu.Lock()
	defer c.muteMu.Unlock()

	c.muted = !c.muted

	c.mu.Lock()
	tr := c.tr
	c.mu.Unlock()

	if tr != nil {
		if err := tr.SetMuted(c.muted); err != nil {
			c.logger.Warn(context.Background(), "failed to send mute to transport", observability.Field{Key: "error", Value: err.Error()})
		}
	}
	return c.muted
}

// Muted reports the local mute flag.
func (c *Client) Muted() bool {
	c.muteMu.Lock()
	defer c.muteMu.Unlock()
	return c.muted
}

// Outstanding reports whether a credential was handed to Start and the
// attempt has neither started nor failed yet.
func (c *Client) Outstanding() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cred != nil
}

// Subscribe returns a channel of events and a func that removes the
// subscription. The channel is never closed. Lifecycle events wait for the
// subscriber; activity events are dropped when it falls behind.
func (c *Client) Subscribe() (<-chan Event, func()) {
	s := &subscriber{
		ch:   make(chan Event, subscriberBuffer),
		done: make(chan struct{}),
	}

	c.subMu.Lock()
	c.subs[s] = struct{}{}
	c.subMu.Unlock()

	return s.ch, func() {
		s.once.Do(func() {
			c.subMu.Lock()
			delete(c.subs, s)
			c.subMu.Unlock()
			close(s.done)
		})
	}
}

func (c *Client) pump(ctx context.Context, callID string, tr transport.Transport) {
	for ev := range tr.Events() {
		if !c.handle(callID, tr, ev) {
			return
		}
	}

	// The provider side went away without saying why.
	if c.teardown(tr) {
		c.logger.Warn(ctx, "realtime transport closed unexpectedly")
		c.publish(Event{Kind: EventError, CallID: callID, Message: "connection closed unexpectedly"})
	}
}

// handle maps one transport event. It returns false once the attempt is over.
func (c *Client) handle(callID string, tr transport.Transport, ev transport.Event) bool {
	switch ev.Kind {
	case transport.KindCallStarted:
		c.mu.Lock()
		current := c.tr == tr
		if current {
			c.state = clientOngoing
			c.cred = nil
		}
		c.mu.Unlock()
		if !current {
			return false
		}
		c.publish(Event{Kind: EventStarted, CallID: callID})

	case transport.KindAgentStartTalking, transport.KindAgentStopTalking:
		if !c.ongoing(tr) {
			return c.current(tr)
		}
		kind := EventAgentSpeakingStarted
		if ev.Kind == transport.KindAgentStopTalking {
			kind = EventAgentSpeakingStopped
		}
		c.publish(Event{Kind: kind, CallID: callID})

	case transport.KindUpdate:
		if c.ongoing(tr) {
			c.publishActivity(Event{Kind: EventActivity, CallID: callID, Level: ev.Level})
		}

	case transport.KindCallEnded:
		if c.teardown(tr) {
			c.publish(Event{Kind: EventEnded, CallID: callID})
		}
		return false

	case transport.KindError:
		if c.teardown(tr) {
			c.publish(Event{Kind: EventError, CallID: callID, Message: ev.Message})
		}
		return false
	}
	return true
}

func (c *Client) current(tr transport.Transport) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tr == tr
}

func (c *Client) ongoing(tr transport.Transport) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tr == tr && c.state == clientOngoing
}

// teardown releases tr if it is still the current transport. Only the first
// caller for a given transport gets true.
func (c *Client) teardown(tr transport.Transport) bool {
	c.mu.Lock()
	if c.tr != tr {
		c.mu.Unlock()
		return false
	}
	c.tr = nil
	c.state = clientIdle
	c.cred = nil
	c.mu.Unlock()

	_ = tr.Close()
	return true
}

func (c *Client) snapshotSubscribers() []*subscriber {
	c.subMu.Lock()
	defer c.subMu.Unlock()
	subs := make([]*subscriber, 0, len(c.subs))
	for s := range c.subs {
		subs = append(subs, s)
	}
	return subs
}

func (c *Client) publish(ev Event) {
	for _, s := range c.snapshotSubscribers() {
		select {
		case s.ch <- ev:
		case <-s.done:
		}
	}
}

func (c *Client) publishActivity(ev Event) {
	for _, s := range c.snapshotSubscribers() {
		select {
		case s.ch <- ev:
		default:
		}
	}
}
