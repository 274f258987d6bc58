package session

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"
	"webcall-server/internal/session/transport"
	"webcall-server/internal/webcall/processor"

	"github.com/stretchr/testify/require"
)

type fakeTransport struct {
	mu     sync.Mutex
	events chan transport.Event
	muted  []bool
	closed bool
}

func newFakeTransport() *fakeTransport {
	return &fakeTransport{events: make(chan transport.Event, 32)}
}

func (f *fakeTransport) Events() <-chan transport.Event { return f.events }

func (f *fakeTransport) SetMuted(muted bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.muted = append(f.muted, muted)
	return nil
}

func (f *fakeTransport) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.closed {
		f.closed = true
		close(f.events)
	}
	return nil
}

// emit pushes a provider event unless the transport is already closed.
func (f *fakeTransport) emit(kind transport.Kind) {
	f.emitEvent(transport.Event{Kind: kind})
}

func (f *fakeTransport) emitEvent(ev transport.Event) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.closed {
		f.events <- ev
	}
}

// drop simulates the provider side disappearing.
func (f *fakeTransport) drop() { _ = f.Close() }

func (f *fakeTransport) isClosed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.closed
}

func (f *fakeTransport) mutes() []bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]bool(nil), f.muted...)
}

type fakeDialer struct {
	mu         sync.Mutex
	err        error
	gate       chan struct{}
	entered    chan struct{}
	tokens     []string
	transports []*fakeTransport
}

func newFakeDialer() *fakeDialer {
	return &fakeDialer{entered: make(chan struct{}, 8)}
}

func (d *fakeDialer) Dial(ctx context.Context, accessToken string) (transport.Transport, error) {
	d.entered <- struct{}{}

	d.mu.Lock()
	gate, err := d.gate, d.err
	d.tokens = append(d.tokens, accessToken)
	d.mu.Unlock()

	if gate != nil {
		<-gate
	}
	if err != nil {
		return nil, err
	}

	tr := newFakeTransport()
	d.mu.Lock()
	d.transports = append(d.transports, tr)
	d.mu.Unlock()
	return tr, nil
}

func (d *fakeDialer) dials() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.tokens)
}

func (d *fakeDialer) last(t *testing.T) *fakeTransport {
	t.Helper()
	d.mu.Lock()
	defer d.mu.Unlock()
	require.NotEmpty(t, d.transports, "no transport dialed")
	return d.transports[len(d.transports)-1]
}

type fakeProvisioner struct {
	mu   sync.Mutex
	n    int
	err  error
	gate chan struct{}
}

func (p *fakeProvisioner) Provision(ctx context.Context, agentID string) (processor.CallCredential, error) {
	p.mu.Lock()
	gate, err := p.gate, p.err
	p.mu.Unlock()

	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return processor.CallCredential{}, ctx.Err()
		}
	}
	if err != nil {
		return processor.CallCredential{}, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.n++
	return processor.CallCredential{
		AccessToken: fmt.Sprintf("tok_%d", p.n),
		CallID:      fmt.Sprintf("call_%d", p.n),
		AgentID:     agentID,
		Status:      "registered",
	}, nil
}

func (p *fakeProvisioner) setErr(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.err = err
}

func cred(n int) processor.CallCredential {
	return processor.CallCredential{
		AccessToken: fmt.Sprintf("tok_%d", n),
		CallID:      fmt.Sprintf("call_%d", n),
		AgentID:     "agent_X",
		Status:      "registered",
	}
}

func nextClientEvent(t *testing.T, ch <-chan Event) Event {
	t.Helper()
	select {
	case ev := <-ch:
		return ev
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for client event")
		return Event{}
	}
}

func assertNoClientEvent(t *testing.T, ch <-chan Event) {
	t.Helper()
	select {
	case ev := <-ch:
		t.Fatalf("unexpected event %+v", ev)
	case <-time.After(50 * time.Millisecond):
	}
}
