// Package transport defines the contract between a call session and the
// realtime audio connection to the voice provider.
package transport

import "context"

// Kind identifies a provider lifecycle event.
type Kind string

const (
	KindCallStarted       Kind = "call_started"
	KindCallEnded         Kind = "call_ended"
	KindAgentStartTalking Kind = "agent_start_talking"
	KindAgentStopTalking  Kind = "agent_stop_talking"
	KindUpdate            Kind = "update"
	KindError             Kind = "error"
)

// Event is emitted by a Transport in provider order.
type Event struct {
	Kind    Kind
	Message string
	// Level is the agent audio amplitude in [0,1], set on KindUpdate.
	Level float64
}

// Transport is one live audio connection. Events is closed once the
// connection is gone. Close must be safe to call more than once.
type Transport interface {
	Events() <-chan Event
	SetMuted(muted bool) error
	Close() error
}

// Dialer opens a Transport with a single-use access token.
type Dialer interface {
	Dial(ctx context.Context, accessToken string) (Transport, error)
}
