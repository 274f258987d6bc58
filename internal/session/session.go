// Package session reconciles a realtime voice call with user commands.
//
// Client owns the provider transport for one UI connection and turns its
// frames into Events. Machine holds the authoritative CallSession and decides
// which events and commands may move it. Controller wires the two together
// with a CredentialProvisioner and is what the UI talks to.
package session

import "errors"

// Status is the lifecycle state of a call attempt.
type Status string

const (
	StatusIdle         Status = "idle"
	StatusProvisioning Status = "provisioning"
	StatusConnecting   Status = "connecting"
	StatusOngoing      Status = "ongoing"
	StatusEnded        Status = "ended"
	StatusError        Status = "error"
)

// inFlight reports whether an attempt is still being set up or running.
func (s Status) inFlight() bool {
	return s == StatusProvisioning || s == StatusConnecting || s == StatusOngoing
}

// CallSession is the state rendered by the UI.
type CallSession struct {
	Status        Status `json:"status"`
	Active        bool   `json:"active"`
	Muted         bool   `json:"muted"`
	AgentSpeaking bool   `json:"agentSpeaking"`
	LastError     string `json:"error,omitempty"`
	Attempt       uint64 `json:"attempt"`
	CallID        string `json:"callId,omitempty"`
	AgentID       string `json:"agentId,omitempty"`
}

// EventKind identifies an event emitted by Client.
type EventKind string

const (
	EventStarted              EventKind = "started"
	EventEnded                EventKind = "ended"
	EventAgentSpeakingStarted EventKind = "agentSpeakingStarted"
	EventAgentSpeakingStopped EventKind = "agentSpeakingStopped"
	EventError                EventKind = "error"
	// EventActivity carries the agent audio level. It is best effort and may be dropped.
	EventActivity EventKind = "activity"
)

// Event is emitted by Client. CallID names the attempt the event belongs to.
type Event struct {
	Kind    EventKind
	CallID  string
	Message string
	Level   float64
}

var (
	ErrSessionInProgress  = errors.New("a call is already in progress")
	ErrCredentialConsumed = errors.New("call credential was already used")
	ErrInvalidCredential  = errors.New("call credential is missing an access token or call id")
	ErrTransport          = errors.New("realtime transport failed")
	ErrAttemptAbandoned   = errors.New("call attempt was ended before it connected")
)
