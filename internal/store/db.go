package store

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("not found")

// ActiveAgent is the agent that answers calls on the business phone number.
type ActiveAgent struct {
	AgentID   string    `json:"agentId"`
	Label     string    `json:"label"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Store persists receptionist settings. Implementations must be safe for
// concurrent use.
type Store interface {
	// GetReceptionistStatus reports whether the receptionist answers calls.
	// It defaults to true when nothing was stored yet.
	GetReceptionistStatus(ctx context.Context) (bool, error)
	SetReceptionistStatus(ctx context.Context, active bool) error
	// GetActiveAgent returns ErrNotFound when no agent was selected.
	GetActiveAgent(ctx context.Context) (ActiveAgent, error)
	SetActiveAgent(ctx context.Context, agent ActiveAgent) error
}
