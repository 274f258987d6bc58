package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"webcall-server/internal/agents"
	"webcall-server/internal/clients/automation"
	"webcall-server/internal/observability"
	"webcall-server/internal/store"
)

// SettingsStore defines the persistence operations required by AgentStatusProcessor
type SettingsStore interface {
	GetReceptionistStatus(ctx context.Context) (bool, error)
	SetReceptionistStatus(ctx context.Context, active bool) error
	GetActiveAgent(ctx context.Context) (store.ActiveAgent, error)
	SetActiveAgent(ctx context.Context, agent store.ActiveAgent) error
}

// AutomationClient notifies the phone routing workflow of a new active agent
type AutomationClient interface {
	NotifyActiveAgent(ctx context.Context, agentID, label string) (automation.ActiveAgentResponse, error)
}

var (
	ErrAgentIDRequired  = errors.New("agent id is required")
	ErrUnknownAgent     = errors.New("unknown agent")
	ErrNoActiveAgent    = errors.New("no active agent selected")
	ErrAutomationFailed = errors.New("failed to notify automation webhook")
)

// ActiveAgent is the selected agent joined with its catalog entry.
type ActiveAgent struct {
	AgentID   string
	Label     string
	UpdatedAt time.Time
}

type AgentStatusProcessor struct {
	store      SettingsStore
	automation AutomationClient
	logger     *observability.Logger
	now        func() time.Time
}

func New(store SettingsStore, automation AutomationClient, logger *observability.Logger) *AgentStatusProcessor {
	return &AgentStatusProcessor{
		store:      store,
		automation: automation,
		logger:     logger,
		now:        time.Now,
	}
}

// GetStatus reports whether the receptionist is answering calls.
func (p *AgentStatusProcessor) GetStatus(ctx context.Context) (bool, error) {
	active, err := p.store.GetReceptionistStatus(ctx)
	if err != nil {
		p.logger.Error(ctx, "failed to get receptionist status", err)
		return false, err
	}
	return active, nil
}

// SetStatus turns the receptionist on or off and returns the stored value.
func (p *AgentStatusProcessor) SetStatus(ctx context.Context, active bool) (bool, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "active", Value: active})

	if err := p.store.SetReceptionistStatus(ctx, active); err != nil {
		p.logger.Error(ctx, "failed to set receptionist status", err)
		return false, err
	}

	p.logger.Info(ctx, "receptionist status updated")
	return active, nil
}

// GetActiveAgent returns the agent currently answering the phone number.
func (p *AgentStatusProcessor) GetActiveAgent(ctx context.Context) (ActiveAgent, error) {
	agent, err := p.store.GetActiveAgent(ctx)
	if errors.Is(err, store.ErrNotFound) {
		return ActiveAgent{}, ErrNoActiveAgent
	}
	if err != nil {
		p.logger.Error(ctx, "failed to get active agent", err)
		return ActiveAgent{}, err
	}
	return ActiveAgent{AgentID: agent.AgentID, Label: agent.Label, UpdatedAt: agent.UpdatedAt}, nil
}

// SelectActiveAgent makes agentID the agent answering the phone number. The
// automation webhook must accept the change before it is stored.
func (p *AgentStatusProcessor) SelectActiveAgent(ctx context.Context, agentID string) (ActiveAgent, error) {
	agentID = strings.TrimSpace(agentID)
	if agentID == "" {
		return ActiveAgent{}, ErrAgentIDRequired
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "agent_id", Value: agentID})

	descriptor, ok := agents.Find(agentID)
	if !ok {
		p.logger.Warn(ctx, "rejected unknown agent")
		return ActiveAgent{}, ErrUnknownAgent
	}

	resp, err := p.automation.NotifyActiveAgent(ctx, descriptor.AgentID, descriptor.Name)
	if err != nil {
		p.logger.Error(ctx, "automation webhook failed", err)
		return ActiveAgent{}, fmt.Errorf("%w: %v", ErrAutomationFailed, err)
	}

	label := resp.ActiveAgentLabel
	if label == "" {
		label = descriptor.Name
	}

	selected := store.ActiveAgent{
		AgentID:   descriptor.AgentID,
		Label:     label,
		UpdatedAt: p.now().UTC(),
	}
	if err := p.store.SetActiveAgent(ctx, selected); err != nil {
		p.logger.Error(ctx, "failed to store active agent", err)
		return ActiveAgent{}, err
	}

	p.logger.Info(ctx, "active agent updated")
	return ActiveAgent{AgentID: selected.AgentID, Label: selected.Label, UpdatedAt: selected.UpdatedAt}, nil
}
