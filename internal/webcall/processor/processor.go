package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"webcall-server/internal/clients/retell"
	"webcall-server/internal/observability"
)

// RetellClient defines the provider operations required by WebCallProcessor
type RetellClient interface {
	CreateWebCall(ctx context.Context, agentID string) (retell.WebCall, error)
	RegisterPhoneCall(ctx context.Context, agentID, fromNumber, toNumber string) (retell.PhoneCall, error)
}

var (
	ErrAgentIDRequired = errors.New("agentId is required")
	ErrProviderFailure = errors.New("voice provider request failed")
)

// ProviderError is returned when the provider rejected the request or could
// not be reached. Detail is safe to show to the caller.
type ProviderError struct {
	Op     string
	Detail string
	Err    error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Detail)
}

func (e *ProviderError) Unwrap() error { return e.Err }

func (e *ProviderError) Is(target error) bool { return target == ErrProviderFailure }

// CallCredential is a single-use credential for one call attempt.
type CallCredential struct {
	AccessToken string
	CallID      string
	AgentID     string
	Status      string
}

// PhoneRegistration is a provider call id reserved for an inbound phone leg.
type PhoneRegistration struct {
	CallID  string
	AgentID string
	Status  string
}

type WebCallProcessor struct {
	client  RetellClient
	timeout time.Duration
	logger  *observability.Logger
}

func New(client RetellClient, timeout time.Duration, logger *observability.Logger) *WebCallProcessor {
	return &WebCallProcessor{
		client:  client,
		timeout: timeout,
		logger:  logger,
	}
}

// Provision exchanges an agent id for a fresh call credential.
func (p *WebCallProcessor) Provision(ctx context.Context, agentID string) (CallCredential, error) {
	agentID = strings.TrimSpace(agentID)
	if agentID == "" {
		observability.RecordProvision("web", "invalid")
		return CallCredential{}, ErrAgentIDRequired
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "agent_id", Value: agentID})

	callCtx, cancel := p.withTimeout(ctx)
	defer cancel()

	call, err := p.client.CreateWebCall(callCtx, agentID)
	if err != nil {
		p.logger.Error(ctx, "failed to create web call", err)
		observability.RecordProvision("web", "provider_error")
		return CallCredential{}, providerError("create web call", err)
	}

	status := call.CallStatus
	if status == "" {
		status = "registered"
	}
	boundAgent := call.AgentID
	if boundAgent == "" {
		boundAgent = agentID
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "call_id", Value: call.CallID})
	p.logger.Info(ctx, "web call provisioned")
	observability.RecordProvision("web", "success")

	return CallCredential{
		AccessToken: call.AccessToken,
		CallID:      call.CallID,
		AgentID:     boundAgent,
		Status:      status,
	}, nil
}

// RegisterPhoneCall reserves a provider call for an inbound phone call that
// will be bridged over SIP.
func (p *WebCallProcessor) RegisterPhoneCall(ctx context.Context, agentID, fromNumber, toNumber string) (PhoneRegistration, error) {
	agentID = strings.TrimSpace(agentID)
	if agentID == "" {
		observability.RecordProvision("phone", "invalid")
		return PhoneRegistration{}, ErrAgentIDRequired
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "agent_id", Value: agentID},
		observability.Field{Key: "from_number", Value: fromNumber},
	)

	callCtx, cancel := p.withTimeout(ctx)
	defer cancel()

	call, err := p.client.RegisterPhoneCall(callCtx, agentID, fromNumber, toNumber)
	if err != nil {
		p.logger.Error(ctx, "failed to register phone call", err)
		observability.RecordProvision("phone", "provider_error")
		return PhoneRegistration{}, providerError("register phone call", err)
	}

	p.logger.Info(observability.WithFields(ctx, observability.Field{Key: "call_id", Value: call.CallID}), "phone call registered")
	observability.RecordProvision("phone", "success")

	return PhoneRegistration{
		CallID:  call.CallID,
		AgentID: agentID,
		Status:  call.CallStatus,
	}, nil
}

func (p *WebCallProcessor) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if p.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, p.timeout)
}

func providerError(op string, err error) *ProviderError {
	detail := err.Error()

	var apiErr *retell.APIError
	switch {
	case errors.As(err, &apiErr):
		detail = apiErr.Message
	case errors.Is(err, context.DeadlineExceeded):
		detail = "voice provider did not respond in time"
	case errors.Is(err, retell.ErrNotConfigured):
		detail = "voice provider is not configured"
	}

	return &ProviderError{Op: op, Detail: detail, Err: err}
}
