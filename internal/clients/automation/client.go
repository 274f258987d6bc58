package automation

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
	"webcall-server/internal/observability"
)

var ErrRejected = errors.New("automation webhook rejected the request")

// ActiveAgentResponse is the body returned by the agent-selector webhook.
type ActiveAgentResponse struct {
	Success          bool   `json:"success"`
	ActiveAgentID    string `json:"activeAgentId,omitempty"`
	ActiveAgentLabel string `json:"activeAgentLabel,omitempty"`
	Message          string `json:"message,omitempty"`
}

// Client notifies the workflow automation that routes the business phone
// number whenever the active agent changes.
type Client struct {
	webhookURL string
	httpClient *http.Client
	logger     *observability.Logger
}

// NewClient creates a webhook client. An empty URL disables notifications.
func NewClient(webhookURL string, logger *observability.Logger) *Client {
	return &Client{
		webhookURL: webhookURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger: logger,
	}
}

// IsEnabled returns true if a webhook URL is configured
func (c *Client) IsEnabled() bool {
	return c.webhookURL != ""
}

// NotifyActiveAgent posts the selected agent to the webhook. When the client is
// disabled it returns a successful response without calling out.
func (c *Client) NotifyActiveAgent(ctx context.Context, agentID, label string) (ActiveAgentResponse, error) {
	if !c.IsEnabled() {
		return ActiveAgentResponse{Success: true, ActiveAgentID: agentID, ActiveAgentLabel: label}, nil
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "agent_id", Value: agentID})

	payload, err := json.Marshal(map[string]string{"agentId": agentID})
	if err != nil {
		return ActiveAgentResponse{}, fmt.Errorf("failed to prepare webhook request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.webhookURL, bytes.NewBuffer(payload))
	if err != nil {
		c.logger.Error(ctx, "failed to create webhook request", err)
		return ActiveAgentResponse{}, fmt.Errorf("failed to create webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error(ctx, "failed to call automation webhook", err)
		return ActiveAgentResponse{}, fmt.Errorf("failed to call automation webhook: %w", err)
	}
	defer resp.Body.Close()

	var out ActiveAgentResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		c.logger.Error(ctx, "failed to parse automation webhook response", err)
		return ActiveAgentResponse{}, fmt.Errorf("failed to parse webhook response (status %d): %w", resp.StatusCode, err)
	}

	if resp.StatusCode >= http.StatusBadRequest || !out.Success {
		msg := out.Message
		if msg == "" {
			msg = "Failed to update active agent"
		}
		c.logger.Warn(ctx, "automation webhook rejected active agent",
			observability.Field{Key: "status_code", Value: resp.StatusCode},
			observability.Field{Key: "message", Value: msg},
		)
		return out, fmt.Errorf("%w: %s", ErrRejected, msg)
	}

	if out.ActiveAgentID == "" {
		out.ActiveAgentID = agentID
	}
	if out.ActiveAgentLabel == "" {
		out.ActiveAgentLabel = label
	}

	c.logger.Info(ctx, "automation webhook accepted active agent")
	return out, nil
}
