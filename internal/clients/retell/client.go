package retell

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"
	"webcall-server/internal/observability"
)

const apiTimeout = 30 * time.Second

var ErrNotConfigured = errors.New("retell client not configured")

// APIError is returned when the provider answers with a non-2xx status.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("retell API error (status %d): %s", e.StatusCode, e.Message)
}

// Client talks to the Retell REST API with the server-side API key.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     *observability.Logger
}

func NewClient(apiKey, baseURL string, logger *observability.Logger) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: apiTimeout,
		},
		logger: logger,
	}
}

// IsConfigured returns true if the client has required credentials
func (c *Client) IsConfigured() bool {
	return c.apiKey != "" && c.baseURL != ""
}

type createWebCallRequest struct {
	AgentID string `json:"agent_id"`
}

// WebCall is the provider response for a newly minted web call.
type WebCall struct {
	CallType    string `json:"call_type"`
	AccessToken string `json:"access_token"`
	CallID      string `json:"call_id"`
	AgentID     string `json:"agent_id"`
	CallStatus  string `json:"call_status"`
}

// CreateWebCall mints a single-use access token bound to a new call id.
func (c *Client) CreateWebCall(ctx context.Context, agentID string) (WebCall, error) {
	var call WebCall
	if err := c.post(ctx, "/v2/create-web-call", createWebCallRequest{AgentID: agentID}, &call); err != nil {
		return WebCall{}, err
	}
	if call.AccessToken == "" || call.CallID == "" {
		return WebCall{}, fmt.Errorf("retell create-web-call: response missing access token or call id")
	}
	return call, nil
}

type registerPhoneCallRequest struct {
	AgentID    string `json:"agent_id"`
	FromNumber string `json:"from_number,omitempty"`
	ToNumber   string `json:"to_number,omitempty"`
	Direction  string `json:"direction"`
}

// PhoneCall is the provider response for a registered inbound phone call.
type PhoneCall struct {
	CallID     string `json:"call_id"`
	AgentID    string `json:"agent_id"`
	CallStatus string `json:"call_status"`
}

// RegisterPhoneCall reserves a call id that an inbound SIP leg can dial into.
func (c *Client) RegisterPhoneCall(ctx context.Context, agentID, fromNumber, toNumber string) (PhoneCall, error) {
	req := registerPhoneCallRequest{
		AgentID:    agentID,
		FromNumber: fromNumber,
		ToNumber:   toNumber,
		Direction:  "inbound",
	}
	var call PhoneCall
	if err := c.post(ctx, "/v2/register-phone-call", req, &call); err != nil {
		return PhoneCall{}, err
	}
	if call.CallID == "" {
		return PhoneCall{}, fmt.Errorf("retell register-phone-call: response missing call id")
	}
	return call, nil
}

func (c *Client) post(ctx context.Context, path string, payload, out interface{}) error {
	if !c.IsConfigured() {
		return ErrNotConfigured
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return &APIError{StatusCode: resp.StatusCode, Message: providerMessage(respBody)}
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}

	c.logger.Debug(ctx, fmt.Sprintf("retell %s succeeded", path))
	return nil
}

// providerMessage pulls a readable message out of an error body.
func providerMessage(body []byte) string {
	var parsed struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil {
		if parsed.Message != "" {
			return parsed.Message
		}
		if parsed.Error != "" {
			return parsed.Error
		}
	}
	msg := strings.TrimSpace(string(body))
	if msg == "" {
		return "empty response"
	}
	return truncate(msg, maxMessageLen)
}

const maxMessageLen = 200

// truncate shortens s to at most n bytes without splitting a rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	cut := n - len("...")
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
