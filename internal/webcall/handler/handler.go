package handler

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=mocks_test.go -package=handler

import (
	"context"
	"errors"
	"io"
	"net/http"
	"webcall-server/internal/apierrors"
	"webcall-server/internal/observability"
	"webcall-server/internal/webcall/processor"

	"github.com/gin-gonic/gin"
)

// CallProvisioner mints call credentials
type CallProvisioner interface {
	Provision(ctx context.Context, agentID string) (processor.CallCredential, error)
}

type Handler struct {
	processor CallProvisioner
	logger    *observability.Logger
}

func New(processor CallProvisioner, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// CreateCallRequest accepts both the camelCase and the provider's snake_case field.
type CreateCallRequest struct {
	AgentID       string `json:"agentId"`
	LegacyAgentID string `json:"agent_id"`
}

func (r CreateCallRequest) agentID() string {
	if r.AgentID != "" {
		return r.AgentID
	}
	return r.LegacyAgentID
}

// CreateCallResponse is the credential handed to the browser. It never
// contains the provider API key.
type CreateCallResponse struct {
	AccessToken string `json:"accessToken"`
	CallID      string `json:"callId"`
	AgentID     string `json:"agentId"`
	Status      string `json:"status"`
}

// LegacyCreateCallResponse mirrors the provider's web call shape for older clients.
type LegacyCreateCallResponse struct {
	AccessToken string `json:"access_token"`
	CallID      string `json:"call_id"`
	AgentID     string `json:"agent_id"`
	CallStatus  string `json:"call_status"`
}

// HandleCreateCall handles POST /calls
func (h *Handler) HandleCreateCall(c *gin.Context) {
	cred, ok := h.provision(c, "agentId is required")
	if !ok {
		return
	}

	c.JSON(http.StatusOK, CreateCallResponse{
		AccessToken: cred.AccessToken,
		CallID:      cred.CallID,
		AgentID:     cred.AgentID,
		Status:      cred.Status,
	})
}

// HandleCreateWebCall handles POST /api/create-web-call. Field names in the
// response and the missing agent message use the provider's snake_case.
func (h *Handler) HandleCreateWebCall(c *gin.Context) {
	cred, ok := h.provision(c, "agent_id is required")
	if !ok {
		return
	}

	c.JSON(http.StatusOK, LegacyCreateCallResponse{
		AccessToken: cred.AccessToken,
		CallID:      cred.CallID,
		AgentID:     cred.AgentID,
		CallStatus:  cred.Status,
	})
}

func (h *Handler) provision(c *gin.Context, missingAgentMessage string) (processor.CallCredential, bool) {
	ctx := c.Request.Context()

	var req CreateCallRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		apierrors.RespondWithValidationError(c, err)
		return processor.CallCredential{}, false
	}

	cred, err := h.processor.Provision(ctx, req.agentID())
	if errors.Is(err, processor.ErrAgentIDRequired) {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeAgentIDRequired, missingAgentMessage))
		return processor.CallCredential{}, false
	}
	if err != nil {
		apierrors.RespondWithError(c, err)
		return processor.CallCredential{}, false
	}

	return cred, true
}
