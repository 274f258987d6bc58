package handler

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=mocks_test.go -package=handler

import (
	"context"
	"net/http"
	"time"
	"webcall-server/internal/agents"
	"webcall-server/internal/agentstatus/processor"
	"webcall-server/internal/apierrors"
	"webcall-server/internal/observability"

	"github.com/gin-gonic/gin"
)

// StatusProcessor manages the receptionist settings
type StatusProcessor interface {
	GetStatus(ctx context.Context) (bool, error)
	SetStatus(ctx context.Context, active bool) (bool, error)
	GetActiveAgent(ctx context.Context) (processor.ActiveAgent, error)
	SelectActiveAgent(ctx context.Context, agentID string) (processor.ActiveAgent, error)
}

type Handler struct {
	processor StatusProcessor
	logger    *observability.Logger
}

func New(processor StatusProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// UpdateStatusRequest uses a pointer so a missing field is distinguishable from false.
type UpdateStatusRequest struct {
	Active *bool `json:"active" binding:"required"`
}

type StatusResponse struct {
	Active bool `json:"active"`
}

type UpdateStatusResponse struct {
	Success bool `json:"success"`
	Active  bool `json:"active"`
}

type SelectAgentRequest struct {
	AgentID string `json:"agentId" binding:"required"`
}

type ActiveAgentResponse struct {
	Success          bool       `json:"success"`
	ActiveAgentID    string     `json:"activeAgentId"`
	ActiveAgentLabel string     `json:"activeAgentLabel"`
	UpdatedAt        *time.Time `json:"updatedAt,omitempty"`
}

// HandleListAgents handles GET /api/agents
func (h *Handler) HandleListAgents(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"agents": agents.List()})
}

// HandleGetStatus handles GET /api/agent-status
func (h *Handler) HandleGetStatus(c *gin.Context) {
	active, err := h.processor.GetStatus(c.Request.Context())
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, StatusResponse{Active: active})
}

// HandleUpdateStatus handles PATCH /api/agent-status
func (h *Handler) HandleUpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Active == nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidStatus, "Invalid active status. Must be a boolean."))
		return
	}

	active, err := h.processor.SetStatus(c.Request.Context(), *req.Active)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, UpdateStatusResponse{Success: true, Active: active})
}

// HandleGetActiveAgent handles GET /api/agents/active
func (h *Handler) HandleGetActiveAgent(c *gin.Context) {
	agent, err := h.processor.GetActiveAgent(c.Request.Context())
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, toActiveAgentResponse(agent))
}

// HandleSelectActiveAgent handles POST /api/agents/active
func (h *Handler) HandleSelectActiveAgent(c *gin.Context) {
	ctx := c.Request.Context()

	var req SelectAgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "agent_id", Value: req.AgentID})

	agent, err := h.processor.SelectActiveAgent(ctx, req.AgentID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, toActiveAgentResponse(agent))
}

func toActiveAgentResponse(agent processor.ActiveAgent) ActiveAgentResponse {
	resp := ActiveAgentResponse{
		Success:          true,
		ActiveAgentID:    agent.AgentID,
		ActiveAgentLabel: agent.Label,
	}
	if !agent.UpdatedAt.IsZero() {
		updatedAt := agent.UpdatedAt
		resp.UpdatedAt = &updatedAt
	}
	return resp
}
