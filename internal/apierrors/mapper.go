package apierrors

import (
	"errors"
	agentStatusProcessor "webcall-server/internal/agentstatus/processor"
	"webcall-server/internal/store"
	webCallProcessor "webcall-server/internal/webcall/processor"
)

// MapError converts domain/processor errors to APIErrors.
//
// If the error is already an APIError, it returns it as-is.
// If the error is unknown, it returns a sanitized InternalError (500).
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	var providerErr *webCallProcessor.ProviderError
	switch {
	case errors.Is(err, webCallProcessor.ErrAgentIDRequired):
		return BadRequest(CodeAgentIDRequired, "agentId is required")

	case errors.As(err, &providerErr):
		return ProviderFailure("Failed to create web call", providerErr.Detail, err)

	case errors.Is(err, agentStatusProcessor.ErrAgentIDRequired):
		return BadRequest(CodeAgentIDRequired, "agentId is required")

	case errors.Is(err, agentStatusProcessor.ErrUnknownAgent):
		return BadRequest(CodeUnknownAgent, "Unknown agent")

	case errors.Is(err, agentStatusProcessor.ErrNoActiveAgent):
		return NotFound(CodeNotFound, "No active agent has been selected")

	case errors.Is(err, agentStatusProcessor.ErrAutomationFailed):
		return ServiceUnavailable(CodeAutomationError, "Failed to save active agent. Please try again later.", err)

	case errors.Is(err, store.ErrNotFound):
		return NotFound(CodeNotFound, "Resource not found")

	default:
		return InternalError(err)
	}
}
