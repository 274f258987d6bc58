package handler

import (
	"net/http"
	"strings"
	"webcall-server/internal/apierrors"
	"webcall-server/internal/auth/processor"
	"webcall-server/internal/observability"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	authProcessor processor.AuthProcessor
	logger        *observability.Logger
}

func New(authProcessor processor.AuthProcessor, logger *observability.Logger) Handler {
	return Handler{
		authProcessor: authProcessor,
		logger:        logger,
	}
}

// HandleJWTMiddleware guards admin routes. When no secret is configured the
// routes are open.
func (h *Handler) HandleJWTMiddleware(c *gin.Context) {
	if !h.authProcessor.Enabled() {
		c.Next()
		return
	}

	ctx := c.Request.Context()
	tokenHeader := c.GetHeader("Authorization")

	if tokenHeader == "" || !strings.HasPrefix(tokenHeader, "Bearer ") {
		h.abort(c, "Authorization token is missing or invalid")
		return
	}

	tokenString := strings.TrimPrefix(tokenHeader, "Bearer ")

	claims, err := h.authProcessor.ValidateJWTToken(ctx, tokenString)
	if err != nil {
		h.abort(c, err.Error())
		return
	}

	c.Set("User-ID", claims.Subject)
	c.Next()
}

func (h *Handler) abort(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, apierrors.ErrorResponse{
		Error: message,
		Code:  apierrors.CodeUnauthorized,
	})
}
