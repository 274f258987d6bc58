package ratelimit

import (
	"fmt"
	"webcall-server/internal/apierrors"
	"webcall-server/internal/observability"

	"github.com/gin-gonic/gin"
)

// Middleware limits each client IP to limit requests per minute on the routes
// it is attached to. A limit of zero or less disables it.
func (s *Service) Middleware(scope string, limit int) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limit <= 0 {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		key := fmt.Sprintf("rl:%s:%s", scope, observability.GetRealClientIP(c))

		result, err := s.CheckRateLimit(ctx, key, limit)
		if err != nil {
			apierrors.RespondWithError(c, err)
			c.Abort()
			return
		}

		c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", result.Limit))
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", result.Remaining))
		c.Header("X-RateLimit-Reset", fmt.Sprintf("%d", result.ResetAt.Unix()))

		if !result.Allowed {
			c.Header("Retry-After", fmt.Sprintf("%d", (result.RetryAfterMs+999)/1000))
			s.logger.Warn(ctx, "rate limit exceeded",
				observability.Field{Key: "limit", Value: result.Limit},
				observability.Field{Key: "retry_after_ms", Value: result.RetryAfterMs},
			)
			apierrors.RespondWithError(c, apierrors.TooManyRequests("Too many call requests. Please wait and try again."))
			c.Abort()
			return
		}

		c.Next()
	}
}
