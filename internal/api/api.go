package api

import (
	"net/http"
	"webcall-server/internal/observability"
	"webcall-server/internal/ratelimit"

	agentStatusHandler "webcall-server/internal/agentstatus/handler"
	authHandler "webcall-server/internal/auth/handler"
	phoneCallHandler "webcall-server/internal/phonecall/handler"
	sessionHandler "webcall-server/internal/session/handler"
	webCallHandler "webcall-server/internal/webcall/handler"

	"github.com/gin-gonic/gin"
)

type API struct {
	router             *gin.RouterGroup
	authHandler        authHandler.Handler
	webCallHandler     webCallHandler.Handler
	agentStatusHandler agentStatusHandler.Handler
	phoneCallHandler   phoneCallHandler.Handler
	sessionHandler     sessionHandler.Handler
	rateLimiter        *ratelimit.Service
	callsPerMinute     int
}

func New(
	router *gin.RouterGroup,
	authHandler authHandler.Handler,
	webCallHandler webCallHandler.Handler,
	agentStatusHandler agentStatusHandler.Handler,
	phoneCallHandler phoneCallHandler.Handler,
	sessionHandler sessionHandler.Handler,
	rateLimiter *ratelimit.Service,
	callsPerMinute int,
) API {
	return API{
		router:             router,
		authHandler:        authHandler,
		webCallHandler:     webCallHandler,
		agentStatusHandler: agentStatusHandler,
		phoneCallHandler:   phoneCallHandler,
		sessionHandler:     sessionHandler,
		rateLimiter:        rateLimiter,
		callsPerMinute:     callsPerMinute,
	}
}

func (a *API) RegisterRoutes() {
	a.Health()
	a.router.GET("/metrics", observability.MetricsHandler())
	limitCalls := a.rateLimiter.Middleware("calls", a.callsPerMinute)
	a.router.POST("/calls", limitCalls, a.webCallHandler.HandleCreateCall)

	apiGroup := a.router.Group("/api")
	{
		apiGroup.POST("/create-web-call", limitCalls, a.webCallHandler.HandleCreateWebCall)
		apiGroup.GET("/agents", a.agentStatusHandler.HandleListAgents)
		apiGroup.GET("/agents/active", a.agentStatusHandler.HandleGetActiveAgent)
		apiGroup.GET("/agent-status", a.agentStatusHandler.HandleGetStatus)
		apiGroup.GET("/session/ws", a.sessionHandler.HandleSession)
		apiGroup.POST("/phone/answer", a.phoneCallHandler.HandleAnswer)
	}

	adminGroup := apiGroup.Group("", a.authHandler.HandleJWTMiddleware)
	{
		adminGroup.PATCH("/agent-status", a.agentStatusHandler.HandleUpdateStatus)
		adminGroup.POST("/agents/active", a.agentStatusHandler.HandleSelectActiveAgent)
	}
}

func (a *API) Health() {
	a.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
}
