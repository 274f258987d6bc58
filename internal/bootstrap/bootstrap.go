package bootstrap

import (
	"context"
	"fmt"
	"webcall-server/internal/config"
	"webcall-server/internal/observability"
	"webcall-server/internal/ratelimit"
	"webcall-server/internal/store"

	agentStatusHandler "webcall-server/internal/agentstatus/handler"
	agentStatusProcessor "webcall-server/internal/agentstatus/processor"
	"webcall-server/internal/auth/handler"
	"webcall-server/internal/auth/processor"
	"webcall-server/internal/clients/automation"
	redisClient "webcall-server/internal/clients/redis"
	"webcall-server/internal/clients/retell"
	phoneCallHandler "webcall-server/internal/phonecall/handler"
	"webcall-server/internal/session"
	sessionHandler "webcall-server/internal/session/handler"
	webCallHandler "webcall-server/internal/webcall/handler"
	webCallProcessor "webcall-server/internal/webcall/processor"
)

// Dependencies holds all initialized application dependencies
type Dependencies struct {
	// Core
	Store  store.Store
	Logger *observability.Logger

	// Handlers
	AuthHandler        handler.Handler
	WebCallHandler     webCallHandler.Handler
	AgentStatusHandler agentStatusHandler.Handler
	PhoneCallHandler   phoneCallHandler.Handler
	SessionHandler     sessionHandler.Handler

	// Per-client limit on credential minting
	RateLimiter *ratelimit.Service

	// Live UI connections, drained on shutdown
	SessionTracker *session.Tracker

	// Redis client (for cleanup)
	RedisClient *redisClient.Client
}

// Initialize sets up all application dependencies
func Initialize(ctx context.Context, cfg *config.Config, logger *observability.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Logger:         logger,
		SessionTracker: session.NewTracker(),
	}

	// Initialize settings store. Redis is optional; without it settings live in memory.
	var err error
	deps.RedisClient, err = redisClient.NewClient(cfg.Redis, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	if deps.RedisClient != nil {
		deps.Store = store.NewRedisStore(deps.RedisClient, logger)
	} else {
		logger.Warn(ctx, "using in-memory settings store, receptionist settings will not survive restarts")
		deps.Store = store.NewMemoryStore()
	}

	// Rate limit counters are shared through Redis when it is enabled
	deps.RateLimiter = ratelimit.NewService(deps.RedisClient, logger)

	// Initialize clients
	retellClient := retell.NewClient(cfg.Retell.APIKey, cfg.Retell.BaseURL, logger)
	realtimeDialer := retell.NewRealtimeDialer(cfg.Retell.RealtimeURL, logger)
	automationClient := automation.NewClient(cfg.Automation.ActiveAgentWebhookURL, logger)

	// Initialize auth processor and handler
	authProc := processor.New(cfg.Auth.JWTSecret, logger)
	if !authProc.Enabled() {
		logger.Warn(ctx, "JWT_SECRET is not set, admin routes are unauthenticated")
	}
	deps.AuthHandler = handler.New(authProc, logger)

	// Initialize web call processor and handler
	webCallProc := webCallProcessor.New(retellClient, cfg.Retell.ProvisionTimeout, logger)
	deps.WebCallHandler = webCallHandler.New(webCallProc, logger)

	// Initialize agent status processor and handler
	agentStatusProc := agentStatusProcessor.New(deps.Store, automationClient, logger)
	deps.AgentStatusHandler = agentStatusHandler.New(agentStatusProc, logger)

	// Initialize inbound phone call handler
	deps.PhoneCallHandler = phoneCallHandler.New(webCallProc, agentStatusProc, phoneCallHandler.Config{
		SIPDomain:     cfg.Retell.SIPDomain,
		AuthToken:     cfg.Twilio.AuthToken,
		PublicBaseURL: cfg.Twilio.PublicBaseURL,
	}, logger)

	// Initialize session socket handler, one controller per connection
	newController := func() *session.Controller {
		return session.NewController(webCallProc, session.NewClient(realtimeDialer, logger), logger)
	}
	deps.SessionHandler = sessionHandler.New(newController, deps.SessionTracker, []string{cfg.Server.WebAppURI}, logger)

	return deps, nil
}

// Cleanup closes all resources that need cleanup
func (d *Dependencies) Cleanup() {
	if d.RedisClient != nil {
		if err := d.RedisClient.Close(); err != nil {
			d.Logger.Error(context.Background(), "failed to close redis client", err)
		}
	}
}
