package handler

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=mocks_test.go -package=handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	agentStatusProcessor "webcall-server/internal/agentstatus/processor"
	"webcall-server/internal/apierrors"
	"webcall-server/internal/observability"
	webCallProcessor "webcall-server/internal/webcall/processor"

	"github.com/gin-gonic/gin"
	"github.com/twilio/twilio-go/client"
	"github.com/twilio/twilio-go/twiml"
)

const (
	messageUnavailable = "Thanks for calling. Our receptionist is unavailable right now. Please call back later."
	messageTrouble     = "Sorry, we are having trouble connecting your call. Please try again in a few minutes."
)

// PhoneRegistrar reserves a provider call for an inbound phone leg
type PhoneRegistrar interface {
	RegisterPhoneCall(ctx context.Context, agentID, fromNumber, toNumber string) (webCallProcessor.PhoneRegistration, error)
}

// ReceptionistSettings exposes the receptionist switch and the active agent
type ReceptionistSettings interface {
	GetStatus(ctx context.Context) (bool, error)
	GetActiveAgent(ctx context.Context) (agentStatusProcessor.ActiveAgent, error)
}

// Config controls how inbound calls are bridged to the provider.
type Config struct {
	SIPDomain string
	// AuthToken enables X-Twilio-Signature validation when set.
	AuthToken     string
	PublicBaseURL string
}

type Handler struct {
	registrar PhoneRegistrar
	settings  ReceptionistSettings
	cfg       Config
	validator *client.RequestValidator
	logger    *observability.Logger
}

func New(registrar PhoneRegistrar, settings ReceptionistSettings, cfg Config, logger *observability.Logger) Handler {
	h := Handler{
		registrar: registrar,
		settings:  settings,
		cfg:       cfg,
		logger:    logger,
	}
	if cfg.AuthToken != "" {
		v := client.NewRequestValidator(cfg.AuthToken)
		h.validator = &v
	}
	return h
}

// HandleAnswer handles POST /api/phone/answer, the Twilio voice webhook for
// the business number. It bridges the caller to the active agent over SIP.
func (h *Handler) HandleAnswer(c *gin.Context) {
	ctx := c.Request.Context()

	if err := c.Request.ParseForm(); err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid form body"))
		return
	}

	if !h.validSignature(c) {
		h.logger.Warn(ctx, "rejected phone webhook with invalid signature")
		apierrors.RespondWithError(c, apierrors.Unauthorized("Invalid Twilio signature"))
		return
	}

	from := c.Request.PostForm.Get("From")
	to := c.Request.PostForm.Get("To")
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "call_sid", Value: c.Request.PostForm.Get("CallSid")},
		observability.Field{Key: "from_number", Value: from},
	)

	active, err := h.settings.GetStatus(ctx)
	if err != nil {
		h.logger.Error(ctx, "failed to read receptionist status", err)
		h.respondMessage(c, messageTrouble)
		return
	}
	if !active {
		h.logger.Info(ctx, "receptionist is off, declining call")
		h.respondMessage(c, messageUnavailable)
		return
	}

	agent, err := h.settings.GetActiveAgent(ctx)
	if err != nil {
		if !errors.Is(err, agentStatusProcessor.ErrNoActiveAgent) {
			h.logger.Error(ctx, "failed to read active agent", err)
		} else {
			h.logger.Warn(ctx, "no active agent selected, declining call")
		}
		h.respondMessage(c, messageUnavailable)
		return
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "agent_id", Value: agent.AgentID})

	reg, err := h.registrar.RegisterPhoneCall(ctx, agent.AgentID, from, to)
	if err != nil {
		h.respondMessage(c, messageTrouble)
		return
	}

	sipURL := fmt.Sprintf("sip:%s@%s", reg.CallID, h.cfg.SIPDomain)
	dial := twiml.VoiceDial{
		InnerElements: []twiml.Element{twiml.VoiceSip{SipUrl: sipURL}},
	}

	h.logger.Info(observability.WithFields(ctx, observability.Field{Key: "call_id", Value: reg.CallID}), "bridging phone call to agent")
	h.respondTwiML(c, []twiml.Element{dial})
}

func (h *Handler) validSignature(c *gin.Context) bool {
	if h.validator == nil {
		return true
	}

	params := make(map[string]string, len(c.Request.PostForm))
	for key, values := range c.Request.PostForm {
		if len(values) > 0 {
			params[key] = values[0]
		}
	}

	url := strings.TrimRight(h.cfg.PublicBaseURL, "/") + c.Request.URL.RequestURI()
	return h.validator.Validate(url, params, c.GetHeader("X-Twilio-Signature"))
}

func (h *Handler) respondMessage(c *gin.Context, message string) {
	h.respondTwiML(c, []twiml.Element{
		&twiml.VoiceSay{Message: message},
		&twiml.VoiceHangup{},
	})
}

func (h *Handler) respondTwiML(c *gin.Context, elements []twiml.Element) {
	twimlResult, err := twiml.Voice(elements)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.Data(http.StatusOK, "text/xml", []byte(twimlResult))
}
