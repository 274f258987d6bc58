package session

import (
	"context"
	"errors"
	"sync"
	"webcall-server/internal/observability"
	"webcall-server/internal/webcall/processor"
)

const activityBuffer = 8

// CredentialProvisioner mints a single-use call credential.
type CredentialProvisioner interface {
	Provision(ctx context.Context, agentID string) (processor.CallCredential, error)
}

// RealtimeClient is the part of Client the controller drives.
type RealtimeClient interface {
	Start(ctx context.Context, cred processor.CallCredential) error
	Stop()
	StopCall(callID string)
	ToggleMute() bool
	Subscribe() (<-chan Event, func())
}

// Controller runs call attempts for one UI connection.
type Controller struct {
	provisioner CredentialProvisioner
	client      RealtimeClient
	machine     *Machine
	logger      *observability.Logger

	activity    chan float64
	events      <-chan Event
	unsubscribe func()

	ctx       context.Context
	cancel    context.CancelFunc
	loopDone  chan struct{}
	closeOnce sync.Once
}

func NewController(provisioner CredentialProvisioner, client RealtimeClient, logger *observability.Logger) *Controller {
	ctx, cancel := context.WithCancel(context.Background())
	events, unsubscribe := client.Subscribe()

	c := &Controller{
		provisioner: provisioner,
		client:      client,
		machine:     NewMachine(),
		logger:      logger,
		activity:    make(chan float64, activityBuffer),
		events:      events,
		unsubscribe: unsubscribe,
		ctx:         ctx,
		cancel:      cancel,
		loopDone:    make(chan struct{}),
	}
	go c.run()
	return c
}

// StartCall provisions a credential for agentID and connects with it. It
// returns once the transport is open or the attempt has failed; the outcome is
// also reflected in the session.
func (c *Controller) StartCall(ctx context.Context, agentID string) error {
	attempt, err := c.machine.BeginAttempt(agentID)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	stop := context.AfterFunc(c.ctx, cancel)
	defer stop()

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "agent_id", Value: agentID},
		observability.Field{Key: "attempt", Value: attempt},
	)

	cred, err := c.provisioner.Provision(ctx, agentID)
	if err != nil {
		c.logger.Error(ctx, "failed to provision call credential", err)
		c.machine.ProvisionFailed(attempt, err.Error())
		return err
	}

	if !c.machine.ProvisionSucceeded(attempt, cred.CallID) {
		c.logger.Info(ctx, "discarding credential for abandoned attempt")
		return ErrAttemptAbandoned
	}

	if err := c.client.Start(ctx, cred); err != nil {
		if errors.Is(err, ErrAttemptAbandoned) {
			return err
		}
		c.machine.Apply(Event{Kind: EventError, CallID: cred.CallID, Message: err.Error()})
		return err
	}

	// EndCall may have run between ProvisionSucceeded and Start, when the
	// client had nothing to stop yet.
	if !c.machine.Current(attempt) {
		c.logger.Info(ctx, "closing transport for abandoned attempt")
		c.client.StopCall(cred.CallID)
		return ErrAttemptAbandoned
	}
	return nil
}

// EndCall stops the current attempt, or clears an error.
func (c *Controller) EndCall() {
	c.machine.End()
	c.client.Stop()
}

// ToggleMute flips the mute flag and returns the new value.
func (c *Controller) ToggleMute() bool {
	muted := c.client.ToggleMute()
	c.machine.SetMuted(muted)
	return muted
}

func (c *Controller) Snapshot() CallSession {
	return c.machine.Snapshot()
}

func (c *Controller) Watch() (<-chan CallSession, func()) {
	return c.machine.Watch()
}

// Activity delivers agent audio levels while a call is ongoing. Levels are
// dropped when the reader falls behind.
func (c *Controller) Activity() <-chan float64 {
	return c.activity
}

// Close tears everything down. It is safe to call more than once.
func (c *Controller) Close() {
	c.closeOnce.Do(func() {
		c.cancel()
		c.unsubscribe()
		<-c.loopDone
		c.client.Stop()
		c.machine.Reset()
	})
}

func (c *Controller) run() {
	defer close(c.loopDone)

	for {
		select {
		case <-c.ctx.Done():
			return
		case ev := <-c.events:
			if ev.Kind == EventActivity {
				if c.machine.Snapshot().Status == StatusOngoing {
					select {
					case c.activity <- ev.Level:
					default:
					}
				}
				continue
			}

			// The client has already released the transport for Ended and Error.
			c.machine.Apply(ev)
		}
	}
}
