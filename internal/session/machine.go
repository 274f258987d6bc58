package session

import (
	"sync"
	"webcall-server/internal/observability"
)

// Machine holds the CallSession for one UI connection. Every change goes
// through one of its methods; stale or out-of-order inputs are ignored.
type Machine struct {
	mu       sync.Mutex
	session  CallSession
	watchers map[*watcher]struct{}
}

type watcher struct {
	ch chan CallSession
}

func NewMachine() *Machine {
	return &Machine{
		session:  CallSession{Status: StatusIdle},
		watchers: make(map[*watcher]struct{}),
	}
}

// Snapshot returns a copy of the current session.
func (m *Machine) Snapshot() CallSession {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.session
}

// BeginAttempt moves to Provisioning and returns the new attempt number.
// Muted is carried over from the previous attempt.
func (m *Machine) BeginAttempt(agentID string) (uint64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.session.Status.inFlight() {
		return 0, ErrSessionInProgress
	}

	from := m.session.Status
	m.session = CallSession{
		Status:  StatusProvisioning,
		Muted:   m.session.Muted,
		Attempt: m.session.Attempt + 1,
		AgentID: agentID,
	}
	m.changedLocked(from)
	return m.session.Attempt, nil
}

// ProvisionSucceeded binds callID to attempt. It returns false when the
// attempt is no longer current, in which case the credential must be dropped.
func (m *Machine) ProvisionSucceeded(attempt uint64, callID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if attempt != m.session.Attempt || m.session.Status != StatusProvisioning {
		return false
	}
	m.session.Status = StatusConnecting
	m.session.CallID = callID
	m.changedLocked(StatusProvisioning)
	return true
}

// Current reports whether attempt is still the live one, connecting or
// ongoing.
func (m *Machine) Current(attempt uint64) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if attempt != m.session.Attempt {
		return false
	}
	return m.session.Status == StatusConnecting || m.session.Status == StatusOngoing
}

// ProvisionFailed records a provisioning error for attempt.
func (m *Machine) ProvisionFailed(attempt uint64, message string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if attempt != m.session.Attempt || m.session.Status != StatusProvisioning {
		return false
	}
	m.session.Status = StatusError
	m.session.LastError = message
	m.changedLocked(StatusProvisioning)
	return true
}

// Apply folds a client event into the session. Events for another call id,
// and anything arriving after Ended or Error, are ignored.
func (m *Machine) Apply(ev Event) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if ev.CallID == "" || ev.CallID != m.session.CallID {
		return false
	}

	from := m.session.Status
	switch from {
	case StatusConnecting:
		switch ev.Kind {
		case EventStarted:
			m.session.Status = StatusOngoing
			m.session.Active = true
		case EventEnded:
			m.session.Status = StatusEnded
		case EventError:
			m.fail(ev.Message)
		default:
			return false
		}

	case StatusOngoing:
		switch ev.Kind {
		case EventAgentSpeakingStarted:
			if m.session.AgentSpeaking {
				return false
			}
			m.session.AgentSpeaking = true
		case EventAgentSpeakingStopped:
			if !m.session.AgentSpeaking {
				return false
			}
			m.session.AgentSpeaking = false
		case EventEnded:
			m.session.Status = StatusEnded
			m.session.Active = false
			m.session.AgentSpeaking = false
		case EventError:
			m.fail(ev.Message)
		default:
			return false
		}

	default:
		return false
	}

	m.changedLocked(from)
	return true
}

// End handles a user stop. In-flight attempts become Ended and an errored
// session is cleared back to Idle.
func (m *Machine) End() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	from := m.session.Status
	switch {
	case from.inFlight():
		m.session.Status = StatusEnded
	case from == StatusError:
		m.session.Status = StatusIdle
		m.session.LastError = ""
	default:
		return false
	}
	m.session.Active = false
	m.session.AgentSpeaking = false
	m.changedLocked(from)
	return true
}

func (m *Machine) SetMuted(muted bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.session.Muted == muted {
		return
	}
	m.session.Muted = muted
	m.changedLocked(m.session.Status)
}

// Reset returns to Idle and forgets the attempt.
func (m *Machine) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	from := m.session.Status
	m.session = CallSession{Status: StatusIdle, Attempt: m.session.Attempt}
	m.changedLocked(from)
}

// Watch delivers session snapshots. A slow reader only sees the latest one.
func (m *Machine) Watch() (<-chan CallSession, func()) {
	w := &watcher{ch: make(chan CallSession, 1)}

	m.mu.Lock()
	m.watchers[w] = struct{}{}
	w.ch <- m.session
	m.mu.Unlock()

	var once sync.Once
	return w.ch, func() {
		once.Do(func() {
			m.mu.Lock()
			delete(m.watchers, w)
			m.mu.Unlock()
		})
	}
}

func (m *Machine) fail(message string) {
	if message == "" {
		message = "Unknown error"
	}
	m.session.Status = StatusError
	m.session.LastError = message
	m.session.Active = false
	m.session.AgentSpeaking = false
}

func (m *Machine) changedLocked(from Status) {
	if from != m.session.Status {
		observability.RecordSessionTransition(string(from), string(m.session.Status))
	}
	for w := range m.watchers {
		select {
		case <-w.ch:
		default:
		}
		select {
		case w.ch <- m.session:
		default:
		}
	}
}
