package payment

import (
	"context"
	"errors"
	"sync"
	"time"
)

var (
	// ErrAttemptInFlight rejects a submit while an attempt is processing
	// or settling; exactly one attempt may be in flight per session.
	ErrAttemptInFlight = errors.New("a payment attempt is already in flight")

	// ErrMethodNotSupported rejects non-card methods. No state
	// transition occurs; switching back to card is the recovery action.
	ErrMethodNotSupported = errors.New("this payment method is not connected; switch to card to continue")

	// ErrFieldsIncomplete rejects submission before all card fields are present.
	ErrFieldsIncomplete = errors.New("all card fields are required before paying")
)

// Machine drives one session's payment attempts through
// idle -> processing -> success -> idle. The three stages of an attempt
// (settle, completion callback, reset) fire strictly in sequence and
// never overlap; a new attempt cannot start until the reset completed.
//
// Every attempt owns a cancellable context. Cancelling before a stage
// transition suppresses the completion callback, clears the card
// fields, and returns the machine to idle.
type Machine struct {
	mu          sync.Mutex
	status      Status
	fields      CardFields
	lastOutcome *Outcome
	cancel      context.CancelFunc

	gateway     Gateway
	notifyDelay time.Duration
	resetDelay  time.Duration
	onSuccess   func(Outcome)
}

// NewMachine creates an idle machine. onSuccess is invoked exactly once
// per successful attempt, between the success and final idle transitions.
func NewMachine(gateway Gateway, notifyDelay, resetDelay time.Duration, onSuccess func(Outcome)) *Machine {
	return &Machine{
		status:      StatusIdle,
		gateway:     gateway,
		notifyDelay: notifyDelay,
		resetDelay:  resetDelay,
		onSuccess:   onSuccess,
	}
}

// Status returns the current attempt state.
func (m *Machine) Status() Status {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.status
}

// LastOutcome returns the most recent settle outcome, if any.
func (m *Machine) LastOutcome() *Outcome {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.lastOutcome == nil {
		return nil
	}
	outcome := *m.lastOutcome
	return &outcome
}

// Submit starts a new attempt. Preconditions: machine idle, method is
// card, all fields present. Violations are rejections, not transitions.
func (m *Machine) Submit(fields CardFields, method Method) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.status != StatusIdle {
		return ErrAttemptInFlight
	}
	if method != MethodCard {
		return ErrMethodNotSupported
	}
	if !fields.Complete() {
		return ErrFieldsIncomplete
	}

	ctx, cancel := context.WithCancel(context.Background())
	m.status = StatusProcessing
	m.fields = fields
	m.lastOutcome = nil
	m.cancel = cancel

	go m.run(ctx, fields, method)
	return nil
}

// Cancel aborts the in-flight attempt, if any. Safe to call repeatedly.
func (m *Machine) Cancel() {
	m.mu.Lock()
	cancel := m.cancel
	m.mu.Unlock()

	if cancel != nil {
		cancel()
	}
}

func (m *Machine) run(ctx context.Context, fields CardFields, method Method) {
	outcome, err := m.gateway.Charge(ctx, method, fields)
	if err != nil {
		if ctx.Err() != nil {
			// Cancelled mid-settle: no callback, straight back to idle.
			m.reset(nil)
			return
		}
		m.reset(&Outcome{Code: OutcomeError, Reason: err.Error()})
		return
	}

	if !outcome.Approved() {
		// Declined/error outcomes are not dead ends: the machine
		// returns to idle with the outcome retained for the caller.
		m.reset(outcome)
		return
	}

	m.mu.Lock()
	m.status = StatusSuccess
	m.lastOutcome = outcome
	m.mu.Unlock()

	if !m.wait(ctx, m.notifyDelay) {
		m.reset(nil)
		return
	}

	if m.onSuccess != nil {
		m.onSuccess(*outcome)
	}

	// The callback has fired; the attempt always resets from here,
	// cancelled or not.
	m.wait(ctx, m.resetDelay)
	m.reset(outcome)
}

// wait sleeps for d unless the attempt is cancelled first.
func (m *Machine) wait(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

// reset clears the attempt and returns to idle, retaining the given
// outcome for status reads.
func (m *Machine) reset(outcome *Outcome) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fields = CardFields{}
	m.status = StatusIdle
	m.lastOutcome = outcome
	m.cancel = nil
}
