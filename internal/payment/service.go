package payment

import (
	"context"
	"errors"
	"sync"
	"time"

	"haven/internal/booking"
	"haven/internal/notifications"
	"haven/internal/shared/config"
	"haven/pkg/logger"
)

// Service interface defines the contract for the payment flow
type Service interface {
	Submit(ctx context.Context, sessionID string, req PaymentRequest) error
	AttemptStatus(ctx context.Context, sessionID string) (*AttemptStatusResponse, error)
	CancelAttempt(sessionID string)
}

// service manages one payment state machine per booking session and
// bridges successful attempts into the booking flow.
type service struct {
	mu       sync.Mutex
	machines map[string]*Machine

	gateway  Gateway
	cfg      config.PaymentConfig
	bookings booking.Service
	producer notifications.Producer
	log      *logger.Logger
}

// NewService creates a new payment service instance
func NewService(gateway Gateway, cfg config.PaymentConfig, bookings booking.Service, producer notifications.Producer, log *logger.Logger) Service {
	return &service{
		machines: make(map[string]*Machine),
		gateway:  gateway,
		cfg:      cfg,
		bookings: bookings,
		producer: producer,
		log:      log,
	}
}

// Submit normalizes the card fields and starts an attempt for the
// session. The booking side vetoes sessions that are unknown, have a
// zero-night stay, or already confirmed.
func (s *service) Submit(ctx context.Context, sessionID string, req PaymentRequest) error {
	if err := s.bookings.EnsureReadyForPayment(ctx, sessionID); err != nil {
		return err
	}

	fields := NormalizeCardFields(req.Card.Number, req.Card.Expiry, req.Card.Cvc, req.Card.HolderName)
	return s.machineFor(sessionID).Submit(fields, Method(req.Method))
}

// AttemptStatus reports the machine state, the latest outcome, and the
// confirmed reservation reference once the flow completed.
func (s *service) AttemptStatus(ctx context.Context, sessionID string) (*AttemptStatusResponse, error) {
	resp := &AttemptStatusResponse{
		SessionID: sessionID,
		Status:    StatusIdle,
	}

	if machine := s.lookupMachine(sessionID); machine != nil {
		resp.Status = machine.Status()
		resp.LastOutcome = machine.LastOutcome()
	}

	// A completed flow discards its session, so the reservation lookup
	// doubles as the existence check.
	if reservation, err := s.bookings.GetReservationBySession(ctx, sessionID); err == nil {
		resp.ReservationRef = reservation.ReservationRef
		return resp, nil
	} else if !errors.Is(err, booking.ErrReservationNotFound) {
		return nil, err
	}

	if _, err := s.bookings.GetSession(ctx, sessionID); err != nil {
		return nil, err
	}
	return resp, nil
}

// CancelAttempt aborts the session's in-flight attempt, if any, and
// releases its machine. Cancelling before settle leaves the attempt
// goroutine to wind down without invoking the completion callback; the
// next submit for the session starts from a fresh machine.
func (s *service) CancelAttempt(sessionID string) {
	if machine := s.lookupMachine(sessionID); machine != nil {
		s.log.LogPaymentCancelled(context.Background(), sessionID)
		machine.Cancel()
		s.releaseMachine(sessionID)
	}
}

func (s *service) lookupMachine(sessionID string) *Machine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.machines[sessionID]
}

// releaseMachine drops the session's registry entry. The machine's
// attempt goroutine holds its own reference, so an in-flight teardown
// still completes after release.
func (s *service) releaseMachine(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.machines, sessionID)
}

func (s *service) machineFor(sessionID string) *Machine {
	s.mu.Lock()
	defer s.mu.Unlock()

	if machine, ok := s.machines[sessionID]; ok {
		return machine
	}

	machine := NewMachine(s.gateway, s.cfg.NotifyDelay, s.cfg.ResetDelay, func(outcome Outcome) {
		s.onSettled(sessionID, outcome)
	})
	s.machines[sessionID] = machine
	return machine
}

// onSettled is the completion callback: it confirms the reservation and
// publishes the confirmation event. Runs on the machine's attempt
// goroutine, detached from any request context. The attempt is over
// either way, so the machine is released; the status endpoint reports
// the confirmation through the reservation lookup from here on.
func (s *service) onSettled(sessionID string, outcome Outcome) {
	defer s.releaseMachine(sessionID)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	s.log.LogPaymentSettled(ctx, sessionID, outcome.TransactionID, string(outcome.Code))

	reservation, err := s.bookings.ConfirmReservation(ctx, sessionID, booking.PaymentDetails{
		Method:        MethodCard.String(),
		TransactionID: outcome.TransactionID,
	})
	if err != nil {
		s.log.WithSessionID(sessionID).WithError(err).Error("failed to confirm reservation after settled payment")
		return
	}

	s.log.LogReservationConfirmed(ctx, reservation.ReservationRef, sessionID, reservation.RoomID, reservation.TotalPrice)

	event := &notifications.ReservationEvent{
		ReservationRef: reservation.ReservationRef,
		SessionID:      sessionID,
		RoomID:         reservation.RoomID,
		RoomName:       reservation.RoomName,
		CheckIn:        reservation.CheckIn.Format(booking.DateLayout),
		CheckOut:       reservation.CheckOut.Format(booking.DateLayout),
		Nights:         reservation.Nights,
		Guests:         reservation.Guests,
		TotalPrice:     reservation.TotalPrice,
		GuestEmail:     reservation.GuestEmail,
	}
	if err := s.producer.PublishReservationConfirmed(ctx, event); err != nil {
		// The reservation is confirmed either way; the event is best effort.
		s.log.WithSessionID(sessionID).WithError(err).Warn("failed to publish reservation event")
	}
}
