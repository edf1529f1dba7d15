package booking

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"haven/internal/catalog"

	"github.com/google/uuid"
)

var (
	// ErrInvalidDate is returned when a setter receives a non-calendar date.
	ErrInvalidDate = errors.New("date must be a calendar date (YYYY-MM-DD)")

	// ErrInvalidGuestCount is returned for guest counts the surface does not offer.
	ErrInvalidGuestCount = fmt.Errorf("guest count must be between %d and %d", MinGuests, MaxGuests)

	// ErrEmptyStay is returned when payment is requested for a stay of zero nights.
	ErrEmptyStay = errors.New("stay has no nights to charge for")

	// ErrAlreadyConfirmed is returned when a session already produced a reservation.
	ErrAlreadyConfirmed = errors.New("session already has a confirmed reservation")
)

// PaymentDetails carries the settled payment a confirmation records.
type PaymentDetails struct {
	Method        string
	TransactionID string
}

// Service interface defines the contract for the booking flow
type Service interface {
	// Session lifecycle
	StartSession(ctx context.Context, params LinkParams) (*BookingState, error)
	GetSession(ctx context.Context, sessionID string) (*BookingState, error)
	UpdateSession(ctx context.Context, sessionID string, req UpdateSessionRequest) (*BookingState, error)
	AbandonSession(ctx context.Context, sessionID string) error

	// Derived values
	Summary(ctx context.Context, sessionID string) (*ReservationSummary, error)

	// Completion
	EnsureReadyForPayment(ctx context.Context, sessionID string) error
	ConfirmReservation(ctx context.Context, sessionID string, payment PaymentDetails) (*Reservation, error)
	GetReservationByRef(ctx context.Context, ref string) (*Reservation, error)
	GetReservationBySession(ctx context.Context, sessionID string) (*Reservation, error)
}

// service implements the Service interface
type service struct {
	store SessionStore
	repo  Repository
	rooms catalog.Service
}

// NewService creates a new booking service instance
func NewService(store SessionStore, repo Repository, rooms catalog.Service) Service {
	return &service{
		store: store,
		repo:  repo,
		rooms: rooms,
	}
}

// StartSession creates a session with defaults and hydrates it from the
// deep-link parameters, if any. Hydration happens exactly once, here.
func (s *service) StartSession(ctx context.Context, params LinkParams) (*BookingState, error) {
	state := NewBookingState(uuid.New().String(), s.rooms.First())

	hydrate(state, params, s.rooms)

	if err := s.store.Save(ctx, state); err != nil {
		return nil, err
	}
	return state, nil
}

func (s *service) GetSession(ctx context.Context, sessionID string) (*BookingState, error) {
	return s.store.Get(ctx, sessionID)
}

// UpdateSession applies the explicit setters of the booking surface.
// Unknown room ids are silently ignored; dates are stored without
// ordering checks (an inverted range simply reads as a zero-night stay).
func (s *service) UpdateSession(ctx context.Context, sessionID string, req UpdateSessionRequest) (*BookingState, error) {
	state, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if req.RoomID != nil {
		if _, ok := s.rooms.Lookup(*req.RoomID); ok {
			state.RoomID = *req.RoomID
		}
	}

	if req.CheckIn != nil {
		date, err := normalizeDateInput(*req.CheckIn)
		if err != nil {
			return nil, err
		}
		state.CheckIn = date
	}

	if req.CheckOut != nil {
		date, err := normalizeDateInput(*req.CheckOut)
		if err != nil {
			return nil, err
		}
		state.CheckOut = date
	}

	if req.Guests != nil {
		if *req.Guests < MinGuests || *req.Guests > MaxGuests {
			return nil, ErrInvalidGuestCount
		}
		state.Guests = *req.Guests
	}

	if req.GuestName != nil {
		state.GuestName = *req.GuestName
	}

	if req.GuestEmail != nil {
		state.GuestEmail = *req.GuestEmail
	}

	state.UpdatedAt = time.Now().UTC()

	if err := s.store.Save(ctx, state); err != nil {
		return nil, err
	}
	return state, nil
}

func (s *service) AbandonSession(ctx context.Context, sessionID string) error {
	return s.store.Delete(ctx, sessionID)
}

// Summary recomputes the reservation summary from the stored state.
func (s *service) Summary(ctx context.Context, sessionID string) (*ReservationSummary, error) {
	state, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	summary := Summarize(state, s.rooms)
	return &summary, nil
}

// EnsureReadyForPayment verifies a payment attempt may start for this
// session: the session exists, has a chargeable stay, and has not been
// confirmed before.
func (s *service) EnsureReadyForPayment(ctx context.Context, sessionID string) error {
	state, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return err
	}

	if summary := Summarize(state, s.rooms); summary.Nights == 0 {
		return ErrEmptyStay
	}

	if _, err := s.repo.GetBySessionID(ctx, sessionID); err == nil {
		return ErrAlreadyConfirmed
	} else if !errors.Is(err, ErrReservationNotFound) {
		return err
	}

	return nil
}

// ConfirmReservation completes the flow: it snapshots the session's
// summary, persists the reservation with its settled payment, and
// discards the session. Called by the payment flow's completion callback.
func (s *service) ConfirmReservation(ctx context.Context, sessionID string, payment PaymentDetails) (*Reservation, error) {
	state, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if _, err := s.repo.GetBySessionID(ctx, sessionID); err == nil {
		return nil, ErrAlreadyConfirmed
	} else if !errors.Is(err, ErrReservationNotFound) {
		return nil, err
	}

	summary := Summarize(state, s.rooms)
	if summary.Nights == 0 {
		return nil, ErrEmptyStay
	}

	checkIn, err := time.Parse(DateLayout, state.CheckIn)
	if err != nil {
		return nil, fmt.Errorf("invalid check-in date %q: %w", state.CheckIn, err)
	}
	checkOut, err := time.Parse(DateLayout, state.CheckOut)
	if err != nil {
		return nil, fmt.Errorf("invalid check-out date %q: %w", state.CheckOut, err)
	}

	ref, err := generateReservationRef()
	if err != nil {
		return nil, fmt.Errorf("failed to generate reservation reference: %w", err)
	}

	settled := Payment{
		Amount:   summary.Total,
		Currency: "INR",
		Method:   payment.Method,
	}
	settled.MarkCompleted(payment.TransactionID)

	reservation := &Reservation{
		SessionID:      sessionID,
		RoomID:         summary.Room.ID,
		RoomName:       summary.Room.Name,
		NightlyPrice:   summary.Room.NightlyPrice,
		CheckIn:        checkIn,
		CheckOut:       checkOut,
		Nights:         summary.Nights,
		Guests:         summary.Guests,
		TotalPrice:     summary.Total,
		GuestName:      state.GuestName,
		GuestEmail:     state.GuestEmail,
		Status:         StatusConfirmed.String(),
		ReservationRef: ref,
		Payments:       []Payment{settled},
	}

	if err := s.repo.Create(ctx, reservation); err != nil {
		return nil, fmt.Errorf("failed to create reservation: %w", err)
	}

	// The session is complete; drop it so the id cannot confirm twice.
	if err := s.store.Delete(ctx, sessionID); err != nil {
		// The reservation is already persisted; a stale session only
		// lingers until its TTL.
		return reservation, nil
	}

	return reservation, nil
}

func (s *service) GetReservationByRef(ctx context.Context, ref string) (*Reservation, error) {
	return s.repo.GetByRef(ctx, ref)
}

func (s *service) GetReservationBySession(ctx context.Context, sessionID string) (*Reservation, error) {
	return s.repo.GetBySessionID(ctx, sessionID)
}

// normalizeDateInput validates a setter value. Empty clears the date.
func normalizeDateInput(raw string) (string, error) {
	if raw == "" {
		return "", nil
	}
	date, ok := NormalizeDate(raw)
	if !ok {
		return "", ErrInvalidDate
	}
	return date, nil
}

// generateReservationRef generates a unique reservation reference
func generateReservationRef() (string, error) {
	timestamp := time.Now().Format("20060102")

	// 6 random uppercase letters
	const letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	randomPart := make([]byte, 6)

	for i := range randomPart {
		num, err := rand.Int(rand.Reader, big.NewInt(int64(len(letters))))
		if err != nil {
			return "", err
		}
		randomPart[i] = letters[num.Int64()]
	}

	return fmt.Sprintf("HVN-%s-%s", timestamp, string(randomPart)), nil
}
