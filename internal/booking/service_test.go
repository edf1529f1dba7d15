package booking

import (
	"context"
	"strings"
	"sync"
	"testing"

	"haven/internal/catalog"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryRepository is a test double for the reservation repository.
type memoryRepository struct {
	mu           sync.Mutex
	reservations []*Reservation
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{}
}

func (r *memoryRepository) Create(_ context.Context, reservation *Reservation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if reservation.ID == uuid.Nil {
		reservation.ID = uuid.New()
	}
	r.reservations = append(r.reservations, reservation)
	return nil
}

func (r *memoryRepository) GetByID(_ context.Context, id uuid.UUID) (*Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, res := range r.reservations {
		if res.ID == id {
			return res, nil
		}
	}
	return nil, ErrReservationNotFound
}

func (r *memoryRepository) GetByRef(_ context.Context, ref string) (*Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, res := range r.reservations {
		if res.ReservationRef == ref {
			return res, nil
		}
	}
	return nil, ErrReservationNotFound
}

func (r *memoryRepository) GetBySessionID(_ context.Context, sessionID string) (*Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, res := range r.reservations {
		if res.SessionID == sessionID {
			return res, nil
		}
	}
	return nil, ErrReservationNotFound
}

func newTestService() (Service, *memoryRepository) {
	rooms := catalog.NewService(catalog.NewMemoryRepository([]catalog.Room{
		{ID: "room-a", Name: "Room A", NightlyPrice: 100, MaxGuests: 4},
		{ID: "room-b", Name: "Room B", NightlyPrice: 200, MaxGuests: 4},
	}))
	repo := newMemoryRepository()
	return NewService(NewMemorySessionStore(), repo, rooms), repo
}

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func TestService_StartSession(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	t.Run("defaults without a link", func(t *testing.T) {
		state, err := svc.StartSession(ctx, LinkParams{})
		require.NoError(t, err)

		assert.NotEmpty(t, state.SessionID)
		assert.Equal(t, "room-a", state.RoomID)
		assert.Equal(t, 2, state.Guests)
		assert.Empty(t, state.CheckIn)
	})

	t.Run("hydrates from a deep link", func(t *testing.T) {
		state, err := svc.StartSession(ctx, LinkParams{
			Room:     "room-b",
			CheckIn:  "2025-01-01",
			CheckOut: "2025-01-04",
		})
		require.NoError(t, err)

		assert.Equal(t, "room-b", state.RoomID)
		assert.Equal(t, "2025-01-01", state.CheckIn)
		assert.Equal(t, "2025-01-04", state.CheckOut)

		summary, err := svc.Summary(ctx, state.SessionID)
		require.NoError(t, err)
		assert.Equal(t, 3, summary.Nights)
		assert.Equal(t, int64(600), summary.Total)
	})

	t.Run("each session gets a distinct id", func(t *testing.T) {
		first, err := svc.StartSession(ctx, LinkParams{})
		require.NoError(t, err)
		second, err := svc.StartSession(ctx, LinkParams{})
		require.NoError(t, err)
		assert.NotEqual(t, first.SessionID, second.SessionID)
	})
}

func TestService_UpdateSession(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	start := func(t *testing.T) *BookingState {
		state, err := svc.StartSession(ctx, LinkParams{})
		require.NoError(t, err)
		return state
	}

	t.Run("sets dates and guests", func(t *testing.T) {
		state := start(t)

		updated, err := svc.UpdateSession(ctx, state.SessionID, UpdateSessionRequest{
			CheckIn:  strPtr("2025-03-10"),
			CheckOut: strPtr("2025-03-12"),
			Guests:   intPtr(3),
		})
		require.NoError(t, err)

		assert.Equal(t, "2025-03-10", updated.CheckIn)
		assert.Equal(t, 3, updated.Guests)

		summary, err := svc.Summary(ctx, state.SessionID)
		require.NoError(t, err)
		assert.Equal(t, 2, summary.Nights)
		assert.Equal(t, int64(200), summary.Total)
	})

	t.Run("unknown room id is ignored", func(t *testing.T) {
		state := start(t)

		updated, err := svc.UpdateSession(ctx, state.SessionID, UpdateSessionRequest{
			RoomID: strPtr("penthouse"),
		})
		require.NoError(t, err)
		assert.Equal(t, "room-a", updated.RoomID)
	})

	t.Run("switching room reprices the stay", func(t *testing.T) {
		state := start(t)

		_, err := svc.UpdateSession(ctx, state.SessionID, UpdateSessionRequest{
			CheckIn:  strPtr("2025-01-01"),
			CheckOut: strPtr("2025-01-04"),
			RoomID:   strPtr("room-b"),
		})
		require.NoError(t, err)

		summary, err := svc.Summary(ctx, state.SessionID)
		require.NoError(t, err)
		assert.Equal(t, int64(600), summary.Total)

		_, err = svc.UpdateSession(ctx, state.SessionID, UpdateSessionRequest{RoomID: strPtr("room-a")})
		require.NoError(t, err)

		summary, err = svc.Summary(ctx, state.SessionID)
		require.NoError(t, err)
		assert.Equal(t, int64(300), summary.Total)
	})

	t.Run("rejects out-of-range guest counts", func(t *testing.T) {
		state := start(t)

		_, err := svc.UpdateSession(ctx, state.SessionID, UpdateSessionRequest{Guests: intPtr(0)})
		assert.ErrorIs(t, err, ErrInvalidGuestCount)

		_, err = svc.UpdateSession(ctx, state.SessionID, UpdateSessionRequest{Guests: intPtr(5)})
		assert.ErrorIs(t, err, ErrInvalidGuestCount)
	})

	t.Run("rejects malformed dates", func(t *testing.T) {
		state := start(t)

		_, err := svc.UpdateSession(ctx, state.SessionID, UpdateSessionRequest{CheckIn: strPtr("tomorrow")})
		assert.ErrorIs(t, err, ErrInvalidDate)
	})

	t.Run("empty date clears the selection", func(t *testing.T) {
		state := start(t)

		_, err := svc.UpdateSession(ctx, state.SessionID, UpdateSessionRequest{
			CheckIn:  strPtr("2025-01-01"),
			CheckOut: strPtr("2025-01-04"),
		})
		require.NoError(t, err)

		updated, err := svc.UpdateSession(ctx, state.SessionID, UpdateSessionRequest{CheckOut: strPtr("")})
		require.NoError(t, err)
		assert.Empty(t, updated.CheckOut)

		summary, err := svc.Summary(ctx, state.SessionID)
		require.NoError(t, err)
		assert.Equal(t, 0, summary.Nights)
	})

	t.Run("unknown session", func(t *testing.T) {
		_, err := svc.UpdateSession(ctx, "missing", UpdateSessionRequest{})
		assert.ErrorIs(t, err, ErrSessionNotFound)
	})
}

func TestService_EnsureReadyForPayment(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	t.Run("ready with a chargeable stay", func(t *testing.T) {
		state, err := svc.StartSession(ctx, LinkParams{CheckIn: "2025-01-01", CheckOut: "2025-01-04"})
		require.NoError(t, err)
		assert.NoError(t, svc.EnsureReadyForPayment(ctx, state.SessionID))
	})

	t.Run("zero-night stay is not chargeable", func(t *testing.T) {
		state, err := svc.StartSession(ctx, LinkParams{})
		require.NoError(t, err)
		assert.ErrorIs(t, svc.EnsureReadyForPayment(ctx, state.SessionID), ErrEmptyStay)
	})

	t.Run("inverted dates are not chargeable", func(t *testing.T) {
		state, err := svc.StartSession(ctx, LinkParams{CheckIn: "2025-01-04", CheckOut: "2025-01-01"})
		require.NoError(t, err)
		assert.ErrorIs(t, svc.EnsureReadyForPayment(ctx, state.SessionID), ErrEmptyStay)
	})

	t.Run("unknown session", func(t *testing.T) {
		assert.ErrorIs(t, svc.EnsureReadyForPayment(ctx, "missing"), ErrSessionNotFound)
	})
}

func TestService_ConfirmReservation(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	state, err := svc.StartSession(ctx, LinkParams{Room: "room-b", CheckIn: "2025-01-01", CheckOut: "2025-01-04"})
	require.NoError(t, err)

	_, err = svc.UpdateSession(ctx, state.SessionID, UpdateSessionRequest{
		GuestName:  strPtr("Asha Rao"),
		GuestEmail: strPtr("asha@example.com"),
	})
	require.NoError(t, err)

	reservation, err := svc.ConfirmReservation(ctx, state.SessionID, PaymentDetails{
		Method:        "card",
		TransactionID: "TXN_TEST_1",
	})
	require.NoError(t, err)

	assert.Equal(t, "room-b", reservation.RoomID)
	assert.Equal(t, 3, reservation.Nights)
	assert.Equal(t, int64(600), reservation.TotalPrice)
	assert.Equal(t, "Asha Rao", reservation.GuestName)
	assert.Equal(t, StatusConfirmed.String(), reservation.Status)
	assert.True(t, strings.HasPrefix(reservation.ReservationRef, "HVN-"))

	require.Len(t, reservation.Payments, 1)
	payment := reservation.Payments[0]
	assert.Equal(t, int64(600), payment.Amount)
	assert.Equal(t, "TXN_TEST_1", payment.TransactionID)
	assert.True(t, payment.IsCompleted())
	assert.NotNil(t, payment.ProcessedAt)

	t.Run("session is discarded after confirmation", func(t *testing.T) {
		_, err := svc.GetSession(ctx, state.SessionID)
		assert.ErrorIs(t, err, ErrSessionNotFound)
	})

	t.Run("lookup by reference", func(t *testing.T) {
		found, err := svc.GetReservationByRef(ctx, reservation.ReservationRef)
		require.NoError(t, err)
		assert.Equal(t, reservation.SessionID, found.SessionID)
	})

	t.Run("session cannot confirm twice", func(t *testing.T) {
		_, err := svc.ConfirmReservation(ctx, state.SessionID, PaymentDetails{Method: "card", TransactionID: "TXN_TEST_2"})
		assert.Error(t, err)

		stored, err := repo.GetBySessionID(ctx, state.SessionID)
		require.NoError(t, err)
		assert.Equal(t, "TXN_TEST_1", stored.Payments[0].TransactionID)
	})
}

func TestService_ConfirmReservation_EmptyStay(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	state, err := svc.StartSession(ctx, LinkParams{})
	require.NoError(t, err)

	_, err = svc.ConfirmReservation(ctx, state.SessionID, PaymentDetails{Method: "card", TransactionID: "TXN_TEST_3"})
	assert.ErrorIs(t, err, ErrEmptyStay)
}

func TestService_AbandonSession(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	state, err := svc.StartSession(ctx, LinkParams{})
	require.NoError(t, err)

	require.NoError(t, svc.AbandonSession(ctx, state.SessionID))

	_, err = svc.GetSession(ctx, state.SessionID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
