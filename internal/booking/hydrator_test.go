package booking

import (
	"testing"

	"haven/internal/catalog"

	"github.com/stretchr/testify/assert"
)

func hydratorRooms() catalog.Service {
	return catalog.NewService(catalog.NewMemoryRepository([]catalog.Room{
		{ID: "room-a", Name: "Room A", NightlyPrice: 100, MaxGuests: 4},
		{ID: "room-b", Name: "Room B", NightlyPrice: 200, MaxGuests: 4},
	}))
}

func TestHydrate(t *testing.T) {
	rooms := hydratorRooms()

	tests := []struct {
		name         string
		params       LinkParams
		wantRoomID   string
		wantCheckIn  string
		wantCheckOut string
		wantApplied  bool
	}{
		{
			name:        "empty link leaves defaults",
			params:      LinkParams{},
			wantRoomID:  "room-a",
			wantApplied: false,
		},
		{
			name:         "full link applies everything",
			params:       LinkParams{Room: "room-b", CheckIn: "2025-01-01", CheckOut: "2025-01-04"},
			wantRoomID:   "room-b",
			wantCheckIn:  "2025-01-01",
			wantCheckOut: "2025-01-04",
			wantApplied:  true,
		},
		{
			name:        "unknown room keeps default selection",
			params:      LinkParams{Room: "penthouse"},
			wantRoomID:  "room-a",
			wantApplied: false,
		},
		{
			name:         "unknown room with valid dates still applies dates",
			params:       LinkParams{Room: "penthouse", CheckIn: "2025-01-01", CheckOut: "2025-01-04"},
			wantRoomID:   "room-a",
			wantCheckIn:  "2025-01-01",
			wantCheckOut: "2025-01-04",
			wantApplied:  true,
		},
		{
			name:         "timestamps are truncated to calendar dates",
			params:       LinkParams{CheckIn: "2025-01-01T14:00:00Z", CheckOut: "2025-01-04T11:00:00Z"},
			wantRoomID:   "room-a",
			wantCheckIn:  "2025-01-01",
			wantCheckOut: "2025-01-04",
			wantApplied:  true,
		},
		{
			name:        "unparsable dates are dropped",
			params:      LinkParams{Room: "room-b", CheckIn: "whenever", CheckOut: "soon"},
			wantRoomID:  "room-b",
			wantApplied: true,
		},
		{
			name:        "partial link applies only what it carries",
			params:      LinkParams{CheckIn: "2025-01-01"},
			wantRoomID:  "room-a",
			wantCheckIn: "2025-01-01",
			wantApplied: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := NewBookingState("sess-1", rooms.First())
			applied := hydrate(state, tt.params, rooms)

			assert.Equal(t, tt.wantApplied, applied)
			assert.Equal(t, tt.wantRoomID, state.RoomID)
			assert.Equal(t, tt.wantCheckIn, state.CheckIn)
			assert.Equal(t, tt.wantCheckOut, state.CheckOut)
			assert.Equal(t, 2, state.Guests, "hydration never touches the guest count")
		})
	}
}

func TestHydrate_Idempotent(t *testing.T) {
	rooms := hydratorRooms()
	params := LinkParams{Room: "room-b", CheckIn: "2025-01-01", CheckOut: "2025-01-04"}

	state := NewBookingState("sess-1", rooms.First())
	hydrate(state, params, rooms)
	first := *state

	hydrate(state, params, rooms)
	assert.Equal(t, first, *state)
}

func TestLinkParams_IsEmpty(t *testing.T) {
	assert.True(t, LinkParams{}.IsEmpty())
	assert.False(t, LinkParams{Room: "room-a"}.IsEmpty())
	assert.False(t, LinkParams{CheckIn: "2025-01-01"}.IsEmpty())
	assert.False(t, LinkParams{CheckOut: "2025-01-04"}.IsEmpty())
}
