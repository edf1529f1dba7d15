package booking

import (
	"math"
	"strings"
	"time"

	"haven/internal/catalog"
)

// DateLayout is the calendar-date format used throughout the booking flow.
const DateLayout = "2006-01-02"

// Guest count bounds offered by the booking surface.
const (
	MinGuests = 1
	MaxGuests = 4

	defaultGuests = 2
)

// BookingState is the per-session record of an in-progress selection.
// Dates are calendar-date strings; empty means not chosen yet. Totals are
// never stored here: they are derived on every read via Summarize.
type BookingState struct {
	SessionID  string    `json:"session_id"`
	RoomID     string    `json:"room_id"`
	CheckIn    string    `json:"check_in,omitempty"`
	CheckOut   string    `json:"check_out,omitempty"`
	Guests     int       `json:"guests"`
	GuestName  string    `json:"guest_name,omitempty"`
	GuestEmail string    `json:"guest_email,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// NewBookingState creates a session with the surface defaults:
// first catalog room, no dates, two guests.
func NewBookingState(sessionID string, defaultRoom catalog.Room) *BookingState {
	now := time.Now().UTC()
	return &BookingState{
		SessionID: sessionID,
		RoomID:    defaultRoom.ID,
		Guests:    defaultGuests,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// ReservationSummary is derived from BookingState on every read.
type ReservationSummary struct {
	Room   catalog.Room `json:"room"`
	Nights int          `json:"nights"`
	Guests int          `json:"guests"`
	Total  int64        `json:"total"`
}

// Summarize computes the reservation summary for a state. The selected
// room always resolves (unknown ids fall back to the catalog's first
// entry), and an incomplete or inverted stay yields zero nights and a
// zero total rather than an error.
func Summarize(state *BookingState, rooms catalog.Service) ReservationSummary {
	room := rooms.ResolveOrDefault(state.RoomID)
	nights := StayNights(state.CheckIn, state.CheckOut)
	return ReservationSummary{
		Room:   room,
		Nights: nights,
		Guests: state.Guests,
		Total:  int64(nights) * room.NightlyPrice,
	}
}

// StayNights returns the stay length in whole nights, rounding up.
// Zero when either date is absent, unparsable, or checkOut is not
// strictly after checkIn.
func StayNights(checkIn, checkOut string) int {
	if checkIn == "" || checkOut == "" {
		return 0
	}

	start, err := time.Parse(DateLayout, checkIn)
	if err != nil {
		return 0
	}
	end, err := time.Parse(DateLayout, checkOut)
	if err != nil {
		return 0
	}

	if !end.After(start) {
		return 0
	}

	return int(math.Ceil(end.Sub(start).Hours() / 24))
}

// NormalizeDate reduces a raw date string to its calendar-date portion,
// discarding any time-of-day suffix (e.g. "2025-01-01T10:00:00Z").
// Reports false when the remainder is not a valid calendar date.
func NormalizeDate(raw string) (string, bool) {
	trimmed := strings.TrimSpace(raw)
	if idx := strings.IndexByte(trimmed, 'T'); idx >= 0 {
		trimmed = trimmed[:idx]
	}
	if trimmed == "" {
		return "", false
	}
	if _, err := time.Parse(DateLayout, trimmed); err != nil {
		return "", false
	}
	return trimmed, true
}
