package booking

import (
	"haven/internal/catalog"
)

// LinkParams carries the optional deep-link parameters a shareable
// booking URL may supply.
type LinkParams struct {
	Room     string
	CheckIn  string
	CheckOut string
}

// IsEmpty reports whether the link carries nothing to apply.
func (p LinkParams) IsEmpty() bool {
	return p.Room == "" && p.CheckIn == "" && p.CheckOut == ""
}

// hydrate applies deep-link parameters to a fresh session state.
// Runs once at session start; idempotent for identical params.
//
// Unknown room ids are ignored, leaving the default selection. Date
// values are truncated to their calendar-date portion and dropped when
// they do not parse. Absent parameters leave the defaults untouched.
func hydrate(state *BookingState, params LinkParams, rooms catalog.Service) bool {
	applied := false

	if params.Room != "" {
		if _, ok := rooms.Lookup(params.Room); ok {
			state.RoomID = params.Room
			applied = true
		}
	}

	if params.CheckIn != "" {
		if date, ok := NormalizeDate(params.CheckIn); ok {
			state.CheckIn = date
			applied = true
		}
	}

	if params.CheckOut != "" {
		if date, ok := NormalizeDate(params.CheckOut); ok {
			state.CheckOut = date
			applied = true
		}
	}

	return applied
}
