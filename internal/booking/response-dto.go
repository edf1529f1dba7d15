package booking

import "time"

// SessionResponse pairs the stored state with its derived summary.
type SessionResponse struct {
	Session *BookingState       `json:"session"`
	Summary *ReservationSummary `json:"summary"`
}

// ReservationResponse represents a confirmed reservation
type ReservationResponse struct {
	ReservationRef string    `json:"reservation_ref"`
	Status         string    `json:"status"`
	RoomID         string    `json:"room_id"`
	RoomName       string    `json:"room_name"`
	CheckIn        string    `json:"check_in"`
	CheckOut       string    `json:"check_out"`
	Nights         int       `json:"nights"`
	Guests         int       `json:"guests"`
	TotalPrice     int64     `json:"total_price"`
	GuestName      string    `json:"guest_name,omitempty"`
	Payments       []Payment `json:"payments,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// ToResponse converts a Reservation to its API shape
func (r *Reservation) ToResponse() ReservationResponse {
	return ReservationResponse{
		ReservationRef: r.ReservationRef,
		Status:         r.Status,
		RoomID:         r.RoomID,
		RoomName:       r.RoomName,
		CheckIn:        r.CheckIn.Format(DateLayout),
		CheckOut:       r.CheckOut.Format(DateLayout),
		Nights:         r.Nights,
		Guests:         r.Guests,
		TotalPrice:     r.TotalPrice,
		GuestName:      r.GuestName,
		Payments:       r.Payments,
		CreatedAt:      r.CreatedAt,
	}
}
