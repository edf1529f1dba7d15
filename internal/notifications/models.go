package notifications

import (
	"encoding/json"
	"time"
)

const EventTypeReservationConfirmed = "reservation.confirmed"

// ReservationEvent is the payload published when a reservation is
// confirmed. Downstream consumers (email, ops dashboards) key off Type.
type ReservationEvent struct {
	Type           string    `json:"type"`
	ReservationRef string    `json:"reservation_ref"`
	SessionID      string    `json:"session_id"`
	RoomID         string    `json:"room_id"`
	RoomName       string    `json:"room_name"`
	CheckIn        string    `json:"check_in"`
	CheckOut       string    `json:"check_out"`
	Nights         int       `json:"nights"`
	Guests         int       `json:"guests"`
	TotalPrice     int64     `json:"total_price"`
	GuestEmail     string    `json:"guest_email,omitempty"`
	OccurredAt     time.Time `json:"occurred_at"`
}

// ToJSON serializes the event for the wire
func (e *ReservationEvent) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// PartitionKey routes all events of one reservation to one partition.
func (e *ReservationEvent) PartitionKey() string {
	return e.ReservationRef
}
