package payment

// AttemptStatusResponse reports the payment attempt lifecycle for a
// session, including the confirmed reservation once the flow completed.
type AttemptStatusResponse struct {
	SessionID      string   `json:"session_id"`
	Status         Status   `json:"status"`
	LastOutcome    *Outcome `json:"last_outcome,omitempty"`
	ReservationRef string   `json:"reservation_ref,omitempty"`
}
