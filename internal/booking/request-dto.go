package booking

// UpdateSessionRequest carries the explicit setters of the booking
// surface. Nil fields are untouched; an empty date string clears the
// corresponding date.
type UpdateSessionRequest struct {
	RoomID     *string `json:"room_id"`
	CheckIn    *string `json:"check_in" binding:"omitempty,calendardate"`
	CheckOut   *string `json:"check_out" binding:"omitempty,calendardate"`
	Guests     *int    `json:"guests" binding:"omitempty,min=1,max=4"`
	GuestName  *string `json:"guest_name"`
	GuestEmail *string `json:"guest_email" binding:"omitempty,email"`
}
