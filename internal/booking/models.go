package booking

import (
	"time"

	"github.com/google/uuid"
)

// Reservation defines a confirmed stay. It snapshots the room and pricing
// at confirmation time so later catalog changes never rewrite history.
type Reservation struct {
	ID             uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	SessionID      string     `gorm:"index;not null" json:"session_id"`
	RoomID         string     `gorm:"type:varchar(64);not null" json:"room_id"`
	RoomName       string     `gorm:"type:varchar(128);not null" json:"room_name"`
	NightlyPrice   int64      `gorm:"not null" json:"nightly_price"`
	CheckIn        time.Time  `gorm:"not null" json:"check_in"`
	CheckOut       time.Time  `gorm:"not null" json:"check_out"`
	Nights         int        `gorm:"not null" json:"nights"`
	Guests         int        `gorm:"not null" json:"guests"`
	TotalPrice     int64      `gorm:"not null" json:"total_price"`
	GuestName      string     `gorm:"type:varchar(128)" json:"guest_name,omitempty"`
	GuestEmail     string     `gorm:"type:varchar(128)" json:"guest_email,omitempty"`
	Status         string     `gorm:"type:varchar(20);check:status IN ('CONFIRMED', 'CANCELLED');default:'CONFIRMED'" json:"status"`
	ReservationRef string     `gorm:"unique;not null" json:"reservation_ref"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
	CancelledAt    *time.Time `json:"cancelled_at,omitempty"`

	// Relationships
	Payments []Payment `json:"payments,omitempty" gorm:"foreignKey:ReservationID;constraint:OnDelete:RESTRICT;"`
}

// Payment defines the structure for payment tracking
type Payment struct {
	ID            uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	ReservationID uuid.UUID  `gorm:"type:uuid;index;not null" json:"reservation_id"`
	Amount        int64      `gorm:"not null" json:"amount"`
	Currency      string     `gorm:"type:varchar(3);default:'INR'" json:"currency"`
	Status        string     `gorm:"type:varchar(20);check:status IN ('PENDING', 'COMPLETED', 'FAILED', 'REFUNDED');default:'PENDING'" json:"status"`
	Method        string     `gorm:"type:varchar(20)" json:"method"`
	TransactionID string     `gorm:"unique" json:"transaction_id"`
	ProcessedAt   *time.Time `json:"processed_at,omitempty"`
	FailureReason string     `json:"failure_reason,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`

	// Relationships
	Reservation *Reservation `json:"reservation,omitempty" gorm:"foreignKey:ReservationID;constraint:OnDelete:CASCADE;"`
}

// TableName sets the table name for Reservation
func (Reservation) TableName() string {
	return "reservations"
}

// TableName sets the table name for Payment
func (Payment) TableName() string {
	return "payments"
}

// Helper methods for reservation management
func (r *Reservation) IsConfirmed() bool {
	return r.Status == StatusConfirmed.String()
}

func (r *Reservation) IsCancelled() bool {
	return r.Status == StatusCancelled.String()
}

func (r *Reservation) Cancel() {
	r.Status = StatusCancelled.String()
	now := time.Now()
	r.CancelledAt = &now
	r.UpdatedAt = now
}

// Helper methods for payment management
func (p *Payment) IsCompleted() bool {
	return p.Status == "COMPLETED"
}

func (p *Payment) MarkCompleted(transactionID string) {
	p.Status = "COMPLETED"
	p.TransactionID = transactionID
	now := time.Now()
	p.ProcessedAt = &now
	p.UpdatedAt = now
}

func (p *Payment) MarkFailed(reason string) {
	p.Status = "FAILED"
	p.FailureReason = reason
	now := time.Now()
	p.ProcessedAt = &now
	p.UpdatedAt = now
}
