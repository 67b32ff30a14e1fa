package models

import "time"

const (
	BookingTypeRoom = "room"
	BookingTypeHall = "hall"
)

const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
	BookingStatusCompleted = "completed"
)

const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"
	PaymentStatusRefunded  = "refunded"
)

type Booking struct {
	ID            string    `json:"id"`
	CustomerName  string    `json:"customerName"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	CheckIn       string    `json:"checkIn"`  // YYYY-MM-DD
	CheckOut      string    `json:"checkOut"` // YYYY-MM-DD
	RoomID        string    `json:"roomId,omitempty"`
	HallID        string    `json:"hallId,omitempty"`
	Type          string    `json:"type"` // room | hall
	Guests        int       `json:"guests"`
	TotalAmount   float64   `json:"totalAmount"`
	Status        string    `json:"status"`
	PaymentID     string    `json:"paymentId,omitempty"`
	PaymentStatus string    `json:"paymentStatus"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
