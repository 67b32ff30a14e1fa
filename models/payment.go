package models

import "time"

const (
	PaymentMethodRazorpay = "razorpay"
	PaymentMethodCash     = "cash"
	PaymentMethodCard     = "card"
)

type Payment struct {
	ID            string    `json:"id"`
	BookingID     string    `json:"bookingId"`
	Amount        float64   `json:"amount"`
	Status        string    `json:"status"` // shares the booking payment status values
	PaymentMethod string    `json:"paymentMethod"`
	TransactionID string    `json:"transactionId,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
