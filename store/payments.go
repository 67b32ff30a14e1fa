package store

import (
	"context"

	"hotel-infinity/models"
	"hotel-infinity/monitoring"
	"hotel-infinity/utils"
)

// PaymentInput covers manually recorded payments (cash or card taken at the
// desk); gateway payments are created by the booking flow.
type PaymentInput struct {
	BookingID     string  `json:"bookingId" validate:"required"`
	Amount        float64 `json:"amount" validate:"gte=0"`
	Status        string  `json:"status" validate:"required,oneof=pending completed failed refunded"`
	PaymentMethod string  `json:"paymentMethod" validate:"required,oneof=razorpay cash card"`
	TransactionID string  `json:"transactionId"`
}

type PaymentPatch struct {
	Status        *string `json:"status" validate:"omitempty,oneof=pending completed failed refunded"`
	PaymentMethod *string `json:"paymentMethod" validate:"omitempty,oneof=razorpay cash card"`
	TransactionID *string `json:"transactionId"`
}

func (s *Store) Payments(token string) ([]models.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireAdmin(token); err != nil {
		return nil, err
	}
	out := make([]models.Payment, len(s.payments))
	copy(out, s.payments)
	return out, nil
}

func (s *Store) AddPayment(ctx context.Context, token string, input PaymentInput) (*models.Payment, error) {
	if err := s.validateInput(input); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireAdmin(token); err != nil {
		return nil, err
	}

	found := false
	for i := range s.bookings {
		if s.bookings[i].ID == input.BookingID {
			found = true
			break
		}
	}
	if !found {
		return nil, utils.NotFound("booking", input.BookingID)
	}

	now := s.now()
	pay := models.Payment{
		ID:            s.newID(),
		BookingID:     input.BookingID,
		Amount:        input.Amount,
		Status:        input.Status,
		PaymentMethod: input.PaymentMethod,
		TransactionID: input.TransactionID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	s.payments = append([]models.Payment{pay}, s.payments...)
	monitoring.CountMutation("payment", "add")

	if err := s.persistPayments(ctx); err != nil {
		return &pay, err
	}
	return &pay, nil
}

func (s *Store) UpdatePayment(ctx context.Context, token, id string, patch PaymentPatch) (*models.Payment, error) {
	if err := s.validateInput(patch); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireAdmin(token); err != nil {
		return nil, err
	}

	idx := -1
	for i := range s.payments {
		if s.payments[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, utils.NotFound("payment", id)
	}

	pay := &s.payments[idx]
	if patch.Status != nil {
		pay.Status = *patch.Status
	}
	if patch.PaymentMethod != nil {
		pay.PaymentMethod = *patch.PaymentMethod
	}
	if patch.TransactionID != nil {
		pay.TransactionID = *patch.TransactionID
	}
	pay.UpdatedAt = s.now()
	monitoring.CountMutation("payment", "update")

	updated := *pay
	if err := s.persistPayments(ctx); err != nil {
		return &updated, err
	}
	return &updated, nil
}
