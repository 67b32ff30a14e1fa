package store

import (
	"context"
	"math"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"hotel-infinity/models"
	"hotel-infinity/monitoring"
	"hotel-infinity/payment"
	"hotel-infinity/utils"
)

const dateLayout = "2006-01-02"

// BookingRequest is the public booking form: customer identity, dates, the
// referenced room or hall, and the guest count.
type BookingRequest struct {
	CustomerName string `json:"customerName" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	Phone        string `json:"phone" validate:"required"`
	CheckIn      string `json:"checkIn" validate:"required,datetime=2006-01-02"`
	CheckOut     string `json:"checkOut" validate:"omitempty,datetime=2006-01-02"`
	RoomID       string `json:"roomId"`
	HallID       string `json:"hallId"`
	Type         string `json:"type" validate:"required,oneof=room hall"`
	Guests       int    `json:"guests" validate:"gte=1"`
}

type BookingPatch struct {
	CustomerName  *string `json:"customerName"`
	Email         *string `json:"email" validate:"omitempty,email"`
	Phone         *string `json:"phone"`
	CheckIn       *string `json:"checkIn" validate:"omitempty,datetime=2006-01-02"`
	CheckOut      *string `json:"checkOut" validate:"omitempty,datetime=2006-01-02"`
	Guests        *int    `json:"guests" validate:"omitempty,gte=1"`
	Status        *string `json:"status" validate:"omitempty,oneof=pending confirmed cancelled completed"`
	PaymentStatus *string `json:"paymentStatus" validate:"omitempty,oneof=pending completed failed refunded"`
}

// Nights charged for a room stay: ceiling of whole days between the dates,
// never less than one. checkOut equal to (or before) checkIn is one night.
func nights(checkIn, checkOut string) int {
	in, err := time.Parse(dateLayout, checkIn)
	if err != nil {
		return 1
	}
	out, err := time.Parse(dateLayout, checkOut)
	if err != nil {
		return 1
	}
	n := int(math.Ceil(out.Sub(in).Hours() / 24))
	if n < 1 {
		return 1
	}
	return n
}

// CreateBooking runs the full booking/payment flow: validate the request
// against the referenced item, authorize the amount through the gateway,
// then record the booking and its correlated payment. A declined or failed
// authorization still records the booking, left pending with paymentStatus
// failed, so the attempt is visible to the back office.
func (s *Store) CreateBooking(ctx context.Context, req BookingRequest) (*models.Booking, error) {
	if err := s.validateInput(req); err != nil {
		return nil, err
	}
	if req.CheckOut == "" {
		req.CheckOut = req.CheckIn
	}

	total, err := s.priceBooking(req)
	if err != nil {
		return nil, err
	}

	// The gateway call runs outside the store lock: the simulated delay must
	// not stall unrelated reads and writes.
	auth, authErr := s.gateway.Authorize(ctx, total)
	if authErr != nil && !errors.Is(authErr, payment.ErrDeclined) {
		if ctx.Err() != nil {
			return nil, utils.BadRequestErr(ctx.Err())
		}
		log.Warn().Err(authErr).Float64("amount", total).Msg("payment authorization failed")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// The item may have been deleted while the authorization was pending.
	if err := s.checkBookingTarget(req); err != nil {
		return nil, err
	}

	now := s.now()
	booking := models.Booking{
		ID:           s.newID(),
		CustomerName: req.CustomerName,
		Email:        req.Email,
		Phone:        req.Phone,
		CheckIn:      req.CheckIn,
		CheckOut:     req.CheckOut,
		RoomID:       req.RoomID,
		HallID:       req.HallID,
		Type:         req.Type,
		Guests:       req.Guests,
		TotalAmount:  total,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if authErr == nil {
		booking.Status = models.BookingStatusConfirmed
		booking.PaymentStatus = models.PaymentStatusCompleted
		booking.PaymentID = auth.TransactionID
	} else {
		booking.Status = models.BookingStatusPending
		booking.PaymentStatus = models.PaymentStatusFailed
	}

	return s.addBookingLocked(ctx, booking)
}

// priceBooking checks the referenced item and computes the total: rooms are
// priced per night, halls flat per event.
func (s *Store) priceBooking(req BookingRequest) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkBookingTarget(req); err != nil {
		return 0, err
	}

	switch req.Type {
	case models.BookingTypeRoom:
		room, _ := s.roomLocked(req.RoomID)
		if !room.Available {
			return 0, utils.Conflict("room is not available")
		}
		if req.Guests > room.Capacity {
			return 0, utils.BadRequest("guest count exceeds room capacity")
		}
		return room.Price * float64(nights(req.CheckIn, req.CheckOut)), nil
	default:
		hall, _ := s.hallLocked(req.HallID)
		if !hall.Available {
			return 0, utils.Conflict("hall is not available")
		}
		if req.Guests > hall.Capacity {
			return 0, utils.BadRequest("guest count exceeds hall capacity")
		}
		return hall.Price, nil
	}
}

// checkBookingTarget enforces that exactly one of roomId/hallId is set,
// consistent with type, and that the item exists. Callers hold s.mu.
func (s *Store) checkBookingTarget(req BookingRequest) error {
	switch req.Type {
	case models.BookingTypeRoom:
		if req.RoomID == "" || req.HallID != "" {
			return utils.BadRequest("room booking requires roomId and no hallId")
		}
		if _, ok := s.roomLocked(req.RoomID); !ok {
			return utils.NotFound("room", req.RoomID)
		}
	case models.BookingTypeHall:
		if req.HallID == "" || req.RoomID != "" {
			return utils.BadRequest("hall booking requires hallId and no roomId")
		}
		if _, ok := s.hallLocked(req.HallID); !ok {
			return utils.NotFound("hall", req.HallID)
		}
	}
	return nil
}

func (s *Store) roomLocked(id string) (models.Room, bool) {
	for _, room := range s.rooms {
		if room.ID == id {
			return room, true
		}
	}
	return models.Room{}, false
}

func (s *Store) hallLocked(id string) (models.PartyHall, bool) {
	for _, hall := range s.halls {
		if hall.ID == id {
			return hall, true
		}
	}
	return models.PartyHall{}, false
}

// addBookingLocked inserts the booking newest-first and, when it carries a
// payment reference, records the correlated Payment in the same mutation.
func (s *Store) addBookingLocked(ctx context.Context, booking models.Booking) (*models.Booking, error) {
	s.bookings = append([]models.Booking{booking}, s.bookings...)
	monitoring.CountMutation("booking", "add")

	paymentCreated := false
	if booking.PaymentID != "" {
		now := s.now()
		pay := models.Payment{
			ID:            s.newID(),
			BookingID:     booking.ID,
			Amount:        booking.TotalAmount,
			Status:        booking.PaymentStatus,
			PaymentMethod: models.PaymentMethodRazorpay,
			TransactionID: booking.PaymentID,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		s.payments = append([]models.Payment{pay}, s.payments...)
		paymentCreated = true
		monitoring.CountMutation("payment", "add")
	}

	if err := s.persistBookings(ctx); err != nil {
		return &booking, err
	}
	if paymentCreated {
		if err := s.persistPayments(ctx); err != nil {
			return &booking, err
		}
	}
	return &booking, nil
}

func (s *Store) Bookings(token string) ([]models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireAdmin(token); err != nil {
		return nil, err
	}
	out := make([]models.Booking, len(s.bookings))
	copy(out, s.bookings)
	return out, nil
}

func (s *Store) BookingByID(token, id string) (models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireAdmin(token); err != nil {
		return models.Booking{}, err
	}
	for _, booking := range s.bookings {
		if booking.ID == id {
			return booking, nil
		}
	}
	return models.Booking{}, utils.NotFound("booking", id)
}

func (s *Store) UpdateBooking(ctx context.Context, token, id string, patch BookingPatch) (*models.Booking, error) {
	if err := s.validateInput(patch); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireAdmin(token); err != nil {
		return nil, err
	}

	idx := -1
	for i := range s.bookings {
		if s.bookings[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, utils.NotFound("booking", id)
	}

	booking := &s.bookings[idx]
	if patch.CustomerName != nil {
		booking.CustomerName = *patch.CustomerName
	}
	if patch.Email != nil {
		booking.Email = *patch.Email
	}
	if patch.Phone != nil {
		booking.Phone = *patch.Phone
	}
	if patch.CheckIn != nil {
		booking.CheckIn = *patch.CheckIn
	}
	if patch.CheckOut != nil {
		booking.CheckOut = *patch.CheckOut
	}
	if patch.Guests != nil {
		booking.Guests = *patch.Guests
	}
	if patch.Status != nil {
		booking.Status = *patch.Status
	}
	if patch.PaymentStatus != nil {
		booking.PaymentStatus = *patch.PaymentStatus
	}
	booking.UpdatedAt = s.now()
	monitoring.CountMutation("booking", "update")

	updated := *booking
	if err := s.persistBookings(ctx); err != nil {
		return &updated, err
	}
	return &updated, nil
}

// DeleteBooking removes the booking and every payment correlated to it.
func (s *Store) DeleteBooking(ctx context.Context, token, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireAdmin(token); err != nil {
		return err
	}

	idx := -1
	for i := range s.bookings {
		if s.bookings[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return utils.NotFound("booking", id)
	}
	s.bookings = append(s.bookings[:idx], s.bookings[idx+1:]...)

	kept := s.payments[:0]
	removed := 0
	for _, pay := range s.payments {
		if pay.BookingID == id {
			removed++
			continue
		}
		kept = append(kept, pay)
	}
	s.payments = kept
	monitoring.CountMutation("booking", "delete")

	if err := s.persistBookings(ctx); err != nil {
		return err
	}
	if removed > 0 {
		if err := s.persistPayments(ctx); err != nil {
			return err
		}
	}
	return nil
}
