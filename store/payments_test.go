package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-infinity/models"
	"hotel-infinity/utils"
)

func TestAddPayment_RequiresExistingBooking(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)
	token := loginTestAdmin(t, s)

	_, err := s.AddPayment(ctx, token, PaymentInput{
		BookingID: "no-such-booking", Amount: 100,
		Status: "completed", PaymentMethod: "cash",
	})
	require.Error(t, err)
	assert.Equal(t, 404, utils.GetCode(err))
}

func TestAddPayment_RecordsDeskPayment(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStoreWithGateway(t, stubGateway{declined: true})
	token := loginTestAdmin(t, s)

	// A declined gateway leaves the booking pending; the desk settles it
	// in cash afterwards.
	booking, err := s.CreateBooking(ctx, BookingRequest{
		CustomerName: "Ravi", Email: "ravi@example.com", Phone: "1234567890",
		CheckIn: "2024-03-01", CheckOut: "2024-03-02",
		RoomID: "1", Type: "room", Guests: 2,
	})
	require.NoError(t, err)

	pay, err := s.AddPayment(ctx, token, PaymentInput{
		BookingID: booking.ID, Amount: booking.TotalAmount,
		Status: "completed", PaymentMethod: "cash",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, pay.ID)
	assert.Equal(t, models.PaymentMethodCash, pay.PaymentMethod)

	payments, err := s.Payments(token)
	require.NoError(t, err)
	require.Len(t, payments, 1)
	assert.Equal(t, pay.ID, payments[0].ID)
}

func TestAddPayment_ValidatesMethodAndStatus(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)
	token := loginTestAdmin(t, s)

	booking, err := s.CreateBooking(ctx, BookingRequest{
		CustomerName: "Ravi", Email: "ravi@example.com", Phone: "1234567890",
		CheckIn: "2024-03-01", CheckOut: "2024-03-02",
		RoomID: "1", Type: "room", Guests: 2,
	})
	require.NoError(t, err)

	_, err = s.AddPayment(ctx, token, PaymentInput{
		BookingID: booking.ID, Amount: 100,
		Status: "completed", PaymentMethod: "bitcoin",
	})
	assert.Equal(t, 400, utils.GetCode(err))

	_, err = s.AddPayment(ctx, token, PaymentInput{
		BookingID: booking.ID, Amount: 100,
		Status: "maybe", PaymentMethod: "cash",
	})
	assert.Equal(t, 400, utils.GetCode(err))
}

func TestUpdatePayment_PatchesStatus(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)
	token := loginTestAdmin(t, s)

	_, err := s.CreateBooking(ctx, BookingRequest{
		CustomerName: "Ravi", Email: "ravi@example.com", Phone: "1234567890",
		CheckIn: "2024-03-01", CheckOut: "2024-03-02",
		RoomID: "1", Type: "room", Guests: 2,
	})
	require.NoError(t, err)

	payments, err := s.Payments(token)
	require.NoError(t, err)
	require.Len(t, payments, 1)

	updated, err := s.UpdatePayment(ctx, token, payments[0].ID, PaymentPatch{
		Status: strPtr("refunded"),
	})
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusRefunded, updated.Status)
	assert.Equal(t, payments[0].PaymentMethod, updated.PaymentMethod)

	_, err = s.UpdatePayment(ctx, token, "missing", PaymentPatch{Status: strPtr("refunded")})
	assert.Equal(t, 404, utils.GetCode(err))
}
