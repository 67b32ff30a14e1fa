package store

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-infinity/payment"
	"hotel-infinity/storage"
	"hotel-infinity/utils"
)

const (
	testAdminEmail    = "admin@hotelinfinity.com"
	testAdminPassword = "admin123"
)

type stubGateway struct {
	declined bool
	err      error
	txnID    string
}

func (g stubGateway) Authorize(_ context.Context, amount float64) (*payment.Authorization, error) {
	if g.err != nil {
		return nil, g.err
	}
	if g.declined {
		return nil, payment.ErrDeclined
	}
	txn := g.txnID
	if txn == "" {
		txn = "pay_stub_1"
	}
	return &payment.Authorization{TransactionID: txn, Amount: amount, AuthorizedAt: time.Now()}, nil
}

// failingSlotStore fails saves for the listed slot keys and delegates
// everything else to an in-memory store.
type failingSlotStore struct {
	*storage.MemoryStore
	failKeys map[string]bool
}

func (f *failingSlotStore) Save(ctx context.Context, key string, value []byte) error {
	if f.failKeys[key] {
		return errors.New("disk full")
	}
	return f.MemoryStore.Save(ctx, key, value)
}

func newTestStoreWithGateway(t *testing.T, gw payment.Gateway) (*Store, *storage.MemoryStore) {
	t.Helper()
	mem := storage.NewMemoryStore()
	s, err := New(context.Background(), mem, gw, Config{
		AdminEmail:    testAdminEmail,
		AdminPassword: testAdminPassword,
		AdminName:     "Admin User",
	})
	require.NoError(t, err)
	return s, mem
}

func newTestStore(t *testing.T) (*Store, *storage.MemoryStore) {
	t.Helper()
	return newTestStoreWithGateway(t, stubGateway{})
}

func loginTestAdmin(t *testing.T, s *Store) string {
	t.Helper()
	sess, err := s.Login(context.Background(), testAdminEmail, testAdminPassword)
	require.NoError(t, err)
	return sess.Token
}

func asJSON(t *testing.T, v interface{}) string {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	return string(raw)
}

// Rebuilding the store from the same slots must reproduce the collections
// exactly, for any prior sequence of mutations.
func TestStore_RestartReproducesState(t *testing.T) {
	ctx := context.Background()
	s, mem := newTestStore(t)
	token := loginTestAdmin(t, s)

	_, err := s.AddRoom(ctx, token, RoomInput{
		Name: "Garden View Room", Type: "AC", Price: 2800, Capacity: 3, Available: true,
	})
	require.NoError(t, err)

	_, err = s.AddReview(ctx, ReviewInput{
		CustomerName: "Priya", Rating: 5, Comment: "Wonderful stay.",
	})
	require.NoError(t, err)

	booking, err := s.CreateBooking(ctx, BookingRequest{
		CustomerName: "Priya", Email: "priya@example.com", Phone: "9999999999",
		CheckIn: "2024-03-01", CheckOut: "2024-03-03",
		RoomID: "1", Type: "room", Guests: 2,
	})
	require.NoError(t, err)
	_, err = s.UpdateBooking(ctx, token, booking.ID, BookingPatch{Status: strPtr("completed")})
	require.NoError(t, err)

	reloaded, err := New(ctx, mem, stubGateway{}, Config{
		AdminEmail:    testAdminEmail,
		AdminPassword: testAdminPassword,
		AdminName:     "Admin User",
	})
	require.NoError(t, err)

	require.Equal(t, asJSON(t, s.rooms), asJSON(t, reloaded.rooms))
	require.Equal(t, asJSON(t, s.halls), asJSON(t, reloaded.halls))
	require.Equal(t, asJSON(t, s.reviews), asJSON(t, reloaded.reviews))
	require.Equal(t, asJSON(t, s.bookings), asJSON(t, reloaded.bookings))
	require.Equal(t, asJSON(t, s.payments), asJSON(t, reloaded.payments))
	require.Equal(t, asJSON(t, s.settings), asJSON(t, reloaded.settings))
}

func TestStore_SeedsOnFirstRun(t *testing.T) {
	s, _ := newTestStore(t)

	require.Len(t, s.Rooms(), 3)
	require.Len(t, s.Halls(), 2)
	require.Len(t, s.PublicReviews(), 2)
	require.Equal(t, "Hotel Infinity", s.Settings().HotelName)
}

// A failed flush surfaces the write error, but the mutation has already been
// applied and in-memory state stays authoritative.
func TestStore_FailedFlushKeepsInMemoryState(t *testing.T) {
	ctx := context.Background()
	slots := &failingSlotStore{MemoryStore: storage.NewMemoryStore(), failKeys: map[string]bool{}}
	s, err := New(ctx, slots, stubGateway{}, Config{
		AdminEmail:    testAdminEmail,
		AdminPassword: testAdminPassword,
		AdminName:     "Admin User",
	})
	require.NoError(t, err)
	token := loginTestAdmin(t, s)

	slots.failKeys[storage.SlotRooms] = true
	room, err := s.AddRoom(ctx, token, RoomInput{
		Name: "Annex Room", Type: "AC", Price: 1200, Capacity: 2, Available: true,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "persist rooms")
	require.NotNil(t, room)

	got, err := s.RoomByID(room.ID)
	require.NoError(t, err)
	assert.Equal(t, "Annex Room", got.Name)

	// The slot still holds the pre-mutation collection.
	raw, ok, err := slots.MemoryStore.Load(ctx, storage.SlotRooms)
	require.NoError(t, err)
	require.True(t, ok)
	var persisted []struct {
		ID string `json:"id"`
	}
	require.NoError(t, storage.DecodeSlot(raw, &persisted))
	require.Len(t, persisted, 3)
}

// DeleteBooking flushes bookings then payments; a failure on the second write
// must not undo either in-memory removal.
func TestDeleteBooking_PaymentsFlushFailureSurfaced(t *testing.T) {
	ctx := context.Background()
	slots := &failingSlotStore{MemoryStore: storage.NewMemoryStore(), failKeys: map[string]bool{}}
	s, err := New(ctx, slots, stubGateway{}, Config{
		AdminEmail:    testAdminEmail,
		AdminPassword: testAdminPassword,
		AdminName:     "Admin User",
	})
	require.NoError(t, err)
	token := loginTestAdmin(t, s)

	booking, err := s.CreateBooking(ctx, BookingRequest{
		CustomerName: "Ravi", Email: "ravi@example.com", Phone: "1234567890",
		CheckIn: "2024-03-01", CheckOut: "2024-03-02",
		RoomID: "1", Type: "room", Guests: 2,
	})
	require.NoError(t, err)

	slots.failKeys[storage.SlotPayments] = true
	err = s.DeleteBooking(ctx, token, booking.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "persist payments")

	_, err = s.BookingByID(token, booking.ID)
	assert.Equal(t, 404, utils.GetCode(err))

	payments, err := s.Payments(token)
	require.NoError(t, err)
	assert.Empty(t, payments)
}

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

func floatPtr(f float64) *float64 { return &f }

func boolPtr(b bool) *bool { return &b }
