package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-infinity/config"
	"hotel-infinity/models"
	"hotel-infinity/payment"
	"hotel-infinity/storage"
	"hotel-infinity/store"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	s, err := store.New(context.Background(), storage.NewMemoryStore(),
		payment.NewSimulatedGateway(0, 0), store.Config{
			AdminEmail:    "admin@hotelinfinity.com",
			AdminPassword: "admin123",
			AdminName:     "Admin User",
		})
	require.NoError(t, err)

	return SetupRouter(&config.Config{}, s)
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func login(t *testing.T, r *gin.Engine) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email": "admin@hotelinfinity.com", "password": "admin123",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestPublicRoomsListing(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/rooms", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var rooms []models.Room
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rooms))
	assert.Len(t, rooms, 3)
}

func TestAdminSurfaceRequiresToken(t *testing.T) {
	r := newTestRouter(t)

	for _, path := range []string{"/api/admin/dashboard", "/api/admin/bookings", "/api/admin/reviews"} {
		w := doJSON(t, r, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}

	w := doJSON(t, r, http.MethodPost, "/api/admin/rooms", "garbage-token", gin.H{
		"name": "X", "type": "AC", "price": 1, "capacity": 1,
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginThenAdminRoundTrip(t *testing.T) {
	r := newTestRouter(t)
	token := login(t, r)

	w := doJSON(t, r, http.MethodPost, "/api/admin/rooms", token, gin.H{
		"name": "Penthouse", "type": "AC", "price": 9000, "capacity": 4, "available": true,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var room models.Room
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &room))
	assert.NotEmpty(t, room.ID)

	w = doJSON(t, r, http.MethodGet, "/api/rooms/"+room.ID, "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/api/admin/rooms/"+room.ID, token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/rooms/"+room.ID, "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email": "admin@hotelinfinity.com", "password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMeReflectsSession(t *testing.T) {
	r := newTestRouter(t)
	token := login(t, r)

	w := doJSON(t, r, http.MethodGet, "/api/auth/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		User models.User `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "admin@hotelinfinity.com", resp.User.Email)

	w = doJSON(t, r, http.MethodPost, "/api/auth/logout", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/auth/me", token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestPublicReviewSubmission(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/reviews", "", gin.H{
		"customerName": "Anita", "rating": 5, "comment": "Wonderful stay.",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created models.Review
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.False(t, created.Approved)

	// Not visible publicly until approved.
	w = doJSON(t, r, http.MethodGet, "/api/reviews", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var public []models.Review
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &public))
	for _, review := range public {
		assert.NotEqual(t, created.ID, review.ID)
	}

	token := login(t, r)
	w = doJSON(t, r, http.MethodPatch, "/api/admin/reviews/"+created.ID+"/approve", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodGet, "/api/reviews", "", nil)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &public))
	found := false
	for _, review := range public {
		if review.ID == created.ID {
			found = true
		}
	}
	assert.True(t, found)
}

func TestBookingFlowEndToEnd(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/bookings", "", gin.H{
		"customerName": "Ravi", "email": "ravi@example.com", "phone": "1234567890",
		"checkIn": "2024-03-01", "checkOut": "2024-03-03",
		"roomId": "1", "type": "room", "guests": 2,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var booking models.Booking
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &booking))
	assert.Equal(t, models.BookingStatusConfirmed, booking.Status)
	assert.Equal(t, 7000.0, booking.TotalAmount)

	token := login(t, r)
	w = doJSON(t, r, http.MethodGet, "/api/admin/bookings/"+booking.ID, token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/admin/payments", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var payments []models.Payment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payments))
	require.Len(t, payments, 1)
	assert.Equal(t, booking.ID, payments[0].BookingID)
}

func TestHealthEndpoint(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
