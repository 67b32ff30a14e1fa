package store

import "hotel-infinity/models"

// Derived views are recomputed on every call; nothing here is cached or
// persisted, so they cannot drift from the collections they project.

// PublicReviews returns only approved reviews, preserving store order.
func (s *Store) PublicReviews() []models.Review {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Review, 0, len(s.reviews))
	for _, review := range s.reviews {
		if review.Approved {
			out = append(out, review)
		}
	}
	return out
}

// AdminReviews returns every review, approved or not.
func (s *Store) AdminReviews(token string) ([]models.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireAdmin(token); err != nil {
		return nil, err
	}
	out := make([]models.Review, len(s.reviews))
	copy(out, s.reviews)
	return out, nil
}

type DashboardStats struct {
	TotalRooms     int `json:"totalRooms"`
	AvailableRooms int `json:"availableRooms"`
	ACRooms        int `json:"acRooms"`
	NonACRooms     int `json:"nonAcRooms"`
	TotalHalls     int `json:"totalHalls"`
	AvailableHalls int `json:"availableHalls"`

	TotalBookings    int            `json:"totalBookings"`
	BookingsByStatus map[string]int `json:"bookingsByStatus"`
	TotalRevenue     float64        `json:"totalRevenue"`

	TotalPayments int `json:"totalPayments"`

	TotalReviews   int         `json:"totalReviews"`
	PendingReviews int         `json:"pendingReviews"`
	AverageRating  float64     `json:"averageRating"`
	RatingCounts   map[int]int `json:"ratingCounts"`

	RecentBookings []models.Booking `json:"recentBookings"`
}

const recentBookingsLimit = 5

// Stats computes the dashboard aggregates on read. Revenue counts confirmed
// and completed bookings; the rating figures cover approved reviews only,
// matching what the public site shows.
func (s *Store) Stats(token string) (*DashboardStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireAdmin(token); err != nil {
		return nil, err
	}

	stats := &DashboardStats{
		TotalRooms:       len(s.rooms),
		TotalHalls:       len(s.halls),
		TotalBookings:    len(s.bookings),
		TotalPayments:    len(s.payments),
		TotalReviews:     len(s.reviews),
		BookingsByStatus: make(map[string]int),
		RatingCounts:     make(map[int]int),
	}

	for _, room := range s.rooms {
		if room.Available {
			stats.AvailableRooms++
		}
		switch room.Type {
		case models.RoomTypeAC:
			stats.ACRooms++
		case models.RoomTypeNonAC:
			stats.NonACRooms++
		}
	}
	for _, hall := range s.halls {
		if hall.Available {
			stats.AvailableHalls++
		}
	}

	for _, booking := range s.bookings {
		stats.BookingsByStatus[booking.Status]++
		if booking.Status == models.BookingStatusConfirmed || booking.Status == models.BookingStatusCompleted {
			stats.TotalRevenue += booking.TotalAmount
		}
	}

	approved := 0
	ratingSum := 0
	for _, review := range s.reviews {
		if !review.Approved {
			stats.PendingReviews++
			continue
		}
		approved++
		ratingSum += review.Rating
		stats.RatingCounts[review.Rating]++
	}
	if approved > 0 {
		stats.AverageRating = float64(ratingSum) / float64(approved)
	}

	// Bookings are stored newest first already.
	recent := len(s.bookings)
	if recent > recentBookingsLimit {
		recent = recentBookingsLimit
	}
	stats.RecentBookings = make([]models.Booking, recent)
	copy(stats.RecentBookings, s.bookings[:recent])

	return stats, nil
}
