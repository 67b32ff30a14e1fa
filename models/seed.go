package models

import "time"

func seedTime(value string) time.Time {
	t, _ := time.Parse(time.RFC3339, value)
	return t
}

// SeedRooms returns the built-in sample rooms used when the rooms slot has
// never been persisted.
func SeedRooms() []Room {
	t := seedTime("2024-01-01T00:00:00Z")
	return []Room{
		{
			ID:       "1",
			Name:     "Deluxe AC Suite",
			Type:     RoomTypeAC,
			Price:    3500,
			Capacity: 2,
			Amenities: []string{
				"Free WiFi", "AC", "TV", "Mini Bar", "Room Service", "Balcony",
			},
			Images: []string{
				"https://images.pexels.com/photos/271618/pexels-photo-271618.jpeg?auto=compress&cs=tinysrgb&w=800",
				"https://images.pexels.com/photos/164595/pexels-photo-164595.jpeg?auto=compress&cs=tinysrgb&w=800",
			},
			Available:   true,
			Description: "Luxurious AC suite with modern amenities and stunning city view.",
			CreatedAt:   t,
			UpdatedAt:   t,
		},
		{
			ID:       "2",
			Name:     "Standard AC Room",
			Type:     RoomTypeAC,
			Price:    2500,
			Capacity: 2,
			Amenities: []string{
				"Free WiFi", "AC", "TV", "Room Service",
			},
			Images: []string{
				"https://images.pexels.com/photos/271624/pexels-photo-271624.jpeg?auto=compress&cs=tinysrgb&w=800",
				"https://images.pexels.com/photos/6585759/pexels-photo-6585759.jpeg?auto=compress&cs=tinysrgb&w=800",
			},
			Available:   true,
			Description: "Comfortable AC room perfect for business and leisure travelers.",
			CreatedAt:   t,
			UpdatedAt:   t,
		},
		{
			ID:       "3",
			Name:     "Economy Non-AC Room",
			Type:     RoomTypeNonAC,
			Price:    1500,
			Capacity: 2,
			Amenities: []string{
				"Free WiFi", "Fan", "TV", "Attached Bathroom",
			},
			Images: []string{
				"https://images.pexels.com/photos/1579253/pexels-photo-1579253.jpeg?auto=compress&cs=tinysrgb&w=800",
				"https://images.pexels.com/photos/1329711/pexels-photo-1329711.jpeg?auto=compress&cs=tinysrgb&w=800",
			},
			Available:   true,
			Description: "Budget-friendly room with essential amenities for comfortable stay.",
			CreatedAt:   t,
			UpdatedAt:   t,
		},
	}
}

// SeedHalls returns the built-in sample party halls.
func SeedHalls() []PartyHall {
	t := seedTime("2024-01-01T00:00:00Z")
	return []PartyHall{
		{
			ID:       "1",
			Name:     "Grand Ballroom",
			Capacity: 200,
			Price:    25000,
			Amenities: []string{
				"Sound System", "Projector", "Stage", "AC", "Catering Service", "Decoration",
			},
			Images: []string{
				"https://images.pexels.com/photos/169198/pexels-photo-169198.jpeg?auto=compress&cs=tinysrgb&w=800",
				"https://images.pexels.com/photos/1395964/pexels-photo-1395964.jpeg?auto=compress&cs=tinysrgb&w=800",
			},
			Available:   true,
			Description: "Elegant ballroom perfect for weddings, conferences, and grand celebrations.",
			CreatedAt:   t,
			UpdatedAt:   t,
		},
		{
			ID:       "2",
			Name:     "Crystal Hall",
			Capacity: 100,
			Price:    15000,
			Amenities: []string{
				"Sound System", "AC", "Stage", "Lighting", "Catering Service",
			},
			Images: []string{
				"https://images.pexels.com/photos/1395967/pexels-photo-1395967.jpeg?auto=compress&cs=tinysrgb&w=800",
				"https://images.pexels.com/photos/1024248/pexels-photo-1024248.jpeg?auto=compress&cs=tinysrgb&w=800",
			},
			Available:   true,
			Description: "Mid-size hall ideal for corporate events, birthday parties, and family gatherings.",
			CreatedAt:   t,
			UpdatedAt:   t,
		},
	}
}

// SeedReviews returns the built-in sample reviews. Both ship pre-approved so
// the public site is not empty on first run.
func SeedReviews() []Review {
	return []Review{
		{
			ID:           "1",
			CustomerName: "Sarah Johnson",
			Rating:       5,
			Comment:      "Exceptional service and beautiful rooms! The AC suite was spotless and the staff was incredibly helpful.",
			Image:        "https://images.pexels.com/photos/1036623/pexels-photo-1036623.jpeg?auto=compress&cs=tinysrgb&w=400",
			Date:         "2024-01-15",
			RoomType:     "Deluxe AC Suite",
			Approved:     true,
			CreatedAt:    seedTime("2024-01-15T00:00:00Z"),
			UpdatedAt:    seedTime("2024-01-15T00:00:00Z"),
		},
		{
			ID:           "2",
			CustomerName: "Mike Chen",
			Rating:       4,
			Comment:      "Great value for money. The party hall was perfect for our corporate event.",
			Image:        "https://images.pexels.com/photos/1043474/pexels-photo-1043474.jpeg?auto=compress&cs=tinysrgb&w=400",
			Date:         "2024-01-20",
			RoomType:     "Crystal Hall",
			Approved:     true,
			CreatedAt:    seedTime("2024-01-20T00:00:00Z"),
			UpdatedAt:    seedTime("2024-01-20T00:00:00Z"),
		},
	}
}

// DefaultSettings returns the hotel profile used until an admin replaces it.
func DefaultSettings() HotelSettings {
	return HotelSettings{
		HotelName:          "Hotel Infinity",
		Address:            "123 Luxury Avenue, City Center, State 12345",
		Phone:              "+1 (555) 123-4567",
		Email:              "info@hotelinfinity.com",
		Description:        "Experience luxury and comfort at Hotel Infinity. We provide exceptional hospitality with world-class amenities in the heart of the city.",
		CheckInTime:        "15:00",
		CheckOutTime:       "11:00",
		CancellationPolicy: "Free cancellation up to 24 hours before check-in. After that, one night charge applies.",
		TaxRate:            18,
	}
}
