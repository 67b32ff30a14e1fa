package store

import (
	"context"

	"hotel-infinity/models"
	"hotel-infinity/monitoring"
	"hotel-infinity/utils"
)

type RoomInput struct {
	Name        string   `json:"name" validate:"required"`
	Type        string   `json:"type" validate:"required,oneof=AC Non-AC"`
	Price       float64  `json:"price" validate:"gte=0"`
	Capacity    int      `json:"capacity" validate:"gte=0"`
	Amenities   []string `json:"amenities"`
	Images      []string `json:"images"`
	Available   bool     `json:"available"`
	Description string   `json:"description"`
}

// RoomPatch merges only its non-nil fields into an existing room.
type RoomPatch struct {
	Name        *string   `json:"name"`
	Type        *string   `json:"type" validate:"omitempty,oneof=AC Non-AC"`
	Price       *float64  `json:"price" validate:"omitempty,gte=0"`
	Capacity    *int      `json:"capacity" validate:"omitempty,gte=0"`
	Amenities   *[]string `json:"amenities"`
	Images      *[]string `json:"images"`
	Available   *bool     `json:"available"`
	Description *string   `json:"description"`
}

// Rooms returns the collection in insertion order.
func (s *Store) Rooms() []models.Room {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Room, len(s.rooms))
	copy(out, s.rooms)
	return out
}

func (s *Store) RoomByID(id string) (models.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, room := range s.rooms {
		if room.ID == id {
			return room, nil
		}
	}
	return models.Room{}, utils.NotFound("room", id)
}

func (s *Store) AddRoom(ctx context.Context, token string, input RoomInput) (*models.Room, error) {
	if err := s.validateInput(input); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireAdmin(token); err != nil {
		return nil, err
	}

	now := s.now()
	room := models.Room{
		ID:          s.newID(),
		Name:        input.Name,
		Type:        input.Type,
		Price:       input.Price,
		Capacity:    input.Capacity,
		Amenities:   input.Amenities,
		Images:      input.Images,
		Available:   input.Available,
		Description: input.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.rooms = append(s.rooms, room)
	monitoring.CountMutation("room", "add")

	if err := s.persistRooms(ctx); err != nil {
		return &room, err
	}
	return &room, nil
}

func (s *Store) UpdateRoom(ctx context.Context, token, id string, patch RoomPatch) (*models.Room, error) {
	if err := s.validateInput(patch); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireAdmin(token); err != nil {
		return nil, err
	}

	idx := -1
	for i := range s.rooms {
		if s.rooms[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, utils.NotFound("room", id)
	}

	room := &s.rooms[idx]
	if patch.Name != nil {
		room.Name = *patch.Name
	}
	if patch.Type != nil {
		room.Type = *patch.Type
	}
	if patch.Price != nil {
		room.Price = *patch.Price
	}
	if patch.Capacity != nil {
		room.Capacity = *patch.Capacity
	}
	if patch.Amenities != nil {
		room.Amenities = *patch.Amenities
	}
	if patch.Images != nil {
		room.Images = *patch.Images
	}
	if patch.Available != nil {
		room.Available = *patch.Available
	}
	if patch.Description != nil {
		room.Description = *patch.Description
	}
	room.UpdatedAt = s.now()
	monitoring.CountMutation("room", "update")

	updated := *room
	if err := s.persistRooms(ctx); err != nil {
		return &updated, err
	}
	return &updated, nil
}

// DeleteRoom removes the room and cancels its pending bookings in the same
// mutation. Non-pending bookings keep their (now dangling) reference.
func (s *Store) DeleteRoom(ctx context.Context, token, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireAdmin(token); err != nil {
		return err
	}

	idx := -1
	for i := range s.rooms {
		if s.rooms[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return utils.NotFound("room", id)
	}
	s.rooms = append(s.rooms[:idx], s.rooms[idx+1:]...)

	cancelled := s.cancelPendingBookings(func(b models.Booking) bool {
		return b.RoomID == id
	})
	monitoring.CountMutation("room", "delete")

	if err := s.persistRooms(ctx); err != nil {
		return err
	}
	if cancelled > 0 {
		if err := s.persistBookings(ctx); err != nil {
			return err
		}
	}
	return nil
}

// cancelPendingBookings flips matching pending bookings to cancelled and
// returns how many changed. Callers must hold s.mu and persist bookings.
func (s *Store) cancelPendingBookings(match func(models.Booking) bool) int {
	cancelled := 0
	for i := range s.bookings {
		if s.bookings[i].Status == models.BookingStatusPending && match(s.bookings[i]) {
			s.bookings[i].Status = models.BookingStatusCancelled
			s.bookings[i].UpdatedAt = s.now()
			cancelled++
		}
	}
	return cancelled
}
