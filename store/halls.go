package store

import (
	"context"

	"hotel-infinity/models"
	"hotel-infinity/monitoring"
	"hotel-infinity/utils"
)

type HallInput struct {
	Name        string   `json:"name" validate:"required"`
	Capacity    int      `json:"capacity" validate:"gte=0"`
	Price       float64  `json:"price" validate:"gte=0"`
	Amenities   []string `json:"amenities"`
	Images      []string `json:"images"`
	Available   bool     `json:"available"`
	Description string   `json:"description"`
}

type HallPatch struct {
	Name        *string   `json:"name"`
	Capacity    *int      `json:"capacity" validate:"omitempty,gte=0"`
	Price       *float64  `json:"price" validate:"omitempty,gte=0"`
	Amenities   *[]string `json:"amenities"`
	Images      *[]string `json:"images"`
	Available   *bool     `json:"available"`
	Description *string   `json:"description"`
}

func (s *Store) Halls() []models.PartyHall {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.PartyHall, len(s.halls))
	copy(out, s.halls)
	return out
}

func (s *Store) HallByID(id string) (models.PartyHall, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, hall := range s.halls {
		if hall.ID == id {
			return hall, nil
		}
	}
	return models.PartyHall{}, utils.NotFound("hall", id)
}

func (s *Store) AddHall(ctx context.Context, token string, input HallInput) (*models.PartyHall, error) {
	if err := s.validateInput(input); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireAdmin(token); err != nil {
		return nil, err
	}

	now := s.now()
	hall := models.PartyHall{
		ID:          s.newID(),
		Name:        input.Name,
		Capacity:    input.Capacity,
		Price:       input.Price,
		Amenities:   input.Amenities,
		Images:      input.Images,
		Available:   input.Available,
		Description: input.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.halls = append(s.halls, hall)
	monitoring.CountMutation("hall", "add")

	if err := s.persistHalls(ctx); err != nil {
		return &hall, err
	}
	return &hall, nil
}

func (s *Store) UpdateHall(ctx context.Context, token, id string, patch HallPatch) (*models.PartyHall, error) {
	if err := s.validateInput(patch); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireAdmin(token); err != nil {
		return nil, err
	}

	idx := -1
	for i := range s.halls {
		if s.halls[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, utils.NotFound("hall", id)
	}

	hall := &s.halls[idx]
	if patch.Name != nil {
		hall.Name = *patch.Name
	}
	if patch.Capacity != nil {
		hall.Capacity = *patch.Capacity
	}
	if patch.Price != nil {
		hall.Price = *patch.Price
	}
	if patch.Amenities != nil {
		hall.Amenities = *patch.Amenities
	}
	if patch.Images != nil {
		hall.Images = *patch.Images
	}
	if patch.Available != nil {
		hall.Available = *patch.Available
	}
	if patch.Description != nil {
		hall.Description = *patch.Description
	}
	hall.UpdatedAt = s.now()
	monitoring.CountMutation("hall", "update")

	updated := *hall
	if err := s.persistHalls(ctx); err != nil {
		return &updated, err
	}
	return &updated, nil
}

func (s *Store) DeleteHall(ctx context.Context, token, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireAdmin(token); err != nil {
		return err
	}

	idx := -1
	for i := range s.halls {
		if s.halls[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return utils.NotFound("hall", id)
	}
	s.halls = append(s.halls[:idx], s.halls[idx+1:]...)

	cancelled := s.cancelPendingBookings(func(b models.Booking) bool {
		return b.HallID == id
	})
	monitoring.CountMutation("hall", "delete")

	if err := s.persistHalls(ctx); err != nil {
		return err
	}
	if cancelled > 0 {
		if err := s.persistBookings(ctx); err != nil {
			return err
		}
	}
	return nil
}
