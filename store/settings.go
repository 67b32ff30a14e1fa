package store

import (
	"context"

	"hotel-infinity/models"
	"hotel-infinity/monitoring"
)

type SettingsPatch struct {
	HotelName          *string  `json:"hotelName"`
	Address            *string  `json:"address"`
	Phone              *string  `json:"phone"`
	Email              *string  `json:"email" validate:"omitempty,email"`
	Description        *string  `json:"description"`
	CheckInTime        *string  `json:"checkInTime"`
	CheckOutTime       *string  `json:"checkOutTime"`
	CancellationPolicy *string  `json:"cancellationPolicy"`
	TaxRate            *float64 `json:"taxRate" validate:"omitempty,gte=0,lte=100"`
}

// Settings is public: the marketing site renders the hotel profile.
func (s *Store) Settings() models.HotelSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

func (s *Store) UpdateSettings(ctx context.Context, token string, patch SettingsPatch) (*models.HotelSettings, error) {
	if err := s.validateInput(patch); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireAdmin(token); err != nil {
		return nil, err
	}

	if patch.HotelName != nil {
		s.settings.HotelName = *patch.HotelName
	}
	if patch.Address != nil {
		s.settings.Address = *patch.Address
	}
	if patch.Phone != nil {
		s.settings.Phone = *patch.Phone
	}
	if patch.Email != nil {
		s.settings.Email = *patch.Email
	}
	if patch.Description != nil {
		s.settings.Description = *patch.Description
	}
	if patch.CheckInTime != nil {
		s.settings.CheckInTime = *patch.CheckInTime
	}
	if patch.CheckOutTime != nil {
		s.settings.CheckOutTime = *patch.CheckOutTime
	}
	if patch.CancellationPolicy != nil {
		s.settings.CancellationPolicy = *patch.CancellationPolicy
	}
	if patch.TaxRate != nil {
		s.settings.TaxRate = *patch.TaxRate
	}
	monitoring.CountMutation("settings", "update")

	updated := s.settings
	if err := s.persistSettings(ctx); err != nil {
		return &updated, err
	}
	return &updated, nil
}
