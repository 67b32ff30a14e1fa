package models

import "time"

// PartyHall is structurally a Room without the AC/Non-AC split; its price is
// charged per event, not per night.
type PartyHall struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Capacity    int       `json:"capacity"`
	Price       float64   `json:"price"` // per event
	Amenities   []string  `json:"amenities"`
	Images      []string  `json:"images"`
	Available   bool      `json:"available"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
