package models

import "time"

const (
	RoomTypeAC    = "AC"
	RoomTypeNonAC = "Non-AC"
)

type Room struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Type        string    `json:"type"` // AC | Non-AC
	Price       float64   `json:"price"` // per night
	Capacity    int       `json:"capacity"`
	Amenities   []string  `json:"amenities"`
	Images      []string  `json:"images"`
	Available   bool      `json:"available"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
