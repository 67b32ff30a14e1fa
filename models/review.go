package models

import "time"

// Review always enters the store unapproved; only an admin action flips
// Approved, and the public listing filters on it.
type Review struct {
	ID           string    `json:"id"`
	CustomerName string    `json:"customerName"`
	Rating       int       `json:"rating"` // 1..5
	Comment      string    `json:"comment"`
	Image        string    `json:"image,omitempty"`
	Date         string    `json:"date"` // YYYY-MM-DD
	RoomType     string    `json:"roomType,omitempty"`
	Approved     bool      `json:"approved"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
