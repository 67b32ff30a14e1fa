package models

import "time"

const RoleAdmin = "admin"

// User is the single fixed admin identity. There is no account table; the
// credential pair comes from configuration.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// Session is the persisted current-session record. One session exists at a
// time; a new login replaces it and logout clears it.
type Session struct {
	Token     string    `json:"token"`
	User      User      `json:"user"`
	CreatedAt time.Time `json:"createdAt"`
}
