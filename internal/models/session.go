package models

import "time"

// Session represents one issued bearer credential. Only the digest of the
// raw token is ever stored; the raw token leaves the server exactly once,
// in the issuance response.
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	TokenHash string    `json:"-"` // never expose this to the client
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}
