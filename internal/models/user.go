package models

import "time"

// User represents an anonymous user account. Users carry no profile data;
// their identity exists only to own sessions, goals and transactions.
type User struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}
