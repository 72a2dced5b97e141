package model

import "time"

// SearchSubscription is a saved search a user opted to follow.
type SearchSubscription struct {
	ID           int       `json:"id"`
	UserID       int       `json:"user_id"`
	Keywords     string    `json:"keywords"`
	ReceiveEmail bool      `json:"receive_email"`
	CreatedAt    time.Time `json:"created_at"`
}

// EmailSubscription is a subscription row joined with its owner's email,
// as returned by ListEmailSubscriptions. The digest run works on these
// plain records instead of resolving users row by row.
type EmailSubscription struct {
	ID        int
	UserID    int
	Keywords  string
	UserEmail string
}
