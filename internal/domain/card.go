package domain

import "time"

// Card is a stored payment card owned by exactly one user.
type Card struct {
	ID        int64
	UserID    int64
	Name      string
	Balance   int64
	CreatedAt time.Time
}
