package domain

import "time"

// User represents a registered account. Rows are immutable after
// registration; there is no profile editing.
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	FullName     string
	CreatedAt    time.Time
}
