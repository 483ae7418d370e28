package domain

import "time"

// A dashboard user account. PasswordHash is a bcrypt hash, never the
// plain password.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}
