package user

import "time"

// User is a dashboard administrator account. Employees never get one; the
// punch clock identifies them by secret code only.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
