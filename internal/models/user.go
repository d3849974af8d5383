package models

import "time"

// User is a row of the users table.
type User struct {
	UserID    string
	Name      string
	Email     *string
	CreatedAt time.Time
}
