package domain

import "time"

// User is the display projection of an actor known to the identity layer.
// Rows are keyed by the token subject and only carry what listings show.
type User struct {
	UserID    string    `json:"userID"`
	Name      string    `json:"name"`
	Email     *string   `json:"email,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
