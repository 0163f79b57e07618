package domain

import "time"

// User is the display identity of whoever is studying on this machine.
// Email is kept for records written by older signup flows.
type User struct {
	Name      string    `json:"name" validate:"required"`
	Email     string    `json:"email,omitempty" validate:"omitempty,email"`
	CreatedAt time.Time `json:"createdAt"`
}
