package domain

import "time"

// Favorite marks a vehicle saved by a user.
type Favorite struct {
	UserID    string
	VehicleID string
	CreatedAt time.Time
}
