package domain

import "time"

// BookingStatus enumerates lifecycle states for bookings.
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "PENDING"
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
	BookingStatusCompleted BookingStatus = "COMPLETED"
)

// Booking is the aggregate for a rental reservation.
type Booking struct {
	ID         string
	UserID     string
	VehicleID  string
	StartDate  time.Time
	EndDate    time.Time
	Status     BookingStatus
	TotalPrice float64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Days returns the billable rental length in whole days, minimum one.
func (b Booking) Days() int {
	days := int(b.EndDate.Sub(b.StartDate).Hours() / 24)
	if days < 1 {
		return 1
	}
	return days
}
