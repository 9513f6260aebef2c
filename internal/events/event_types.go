package events

import (
	"time"

	"github.com/luxeride/rental-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventBookingCreated   EventType = "booking_created"
	EventBookingConfirmed EventType = "booking_confirmed"
	EventBookingCancelled EventType = "booking_cancelled"
	EventSessionExpired   EventType = "session_expired"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	UserID    string      `json:"user_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// BookingCreatedPayload payload.
type BookingCreatedPayload struct {
	BookingID  string    `json:"booking_id"`
	VehicleID  string    `json:"vehicle_id"`
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
	TotalPrice float64   `json:"total_price"`
}

// BookingStatusPayload payload for confirm/cancel events.
type BookingStatusPayload struct {
	BookingID string               `json:"booking_id"`
	VehicleID string               `json:"vehicle_id"`
	OldStatus domain.BookingStatus `json:"old_status"`
	NewStatus domain.BookingStatus `json:"new_status"`
}

// SessionExpiredPayload payload.
type SessionExpiredPayload struct {
	SessionID string `json:"session_id"`
	Path      string `json:"path"`
	Trigger   string `json:"trigger"`
}
