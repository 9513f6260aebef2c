package dto

import (
	"time"

	"github.com/luxeride/rental-service/internal/domain"
)

// BookingCreateRequest payload.
type BookingCreateRequest struct {
	VehicleID string    `json:"vehicle_id"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}

// BookingResponse represents one reservation.
type BookingResponse struct {
	ID         string               `json:"id"`
	VehicleID  string               `json:"vehicle_id"`
	StartDate  time.Time            `json:"start_date"`
	EndDate    time.Time            `json:"end_date"`
	Status     domain.BookingStatus `json:"status"`
	TotalPrice float64              `json:"total_price"`
	CreatedAt  time.Time            `json:"created_at"`
}

// NewBookingResponse maps a domain booking.
func NewBookingResponse(b domain.Booking) BookingResponse {
	return BookingResponse{
		ID:         b.ID,
		VehicleID:  b.VehicleID,
		StartDate:  b.StartDate,
		EndDate:    b.EndDate,
		Status:     b.Status,
		TotalPrice: b.TotalPrice,
		CreatedAt:  b.CreatedAt,
	}
}

// NewBookingResponses maps a slice of domain bookings.
func NewBookingResponses(bookings []domain.Booking) []BookingResponse {
	out := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, NewBookingResponse(b))
	}
	return out
}
