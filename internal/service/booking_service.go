package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/luxeride/rental-service/internal/domain"
	"github.com/luxeride/rental-service/internal/events"
	"github.com/luxeride/rental-service/internal/repository"
	apperrors "github.com/luxeride/rental-service/pkg/util"
)

// BookingService coordinates reservation workflows.
type BookingService struct {
	bookings   repository.BookingRepository
	vehicles   repository.VehicleRepository
	dispatcher events.Dispatcher
}

// BookingDependencies bundles requirements for the booking service.
type BookingDependencies struct {
	BookingRepo repository.BookingRepository
	VehicleRepo repository.VehicleRepository
	Dispatcher  events.Dispatcher
}

// BookingCreateInput describes a reservation request.
type BookingCreateInput struct {
	VehicleID string
	StartDate time.Time
	EndDate   time.Time
}

// NewBookingService constructs the service.
func NewBookingService(deps BookingDependencies) *BookingService {
	return &BookingService{
		bookings:   deps.BookingRepo,
		vehicles:   deps.VehicleRepo,
		dispatcher: deps.Dispatcher,
	}
}

// Create validates dates and availability, prices the rental and persists a
// pending booking.
func (s *BookingService) Create(ctx context.Context, userID string, input BookingCreateInput) (*domain.Booking, error) {
	now := time.Now()
	if !input.EndDate.After(input.StartDate) {
		return nil, apperrors.NewValidationError("end date must be after start date", nil)
	}
	if input.StartDate.Before(now.Truncate(24 * time.Hour)) {
		return nil, apperrors.NewValidationError("start date must not be in the past", nil)
	}

	vehicle, err := s.vehicles.GetByID(ctx, input.VehicleID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("vehicle", map[string]any{"vehicle_id": input.VehicleID})
		}
		return nil, err
	}
	if !vehicle.Available {
		return nil, apperrors.NewConflict("vehicle not available", map[string]any{"vehicle_id": vehicle.ID})
	}

	overlapping, err := s.bookings.CountOverlapping(ctx, vehicle.ID, input.StartDate, input.EndDate)
	if err != nil {
		return nil, err
	}
	if overlapping > 0 {
		return nil, apperrors.NewConflict("vehicle already booked for these dates", map[string]any{"vehicle_id": vehicle.ID})
	}

	booking := &domain.Booking{
		UserID:    userID,
		VehicleID: vehicle.ID,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		Status:    domain.BookingStatusPending,
	}
	booking.TotalPrice = vehicle.PricePerDay * float64(booking.Days())

	if err := s.bookings.Create(ctx, booking); err != nil {
		return nil, err
	}

	s.publish(ctx, events.EventBookingCreated, userID, events.BookingCreatedPayload{
		BookingID:  booking.ID,
		VehicleID:  booking.VehicleID,
		StartDate:  booking.StartDate,
		EndDate:    booking.EndDate,
		TotalPrice: booking.TotalPrice,
	})
	return booking, nil
}

// ListForUser returns the caller's bookings, newest first.
func (s *BookingService) ListForUser(ctx context.Context, userID string) ([]domain.Booking, error) {
	return s.bookings.ListByUser(ctx, userID)
}

// ListAll returns bookings across users. Admin operation.
func (s *BookingService) ListAll(ctx context.Context, limit, offset int) ([]domain.Booking, error) {
	return s.bookings.ListAll(ctx, limit, offset)
}

// Cancel cancels the caller's own booking.
func (s *BookingService) Cancel(ctx context.Context, userID, bookingID string) (*domain.Booking, error) {
	booking, err := s.getBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.UserID != userID {
		return nil, apperrors.NewForbidden("not your booking")
	}
	return s.transition(ctx, booking, domain.BookingStatusCancelled, events.EventBookingCancelled)
}

// Confirm moves a pending booking to confirmed. Admin operation.
func (s *BookingService) Confirm(ctx context.Context, bookingID string) (*domain.Booking, error) {
	booking, err := s.getBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.Status != domain.BookingStatusPending {
		return nil, apperrors.NewConflict("only pending bookings can be confirmed", map[string]any{"status": booking.Status})
	}
	return s.transition(ctx, booking, domain.BookingStatusConfirmed, events.EventBookingConfirmed)
}

func (s *BookingService) getBooking(ctx context.Context, bookingID string) (*domain.Booking, error) {
	booking, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("booking", map[string]any{"booking_id": bookingID})
		}
		return nil, err
	}
	return booking, nil
}

func (s *BookingService) transition(ctx context.Context, booking *domain.Booking, status domain.BookingStatus, eventType events.EventType) (*domain.Booking, error) {
	if booking.Status == domain.BookingStatusCancelled || booking.Status == domain.BookingStatusCompleted {
		return nil, apperrors.NewConflict("booking already finalized", map[string]any{"status": booking.Status})
	}

	old := booking.Status
	if err := s.bookings.UpdateStatus(ctx, booking.ID, status); err != nil {
		return nil, err
	}
	booking.Status = status

	s.publish(ctx, eventType, booking.UserID, events.BookingStatusPayload{
		BookingID: booking.ID,
		VehicleID: booking.VehicleID,
		OldStatus: old,
		NewStatus: status,
	})
	return booking, nil
}

func (s *BookingService) publish(ctx context.Context, eventType events.EventType, userID string, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		UserID:    userID,
		Timestamp: time.Now(),
		Payload:   payload,
	})
}
