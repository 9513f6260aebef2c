package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luxeride/rental-service/internal/domain"
	"github.com/luxeride/rental-service/internal/events"
	apperrors "github.com/luxeride/rental-service/pkg/util"
)

func testVehicle() domain.Vehicle {
	return domain.Vehicle{
		ID:           "veh-1",
		Name:         "Roma",
		Brand:        "Ferrari",
		Category:     domain.CategorySport,
		PricePerDay:  900,
		TopSpeedKmh:  320,
		Transmission: domain.TransmissionAutomatic,
		Fuel:         domain.FuelPetrol,
		Available:    true,
	}
}

func newBookingService(vehicles ...domain.Vehicle) (*BookingService, *fakeBookingRepo) {
	bookings := newFakeBookingRepo()
	svc := NewBookingService(BookingDependencies{
		BookingRepo: bookings,
		VehicleRepo: newFakeVehicleRepo(vehicles...),
		Dispatcher:  events.NewInMemoryDispatcher(),
	})
	return svc, bookings
}

func datesFromNow(startDays, endDays int) (time.Time, time.Time) {
	base := time.Now().Add(24 * time.Hour).Truncate(time.Hour)
	return base.AddDate(0, 0, startDays), base.AddDate(0, 0, endDays)
}

func TestCreateBookingComputesPrice(t *testing.T) {
	svc, _ := newBookingService(testVehicle())
	start, end := datesFromNow(0, 3)

	booking, err := svc.Create(context.Background(), "user-1", BookingCreateInput{
		VehicleID: "veh-1", StartDate: start, EndDate: end,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusPending, booking.Status)
	assert.Equal(t, 3*900.0, booking.TotalPrice)
}

func TestCreateBookingRejectsInvertedDates(t *testing.T) {
	svc, _ := newBookingService(testVehicle())
	start, end := datesFromNow(3, 1)

	_, err := svc.Create(context.Background(), "user-1", BookingCreateInput{
		VehicleID: "veh-1", StartDate: start, EndDate: end,
	})
	require.Error(t, err)
	var de *apperrors.DomainError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "VALIDATION_FAILED", de.Code)
}

func TestCreateBookingRejectsPastStart(t *testing.T) {
	svc, _ := newBookingService(testVehicle())
	start := time.Now().AddDate(0, 0, -2)
	end := time.Now().AddDate(0, 0, 2)

	_, err := svc.Create(context.Background(), "user-1", BookingCreateInput{
		VehicleID: "veh-1", StartDate: start, EndDate: end,
	})
	assert.Error(t, err)
}

func TestCreateBookingRejectsOverlap(t *testing.T) {
	svc, _ := newBookingService(testVehicle())
	ctx := context.Background()
	start, end := datesFromNow(0, 3)

	_, err := svc.Create(ctx, "user-1", BookingCreateInput{VehicleID: "veh-1", StartDate: start, EndDate: end})
	require.NoError(t, err)

	// Second reservation intersecting the first must be refused.
	start2, end2 := datesFromNow(2, 5)
	_, err = svc.Create(ctx, "user-2", BookingCreateInput{VehicleID: "veh-1", StartDate: start2, EndDate: end2})
	require.Error(t, err)
	var de *apperrors.DomainError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "CONFLICT", de.Code)

	// Back-to-back is fine.
	start3, end3 := datesFromNow(3, 6)
	_, err = svc.Create(ctx, "user-2", BookingCreateInput{VehicleID: "veh-1", StartDate: start3, EndDate: end3})
	assert.NoError(t, err)
}

func TestCreateBookingRejectsUnavailableVehicle(t *testing.T) {
	v := testVehicle()
	v.Available = false
	svc, _ := newBookingService(v)
	start, end := datesFromNow(0, 2)

	_, err := svc.Create(context.Background(), "user-1", BookingCreateInput{
		VehicleID: "veh-1", StartDate: start, EndDate: end,
	})
	assert.Error(t, err)
}

func TestCancelOwnBooking(t *testing.T) {
	svc, _ := newBookingService(testVehicle())
	ctx := context.Background()
	start, end := datesFromNow(0, 2)

	booking, err := svc.Create(ctx, "user-1", BookingCreateInput{VehicleID: "veh-1", StartDate: start, EndDate: end})
	require.NoError(t, err)

	cancelled, err := svc.Cancel(ctx, "user-1", booking.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusCancelled, cancelled.Status)

	// Cancelling twice is a conflict.
	_, err = svc.Cancel(ctx, "user-1", booking.ID)
	assert.Error(t, err)
}

func TestCancelForeignBookingForbidden(t *testing.T) {
	svc, _ := newBookingService(testVehicle())
	ctx := context.Background()
	start, end := datesFromNow(0, 2)

	booking, err := svc.Create(ctx, "user-1", BookingCreateInput{VehicleID: "veh-1", StartDate: start, EndDate: end})
	require.NoError(t, err)

	_, err = svc.Cancel(ctx, "user-2", booking.ID)
	require.Error(t, err)
	var de *apperrors.DomainError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "FORBIDDEN", de.Code)
}

func TestConfirmPendingBooking(t *testing.T) {
	svc, _ := newBookingService(testVehicle())
	ctx := context.Background()
	start, end := datesFromNow(0, 2)

	booking, err := svc.Create(ctx, "user-1", BookingCreateInput{VehicleID: "veh-1", StartDate: start, EndDate: end})
	require.NoError(t, err)

	confirmed, err := svc.Confirm(ctx, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusConfirmed, confirmed.Status)

	_, err = svc.Confirm(ctx, booking.ID)
	assert.Error(t, err)
}

func TestCancelledBookingFreesDates(t *testing.T) {
	svc, _ := newBookingService(testVehicle())
	ctx := context.Background()
	start, end := datesFromNow(0, 3)

	booking, err := svc.Create(ctx, "user-1", BookingCreateInput{VehicleID: "veh-1", StartDate: start, EndDate: end})
	require.NoError(t, err)
	_, err = svc.Cancel(ctx, "user-1", booking.ID)
	require.NoError(t, err)

	_, err = svc.Create(ctx, "user-2", BookingCreateInput{VehicleID: "veh-1", StartDate: start, EndDate: end})
	assert.NoError(t, err)
}
