package service

import (
	"context"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/luxeride/rental-service/internal/domain"
	"github.com/luxeride/rental-service/internal/repository"
)

type fakeVehicleRepo struct {
	vehicles map[string]domain.Vehicle
}

func newFakeVehicleRepo(vehicles ...domain.Vehicle) *fakeVehicleRepo {
	repo := &fakeVehicleRepo{vehicles: make(map[string]domain.Vehicle)}
	for _, v := range vehicles {
		repo.vehicles[v.ID] = v
	}
	return repo
}

func (r *fakeVehicleRepo) Create(_ context.Context, v *domain.Vehicle) error {
	v.ID = "veh-" + strconv.Itoa(len(r.vehicles)+1)
	v.CreatedAt = time.Now()
	v.UpdatedAt = v.CreatedAt
	r.vehicles[v.ID] = *v
	return nil
}

func (r *fakeVehicleRepo) Update(_ context.Context, v *domain.Vehicle) error {
	if _, ok := r.vehicles[v.ID]; !ok {
		return pgx.ErrNoRows
	}
	r.vehicles[v.ID] = *v
	return nil
}

func (r *fakeVehicleRepo) SetAvailability(_ context.Context, id string, available bool) error {
	v, ok := r.vehicles[id]
	if !ok {
		return pgx.ErrNoRows
	}
	v.Available = available
	r.vehicles[id] = v
	return nil
}

func (r *fakeVehicleRepo) GetByID(_ context.Context, id string) (*domain.Vehicle, error) {
	v, ok := r.vehicles[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &v, nil
}

func (r *fakeVehicleRepo) GetByIDs(_ context.Context, ids []string) ([]domain.Vehicle, error) {
	out := []domain.Vehicle{}
	for _, id := range ids {
		if v, ok := r.vehicles[id]; ok {
			out = append(out, v)
		}
	}
	return out, nil
}

func (r *fakeVehicleRepo) List(_ context.Context, _ repository.VehicleFilter) ([]domain.Vehicle, error) {
	out := []domain.Vehicle{}
	for _, v := range r.vehicles {
		out = append(out, v)
	}
	return out, nil
}

type fakeBookingRepo struct {
	bookings map[string]domain.Booking
	seq      int
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[string]domain.Booking)}
}

func (r *fakeBookingRepo) Create(_ context.Context, b *domain.Booking) error {
	r.seq++
	b.ID = "bk-" + strconv.Itoa(r.seq)
	b.CreatedAt = time.Now()
	b.UpdatedAt = b.CreatedAt
	r.bookings[b.ID] = *b
	return nil
}

func (r *fakeBookingRepo) GetByID(_ context.Context, id string) (*domain.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &b, nil
}

func (r *fakeBookingRepo) ListByUser(_ context.Context, userID string) ([]domain.Booking, error) {
	out := []domain.Booking{}
	for _, b := range r.bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) ListAll(_ context.Context, _, _ int) ([]domain.Booking, error) {
	out := []domain.Booking{}
	for _, b := range r.bookings {
		out = append(out, b)
	}
	return out, nil
}

func (r *fakeBookingRepo) UpdateStatus(_ context.Context, id string, status domain.BookingStatus) error {
	b, ok := r.bookings[id]
	if !ok {
		return pgx.ErrNoRows
	}
	b.Status = status
	r.bookings[id] = b
	return nil
}

func (r *fakeBookingRepo) CountOverlapping(_ context.Context, vehicleID string, start, end time.Time) (int, error) {
	count := 0
	for _, b := range r.bookings {
		if b.VehicleID != vehicleID {
			continue
		}
		if b.Status != domain.BookingStatusPending && b.Status != domain.BookingStatusConfirmed {
			continue
		}
		if b.StartDate.Before(end) && b.EndDate.After(start) {
			count++
		}
	}
	return count, nil
}
