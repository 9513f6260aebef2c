package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/luxeride/rental-service/internal/domain"
)

// BookingRepository defines persistence access for reservations.
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Booking, error)
	ListAll(ctx context.Context, limit, offset int) ([]domain.Booking, error)
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error
	CountOverlapping(ctx context.Context, vehicleID string, start, end time.Time) (int, error)
}

type bookingRepository struct {
	pool *pgxpool.Pool
}

// NewBookingRepository returns a Postgres-backed implementation.
func NewBookingRepository(pool *pgxpool.Pool) BookingRepository {
	return &bookingRepository{pool: pool}
}

const bookingColumns = `id, user_id, vehicle_id, start_date, end_date, status, total_price, created_at, updated_at`

func (r *bookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	const query = `
        INSERT INTO bookings (user_id, vehicle_id, start_date, end_date, status, total_price)
        VALUES ($1,$2,$3,$4,$5,$6)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		booking.UserID,
		booking.VehicleID,
		booking.StartDate,
		booking.EndDate,
		booking.Status,
		booking.TotalPrice,
	).Scan(&booking.ID, &booking.CreatedAt, &booking.UpdatedAt)
}

func (r *bookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	const query = `SELECT ` + bookingColumns + ` FROM bookings WHERE id=$1`
	var b domain.Booking
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&b.ID, &b.UserID, &b.VehicleID, &b.StartDate, &b.EndDate, &b.Status, &b.TotalPrice, &b.CreatedAt, &b.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *bookingRepository) ListByUser(ctx context.Context, userID string) ([]domain.Booking, error) {
	const query = `SELECT ` + bookingColumns + ` FROM bookings WHERE user_id=$1 ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectBookings(rows)
}

func (r *bookingRepository) ListAll(ctx context.Context, limit, offset int) ([]domain.Booking, error) {
	if limit <= 0 {
		limit = 50
	}
	const query = `SELECT ` + bookingColumns + ` FROM bookings ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectBookings(rows)
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error {
	const query = `UPDATE bookings SET status=$1, updated_at=NOW() WHERE id=$2`
	cmd, err := r.pool.Exec(ctx, query, status, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// CountOverlapping counts confirmed or pending bookings for the vehicle whose
// date range intersects [start, end).
func (r *bookingRepository) CountOverlapping(ctx context.Context, vehicleID string, start, end time.Time) (int, error) {
	const query = `
        SELECT COUNT(*) FROM bookings
        WHERE vehicle_id=$1
          AND status IN ('PENDING','CONFIRMED')
          AND start_date < $3
          AND end_date > $2`

	var count int
	if err := r.pool.QueryRow(ctx, query, vehicleID, start, end).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func collectBookings(rows pgx.Rows) ([]domain.Booking, error) {
	bookings := []domain.Booking{}
	for rows.Next() {
		var b domain.Booking
		if err := rows.Scan(
			&b.ID, &b.UserID, &b.VehicleID, &b.StartDate, &b.EndDate, &b.Status, &b.TotalPrice, &b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}
