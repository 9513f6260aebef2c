package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/luxeride/rental-service/internal/domain"
)

// FavoriteRepository defines persistence access for saved vehicles.
type FavoriteRepository interface {
	Add(ctx context.Context, userID, vehicleID string) error
	Remove(ctx context.Context, userID, vehicleID string) error
	Exists(ctx context.Context, userID, vehicleID string) (bool, error)
	ListVehicles(ctx context.Context, userID string) ([]domain.Vehicle, error)
}

type favoriteRepository struct {
	pool *pgxpool.Pool
}

// NewFavoriteRepository returns a Postgres-backed implementation.
func NewFavoriteRepository(pool *pgxpool.Pool) FavoriteRepository {
	return &favoriteRepository{pool: pool}
}

func (r *favoriteRepository) Add(ctx context.Context, userID, vehicleID string) error {
	const query = `
        INSERT INTO favorites (user_id, vehicle_id)
        VALUES ($1,$2)
        ON CONFLICT (user_id, vehicle_id) DO NOTHING`
	_, err := r.pool.Exec(ctx, query, userID, vehicleID)
	return err
}

func (r *favoriteRepository) Remove(ctx context.Context, userID, vehicleID string) error {
	const query = `DELETE FROM favorites WHERE user_id=$1 AND vehicle_id=$2`
	_, err := r.pool.Exec(ctx, query, userID, vehicleID)
	return err
}

func (r *favoriteRepository) Exists(ctx context.Context, userID, vehicleID string) (bool, error) {
	const query = `SELECT EXISTS(SELECT 1 FROM favorites WHERE user_id=$1 AND vehicle_id=$2)`
	var exists bool
	if err := r.pool.QueryRow(ctx, query, userID, vehicleID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *favoriteRepository) ListVehicles(ctx context.Context, userID string) ([]domain.Vehicle, error) {
	query := fmt.Sprintf(`
        SELECT %s FROM vehicles v
        JOIN favorites f ON f.vehicle_id = v.id
        WHERE f.user_id=$1
        ORDER BY f.created_at DESC`, prefixedVehicleColumns("v"))

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectVehicles(rows)
}

func prefixedVehicleColumns(alias string) string {
	return fmt.Sprintf(`%[1]s.id, %[1]s.name, %[1]s.brand, %[1]s.category, %[1]s.price_per_day, %[1]s.top_speed_kmh, %[1]s.transmission, %[1]s.fuel, %[1]s.seats, %[1]s.year, %[1]s.image_url, %[1]s.available, %[1]s.created_at, %[1]s.updated_at`, alias)
}
