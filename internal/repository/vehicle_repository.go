package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/luxeride/rental-service/internal/domain"
)

// VehicleFilter narrows catalog listings.
type VehicleFilter struct {
	Brand         *string
	Category      *domain.VehicleCategory
	Transmission  *domain.Transmission
	Fuel          *domain.FuelType
	MinPrice      *float64
	MaxPrice      *float64
	SearchTerm    *string
	OnlyAvailable bool
	Limit         int
	Offset        int
}

// VehicleRepository defines persistence access for the catalog.
type VehicleRepository interface {
	Create(ctx context.Context, vehicle *domain.Vehicle) error
	Update(ctx context.Context, vehicle *domain.Vehicle) error
	SetAvailability(ctx context.Context, id string, available bool) error
	GetByID(ctx context.Context, id string) (*domain.Vehicle, error)
	GetByIDs(ctx context.Context, ids []string) ([]domain.Vehicle, error)
	List(ctx context.Context, filter VehicleFilter) ([]domain.Vehicle, error)
}

type vehicleRepository struct {
	pool *pgxpool.Pool
}

// NewVehicleRepository returns a Postgres-backed implementation.
func NewVehicleRepository(pool *pgxpool.Pool) VehicleRepository {
	return &vehicleRepository{pool: pool}
}

const vehicleColumns = `id, name, brand, category, price_per_day, top_speed_kmh, transmission, fuel, seats, year, image_url, available, created_at, updated_at`

func (r *vehicleRepository) Create(ctx context.Context, vehicle *domain.Vehicle) error {
	const query = `
        INSERT INTO vehicles (name, brand, category, price_per_day, top_speed_kmh, transmission, fuel, seats, year, image_url, available)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		vehicle.Name,
		vehicle.Brand,
		vehicle.Category,
		vehicle.PricePerDay,
		vehicle.TopSpeedKmh,
		vehicle.Transmission,
		vehicle.Fuel,
		vehicle.Seats,
		vehicle.Year,
		vehicle.ImageURL,
		vehicle.Available,
	).Scan(&vehicle.ID, &vehicle.CreatedAt, &vehicle.UpdatedAt)
}

func (r *vehicleRepository) Update(ctx context.Context, vehicle *domain.Vehicle) error {
	const query = `
        UPDATE vehicles
        SET name=$1, brand=$2, category=$3, price_per_day=$4, top_speed_kmh=$5,
            transmission=$6, fuel=$7, seats=$8, year=$9, image_url=$10, available=$11, updated_at=NOW()
        WHERE id=$12`

	cmd, err := r.pool.Exec(ctx, query,
		vehicle.Name,
		vehicle.Brand,
		vehicle.Category,
		vehicle.PricePerDay,
		vehicle.TopSpeedKmh,
		vehicle.Transmission,
		vehicle.Fuel,
		vehicle.Seats,
		vehicle.Year,
		vehicle.ImageURL,
		vehicle.Available,
		vehicle.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *vehicleRepository) SetAvailability(ctx context.Context, id string, available bool) error {
	const query = `UPDATE vehicles SET available=$1, updated_at=NOW() WHERE id=$2`
	cmd, err := r.pool.Exec(ctx, query, available, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *vehicleRepository) GetByID(ctx context.Context, id string) (*domain.Vehicle, error) {
	query := fmt.Sprintf(`SELECT %s FROM vehicles WHERE id=$1`, vehicleColumns)
	row := r.pool.QueryRow(ctx, query, id)
	vehicle, err := scanVehicle(row)
	if err != nil {
		return nil, err
	}
	return &vehicle, nil
}

func (r *vehicleRepository) GetByIDs(ctx context.Context, ids []string) ([]domain.Vehicle, error) {
	query := fmt.Sprintf(`SELECT %s FROM vehicles WHERE id = ANY($1) ORDER BY name`, vehicleColumns)
	rows, err := r.pool.Query(ctx, query, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectVehicles(rows)
}

func (r *vehicleRepository) List(ctx context.Context, filter VehicleFilter) ([]domain.Vehicle, error) {
	conditions := []string{"1=1"}
	args := []any{}
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.Brand != nil {
		conditions = append(conditions, "brand="+arg(*filter.Brand))
	}
	if filter.Category != nil {
		conditions = append(conditions, "category="+arg(*filter.Category))
	}
	if filter.Transmission != nil {
		conditions = append(conditions, "transmission="+arg(*filter.Transmission))
	}
	if filter.Fuel != nil {
		conditions = append(conditions, "fuel="+arg(*filter.Fuel))
	}
	if filter.MinPrice != nil {
		conditions = append(conditions, "price_per_day>="+arg(*filter.MinPrice))
	}
	if filter.MaxPrice != nil {
		conditions = append(conditions, "price_per_day<="+arg(*filter.MaxPrice))
	}
	if filter.SearchTerm != nil && *filter.SearchTerm != "" {
		pattern := "%" + *filter.SearchTerm + "%"
		placeholder := arg(pattern)
		conditions = append(conditions, fmt.Sprintf("(name ILIKE %s OR brand ILIKE %s)", placeholder, placeholder))
	}
	if filter.OnlyAvailable {
		conditions = append(conditions, "available=TRUE")
	}

	query := fmt.Sprintf(`SELECT %s FROM vehicles WHERE %s ORDER BY brand, name`,
		vehicleColumns, strings.Join(conditions, " AND "))
	if filter.Limit > 0 {
		query += " LIMIT " + arg(filter.Limit)
	}
	if filter.Offset > 0 {
		query += " OFFSET " + arg(filter.Offset)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectVehicles(rows)
}

func scanVehicle(row pgx.Row) (domain.Vehicle, error) {
	var v domain.Vehicle
	err := row.Scan(
		&v.ID,
		&v.Name,
		&v.Brand,
		&v.Category,
		&v.PricePerDay,
		&v.TopSpeedKmh,
		&v.Transmission,
		&v.Fuel,
		&v.Seats,
		&v.Year,
		&v.ImageURL,
		&v.Available,
		&v.CreatedAt,
		&v.UpdatedAt,
	)
	return v, err
}

func collectVehicles(rows pgx.Rows) ([]domain.Vehicle, error) {
	vehicles := []domain.Vehicle{}
	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			return nil, err
		}
		vehicles = append(vehicles, v)
	}
	return vehicles, rows.Err()
}
