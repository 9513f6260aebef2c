package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/luxeride/rental-service/internal/compare"
	"github.com/luxeride/rental-service/internal/domain"
	"github.com/luxeride/rental-service/internal/repository"
	apperrors "github.com/luxeride/rental-service/pkg/util"
)

// VehicleService coordinates catalog browsing and comparison.
type VehicleService struct {
	vehicles repository.VehicleRepository
}

// NewVehicleService constructs the service.
func NewVehicleService(vehicles repository.VehicleRepository) *VehicleService {
	return &VehicleService{vehicles: vehicles}
}

// List returns catalog entries matching the filter.
func (s *VehicleService) List(ctx context.Context, filter repository.VehicleFilter) ([]domain.Vehicle, error) {
	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 50
	}
	return s.vehicles.List(ctx, filter)
}

// Get returns one vehicle by ID.
func (s *VehicleService) Get(ctx context.Context, id string) (*domain.Vehicle, error) {
	vehicle, err := s.vehicles.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("vehicle", map[string]any{"vehicle_id": id})
		}
		return nil, err
	}
	return vehicle, nil
}

// Compare loads 2-3 vehicles and ranks them by the comparison scoring rules.
func (s *VehicleService) Compare(ctx context.Context, ids []string) (compare.Result, error) {
	if len(ids) < 2 || len(ids) > 3 {
		return compare.Result{}, apperrors.NewValidationError("select 2 or 3 vehicles to compare", nil)
	}

	vehicles, err := s.vehicles.GetByIDs(ctx, ids)
	if err != nil {
		return compare.Result{}, err
	}
	if len(vehicles) != len(ids) {
		return compare.Result{}, apperrors.NewNotFound("vehicle", map[string]any{"vehicle_ids": ids})
	}

	candidates := make([]compare.Candidate, 0, len(vehicles))
	for _, v := range vehicles {
		candidates = append(candidates, compare.Candidate{
			ID:           v.ID,
			Name:         v.Name,
			PricePerDay:  v.PricePerDay,
			TopSpeedKmh:  v.TopSpeedKmh,
			Transmission: v.Transmission,
			Fuel:         v.Fuel,
		})
	}

	result, err := compare.Rank(candidates)
	if err != nil {
		return compare.Result{}, apperrors.NewValidationError(err.Error(), nil)
	}
	return result, nil
}

// CreateVehicle adds a catalog entry. Admin operation.
func (s *VehicleService) CreateVehicle(ctx context.Context, vehicle *domain.Vehicle) error {
	if err := validateVehicle(vehicle); err != nil {
		return err
	}
	return s.vehicles.Create(ctx, vehicle)
}

// UpdateVehicle replaces a catalog entry. Admin operation.
func (s *VehicleService) UpdateVehicle(ctx context.Context, vehicle *domain.Vehicle) error {
	if err := validateVehicle(vehicle); err != nil {
		return err
	}
	if err := s.vehicles.Update(ctx, vehicle); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("vehicle", map[string]any{"vehicle_id": vehicle.ID})
		}
		return err
	}
	return nil
}

// SetAvailability toggles whether a vehicle can be booked. Admin operation.
func (s *VehicleService) SetAvailability(ctx context.Context, id string, available bool) error {
	if err := s.vehicles.SetAvailability(ctx, id, available); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("vehicle", map[string]any{"vehicle_id": id})
		}
		return err
	}
	return nil
}

func validateVehicle(v *domain.Vehicle) error {
	details := map[string]any{}
	if v.Name == "" {
		details["name"] = "required"
	}
	if v.Brand == "" {
		details["brand"] = "required"
	}
	if v.PricePerDay <= 0 {
		details["price_per_day"] = "must be positive"
	}
	if v.TopSpeedKmh <= 0 {
		details["top_speed_kmh"] = "must be positive"
	}
	switch v.Transmission {
	case domain.TransmissionAutomatic, domain.TransmissionManual:
	default:
		details["transmission"] = "unknown value"
	}
	switch v.Fuel {
	case domain.FuelPetrol, domain.FuelElectric, domain.FuelHybrid:
	default:
		details["fuel"] = "unknown value"
	}
	if len(details) > 0 {
		return apperrors.NewValidationError("invalid vehicle", details)
	}
	return nil
}
