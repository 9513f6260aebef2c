package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/luxeride/rental-service/internal/domain"
	"github.com/luxeride/rental-service/internal/repository"
	apperrors "github.com/luxeride/rental-service/pkg/util"
)

// FavoriteService manages per-user saved vehicles.
type FavoriteService struct {
	favorites repository.FavoriteRepository
	vehicles  repository.VehicleRepository
}

// NewFavoriteService constructs the service.
func NewFavoriteService(favorites repository.FavoriteRepository, vehicles repository.VehicleRepository) *FavoriteService {
	return &FavoriteService{favorites: favorites, vehicles: vehicles}
}

// Add saves a vehicle for the user. Idempotent.
func (s *FavoriteService) Add(ctx context.Context, userID, vehicleID string) error {
	if _, err := s.vehicles.GetByID(ctx, vehicleID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("vehicle", map[string]any{"vehicle_id": vehicleID})
		}
		return err
	}
	return s.favorites.Add(ctx, userID, vehicleID)
}

// Remove unsaves a vehicle for the user. Idempotent.
func (s *FavoriteService) Remove(ctx context.Context, userID, vehicleID string) error {
	return s.favorites.Remove(ctx, userID, vehicleID)
}

// List returns the user's saved vehicles, newest first.
func (s *FavoriteService) List(ctx context.Context, userID string) ([]domain.Vehicle, error) {
	return s.favorites.ListVehicles(ctx, userID)
}
