package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luxeride/rental-service/internal/compare"
	"github.com/luxeride/rental-service/internal/domain"
)

func TestCompareRanksVehicles(t *testing.T) {
	repo := newFakeVehicleRepo(
		domain.Vehicle{ID: "v1", Name: "One", PricePerDay: 100, TopSpeedKmh: 200, Transmission: domain.TransmissionAutomatic, Fuel: domain.FuelPetrol},
		domain.Vehicle{ID: "v2", Name: "Two", PricePerDay: 150, TopSpeedKmh: 250, Transmission: domain.TransmissionAutomatic, Fuel: domain.FuelHybrid},
		domain.Vehicle{ID: "v3", Name: "Three", PricePerDay: 150, TopSpeedKmh: 250, Transmission: domain.TransmissionManual, Fuel: domain.FuelElectric},
	)
	svc := NewVehicleService(repo)

	result, err := svc.Compare(context.Background(), []string{"v1", "v2", "v3"})
	require.NoError(t, err)
	assert.Equal(t, compare.ResultWinner, result.Type)
	require.NotNil(t, result.Winner)
	assert.Equal(t, "v2", result.Winner.ID)
}

func TestCompareRejectsWrongCount(t *testing.T) {
	svc := NewVehicleService(newFakeVehicleRepo())
	_, err := svc.Compare(context.Background(), []string{"v1"})
	assert.Error(t, err)
}

func TestCompareRejectsUnknownVehicle(t *testing.T) {
	repo := newFakeVehicleRepo(
		domain.Vehicle{ID: "v1", Name: "One", PricePerDay: 100, TopSpeedKmh: 200},
	)
	svc := NewVehicleService(repo)
	_, err := svc.Compare(context.Background(), []string{"v1", "missing"})
	assert.Error(t, err)
}

func TestCreateVehicleValidates(t *testing.T) {
	svc := NewVehicleService(newFakeVehicleRepo())
	err := svc.CreateVehicle(context.Background(), &domain.Vehicle{})
	assert.Error(t, err)

	v := &domain.Vehicle{
		Name:         "Continental GT",
		Brand:        "Bentley",
		Category:     domain.CategoryLuxurySedan,
		PricePerDay:  650,
		TopSpeedKmh:  335,
		Transmission: domain.TransmissionAutomatic,
		Fuel:         domain.FuelPetrol,
	}
	assert.NoError(t, svc.CreateVehicle(context.Background(), v))
	assert.NotEmpty(t, v.ID)
}
