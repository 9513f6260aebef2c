package domain

import "time"

// Transmission enumerates gearbox kinds.
type Transmission string

const (
	TransmissionAutomatic Transmission = "AUTOMATIC"
	TransmissionManual    Transmission = "MANUAL"
)

// FuelType enumerates drivetrain fuel kinds.
type FuelType string

const (
	FuelPetrol   FuelType = "PETROL"
	FuelElectric FuelType = "ELECTRIC"
	FuelHybrid   FuelType = "HYBRID"
)

// VehicleCategory groups the fleet for browsing filters.
type VehicleCategory string

const (
	CategorySport       VehicleCategory = "SPORT"
	CategoryLuxurySedan VehicleCategory = "LUXURY_SEDAN"
	CategorySUV         VehicleCategory = "SUV"
	CategoryConvertible VehicleCategory = "CONVERTIBLE"
)

// Vehicle is the catalog aggregate for a rentable car.
type Vehicle struct {
	ID           string
	Name         string
	Brand        string
	Category     VehicleCategory
	PricePerDay  float64
	TopSpeedKmh  int
	Transmission Transmission
	Fuel         FuelType
	Seats        int
	Year         int
	ImageURL     string
	Available    bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
