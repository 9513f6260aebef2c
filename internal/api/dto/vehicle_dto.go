package dto

import (
	"time"

	"github.com/luxeride/rental-service/internal/compare"
	"github.com/luxeride/rental-service/internal/domain"
)

// VehicleResponse is the catalog representation of one car.
type VehicleResponse struct {
	ID           string                 `json:"id"`
	Name         string                 `json:"name"`
	Brand        string                 `json:"brand"`
	Category     domain.VehicleCategory `json:"category"`
	PricePerDay  float64                `json:"price_per_day"`
	TopSpeedKmh  int                    `json:"top_speed_kmh"`
	Transmission domain.Transmission    `json:"transmission"`
	Fuel         domain.FuelType        `json:"fuel"`
	Seats        int                    `json:"seats"`
	Year         int                    `json:"year"`
	ImageURL     string                 `json:"image_url"`
	Available    bool                   `json:"available"`
	CreatedAt    time.Time              `json:"created_at"`
}

// NewVehicleResponse maps a domain vehicle.
func NewVehicleResponse(v domain.Vehicle) VehicleResponse {
	return VehicleResponse{
		ID:           v.ID,
		Name:         v.Name,
		Brand:        v.Brand,
		Category:     v.Category,
		PricePerDay:  v.PricePerDay,
		TopSpeedKmh:  v.TopSpeedKmh,
		Transmission: v.Transmission,
		Fuel:         v.Fuel,
		Seats:        v.Seats,
		Year:         v.Year,
		ImageURL:     v.ImageURL,
		Available:    v.Available,
		CreatedAt:    v.CreatedAt,
	}
}

// NewVehicleResponses maps a slice of domain vehicles.
func NewVehicleResponses(vehicles []domain.Vehicle) []VehicleResponse {
	out := make([]VehicleResponse, 0, len(vehicles))
	for _, v := range vehicles {
		out = append(out, NewVehicleResponse(v))
	}
	return out
}

// VehicleUpsertRequest payload for admin create/update.
type VehicleUpsertRequest struct {
	Name         string                 `json:"name"`
	Brand        string                 `json:"brand"`
	Category     domain.VehicleCategory `json:"category"`
	PricePerDay  float64                `json:"price_per_day"`
	TopSpeedKmh  int                    `json:"top_speed_kmh"`
	Transmission domain.Transmission    `json:"transmission"`
	Fuel         domain.FuelType        `json:"fuel"`
	Seats        int                    `json:"seats"`
	Year         int                    `json:"year"`
	ImageURL     string                 `json:"image_url"`
	Available    bool                   `json:"available"`
}

// ToDomain maps the payload onto a domain vehicle.
func (r VehicleUpsertRequest) ToDomain(id string) *domain.Vehicle {
	return &domain.Vehicle{
		ID:           id,
		Name:         r.Name,
		Brand:        r.Brand,
		Category:     r.Category,
		PricePerDay:  r.PricePerDay,
		TopSpeedKmh:  r.TopSpeedKmh,
		Transmission: r.Transmission,
		Fuel:         r.Fuel,
		Seats:        r.Seats,
		Year:         r.Year,
		ImageURL:     r.ImageURL,
		Available:    r.Available,
	}
}

// AvailabilityRequest payload for admin availability toggles.
type AvailabilityRequest struct {
	Available bool `json:"available"`
}

// CompareRequest payload.
type CompareRequest struct {
	VehicleIDs []string `json:"vehicle_ids"`
}

// ComparisonScore pairs one candidate with its points.
type ComparisonScore struct {
	VehicleID string `json:"vehicle_id"`
	Name      string `json:"name"`
	Score     int    `json:"score"`
}

// CompareResponse is the ranked comparison outcome.
type CompareResponse struct {
	Result   string            `json:"result"`
	Winner   *ComparisonScore  `json:"winner,omitempty"`
	TiedWith []string          `json:"tied_with,omitempty"`
	Scores   []ComparisonScore `json:"scores"`
}

// NewCompareResponse maps a ranking result.
func NewCompareResponse(result compare.Result) CompareResponse {
	resp := CompareResponse{
		Result:   string(result.Type),
		TiedWith: result.TiedWith,
		Scores:   make([]ComparisonScore, 0, len(result.Scores)),
	}
	for _, s := range result.Scores {
		resp.Scores = append(resp.Scores, ComparisonScore{VehicleID: s.ID, Name: s.Name, Score: s.Score})
	}
	if result.Winner != nil {
		resp.Winner = &ComparisonScore{
			VehicleID: result.Winner.ID,
			Name:      result.Winner.Name,
			Score:     result.Winner.Score,
		}
	}
	return resp
}
