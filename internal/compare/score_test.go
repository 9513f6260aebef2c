package compare

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luxeride/rental-service/internal/domain"
)

func TestScoreWorkedExample(t *testing.T) {
	candidates := []Candidate{
		{ID: "1", Name: "Car One", PricePerDay: 100, TopSpeedKmh: 200, Transmission: domain.TransmissionAutomatic, Fuel: domain.FuelPetrol},
		{ID: "2", Name: "Car Two", PricePerDay: 150, TopSpeedKmh: 250, Transmission: domain.TransmissionAutomatic, Fuel: domain.FuelHybrid},
		{ID: "3", Name: "Car Three", PricePerDay: 150, TopSpeedKmh: 250, Transmission: domain.TransmissionManual, Fuel: domain.FuelElectric},
	}

	assert.Equal(t, 3, Score(candidates[0], candidates))
	assert.Equal(t, 4, Score(candidates[1], candidates))
	assert.Equal(t, 2, Score(candidates[2], candidates))

	result, err := Rank(candidates)
	require.NoError(t, err)
	assert.Equal(t, ResultWinner, result.Type)
	require.NotNil(t, result.Winner)
	assert.Equal(t, "2", result.Winner.ID)
	assert.Equal(t, 4, result.Winner.Score)
}

func TestRankTieAll(t *testing.T) {
	candidates := []Candidate{
		{ID: "1", Name: "A", PricePerDay: 100, TopSpeedKmh: 200, Transmission: domain.TransmissionAutomatic, Fuel: domain.FuelPetrol},
		{ID: "2", Name: "B", PricePerDay: 100, TopSpeedKmh: 200, Transmission: domain.TransmissionAutomatic, Fuel: domain.FuelPetrol},
	}

	result, err := Rank(candidates)
	require.NoError(t, err)
	assert.Equal(t, ResultTieAll, result.Type)
	assert.Nil(t, result.Winner)
	assert.ElementsMatch(t, []string{"A", "B"}, result.TiedWith)
}

func TestRankTieTop(t *testing.T) {
	candidates := []Candidate{
		// A and B both take lowest price + automatic + petrol = 3.
		{ID: "1", Name: "A", PricePerDay: 100, TopSpeedKmh: 180, Transmission: domain.TransmissionAutomatic, Fuel: domain.FuelPetrol},
		{ID: "2", Name: "B", PricePerDay: 100, TopSpeedKmh: 180, Transmission: domain.TransmissionAutomatic, Fuel: domain.FuelPetrol},
		// C: highest speed + manual + petrol = 2.
		{ID: "3", Name: "C", PricePerDay: 200, TopSpeedKmh: 300, Transmission: domain.TransmissionManual, Fuel: domain.FuelPetrol},
	}

	result, err := Rank(candidates)
	require.NoError(t, err)
	assert.Equal(t, ResultTieTop, result.Type)
	assert.ElementsMatch(t, []string{"A", "B"}, result.TiedWith)
}

func TestRankRejectsWrongCount(t *testing.T) {
	one := []Candidate{{ID: "1", Name: "A"}}
	_, err := Rank(one)
	assert.ErrorIs(t, err, ErrCandidateCount)

	four := make([]Candidate, 4)
	_, err = Rank(four)
	assert.ErrorIs(t, err, ErrCandidateCount)
}

func TestSharedExtremesEachScore(t *testing.T) {
	candidates := []Candidate{
		{ID: "1", Name: "A", PricePerDay: 100, TopSpeedKmh: 250, Transmission: domain.TransmissionManual, Fuel: domain.FuelPetrol},
		{ID: "2", Name: "B", PricePerDay: 100, TopSpeedKmh: 250, Transmission: domain.TransmissionManual, Fuel: domain.FuelPetrol},
		{ID: "3", Name: "C", PricePerDay: 150, TopSpeedKmh: 200, Transmission: domain.TransmissionManual, Fuel: domain.FuelPetrol},
	}

	// Both min-price and max-speed holders get the point even when shared.
	assert.Equal(t, 3, Score(candidates[0], candidates))
	assert.Equal(t, 3, Score(candidates[1], candidates))
	assert.Equal(t, 1, Score(candidates[2], candidates))
}

func TestMaxAttainableScore(t *testing.T) {
	candidates := []Candidate{
		{ID: "1", Name: "A", PricePerDay: 100, TopSpeedKmh: 300, Transmission: domain.TransmissionAutomatic, Fuel: domain.FuelHybrid},
		{ID: "2", Name: "B", PricePerDay: 200, TopSpeedKmh: 200, Transmission: domain.TransmissionManual, Fuel: domain.FuelPetrol},
	}
	assert.Equal(t, 5, Score(candidates[0], candidates))
}
