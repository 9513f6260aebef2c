package compare

import (
	"errors"
	"sort"

	"github.com/luxeride/rental-service/internal/domain"
)

// Candidate carries the attributes a vehicle is scored on.
type Candidate struct {
	ID           string
	Name         string
	PricePerDay  float64
	TopSpeedKmh  int
	Transmission domain.Transmission
	Fuel         domain.FuelType
}

// Scored pairs a candidate with its computed score.
type Scored struct {
	Candidate
	Score int
}

// ResultType describes the outcome of ranking a comparison set.
type ResultType string

const (
	// ResultWinner means exactly one candidate holds the top score.
	ResultWinner ResultType = "WINNER"
	// ResultTieAll means every candidate shares the top score.
	ResultTieAll ResultType = "TIE_ALL"
	// ResultTieTop means more than one but not all share the top score.
	ResultTieTop ResultType = "TIE_TOP"
)

// Result is the ranked outcome of a comparison.
type Result struct {
	Type     ResultType
	Winner   *Scored
	TiedWith []string
	Scores   []Scored
}

// ErrCandidateCount is returned when the set is not 2 or 3 candidates.
var ErrCandidateCount = errors.New("comparison requires 2 or 3 candidates")

// Score computes a candidate's points relative to the whole set:
// +1 for holding the lowest price, +1 for holding the highest top speed,
// +1 for an automatic transmission, +2 for hybrid fuel, +1 for electric or
// petrol. Maximum attainable score is 5.
func Score(c Candidate, all []Candidate) int {
	score := 0
	if c.PricePerDay == minPrice(all) {
		score++
	}
	if c.TopSpeedKmh == maxSpeed(all) {
		score++
	}
	if c.Transmission == domain.TransmissionAutomatic {
		score++
	}
	switch c.Fuel {
	case domain.FuelHybrid:
		score += 2
	case domain.FuelElectric, domain.FuelPetrol:
		score++
	}
	return score
}

// Rank scores every candidate and determines the winner or tie outcome.
// Deterministic and side-effect free; recomputed from scratch per call.
func Rank(all []Candidate) (Result, error) {
	if len(all) < 2 || len(all) > 3 {
		return Result{}, ErrCandidateCount
	}

	scores := make([]Scored, 0, len(all))
	for _, c := range all {
		scores = append(scores, Scored{Candidate: c, Score: Score(c, all)})
	}
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Score > scores[j].Score
	})

	top := scores[0].Score
	var tied []string
	for _, s := range scores {
		if s.Score == top {
			tied = append(tied, s.Name)
		}
	}

	result := Result{Scores: scores}
	switch {
	case len(tied) == len(all):
		result.Type = ResultTieAll
		result.TiedWith = tied
	case len(tied) > 1:
		result.Type = ResultTieTop
		result.TiedWith = tied
	default:
		result.Type = ResultWinner
		result.Winner = &scores[0]
	}
	return result, nil
}

func minPrice(all []Candidate) float64 {
	min := all[0].PricePerDay
	for _, c := range all[1:] {
		if c.PricePerDay < min {
			min = c.PricePerDay
		}
	}
	return min
}

func maxSpeed(all []Candidate) int {
	max := all[0].TopSpeedKmh
	for _, c := range all[1:] {
		if c.TopSpeedKmh > max {
			max = c.TopSpeedKmh
		}
	}
	return max
}
