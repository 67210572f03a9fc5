package services

import (
	"math"
	"sort"

	"airport-backend/internal/domain"
	"airport-backend/internal/domain/models"
)

// FacilityMatch pairs a location with its distance from the query origin.
type FacilityMatch struct {
	Location models.Location `json:"location"`
	Distance int             `json:"distanceMeters"`
}

// FacilityService answers nearest-facility queries with a linear scan of the
// active locations on one floor. Floors hold at most a few hundred locations,
// so no spatial index is needed.
type FacilityService struct {
	Locations LocationIndex
}

// QueryRadius returns every active location on the floor within radius meters
// of (x, y), optionally limited to the given types. Results are sorted by
// distance, ties broken by location id so repeated queries are reproducible.
// The result count is not capped.
func (s FacilityService) QueryRadius(floor int, x, y, radius float64, types []models.LocationType) ([]FacilityMatch, error) {
	if radius < 0 {
		return nil, domain.ValidationError{Field: "radius", Msg: "must not be negative"}
	}

	candidates, err := s.Locations.ListByFloor(floor, types)
	if err != nil {
		return nil, err
	}

	out := []FacilityMatch{}
	for _, loc := range candidates {
		d := planarDistance(loc.X, loc.Y, x, y)
		if d <= radius {
			out = append(out, FacilityMatch{Location: loc, Distance: int(math.Round(d))})
		}
	}
	sortMatches(out)
	return out, nil
}

// QueryNearestK returns up to k active locations on the reference's floor,
// nearest first, never including the reference itself. An empty result is
// valid: a floor can hold a single facility.
func (s FacilityService) QueryNearestK(ref models.Location, k int) ([]FacilityMatch, error) {
	if k <= 0 {
		return []FacilityMatch{}, nil
	}

	candidates, err := s.Locations.ListByFloor(ref.Floor, nil)
	if err != nil {
		return nil, err
	}

	out := []FacilityMatch{}
	for _, loc := range candidates {
		if loc.ID == ref.ID {
			continue
		}
		d := planarDistance(loc.X, loc.Y, ref.X, ref.Y)
		out = append(out, FacilityMatch{Location: loc, Distance: int(math.Round(d))})
	}
	sortMatches(out)
	if len(out) > k {
		out = out[:k]
	}
	return out, nil
}

func sortMatches(matches []FacilityMatch) {
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Distance != matches[j].Distance {
			return matches[i].Distance < matches[j].Distance
		}
		return matches[i].Location.ID < matches[j].Location.ID
	})
}
