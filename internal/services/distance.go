package services

import (
	"math"

	"airport-backend/internal/domain/models"
)

const (
	// Assumed walking speed, meters per minute.
	walkSpeedMetersPerMinute = 60.0
	// Flat surcharge per floor crossed, in meters. Coordinates are
	// floor-local, so cross-floor distance cannot be measured directly.
	floorPenaltyMeters = 50.0
)

// EstimateDistance returns the distance in whole meters and the walking time
// in whole minutes between two locations. Same-floor distance is straight
// planar Euclidean; differing floors add the fixed per-floor penalty. The
// result is symmetric in its arguments and never reports less than one
// minute. This is a routable estimate, not a shortest path over walkways.
func EstimateDistance(a, b models.Location) (int, int) {
	d := math.Hypot(a.X-b.X, a.Y-b.Y)
	if a.Floor != b.Floor {
		d += floorPenaltyMeters * math.Abs(float64(a.Floor-b.Floor))
	}

	meters := int(math.Round(d))
	minutes := int(math.Round(float64(meters) / walkSpeedMetersPerMinute))
	if minutes < 1 {
		minutes = 1
	}
	return meters, minutes
}

func planarDistance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x1-x2, y1-y2)
}
