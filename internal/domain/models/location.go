package models

import "time"

// LocationType enumerates the facility categories known to the terminal map.
type LocationType string

const (
	LocationGate       LocationType = "gate"
	LocationShop       LocationType = "shop"
	LocationRestaurant LocationType = "restaurant"
	LocationToilet     LocationType = "toilet"
	LocationSecurity   LocationType = "security"
	LocationCheckIn    LocationType = "check_in"
	LocationLuggage    LocationType = "luggage"
	LocationExit       LocationType = "exit"
	LocationEntrance   LocationType = "entrance"
	LocationLounge     LocationType = "lounge"
	LocationOther      LocationType = "other"
)

var locationTypeLabels = map[LocationType]string{
	LocationGate:       "boarding gate",
	LocationShop:       "shop",
	LocationRestaurant: "restaurant",
	LocationToilet:     "restroom",
	LocationSecurity:   "security checkpoint",
	LocationCheckIn:    "check-in counter",
	LocationLuggage:    "baggage claim",
	LocationExit:       "exit",
	LocationEntrance:   "entrance",
	LocationLounge:     "lounge",
	LocationOther:      "other",
}

// Valid reports whether the type is one of the known categories.
func (t LocationType) Valid() bool {
	_, ok := locationTypeLabels[t]
	return ok
}

// Label returns the spoken name of the facility type.
func (t LocationType) Label() string {
	if l, ok := locationTypeLabels[t]; ok {
		return l
	}
	return locationTypeLabels[LocationOther]
}

// Location mirrors the locations table. Coordinates are floor-local:
// x/y are only comparable between locations on the same floor.
type Location struct {
	ID          int64        `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	Floor       int          `json:"floor"`
	X           float64      `json:"xCoordinate"`
	Y           float64      `json:"yCoordinate"`
	Type        LocationType `json:"type"`
	TypeLabel   string       `json:"typeLabel"`
	IsActive    bool         `json:"isActive"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

// LocationSummary is the list-view projection of a location.
type LocationSummary struct {
	ID        int64        `json:"id"`
	Name      string       `json:"name"`
	Floor     int          `json:"floor"`
	Type      LocationType `json:"type"`
	TypeLabel string       `json:"typeLabel"`
}

// Summary projects the full record into its list view.
func (l Location) Summary() LocationSummary {
	return LocationSummary{
		ID:        l.ID,
		Name:      l.Name,
		Floor:     l.Floor,
		Type:      l.Type,
		TypeLabel: l.Type.Label(),
	}
}
