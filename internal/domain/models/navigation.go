package models

import "time"

// NavigationRecord mirrors the navigation_records table. Distance and
// EstimatedTime are computed once when the record is created and kept as-is
// afterwards, even if a location is later moved or deactivated.
type NavigationRecord struct {
	ID              int64      `json:"id"`
	PassengerID     int64      `json:"passengerId"`
	StartLocationID int64      `json:"startLocationId"`
	EndLocationID   int64      `json:"endLocationId"`
	Distance        int        `json:"distance"`
	EstimatedTime   int        `json:"estimatedTime"`
	Completed       bool       `json:"completed"`
	CompletedAt     *time.Time `json:"completedAt"`
	CreatedAt       time.Time  `json:"createdAt"`

	StartLocation *Location `json:"startLocation,omitempty"`
	EndLocation   *Location `json:"endLocation,omitempty"`
}
