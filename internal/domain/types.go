package domain

// ID is used across domain entities.
type ID int64

// RequestContext carries authenticated passenger info when available.
type RequestContext struct {
	PassengerID ID     `json:"passengerId"`
	Role        string `json:"role"`
}
