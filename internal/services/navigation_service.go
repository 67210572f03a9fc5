package services

import (
	"fmt"
	"time"

	"airport-backend/internal/domain"
	"airport-backend/internal/domain/models"
	"airport-backend/internal/utils"
)

// NavigationService owns the session lifecycle: Created -> Completed,
// with Completed terminal. Distance and time are computed once at Start from
// the locations as they are at that instant and never recomputed; a later
// move of a location does not rewrite history.
type NavigationService struct {
	Locations LocationIndex
	Records   NavigationStore
	RequestID string
	Now       func() time.Time
}

func (s NavigationService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Start resolves both endpoints, estimates the route and persists a fresh
// record. Either endpoint being unknown or inactive fails the whole request.
func (s NavigationService) Start(passengerID, startLocationID, endLocationID int64) (models.NavigationRecord, error) {
	if passengerID <= 0 {
		return models.NavigationRecord{}, domain.ValidationError{Field: "passengerId", Msg: "required"}
	}
	if startLocationID <= 0 {
		return models.NavigationRecord{}, domain.ValidationError{Field: "currentLocationId", Msg: "required"}
	}
	if endLocationID <= 0 {
		return models.NavigationRecord{}, domain.ValidationError{Field: "destinationId", Msg: "required"}
	}

	start, err := s.Locations.GetActiveByID(startLocationID)
	if err != nil {
		return models.NavigationRecord{}, err
	}
	end, err := s.Locations.GetActiveByID(endLocationID)
	if err != nil {
		return models.NavigationRecord{}, err
	}

	meters, minutes := EstimateDistance(start, end)

	rec := models.NavigationRecord{
		PassengerID:     passengerID,
		StartLocationID: start.ID,
		EndLocationID:   end.ID,
		Distance:        meters,
		EstimatedTime:   minutes,
		CreatedAt:       s.now(),
	}
	if err := s.Records.Insert(&rec); err != nil {
		return models.NavigationRecord{}, err
	}
	rec.StartLocation = &start
	rec.EndLocation = &end

	utils.LogEvent(s.RequestID, "navigation", "start",
		fmt.Sprintf("record_id=%d passenger_id=%d distance_m=%d", rec.ID, passengerID, meters))
	return rec, nil
}

// Complete transitions the session to its terminal state. The repository
// performs the transition as one conditional update, so two racing complete
// requests cannot both succeed; the loser observes a conflict.
func (s NavigationService) Complete(sessionID, passengerID int64) (models.NavigationRecord, error) {
	rec, err := s.Records.Complete(sessionID, passengerID, s.now())
	if err != nil {
		return models.NavigationRecord{}, err
	}

	utils.LogEvent(s.RequestID, "navigation", "complete",
		fmt.Sprintf("record_id=%d passenger_id=%d", sessionID, passengerID))
	return s.hydrate(rec)
}

// Get loads one of the passenger's sessions with both endpoints attached.
func (s NavigationService) Get(sessionID, passengerID int64) (models.NavigationRecord, error) {
	rec, err := s.Records.GetForPassenger(sessionID, passengerID)
	if err != nil {
		return models.NavigationRecord{}, err
	}
	return s.hydrate(rec)
}

// History returns the passenger's past and in-progress sessions, newest
// first. Records are never deleted by this service.
func (s NavigationService) History(passengerID int64) ([]models.NavigationRecord, error) {
	return s.Records.ListForPassenger(passengerID)
}

// hydrate attaches the endpoint locations to a stored record. Lookups ignore
// the active flag: deactivating a location must not break existing sessions.
func (s NavigationService) hydrate(rec models.NavigationRecord) (models.NavigationRecord, error) {
	start, err := s.Locations.GetAnyByID(rec.StartLocationID)
	if err != nil {
		return models.NavigationRecord{}, err
	}
	end, err := s.Locations.GetAnyByID(rec.EndLocationID)
	if err != nil {
		return models.NavigationRecord{}, err
	}
	rec.StartLocation = &start
	rec.EndLocation = &end
	return rec, nil
}
