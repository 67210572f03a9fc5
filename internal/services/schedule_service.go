package services

import (
	"fmt"
	"time"

	"airport-backend/internal/domain"
	"airport-backend/internal/domain/models"
	"airport-backend/internal/repositories"
	"airport-backend/internal/utils"
)

// ScheduleService reads and maintains a passenger's time schedule. The
// upcoming read is a plain windowed pass-through: ordering and the completed
// filter are the only rules imposed here.
type ScheduleService struct {
	Schedules ScheduleStore
	RequestID string
	Now       func() time.Time
}

func (s ScheduleService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Upcoming returns uncompleted items with start time in [from, to),
// ascending by start time.
func (s ScheduleService) Upcoming(passengerID int64, from, to time.Time) ([]models.TimeSchedule, error) {
	return s.Schedules.Upcoming(passengerID, from, to)
}

// UpcomingWindow is Upcoming anchored at the current time.
func (s ScheduleService) UpcomingWindow(passengerID int64, window time.Duration) ([]models.TimeSchedule, error) {
	now := s.now()
	return s.Upcoming(passengerID, now, now.Add(window))
}

// List returns the passenger's items matching the filter.
func (s ScheduleService) List(passengerID int64, f repositories.ScheduleFilter) ([]models.TimeSchedule, error) {
	return s.Schedules.List(passengerID, f)
}

// Today returns every item whose start or end falls on the current date,
// completed ones included.
func (s ScheduleService) Today(passengerID int64) ([]models.TimeSchedule, error) {
	today := s.now()
	return s.Schedules.List(passengerID, repositories.ScheduleFilter{Date: &today, IncludeCompleted: true})
}

// ScheduleInput is the payload for creating a schedule item.
type ScheduleInput struct {
	FlightCode string
	EventName  string
	EventType  models.ScheduleEventType
	LocationID *int64
	StartTime  time.Time
	EndTime    *time.Time
	Notes      string
}

// Create stores a new item owned by the passenger.
func (s ScheduleService) Create(passengerID int64, in ScheduleInput) (models.TimeSchedule, error) {
	if passengerID <= 0 {
		return models.TimeSchedule{}, domain.ValidationError{Field: "passengerId", Msg: "required"}
	}
	if utils.TrimOrEmpty(in.EventName) == "" {
		return models.TimeSchedule{}, domain.ValidationError{Field: "eventName", Msg: "required"}
	}
	if in.StartTime.IsZero() {
		return models.TimeSchedule{}, domain.ValidationError{Field: "startTime", Msg: "required"}
	}
	if in.EventType == "" {
		in.EventType = models.EventOther
	}
	if !in.EventType.Valid() {
		return models.TimeSchedule{}, domain.ValidationError{Field: "eventType", Msg: "unknown event type"}
	}

	now := s.now()
	item := models.TimeSchedule{
		PassengerID: passengerID,
		FlightCode:  utils.TrimOrEmpty(in.FlightCode),
		EventName:   utils.NormalizeSpace(in.EventName),
		EventType:   in.EventType,
		LocationID:  in.LocationID,
		StartTime:   in.StartTime,
		EndTime:     in.EndTime,
		Notes:       utils.TrimOrEmpty(in.Notes),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Schedules.Insert(&item); err != nil {
		return models.TimeSchedule{}, err
	}

	utils.LogEvent(s.RequestID, "schedule", "create",
		fmt.Sprintf("schedule_id=%d passenger_id=%d", item.ID, passengerID))
	return item, nil
}

// Complete marks an item done. Completing twice is accepted.
func (s ScheduleService) Complete(id, passengerID int64) (models.TimeSchedule, error) {
	item, err := s.Schedules.Complete(id, passengerID, s.now())
	if err != nil {
		return models.TimeSchedule{}, err
	}

	utils.LogEvent(s.RequestID, "schedule", "complete",
		fmt.Sprintf("schedule_id=%d passenger_id=%d", id, passengerID))
	return item, nil
}
