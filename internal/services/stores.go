package services

import (
	"time"

	"airport-backend/internal/domain/models"
	"airport-backend/internal/repositories"
)

// LocationIndex is the read-only lookup the engine needs over the terminal
// map. Satisfied by repositories.LocationRepository.
type LocationIndex interface {
	GetActiveByID(id int64) (models.Location, error)
	GetAnyByID(id int64) (models.Location, error)
	ListByFloor(floor int, types []models.LocationType) ([]models.Location, error)
}

// NavigationStore persists navigation records. Satisfied by
// repositories.NavigationRepository.
type NavigationStore interface {
	Insert(rec *models.NavigationRecord) error
	GetForPassenger(id, passengerID int64) (models.NavigationRecord, error)
	ListForPassenger(passengerID int64) ([]models.NavigationRecord, error)
	Complete(id, passengerID int64, at time.Time) (models.NavigationRecord, error)
}

// ScheduleStore persists passenger schedules. Satisfied by
// repositories.ScheduleRepository.
type ScheduleStore interface {
	Insert(item *models.TimeSchedule) error
	GetForPassenger(id, passengerID int64) (models.TimeSchedule, error)
	Upcoming(passengerID int64, from, to time.Time) ([]models.TimeSchedule, error)
	List(passengerID int64, f repositories.ScheduleFilter) ([]models.TimeSchedule, error)
	Complete(id, passengerID int64, at time.Time) (models.TimeSchedule, error)
}
