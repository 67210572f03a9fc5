package repositories

import (
	"database/sql"
	"strings"
	"time"

	intconfig "airport-backend/internal/config"
	"airport-backend/internal/domain"
	"airport-backend/internal/domain/models"
)

// ScheduleRepository persists passenger time schedules. Every query here is
// scoped to one passenger; the navigation engine never reads across owners.
type ScheduleRepository struct {
	DB *sql.DB
}

func (r ScheduleRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const scheduleColumns = `s.id, s.passenger_id, COALESCE(s.flight_code,''), s.event_name, s.event_type, s.location_id, s.start_time, s.end_time, COALESCE(s.notes,''), s.is_completed, s.created_at, s.updated_at, l.id, l.name, l.floor, l.type`

const scheduleFrom = ` FROM time_schedules s LEFT JOIN locations l ON l.id = s.location_id `

func scanSchedule(row interface{ Scan(...any) error }) (models.TimeSchedule, error) {
	var (
		item       models.TimeSchedule
		locationID sql.NullInt64
		endTime    sql.NullTime
		locID      sql.NullInt64
		locName    sql.NullString
		locFloor   sql.NullInt64
		locType    sql.NullString
	)
	err := row.Scan(
		&item.ID,
		&item.PassengerID,
		&item.FlightCode,
		&item.EventName,
		&item.EventType,
		&locationID,
		&item.StartTime,
		&endTime,
		&item.Notes,
		&item.IsCompleted,
		&item.CreatedAt,
		&item.UpdatedAt,
		&locID,
		&locName,
		&locFloor,
		&locType,
	)
	if err != nil {
		return models.TimeSchedule{}, err
	}
	if locationID.Valid {
		id := locationID.Int64
		item.LocationID = &id
	}
	if endTime.Valid {
		t := endTime.Time
		item.EndTime = &t
	}
	if locID.Valid {
		t := models.LocationType(locType.String)
		item.Location = &models.Location{
			ID:        locID.Int64,
			Name:      locName.String,
			Floor:     int(locFloor.Int64),
			Type:      t,
			TypeLabel: t.Label(),
		}
	}
	return item, nil
}

// Insert stores a new schedule item and fills in its id.
func (r ScheduleRepository) Insert(item *models.TimeSchedule) error {
	db := r.db()
	if db == nil {
		return domain.InternalError{Msg: "database not available"}
	}

	res, err := db.Exec(`
		INSERT INTO time_schedules
			(passenger_id, flight_code, event_name, event_type, location_id, start_time, end_time, notes, is_completed, created_at, updated_at)
		VALUES (?, NULLIF(?,''), ?, ?, ?, ?, ?, NULLIF(?,''), 0, ?, ?)`,
		item.PassengerID,
		item.FlightCode,
		item.EventName,
		item.EventType,
		item.LocationID,
		item.StartTime,
		item.EndTime,
		item.Notes,
		item.CreatedAt,
		item.UpdatedAt,
	)
	if err != nil {
		return domain.InternalError{Msg: "failed to insert schedule", Err: err}
	}

	id, err := res.LastInsertId()
	if err != nil {
		return domain.InternalError{Msg: "failed to read schedule id", Err: err}
	}
	item.ID = id
	return nil
}

// GetForPassenger loads one schedule item scoped to its owner.
func (r ScheduleRepository) GetForPassenger(id, passengerID int64) (models.TimeSchedule, error) {
	db := r.db()
	if db == nil || id <= 0 || passengerID <= 0 {
		return models.TimeSchedule{}, domain.NotFoundError{Resource: "schedule"}
	}

	row := db.QueryRow(`SELECT `+scheduleColumns+scheduleFrom+`WHERE s.id=? AND s.passenger_id=? LIMIT 1`, id, passengerID)
	item, err := scanSchedule(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.TimeSchedule{}, domain.NotFoundError{Resource: "schedule"}
		}
		return models.TimeSchedule{}, domain.InternalError{Msg: "failed to load schedule", Err: err}
	}
	return item, nil
}

// Upcoming returns uncompleted items with start_time inside [from, to),
// ascending by start time. This is the read path behind voice guidance.
func (r ScheduleRepository) Upcoming(passengerID int64, from, to time.Time) ([]models.TimeSchedule, error) {
	db := r.db()
	if db == nil {
		return nil, domain.InternalError{Msg: "database not available"}
	}

	rows, err := db.Query(
		`SELECT `+scheduleColumns+scheduleFrom+`
		WHERE s.passenger_id=? AND s.is_completed=0 AND s.start_time >= ? AND s.start_time < ?
		ORDER BY s.start_time ASC, s.id ASC`,
		passengerID, from, to,
	)
	if err != nil {
		return nil, domain.InternalError{Msg: "failed to query upcoming schedules", Err: err}
	}
	defer rows.Close()

	return collectSchedules(rows)
}

// ScheduleFilter narrows List results.
type ScheduleFilter struct {
	FlightCode       string
	Date             *time.Time
	IncludeCompleted bool
}

// List returns the passenger's schedule items matching the filter, ascending
// by start time.
func (r ScheduleRepository) List(passengerID int64, f ScheduleFilter) ([]models.TimeSchedule, error) {
	db := r.db()
	if db == nil {
		return nil, domain.InternalError{Msg: "database not available"}
	}

	where := []string{"s.passenger_id=?"}
	args := []any{passengerID}
	if !f.IncludeCompleted {
		where = append(where, "s.is_completed=0")
	}
	if strings.TrimSpace(f.FlightCode) != "" {
		where = append(where, "s.flight_code=?")
		args = append(args, strings.TrimSpace(f.FlightCode))
	}
	if f.Date != nil {
		where = append(where, "(DATE(s.start_time)=DATE(?) OR DATE(s.end_time)=DATE(?))")
		args = append(args, *f.Date, *f.Date)
	}

	rows, err := db.Query(
		`SELECT `+scheduleColumns+scheduleFrom+`WHERE `+strings.Join(where, " AND ")+` ORDER BY s.start_time ASC, s.id ASC`,
		args...,
	)
	if err != nil {
		return nil, domain.InternalError{Msg: "failed to list schedules", Err: err}
	}
	defer rows.Close()

	return collectSchedules(rows)
}

// Complete marks a schedule item done. Unlike navigation completion this is
// idempotent: completing twice is not an error.
func (r ScheduleRepository) Complete(id, passengerID int64, at time.Time) (models.TimeSchedule, error) {
	db := r.db()
	if db == nil {
		return models.TimeSchedule{}, domain.InternalError{Msg: "database not available"}
	}

	if _, err := db.Exec(
		`UPDATE time_schedules SET is_completed=1, updated_at=? WHERE id=? AND passenger_id=?`,
		at, id, passengerID,
	); err != nil {
		return models.TimeSchedule{}, domain.InternalError{Msg: "failed to complete schedule", Err: err}
	}

	return r.GetForPassenger(id, passengerID)
}

func collectSchedules(rows *sql.Rows) ([]models.TimeSchedule, error) {
	out := []models.TimeSchedule{}
	for rows.Next() {
		item, err := scanSchedule(rows)
		if err != nil {
			return out, domain.InternalError{Msg: "failed to scan schedule", Err: err}
		}
		out = append(out, item)
	}
	return out, rows.Err()
}
