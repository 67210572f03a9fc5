package repositories

import (
	"database/sql"
	"time"

	intconfig "airport-backend/internal/config"
	"airport-backend/internal/domain"
	"airport-backend/internal/domain/models"
)

// NavigationRepository persists navigation records. Records are history: they
// are inserted once, completed at most once, and never deleted here.
type NavigationRepository struct {
	DB *sql.DB
}

func (r NavigationRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const navigationColumns = `id, passenger_id, start_location_id, end_location_id, distance, estimated_time, completed, completed_at, created_at`

func scanNavigation(row interface{ Scan(...any) error }) (models.NavigationRecord, error) {
	var rec models.NavigationRecord
	var completedAt sql.NullTime
	err := row.Scan(
		&rec.ID,
		&rec.PassengerID,
		&rec.StartLocationID,
		&rec.EndLocationID,
		&rec.Distance,
		&rec.EstimatedTime,
		&rec.Completed,
		&completedAt,
		&rec.CreatedAt,
	)
	if err != nil {
		return models.NavigationRecord{}, err
	}
	if completedAt.Valid {
		t := completedAt.Time
		rec.CompletedAt = &t
	}
	return rec, nil
}

// Insert stores a freshly started record and fills in its id.
func (r NavigationRepository) Insert(rec *models.NavigationRecord) error {
	db := r.db()
	if db == nil {
		return domain.InternalError{Msg: "database not available"}
	}

	res, err := db.Exec(`
		INSERT INTO navigation_records
			(passenger_id, start_location_id, end_location_id, distance, estimated_time, completed, created_at)
		VALUES (?, ?, ?, ?, ?, 0, ?)`,
		rec.PassengerID,
		rec.StartLocationID,
		rec.EndLocationID,
		rec.Distance,
		rec.EstimatedTime,
		rec.CreatedAt,
	)
	if err != nil {
		return domain.InternalError{Msg: "failed to insert navigation record", Err: err}
	}

	id, err := res.LastInsertId()
	if err != nil {
		return domain.InternalError{Msg: "failed to read navigation record id", Err: err}
	}
	rec.ID = id
	return nil
}

// GetForPassenger loads one record scoped to its owner. A record owned by a
// different passenger is indistinguishable from a missing one.
func (r NavigationRepository) GetForPassenger(id, passengerID int64) (models.NavigationRecord, error) {
	db := r.db()
	if db == nil || id <= 0 || passengerID <= 0 {
		return models.NavigationRecord{}, domain.NotFoundError{Resource: "navigation record"}
	}

	row := db.QueryRow(`SELECT `+navigationColumns+` FROM navigation_records WHERE id=? AND passenger_id=? LIMIT 1`, id, passengerID)
	rec, err := scanNavigation(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.NavigationRecord{}, domain.NotFoundError{Resource: "navigation record"}
		}
		return models.NavigationRecord{}, domain.InternalError{Msg: "failed to load navigation record", Err: err}
	}
	return rec, nil
}

// ListForPassenger returns the passenger's navigation history, newest first.
func (r NavigationRepository) ListForPassenger(passengerID int64) ([]models.NavigationRecord, error) {
	db := r.db()
	if db == nil {
		return nil, domain.InternalError{Msg: "database not available"}
	}

	rows, err := db.Query(
		`SELECT `+navigationColumns+` FROM navigation_records WHERE passenger_id=? ORDER BY created_at DESC, id DESC`,
		passengerID,
	)
	if err != nil {
		return nil, domain.InternalError{Msg: "failed to list navigation records", Err: err}
	}
	defer rows.Close()

	out := []models.NavigationRecord{}
	for rows.Next() {
		rec, err := scanNavigation(rows)
		if err != nil {
			return out, domain.InternalError{Msg: "failed to scan navigation record", Err: err}
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// Complete transitions a record to completed exactly once. The guard on
// completed=0 makes the update a compare-and-set: when two requests race,
// only one UPDATE matches a row and the loser resolves to a conflict.
func (r NavigationRepository) Complete(id, passengerID int64, at time.Time) (models.NavigationRecord, error) {
	db := r.db()
	if db == nil {
		return models.NavigationRecord{}, domain.InternalError{Msg: "database not available"}
	}

	res, err := db.Exec(`
		UPDATE navigation_records
		SET completed=1, completed_at=?
		WHERE id=? AND passenger_id=? AND completed=0`,
		at, id, passengerID,
	)
	if err != nil {
		return models.NavigationRecord{}, domain.InternalError{Msg: "failed to complete navigation record", Err: err}
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return models.NavigationRecord{}, domain.InternalError{Msg: "failed to read affected rows", Err: err}
	}

	if affected == 0 {
		rec, err := r.GetForPassenger(id, passengerID)
		if err != nil {
			return models.NavigationRecord{}, err
		}
		if rec.Completed {
			return models.NavigationRecord{}, domain.ConflictError{Resource: "navigation record", Msg: "already completed"}
		}
		return models.NavigationRecord{}, domain.InternalError{Msg: "navigation record completion did not apply"}
	}

	return r.GetForPassenger(id, passengerID)
}
