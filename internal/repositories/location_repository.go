package repositories

import (
	"database/sql"
	"strings"

	intconfig "airport-backend/internal/config"
	"airport-backend/internal/domain"
	"airport-backend/internal/domain/models"
)

// LocationRepository is a read-only lookup over the locations table. The map
// itself is maintained by the facility-management service; navigation only
// ever sees active rows, except when hydrating historical records.
type LocationRepository struct {
	DB *sql.DB
}

func (r LocationRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const locationColumns = `id, name, COALESCE(description,''), floor, x_coordinate, y_coordinate, type, is_active, created_at, updated_at`

func scanLocation(row interface{ Scan(...any) error }) (models.Location, error) {
	var l models.Location
	err := row.Scan(
		&l.ID,
		&l.Name,
		&l.Description,
		&l.Floor,
		&l.X,
		&l.Y,
		&l.Type,
		&l.IsActive,
		&l.CreatedAt,
		&l.UpdatedAt,
	)
	if err != nil {
		return models.Location{}, err
	}
	l.TypeLabel = l.Type.Label()
	return l, nil
}

// GetActiveByID loads one location. Unknown ids and deactivated locations are
// both reported as not found: an inactive location is invisible to navigation.
func (r LocationRepository) GetActiveByID(id int64) (models.Location, error) {
	db := r.db()
	if db == nil || id <= 0 {
		return models.Location{}, domain.NotFoundError{Resource: "location"}
	}

	row := db.QueryRow(`SELECT `+locationColumns+` FROM locations WHERE id=? AND is_active=1 LIMIT 1`, id)
	l, err := scanLocation(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Location{}, domain.NotFoundError{Resource: "location"}
		}
		return models.Location{}, domain.InternalError{Msg: "failed to load location", Err: err}
	}
	return l, nil
}

// GetAnyByID loads a location regardless of its active flag. Used only to
// hydrate existing navigation records, which may reference locations that
// were deactivated after the record was created.
func (r LocationRepository) GetAnyByID(id int64) (models.Location, error) {
	db := r.db()
	if db == nil || id <= 0 {
		return models.Location{}, domain.NotFoundError{Resource: "location"}
	}

	row := db.QueryRow(`SELECT `+locationColumns+` FROM locations WHERE id=? LIMIT 1`, id)
	l, err := scanLocation(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Location{}, domain.NotFoundError{Resource: "location"}
		}
		return models.Location{}, domain.InternalError{Msg: "failed to load location", Err: err}
	}
	return l, nil
}

// LocationFilter narrows List results. Zero values mean "no filter".
type LocationFilter struct {
	Floor int
	Types []models.LocationType
}

// List returns active locations matching the filter, ordered by floor then
// name (map display order), with id as the final deterministic key.
func (r LocationRepository) List(f LocationFilter) ([]models.Location, error) {
	db := r.db()
	if db == nil {
		return nil, domain.InternalError{Msg: "database not available"}
	}

	where := []string{"is_active=1"}
	args := []any{}
	if f.Floor > 0 {
		where = append(where, "floor=?")
		args = append(args, f.Floor)
	}
	if len(f.Types) > 0 {
		ph := make([]string, len(f.Types))
		for i, t := range f.Types {
			ph[i] = "?"
			args = append(args, string(t))
		}
		where = append(where, "type IN ("+strings.Join(ph, ",")+")")
	}

	rows, err := db.Query(
		`SELECT `+locationColumns+` FROM locations WHERE `+strings.Join(where, " AND ")+` ORDER BY floor ASC, name ASC, id ASC`,
		args...,
	)
	if err != nil {
		return nil, domain.InternalError{Msg: "failed to list locations", Err: err}
	}
	defer rows.Close()

	out := []models.Location{}
	for rows.Next() {
		l, err := scanLocation(rows)
		if err != nil {
			return out, domain.InternalError{Msg: "failed to scan location", Err: err}
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

// ListByFloor returns the active locations on one floor, optionally limited
// to the given facility types. This is the scan set for nearby queries.
func (r LocationRepository) ListByFloor(floor int, types []models.LocationType) ([]models.Location, error) {
	if floor < 1 {
		return nil, domain.ValidationError{Field: "floor", Msg: "must be at least 1"}
	}
	return r.List(LocationFilter{Floor: floor, Types: types})
}

// ListActive returns every active location across all floors.
func (r LocationRepository) ListActive() ([]models.Location, error) {
	return r.List(LocationFilter{})
}
