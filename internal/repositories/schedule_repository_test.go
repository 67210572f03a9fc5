package repositories

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"airport-backend/internal/domain"
	"airport-backend/internal/domain/models"
)

func scheduleRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "passenger_id", "flight_code", "event_name", "event_type",
		"location_id", "start_time", "end_time", "notes", "is_completed",
		"created_at", "updated_at", "l_id", "l_name", "l_floor", "l_type",
	})
}

func TestScheduleUpcomingWindow(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	from := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	to := from.Add(24 * time.Hour)
	mock.ExpectQuery("FROM time_schedules s LEFT JOIN locations l ON l.id = s.location_id\\s+WHERE s.passenger_id=\\? AND s.is_completed=0 AND s.start_time >= \\? AND s.start_time < \\?\\s+ORDER BY s.start_time ASC, s.id ASC").
		WithArgs(int64(7), from, to).
		WillReturnRows(scheduleRows().
			AddRow(1, 7, "NH204", "Boarding", "boarding", 3, from.Add(2*time.Hour), nil, "", false, from, from, 3, "Gate A1", 2, "gate").
			AddRow(2, 7, "", "Lunch", "dining", nil, from.Add(3*time.Hour), nil, "", false, from, from, nil, nil, nil, nil))

	repo := ScheduleRepository{DB: db}
	items, err := repo.Upcoming(7, from, to)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}
	if items[0].Location == nil || items[0].Location.Name != "Gate A1" {
		t.Fatalf("joined location not attached: %+v", items[0])
	}
	if items[1].Location != nil || items[1].LocationID != nil {
		t.Fatalf("item without location must stay bare: %+v", items[1])
	}
	if items[0].FlightCode != "NH204" || items[1].FlightCode != "" {
		t.Fatalf("flight codes = %q, %q", items[0].FlightCode, items[1].FlightCode)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestScheduleInsertAssignsID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	now := time.Now()
	mock.ExpectExec("INSERT INTO time_schedules").
		WillReturnResult(sqlmock.NewResult(5, 1))

	repo := ScheduleRepository{DB: db}
	item := models.TimeSchedule{
		PassengerID: 7,
		EventName:   "Boarding",
		EventType:   models.EventBoarding,
		StartTime:   now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := repo.Insert(&item); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if item.ID != 5 {
		t.Fatalf("id = %d, want 5", item.ID)
	}
}

func TestScheduleCompleteThenReload(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	at := time.Now()
	mock.ExpectExec("UPDATE time_schedules SET is_completed=1, updated_at=\\? WHERE id=\\? AND passenger_id=\\?").
		WithArgs(at, int64(5), int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("FROM time_schedules s LEFT JOIN locations l").
		WithArgs(int64(5), int64(7)).
		WillReturnRows(scheduleRows().
			AddRow(5, 7, "", "Boarding", "boarding", nil, at, nil, "", true, at, at, nil, nil, nil, nil))

	repo := ScheduleRepository{DB: db}
	item, err := repo.Complete(5, 7, at)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !item.IsCompleted {
		t.Fatalf("item not completed: %+v", item)
	}
}

func TestScheduleGetForPassengerNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM time_schedules s LEFT JOIN locations l").
		WithArgs(int64(99), int64(7)).
		WillReturnRows(scheduleRows())

	repo := ScheduleRepository{DB: db}
	if _, err := repo.GetForPassenger(99, 7); !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}
