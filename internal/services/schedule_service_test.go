package services

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"airport-backend/internal/domain"
	"airport-backend/internal/domain/models"
)

func scheduleFixture() (*fakeScheduleStore, ScheduleService) {
	store := &fakeScheduleStore{}
	svc := ScheduleService{
		Schedules: store,
		Now:       func() time.Time { return time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC) },
	}
	return store, svc
}

func TestScheduleCreate(t *testing.T) {
	_, svc := scheduleFixture()

	item, err := svc.Create(7, ScheduleInput{
		EventName:  "  Boarding  ",
		EventType:  models.EventBoarding,
		FlightCode: "NH204",
		StartTime:  svc.Now().Add(2 * time.Hour),
	})
	require.NoError(t, err)
	if item.ID == 0 {
		t.Fatalf("id not assigned")
	}
	if item.EventName != "Boarding" {
		t.Fatalf("event name = %q, want trimmed", item.EventName)
	}
	if item.IsCompleted {
		t.Fatalf("fresh item must not be completed")
	}
}

func TestScheduleCreateValidation(t *testing.T) {
	_, svc := scheduleFixture()
	start := svc.Now().Add(time.Hour)

	if _, err := svc.Create(7, ScheduleInput{StartTime: start}); !domain.IsValidation(err) {
		t.Fatalf("err = %v, want validation for missing name", err)
	}
	if _, err := svc.Create(7, ScheduleInput{EventName: "Lunch"}); !domain.IsValidation(err) {
		t.Fatalf("err = %v, want validation for missing start time", err)
	}
	if _, err := svc.Create(7, ScheduleInput{EventName: "Lunch", EventType: "party", StartTime: start}); !domain.IsValidation(err) {
		t.Fatalf("err = %v, want validation for unknown event type", err)
	}
}

func TestScheduleCreateDefaultsEventType(t *testing.T) {
	_, svc := scheduleFixture()

	item, err := svc.Create(7, ScheduleInput{EventName: "Stretch legs", StartTime: svc.Now()})
	require.NoError(t, err)
	if item.EventType != models.EventOther {
		t.Fatalf("event type = %q, want %q", item.EventType, models.EventOther)
	}
}

func TestScheduleUpcomingWindowHalfOpen(t *testing.T) {
	store, svc := scheduleFixture()
	base := svc.Now()

	seed := func(name string, at time.Time, completed bool) {
		require.NoError(t, store.Insert(&models.TimeSchedule{
			PassengerID: 7, EventName: name, EventType: models.EventOther,
			StartTime: at, IsCompleted: completed,
		}))
	}
	seed("at lower bound", base, false)
	seed("inside", base.Add(12*time.Hour), false)
	seed("at upper bound", base.Add(24*time.Hour), false)
	seed("done already", base.Add(time.Hour), true)
	seed("in the past", base.Add(-time.Hour), false)

	items, err := svc.UpcomingWindow(7, 24*time.Hour)
	require.NoError(t, err)

	var names []string
	for _, item := range items {
		names = append(names, item.EventName)
	}
	want := "at lower bound,inside"
	if got := strings.Join(names, ","); got != want {
		t.Fatalf("window contents = %q, want %q", got, want)
	}
}

func TestScheduleCompleteIdempotent(t *testing.T) {
	_, svc := scheduleFixture()

	item, err := svc.Create(7, ScheduleInput{EventName: "Security", EventType: models.EventSecurity, StartTime: svc.Now()})
	require.NoError(t, err)

	done, err := svc.Complete(item.ID, 7)
	require.NoError(t, err)
	if !done.IsCompleted {
		t.Fatalf("item not completed")
	}

	again, err := svc.Complete(item.ID, 7)
	require.NoError(t, err)
	if !again.IsCompleted {
		t.Fatalf("second complete must stay completed")
	}
}

func TestScheduleCompleteWrongPassenger(t *testing.T) {
	_, svc := scheduleFixture()

	item, err := svc.Create(7, ScheduleInput{EventName: "Security", StartTime: svc.Now()})
	require.NoError(t, err)

	if _, err := svc.Complete(item.ID, 8); !domain.IsNotFound(err) {
		t.Fatalf("err = %v, want not found", err)
	}
}
