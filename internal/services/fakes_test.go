package services

import (
	"sort"
	"time"

	"airport-backend/internal/domain"
	"airport-backend/internal/domain/models"
	"airport-backend/internal/repositories"
)

type fakeIndex struct {
	locations map[int64]models.Location
}

func (f *fakeIndex) GetActiveByID(id int64) (models.Location, error) {
	l, ok := f.locations[id]
	if !ok || !l.IsActive {
		return models.Location{}, domain.NotFoundError{Resource: "location"}
	}
	return l, nil
}

func (f *fakeIndex) GetAnyByID(id int64) (models.Location, error) {
	l, ok := f.locations[id]
	if !ok {
		return models.Location{}, domain.NotFoundError{Resource: "location"}
	}
	return l, nil
}

func (f *fakeIndex) ListByFloor(floor int, types []models.LocationType) ([]models.Location, error) {
	out := []models.Location{}
	for _, l := range f.locations {
		if !l.IsActive || l.Floor != floor {
			continue
		}
		if len(types) > 0 && !containsType(types, l.Type) {
			continue
		}
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func containsType(types []models.LocationType, t models.LocationType) bool {
	for _, candidate := range types {
		if candidate == t {
			return true
		}
	}
	return false
}

type fakeNavStore struct {
	nextID  int64
	records map[int64]models.NavigationRecord
}

func newFakeNavStore() *fakeNavStore {
	return &fakeNavStore{nextID: 1, records: map[int64]models.NavigationRecord{}}
}

func (f *fakeNavStore) Insert(rec *models.NavigationRecord) error {
	rec.ID = f.nextID
	f.nextID++
	stored := *rec
	stored.StartLocation = nil
	stored.EndLocation = nil
	f.records[rec.ID] = stored
	return nil
}

func (f *fakeNavStore) GetForPassenger(id, passengerID int64) (models.NavigationRecord, error) {
	rec, ok := f.records[id]
	if !ok || rec.PassengerID != passengerID {
		return models.NavigationRecord{}, domain.NotFoundError{Resource: "navigation record"}
	}
	return rec, nil
}

func (f *fakeNavStore) ListForPassenger(passengerID int64) ([]models.NavigationRecord, error) {
	out := []models.NavigationRecord{}
	for _, rec := range f.records {
		if rec.PassengerID == passengerID {
			out = append(out, rec)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (f *fakeNavStore) Complete(id, passengerID int64, at time.Time) (models.NavigationRecord, error) {
	rec, err := f.GetForPassenger(id, passengerID)
	if err != nil {
		return models.NavigationRecord{}, err
	}
	if rec.Completed {
		return models.NavigationRecord{}, domain.ConflictError{Resource: "navigation record", Msg: "already completed"}
	}
	rec.Completed = true
	rec.CompletedAt = &at
	f.records[id] = rec
	return rec, nil
}

type fakeScheduleStore struct {
	nextID int64
	items  []models.TimeSchedule
}

func (f *fakeScheduleStore) Insert(item *models.TimeSchedule) error {
	f.nextID++
	item.ID = f.nextID
	f.items = append(f.items, *item)
	return nil
}

func (f *fakeScheduleStore) GetForPassenger(id, passengerID int64) (models.TimeSchedule, error) {
	for _, item := range f.items {
		if item.ID == id && item.PassengerID == passengerID {
			return item, nil
		}
	}
	return models.TimeSchedule{}, domain.NotFoundError{Resource: "schedule"}
}

func (f *fakeScheduleStore) Upcoming(passengerID int64, from, to time.Time) ([]models.TimeSchedule, error) {
	out := []models.TimeSchedule{}
	for _, item := range f.items {
		if item.PassengerID != passengerID || item.IsCompleted {
			continue
		}
		if item.StartTime.Before(from) || !item.StartTime.Before(to) {
			continue
		}
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].StartTime.Equal(out[j].StartTime) {
			return out[i].StartTime.Before(out[j].StartTime)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (f *fakeScheduleStore) List(passengerID int64, filter repositories.ScheduleFilter) ([]models.TimeSchedule, error) {
	out := []models.TimeSchedule{}
	for _, item := range f.items {
		if item.PassengerID != passengerID {
			continue
		}
		if !filter.IncludeCompleted && item.IsCompleted {
			continue
		}
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime.Before(out[j].StartTime) })
	return out, nil
}

func (f *fakeScheduleStore) Complete(id, passengerID int64, at time.Time) (models.TimeSchedule, error) {
	for i, item := range f.items {
		if item.ID == id && item.PassengerID == passengerID {
			f.items[i].IsCompleted = true
			f.items[i].UpdatedAt = at
			return f.items[i], nil
		}
	}
	return models.TimeSchedule{}, domain.NotFoundError{Resource: "schedule"}
}
