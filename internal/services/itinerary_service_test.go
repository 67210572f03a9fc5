package services

import (
	"bytes"
	"testing"
	"time"

	"airport-backend/internal/domain/models"
)

func TestGenerateItinerary(t *testing.T) {
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.Local)
	gate := models.Location{ID: 1, Name: "Gate A1", Floor: 2}

	svc := ItineraryService{
		Now: func() time.Time { return now },
		Loader: func(passengerID int64) ([]models.TimeSchedule, error) {
			if passengerID != 7 {
				t.Fatalf("unexpected passenger id %d", passengerID)
			}
			return []models.TimeSchedule{
				{EventName: "Boarding", EventType: models.EventBoarding, FlightCode: "NH204",
					StartTime: now.Add(3 * time.Hour), Location: &gate},
				{EventName: "Lunch", EventType: models.EventDining, StartTime: now.Add(time.Hour)},
			}, nil
		},
	}

	data, filename, err := svc.GenerateItinerary(7)
	if err != nil {
		t.Fatalf("GenerateItinerary: %v", err)
	}
	if filename != "itinerary-2026-03-14.pdf" {
		t.Fatalf("filename = %q", filename)
	}
	if len(data) == 0 {
		t.Fatalf("empty pdf output")
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatalf("output does not look like a pdf: %q", data[:8])
	}
}

func TestGenerateItineraryEmpty(t *testing.T) {
	svc := ItineraryService{
		Now: func() time.Time { return time.Date(2026, 3, 14, 10, 0, 0, 0, time.Local) },
		Loader: func(int64) ([]models.TimeSchedule, error) {
			return nil, nil
		},
	}

	data, _, err := svc.GenerateItinerary(7)
	if err != nil {
		t.Fatalf("GenerateItinerary: %v", err)
	}
	if len(data) == 0 {
		t.Fatalf("empty pdf output")
	}
}
