package services

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"airport-backend/internal/domain/models"
	"airport-backend/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// ItineraryService renders a passenger's next 24 hours of schedule items as
// a printable PDF.
type ItineraryService struct {
	Schedules ScheduleStore
	RequestID string
	Now       func() time.Time
	Loader    func(int64) ([]models.TimeSchedule, error)
}

func (s ItineraryService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// GenerateItinerary builds the PDF and a download filename.
func (s ItineraryService) GenerateItinerary(passengerID int64) ([]byte, string, error) {
	items, err := s.loadItems(passengerID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "itinerary", "generate",
		fmt.Sprintf("passenger_id=%d items=%d", passengerID, len(items)))
	return buildItineraryPDF(s.now(), items)
}

func (s ItineraryService) loadItems(passengerID int64) ([]models.TimeSchedule, error) {
	if s.Loader != nil {
		return s.Loader(passengerID)
	}
	now := s.now()
	return s.Schedules.Upcoming(passengerID, now, now.Add(scheduleWindow))
}

func buildItineraryPDF(now time.Time, items []models.TimeSchedule) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Itinerary", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "TRAVEL ITINERARY")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 7, fmt.Sprintf("Generated: %s %s", utils.FormatDate(now), utils.FormatClock(now)))
	pdf.Ln(10)

	if len(items) == 0 {
		pdf.SetFont("Helvetica", "I", 12)
		pdf.MultiCell(0, 7, "No scheduled events in the next 24 hours.", "", "", false)
	} else {
		pdf.SetFont("Helvetica", "", 12)
		for i, item := range items {
			loc := "unspecified location"
			if item.Location != nil {
				loc = fmt.Sprintf("%s (floor %d)", item.Location.Name, item.Location.Floor)
			}
			line := fmt.Sprintf("%d. %s  %s - %s, at %s", i+1,
				utils.FormatClock(item.StartTime), item.EventName, item.EventType.Label(), loc)
			if strings.TrimSpace(item.FlightCode) != "" {
				line += fmt.Sprintf(" [flight %s]", item.FlightCode)
			}
			pdf.MultiCell(0, 7, line, "", "", false)
			pdf.Ln(1)
		}
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Note: times are local to the airport. Completed events are not listed.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("itinerary-%s.pdf", utils.FormatDate(now))
	return buf.Bytes(), filename, nil
}
