package services

import (
	"fmt"
	"time"

	"airport-backend/internal/domain"
	"airport-backend/internal/domain/models"
	"airport-backend/internal/utils"
)

// QueryType is the enumerated intent of a voice query.
type QueryType string

const (
	QueryDirection         QueryType = "direction"
	QueryTimeToDestination QueryType = "time_to_destination"
	QuerySchedule          QueryType = "schedule"
	QueryNearby            QueryType = "nearby"
)

func (q QueryType) Valid() bool {
	switch q {
	case QueryDirection, QueryTimeToDestination, QuerySchedule, QueryNearby:
		return true
	}
	return false
}

// Voice queries that list nearby facilities speak at most this many.
const nearbySpokenLimit = 5

// Schedule guidance covers the next 24 hours.
const scheduleWindow = 24 * time.Hour

// VoiceQueryInput is the resolved request payload for a voice query. Either
// NavigationID or both location ids must be set.
type VoiceQueryInput struct {
	NavigationID      int64
	CurrentLocationID int64
	DestinationID     int64
	QueryType         QueryType
}

// VoiceResponse is what the speech layer consumes.
type VoiceResponse struct {
	NavigationID int64     `json:"navigationId"`
	QueryType    QueryType `json:"queryType"`
	VoiceText    string    `json:"voiceText"`
}

// VoiceService turns a query intent into guidance text. Every query is
// anchored on a navigation session: an existing one referenced by id, or a
// fresh one started from the provided location pair.
type VoiceService struct {
	Navigations NavigationService
	Facilities  FacilityService
	Schedules   ScheduleService
	RequestID   string
	Now         func() time.Time
}

func (s VoiceService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Answer resolves the session and dispatches on the query type. The dispatch
// is exhaustive over the enumerated intents; anything else is rejected up
// front, never silently defaulted.
func (s VoiceService) Answer(passengerID int64, in VoiceQueryInput) (VoiceResponse, error) {
	if !in.QueryType.Valid() {
		return VoiceResponse{}, domain.ValidationError{Field: "queryType", Msg: "unknown query type"}
	}

	rec, err := s.resolveSession(passengerID, in)
	if err != nil {
		return VoiceResponse{}, err
	}

	var text string
	switch in.QueryType {
	case QueryDirection:
		text = renderDirection(s.directionPrompt(rec))
	case QueryTimeToDestination:
		text = renderArrival(s.arrivalPrompt(rec))
	case QuerySchedule:
		text, err = s.scheduleText(passengerID)
	case QueryNearby:
		text, err = s.nearbyText(*rec.StartLocation)
	default:
		return VoiceResponse{}, domain.ValidationError{Field: "queryType", Msg: "unknown query type"}
	}
	if err != nil {
		return VoiceResponse{}, err
	}

	utils.LogEvent(s.RequestID, "voice", "answer",
		fmt.Sprintf("record_id=%d query_type=%s", rec.ID, in.QueryType))

	return VoiceResponse{
		NavigationID: rec.ID,
		QueryType:    in.QueryType,
		VoiceText:    text,
	}, nil
}

// resolveSession fetches the referenced session, or starts a new one when a
// location pair is given instead. A missing combination is the caller's
// error.
func (s VoiceService) resolveSession(passengerID int64, in VoiceQueryInput) (models.NavigationRecord, error) {
	switch {
	case in.NavigationID > 0:
		return s.Navigations.Get(in.NavigationID, passengerID)
	case in.CurrentLocationID > 0 && in.DestinationID > 0:
		return s.Navigations.Start(passengerID, in.CurrentLocationID, in.DestinationID)
	default:
		return models.NavigationRecord{}, domain.ValidationError{
			Msg: "provide navigationId, or both currentLocationId and destinationId",
		}
	}
}

func (s VoiceService) directionPrompt(rec models.NavigationRecord) directionPrompt {
	start := *rec.StartLocation
	end := *rec.EndLocation

	p := directionPrompt{
		StartName: start.Name,
		EndName:   end.Name,
		SameFloor: start.Floor == end.Floor,
		Floor:     start.Floor,
		EndFloor:  end.Floor,
		GoingUp:   end.Floor > start.Floor,
		Distance:  rec.Distance,
		Minutes:   rec.EstimatedTime,
	}
	if p.SameFloor {
		p.Heading = headingWord(start.X, start.Y, end.X, end.Y)
	}
	return p
}

func (s VoiceService) arrivalPrompt(rec models.NavigationRecord) arrivalPrompt {
	arrival := s.now().Add(time.Duration(rec.EstimatedTime) * time.Minute)
	return arrivalPrompt{
		StartName: rec.StartLocation.Name,
		EndName:   rec.EndLocation.Name,
		Distance:  rec.Distance,
		Minutes:   rec.EstimatedTime,
		Arrival:   utils.FormatClock(arrival),
	}
}

func (s VoiceService) scheduleText(passengerID int64) (string, error) {
	now := s.now()
	items, err := s.Schedules.Upcoming(passengerID, now, now.Add(scheduleWindow))
	if err != nil {
		return "", err
	}

	p := schedulePrompt{Lines: make([]scheduleLine, 0, len(items))}
	for _, item := range items {
		line := scheduleLine{
			Clock: utils.FormatClock(item.StartTime),
			Event: item.EventName,
		}
		if item.Location != nil {
			line.Location = item.Location.Name
		}
		p.Lines = append(p.Lines, line)
	}
	return renderSchedule(p), nil
}

func (s VoiceService) nearbyText(ref models.Location) (string, error) {
	matches, err := s.Facilities.QueryNearestK(ref, nearbySpokenLimit)
	if err != nil {
		return "", err
	}

	p := nearbyPrompt{RefName: ref.Name, Floor: ref.Floor, Lines: make([]nearbyLine, 0, len(matches))}
	for _, m := range matches {
		p.Lines = append(p.Lines, nearbyLine{
			Name:      m.Location.Name,
			Distance:  m.Distance,
			TypeLabel: m.Location.Type.Label(),
		})
	}
	return renderNearby(p), nil
}
