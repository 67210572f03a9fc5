package models

import "time"

// ScheduleEventType enumerates the event categories of a passenger schedule.
type ScheduleEventType string

const (
	EventCheckIn  ScheduleEventType = "check_in"
	EventSecurity ScheduleEventType = "security"
	EventBoarding ScheduleEventType = "boarding"
	EventShopping ScheduleEventType = "shopping"
	EventDining   ScheduleEventType = "dining"
	EventResting  ScheduleEventType = "resting"
	EventOther    ScheduleEventType = "other"
)

var eventTypeLabels = map[ScheduleEventType]string{
	EventCheckIn:  "check-in",
	EventSecurity: "security screening",
	EventBoarding: "boarding",
	EventShopping: "shopping",
	EventDining:   "dining",
	EventResting:  "rest",
	EventOther:    "other",
}

func (t ScheduleEventType) Valid() bool {
	_, ok := eventTypeLabels[t]
	return ok
}

func (t ScheduleEventType) Label() string {
	if l, ok := eventTypeLabels[t]; ok {
		return l
	}
	return eventTypeLabels[EventOther]
}

// TimeSchedule mirrors the time_schedules table.
type TimeSchedule struct {
	ID          int64             `json:"id"`
	PassengerID int64             `json:"passengerId"`
	FlightCode  string            `json:"flightCode,omitempty"`
	EventName   string            `json:"eventName"`
	EventType   ScheduleEventType `json:"eventType"`
	LocationID  *int64            `json:"locationId"`
	StartTime   time.Time         `json:"startTime"`
	EndTime     *time.Time        `json:"endTime"`
	Notes       string            `json:"notes,omitempty"`
	IsCompleted bool              `json:"isCompleted"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`

	Location *Location `json:"location,omitempty"`
}
