package handlers

import (
	"net/http"
	"strings"
	"time"

	"airport-backend/internal/domain/models"
	"airport-backend/internal/http/middleware"
	"airport-backend/internal/repositories"
	"airport-backend/internal/services"
	"airport-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

func scheduleService(c *gin.Context) services.ScheduleService {
	return services.ScheduleService{
		Schedules: repositories.ScheduleRepository{},
		RequestID: middleware.GetRequestID(c),
	}
}

// GET /api/schedules?flight_code=&date=&include_completed=
func GetSchedules(c *gin.Context) {
	passengerID, ok := CurrentPassengerID(c)
	if !ok {
		return
	}

	filter := repositories.ScheduleFilter{
		FlightCode:       strings.TrimSpace(c.Query("flight_code")),
		IncludeCompleted: strings.EqualFold(strings.TrimSpace(c.Query("include_completed")), "true"),
	}
	if raw := strings.TrimSpace(c.Query("date")); raw != "" {
		d, err := utils.ParseDate(raw)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD", err)
			return
		}
		filter.Date = &d
	}

	items, err := scheduleService(c).List(passengerID, filter)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

type scheduleRequest struct {
	FlightCode string     `json:"flightCode"`
	EventName  string     `json:"eventName"`
	EventType  string     `json:"eventType"`
	LocationID *int64     `json:"locationId"`
	StartTime  time.Time  `json:"startTime"`
	EndTime    *time.Time `json:"endTime"`
	Notes      string     `json:"notes"`
}

// POST /api/schedules
func CreateSchedule(c *gin.Context) {
	passengerID, ok := CurrentPassengerID(c)
	if !ok {
		return
	}

	var req scheduleRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	item, err := scheduleService(c).Create(passengerID, services.ScheduleInput{
		FlightCode: req.FlightCode,
		EventName:  req.EventName,
		EventType:  models.ScheduleEventType(req.EventType),
		LocationID: req.LocationID,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		Notes:      req.Notes,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// POST /api/schedules/:id/complete
func CompleteSchedule(c *gin.Context) {
	passengerID, ok := CurrentPassengerID(c)
	if !ok {
		return
	}
	id, ok := PathID(c)
	if !ok {
		return
	}

	item, err := scheduleService(c).Complete(id, passengerID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// GET /api/schedules/today
func GetTodaySchedules(c *gin.Context) {
	passengerID, ok := CurrentPassengerID(c)
	if !ok {
		return
	}

	items, err := scheduleService(c).Today(passengerID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// GET /api/schedules/upcoming (next 4 hours)
func GetUpcomingSchedules(c *gin.Context) {
	passengerID, ok := CurrentPassengerID(c)
	if !ok {
		return
	}

	items, err := scheduleService(c).UpcomingWindow(passengerID, 4*time.Hour)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// GET /api/schedules/itinerary
func GetItineraryPDF(c *gin.Context) {
	passengerID, ok := CurrentPassengerID(c)
	if !ok {
		return
	}

	svc := services.ItineraryService{
		Schedules: repositories.ScheduleRepository{},
		RequestID: middleware.GetRequestID(c),
	}
	pdf, filename, err := svc.GenerateItinerary(passengerID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
