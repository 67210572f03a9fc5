package handlers

import (
	"net/http"

	"airport-backend/internal/http/middleware"
	"airport-backend/internal/repositories"
	"airport-backend/internal/services"

	"github.com/gin-gonic/gin"
)

func navigationService(c *gin.Context) services.NavigationService {
	return services.NavigationService{
		Locations: repositories.LocationRepository{},
		Records:   repositories.NavigationRepository{},
		RequestID: middleware.GetRequestID(c),
	}
}

func voiceService(c *gin.Context) services.VoiceService {
	nav := navigationService(c)
	return services.VoiceService{
		Navigations: nav,
		Facilities:  services.FacilityService{Locations: nav.Locations},
		Schedules:   services.ScheduleService{Schedules: repositories.ScheduleRepository{}},
		RequestID:   middleware.GetRequestID(c),
	}
}

type navigateRequest struct {
	CurrentLocationID int64 `json:"currentLocationId"`
	DestinationID     int64 `json:"destinationId"`
}

// GET /api/navigations
func GetNavigations(c *gin.Context) {
	passengerID, ok := CurrentPassengerID(c)
	if !ok {
		return
	}

	records, err := navigationService(c).History(passengerID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

// POST /api/navigations
func CreateNavigation(c *gin.Context) {
	passengerID, ok := CurrentPassengerID(c)
	if !ok {
		return
	}

	var req navigateRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	rec, err := navigationService(c).Start(passengerID, req.CurrentLocationID, req.DestinationID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// GET /api/navigations/:id
func GetNavigationByID(c *gin.Context) {
	passengerID, ok := CurrentPassengerID(c)
	if !ok {
		return
	}
	id, ok := PathID(c)
	if !ok {
		return
	}

	rec, err := navigationService(c).Get(id, passengerID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// POST /api/navigations/:id/complete
func CompleteNavigation(c *gin.Context) {
	passengerID, ok := CurrentPassengerID(c)
	if !ok {
		return
	}
	id, ok := PathID(c)
	if !ok {
		return
	}

	rec, err := navigationService(c).Complete(id, passengerID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

type voiceQueryRequest struct {
	NavigationID      int64  `json:"navigationId"`
	CurrentLocationID int64  `json:"currentLocationId"`
	DestinationID     int64  `json:"destinationId"`
	QueryType         string `json:"queryType"`
}

// POST /api/navigations/voice-query
func VoiceQuery(c *gin.Context) {
	passengerID, ok := CurrentPassengerID(c)
	if !ok {
		return
	}

	var req voiceQueryRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	resp, err := voiceService(c).Answer(passengerID, services.VoiceQueryInput{
		NavigationID:      req.NavigationID,
		CurrentLocationID: req.CurrentLocationID,
		DestinationID:     req.DestinationID,
		QueryType:         services.QueryType(req.QueryType),
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
