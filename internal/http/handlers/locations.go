package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"airport-backend/internal/domain/models"
	"airport-backend/internal/repositories"
	"airport-backend/internal/services"

	"github.com/gin-gonic/gin"
)

func locationRepo() repositories.LocationRepository {
	return repositories.LocationRepository{}
}

// GET /api/locations
func GetLocations(c *gin.Context) {
	locations, err := locationRepo().ListActive()
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	out := make([]models.LocationSummary, 0, len(locations))
	for _, l := range locations {
		out = append(out, l.Summary())
	}
	c.JSON(http.StatusOK, out)
}

// GET /api/locations/:id
func GetLocationByID(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}

	location, err := locationRepo().GetActiveByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, location)
}

// GET /api/locations/by-type?type=&floor=
func GetLocationsByType(c *gin.Context) {
	filter := repositories.LocationFilter{}

	if t := strings.TrimSpace(c.Query("type")); t != "" {
		filter.Types = []models.LocationType{models.LocationType(t)}
	}
	if f := strings.TrimSpace(c.Query("floor")); f != "" {
		floor, err := strconv.Atoi(f)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "invalid floor", err)
			return
		}
		filter.Floor = floor
	}

	locations, err := locationRepo().List(filter)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	out := make([]models.LocationSummary, 0, len(locations))
	for _, l := range locations {
		out = append(out, l.Summary())
	}
	c.JSON(http.StatusOK, out)
}

// GET /api/locations/nearby?x=&y=&floor=&radius=&types=
func GetNearbyLocations(c *gin.Context) {
	x, ok := queryFloat(c, "x", 0)
	if !ok {
		return
	}
	y, ok := queryFloat(c, "y", 0)
	if !ok {
		return
	}
	radius, ok := queryFloat(c, "radius", 100)
	if !ok {
		return
	}
	floor, ok := queryInt(c, "floor", 1)
	if !ok {
		return
	}

	var types []models.LocationType
	for _, t := range c.QueryArray("types") {
		t = strings.TrimSpace(t)
		if t != "" {
			types = append(types, models.LocationType(t))
		}
	}

	svc := services.FacilityService{Locations: locationRepo()}
	matches, err := svc.QueryRadius(floor, x, y, radius, types)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, matches)
}

func queryFloat(c *gin.Context, name string, fallback float64) (float64, bool) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return fallback, true
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid "+name, err)
		return 0, false
	}
	return v, true
}

func queryInt(c *gin.Context, name string, fallback int) (int, bool) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return fallback, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid "+name, err)
		return 0, false
	}
	return v, true
}
