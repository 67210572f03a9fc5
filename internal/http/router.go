package api

import (
	"log"
	stdhttp "net/http"

	intconfig "airport-backend/internal/config"
	h "airport-backend/internal/http/handlers"
	"airport-backend/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	h.SetJWTSecret(env.JWTSecret)

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS())

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)

		// Auth
		auth := api.Group("/auth")
		auth.POST("/login", h.Login)

		authed := api.Group("")
		authed.Use(middleware.Auth([]byte(env.JWTSecret)))

		// Locations (read-only map data)
		locations := authed.Group("/locations")
		locations.GET("", h.GetLocations)
		locations.GET("/by-type", h.GetLocationsByType)
		locations.GET("/nearby", h.GetNearbyLocations)
		locations.GET("/:id", h.GetLocationByID)

		// Navigations
		navigations := authed.Group("/navigations")
		navigations.GET("", h.GetNavigations)
		navigations.POST("", h.CreateNavigation)
		navigations.POST("/voice-query", h.VoiceQuery)
		navigations.GET("/:id", h.GetNavigationByID)
		navigations.POST("/:id/complete", h.CompleteNavigation)

		// Schedules
		schedules := authed.Group("/schedules")
		schedules.GET("", h.GetSchedules)
		schedules.POST("", h.CreateSchedule)
		schedules.GET("/today", h.GetTodaySchedules)
		schedules.GET("/upcoming", h.GetUpcomingSchedules)
		schedules.GET("/itinerary", h.GetItineraryPDF)
		schedules.POST("/:id/complete", h.CompleteSchedule)
	}

	return r
}
