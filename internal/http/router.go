package api

import (
	"log"
	stdhttp "net/http"

	intconfig "tripplanner/internal/config"
	h "tripplanner/internal/http/handlers"
	"tripplanner/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	_ = env

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

		// Activity catalog & ranked browse view
		activities := api.Group("/activities")
		activities.GET("", h.BrowseActivities)
		activities.GET("/:id", h.GetActivity)
		activities.GET("/:id/reviews", h.GetActivityReviews)
		activities.POST("", h.CreateActivity)
		activities.PUT("/:id", h.UpdateActivity)
		activities.DELETE("/:id", h.DeleteActivity)

		// Trips
		trips := api.Group("/trips")
		trips.GET("", h.ListTrips)
		trips.GET("/:id", h.GetTrip)
		trips.POST("", h.CreateTrip)
		trips.PUT("/:id", h.UpdateTrip)
		trips.DELETE("/:id", h.DeleteTrip)

		// Per-trip schedule
		trips.GET("/:id/activities", h.ListTripSchedule)
		trips.POST("/:id/activities", h.CreateScheduleEntry)
		trips.PUT("/:id/activities/:entryId", h.UpdateScheduleEntry)
		trips.DELETE("/:id/activities/:entryId", h.DeleteScheduleEntry)

		// Grouped timeline & export
		trips.GET("/:id/itinerary", h.GetTripItinerary)
		trips.GET("/:id/itinerary/pdf", h.GetTripItineraryPDF)
	}

	return r
}
