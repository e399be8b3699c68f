package handlers

import (
	"net/http"

	"tripplanner/internal/domain/models"
	"tripplanner/internal/http/middleware"
	"tripplanner/internal/services"

	"github.com/gin-gonic/gin"
)

func tripService(c *gin.Context) services.TripService {
	return services.TripService{RequestID: middleware.GetRequestID(c)}
}

// ListTrips handles GET /api/trips.
func ListTrips(c *gin.Context) {
	trips, err := tripService(c).List()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, trips)
}

// GetTrip handles GET /api/trips/:id.
func GetTrip(c *gin.Context) {
	id, ok := PathID(c, "id")
	if !ok {
		return
	}
	trip, err := tripService(c).Get(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, trip)
}

// CreateTrip handles POST /api/trips.
func CreateTrip(c *gin.Context) {
	var payload models.Trip
	if !BindJSONOrError(c, &payload) {
		return
	}
	created, err := tripService(c).Create(payload)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateTrip handles PUT /api/trips/:id.
func UpdateTrip(c *gin.Context) {
	id, ok := PathID(c, "id")
	if !ok {
		return
	}
	var payload models.Trip
	if !BindJSONOrError(c, &payload) {
		return
	}
	payload.ID = id
	updated, err := tripService(c).Update(payload)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteTrip handles DELETE /api/trips/:id.
func DeleteTrip(c *gin.Context) {
	id, ok := PathID(c, "id")
	if !ok {
		return
	}
	if err := tripService(c).Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
