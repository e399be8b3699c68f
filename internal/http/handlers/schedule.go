package handlers

import (
	"net/http"

	"tripplanner/internal/domain/models"
	"tripplanner/internal/http/middleware"
	"tripplanner/internal/services"

	"github.com/gin-gonic/gin"
)

func scheduleService(c *gin.Context) services.ScheduleService {
	return services.ScheduleService{RequestID: middleware.GetRequestID(c)}
}

// ListTripSchedule handles GET /api/trips/:id/activities.
func ListTripSchedule(c *gin.Context) {
	tripID, ok := PathID(c, "id")
	if !ok {
		return
	}
	items, err := scheduleService(c).ListByTrip(tripID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// CreateScheduleEntry handles POST /api/trips/:id/activities.
func CreateScheduleEntry(c *gin.Context) {
	tripID, ok := PathID(c, "id")
	if !ok {
		return
	}
	var payload models.TripActivity
	if !BindJSONOrError(c, &payload) {
		return
	}
	payload.TripID = tripID
	created, err := scheduleService(c).Create(payload)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateScheduleEntry handles PUT /api/trips/:id/activities/:entryId.
func UpdateScheduleEntry(c *gin.Context) {
	tripID, ok := PathID(c, "id")
	if !ok {
		return
	}
	entryID, ok := PathID(c, "entryId")
	if !ok {
		return
	}
	var payload models.TripActivity
	if !BindJSONOrError(c, &payload) {
		return
	}
	payload.TripID = tripID
	payload.ID = entryID
	updated, err := scheduleService(c).Update(payload)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteScheduleEntry handles DELETE /api/trips/:id/activities/:entryId.
func DeleteScheduleEntry(c *gin.Context) {
	tripID, ok := PathID(c, "id")
	if !ok {
		return
	}
	entryID, ok := PathID(c, "entryId")
	if !ok {
		return
	}
	if err := scheduleService(c).Delete(tripID, entryID); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
