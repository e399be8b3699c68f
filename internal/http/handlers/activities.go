package handlers

import (
	"net/http"

	"tripplanner/internal/domain/models"
	"tripplanner/internal/http/middleware"
	"tripplanner/internal/rank"
	"tripplanner/internal/services"

	"github.com/gin-gonic/gin"
)

func activityService(c *gin.Context) services.ActivityService {
	return services.ActivityService{RequestID: middleware.GetRequestID(c)}
}

// BrowseActivities handles GET /api/activities.
// Query params: category (exact match, "all" disables), search (ignored
// under 2 characters), page (1-indexed), pageSize.
func BrowseActivities(c *gin.Context) {
	params := rank.Params{
		Category: c.Query("category"),
		Query:    c.Query("search"),
		Page:     queryInt(c, "page", 1),
		PageSize: queryInt(c, "pageSize", 0),
	}

	page, err := activityService(c).Browse(params)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// GetActivity handles GET /api/activities/:id.
func GetActivity(c *gin.Context) {
	id, ok := PathID(c, "id")
	if !ok {
		return
	}
	a, err := activityService(c).Get(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

// GetActivityReviews handles GET /api/activities/:id/reviews. Reviews
// are stored as the provider's raw JSON blob and decoded on read; a
// malformed blob yields an empty list rather than an error.
func GetActivityReviews(c *gin.Context) {
	id, ok := PathID(c, "id")
	if !ok {
		return
	}
	a, err := activityService(c).Get(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	reviews := models.DecodeReviews(a.ReviewsJSON)
	if reviews == nil {
		reviews = []models.Review{}
	}
	c.JSON(http.StatusOK, gin.H{"activityId": id, "reviews": reviews})
}

// CreateActivity handles POST /api/activities.
func CreateActivity(c *gin.Context) {
	var payload models.Activity
	if !BindJSONOrError(c, &payload) {
		return
	}
	created, err := activityService(c).Create(payload)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateActivity handles PUT /api/activities/:id.
func UpdateActivity(c *gin.Context) {
	id, ok := PathID(c, "id")
	if !ok {
		return
	}
	var payload models.Activity
	if !BindJSONOrError(c, &payload) {
		return
	}
	payload.ID = id
	updated, err := activityService(c).Update(payload)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteActivity handles DELETE /api/activities/:id.
func DeleteActivity(c *gin.Context) {
	id, ok := PathID(c, "id")
	if !ok {
		return
	}
	if err := activityService(c).Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
