package handlers

import (
	"net/http"

	"tripplanner/internal/http/middleware"
	"tripplanner/internal/services"

	"github.com/gin-gonic/gin"
)

// GetTripItinerary handles GET /api/trips/:id/itinerary.
// The response is the full grouped timeline: valid day groups with
// conflict annotations, out-of-range items keyed by date, unrenderable
// entries, and the budget summary.
func GetTripItinerary(c *gin.Context) {
	tripID, ok := PathID(c, "id")
	if !ok {
		return
	}
	svc := services.ItineraryService{RequestID: middleware.GetRequestID(c)}
	itinerary, err := svc.BuildItinerary(tripID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, itinerary)
}

// GetTripItineraryPDF handles GET /api/trips/:id/itinerary/pdf.
func GetTripItineraryPDF(c *gin.Context) {
	tripID, ok := PathID(c, "id")
	if !ok {
		return
	}
	svc := services.DocsService{
		Itinerary: services.ItineraryService{RequestID: middleware.GetRequestID(c)},
		RequestID: middleware.GetRequestID(c),
	}
	pdfBytes, filename, err := svc.GenerateItineraryPDF(tripID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
