package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"planora/internal/models/request_models"
	"planora/internal/services"
	"planora/pkg/utils"
)

type ItineraryController struct {
	plannerService services.PlannerServiceInterface
}

func NewItineraryController(plannerService services.PlannerServiceInterface) *ItineraryController {
	return &ItineraryController{plannerService: plannerService}
}

// GenerateItineraryHandler responds with the exact shapes the trip form
// consumes: {"itinerary": {...}} on success, {"error", "fieldErrors"} on
// validation failure. AI-layer failures never surface here; the service
// falls back internally.
func (ic *ItineraryController) GenerateItineraryHandler(c *gin.Context) {
	var req request_models.ItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Request body must be valid JSON."})
		return
	}

	itinerary, err := ic.plannerService.GenerateItinerary(c.Request.Context(), req)
	if err != nil {
		var fieldErrs utils.FieldErrors
		if errors.As(err, &fieldErrs) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":       "Invalid request body",
				"fieldErrors": fieldErrs,
			})
			return
		}
		log.Printf("Itinerary generation failed unexpectedly: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate itinerary"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"itinerary": itinerary})
}
