package controllers

import (
	"github.com/gin-gonic/gin"

	"tripforge/internal/services"
	"tripforge/pkg/utils"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
}

func NewItineraryController(itineraryService services.ItineraryServiceInterface) *ItineraryController {
	return &ItineraryController{
		itineraryService: itineraryService,
	}
}

// Generate is the finalize action: it validates the session's selection
// set and returns the generated day-by-day itinerary. Clients retry by
// calling again; there is no automatic retry.
func (i *ItineraryController) Generate(c *gin.Context) {
	result, err := i.itineraryService.Generate(c.Request.Context(), sessionRefOf(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Itinerary generated successfully")
}
