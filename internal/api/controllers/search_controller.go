package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripforge/internal/models/request_models"
	"tripforge/internal/services"
	"tripforge/pkg/utils"
)

type SearchController struct {
	searchService services.SearchServiceInterface
}

func NewSearchController(searchService services.SearchServiceInterface) *SearchController {
	return &SearchController{
		searchService: searchService,
	}
}

func bindTripQuery(c *gin.Context) (request_models.TripQuery, bool) {
	var q request_models.TripQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Destination is required")
		return q, false
	}
	return q, true
}

func (s *SearchController) Flights(c *gin.Context) {
	q, ok := bindTripQuery(c)
	if !ok {
		return
	}

	candidates := s.searchService.SearchFlights(c.Request.Context(), sessionRefOf(c), q)
	if len(candidates) == 0 {
		utils.RespondSuccess(c, candidates, "No flights found")
		return
	}
	utils.RespondSuccess(c, candidates, "Flights fetched successfully")
}

func (s *SearchController) Hotels(c *gin.Context) {
	q, ok := bindTripQuery(c)
	if !ok {
		return
	}

	candidates := s.searchService.SearchHotels(c.Request.Context(), sessionRefOf(c), q)
	if len(candidates) == 0 {
		utils.RespondSuccess(c, candidates, "No hotels found")
		return
	}
	utils.RespondSuccess(c, candidates, "Hotels fetched successfully")
}

func (s *SearchController) Trains(c *gin.Context) {
	q, ok := bindTripQuery(c)
	if !ok {
		return
	}

	candidates := s.searchService.SearchTrains(c.Request.Context(), sessionRefOf(c), q)
	if len(candidates) == 0 {
		utils.RespondSuccess(c, candidates, "No trains found")
		return
	}
	utils.RespondSuccess(c, candidates, "Trains fetched successfully")
}

func (s *SearchController) Places(c *gin.Context) {
	q, ok := bindTripQuery(c)
	if !ok {
		return
	}

	candidates := s.searchService.SearchPlaces(c.Request.Context(), sessionRefOf(c), q)
	if len(candidates) == 0 {
		utils.RespondSuccess(c, candidates, "No places found")
		return
	}
	utils.RespondSuccess(c, candidates, "Places fetched successfully")
}
