package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripforge/internal/models/request_models"
	"tripforge/internal/models/response_models"
	"tripforge/internal/selection"
	"tripforge/internal/services"
	"tripforge/pkg/utils"
)

type SelectionController struct {
	selectionService services.SelectionServiceInterface
}

func NewSelectionController(selectionService services.SelectionServiceInterface) *SelectionController {
	return &SelectionController{
		selectionService: selectionService,
	}
}

// sessionRefOf reads the identity that the SessionContext middleware
// resolved for this request.
func sessionRefOf(c *gin.Context) services.SessionRef {
	return services.SessionRef{
		Key:           c.GetString("session_key"),
		Authenticated: c.GetBool("session_authenticated"),
	}
}

// SeedSession starts a planning session from the trip-search form: the
// parameters become the travel_info item stored first in the selection.
func (s *SelectionController) SeedSession(c *gin.Context) {
	var req request_models.SeedSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Origin, destination, dates and guest count are required")
		return
	}

	items, err := s.selectionService.SeedSession(c.Request.Context(), sessionRefOf(c), selection.TravelInfoDetails{
		Origin:      req.Origin,
		Destination: req.Destination,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Guests:      req.Guests,
	})
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.SelectionResponse{Items: items}, "Planning session started")
}

// Toggle flips membership of one candidate in the session's selection set.
func (s *SelectionController) Toggle(c *gin.Context) {
	var req request_models.ToggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Title and category are required")
		return
	}

	category, err := selection.ParseCategory(req.Category)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	items, err := s.selectionService.Toggle(c.Request.Context(), sessionRefOf(c), selection.Item{
		Title:    req.Title,
		Category: category,
		Details:  req.Details,
	})
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.SelectionResponse{Items: items}, "Selection updated")
}

func (s *SelectionController) List(c *gin.Context) {
	items, err := s.selectionService.List(c.Request.Context(), sessionRefOf(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.SelectionResponse{Items: items}, "Current selection")
}

func (s *SelectionController) EndSession(c *gin.Context) {
	ref := sessionRefOf(c)
	if ref.Key == "" {
		utils.HandleServiceError(c, utils.ErrSessionRequired)
		return
	}

	s.selectionService.EndSession(ref)
	utils.RespondSuccess(c, nil, "Planning session ended")
}
