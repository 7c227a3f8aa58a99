package response_models

import "tripforge/internal/selection"

type SelectionResponse struct {
	Items []selection.Item `json:"items"`
}

type ItineraryResponse struct {
	Itinerary string           `json:"itinerary"`
	Items     []selection.Item `json:"items"`
}
