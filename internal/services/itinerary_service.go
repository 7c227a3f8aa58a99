package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"tripforge/internal/models/response_models"
	"tripforge/internal/selection"
	"tripforge/pkg/utils"
)

type ItineraryServiceInterface interface {
	Generate(ctx context.Context, ref SessionRef) (*response_models.ItineraryResponse, error)
}

type ItineraryService struct {
	selectionService SelectionServiceInterface
	generator        utils.ItineraryGeneratorInterface
}

func NewItineraryService(
	selectionService SelectionServiceInterface,
	generator utils.ItineraryGeneratorInterface,
) ItineraryServiceInterface {
	return &ItineraryService{
		selectionService: selectionService,
		generator:        generator,
	}
}

// Generate validates the session's selection set and asks the generative
// service for a day-by-day itinerary. A set without at least one chosen
// place is rejected before any external call is made.
func (i *ItineraryService) Generate(ctx context.Context, ref SessionRef) (*response_models.ItineraryResponse, error) {
	items, err := i.selectionService.List(ctx, ref)
	if err != nil {
		return nil, err
	}

	if countPlaces(items) == 0 {
		return nil, utils.ErrNoPlacesSelected
	}

	prompt, err := BuildItineraryPrompt(items)
	if err != nil {
		return nil, err
	}

	text, err := i.generator.GenerateItinerary(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrItineraryFailed, err)
	}

	return &response_models.ItineraryResponse{
		Itinerary: text,
		Items:     items,
	}, nil
}

func countPlaces(items []selection.Item) int {
	count := 0
	for _, item := range items {
		if item.Category == selection.CategoryPlace {
			count++
		}
	}
	return count
}

// BuildItineraryPrompt serializes the chosen items, in stored order, into
// the instruction sent to the generative service. Trip dates and guest
// count come from the seeded travel-info item when present.
func BuildItineraryPrompt(items []selection.Item) (string, error) {
	block, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("You are a travel planner. Create a day-by-day itinerary from the travel selections below.\n")
	b.WriteString("Cover the chosen transport, lodging, and every selected place. Keep it concise but informative, formatted as markdown.\n")

	if details, ok := selection.TravelInfoOf(items); ok {
		fmt.Fprintf(&b, "\nTrip: %s to %s, %s through %s, %d guest(s).",
			details.Origin, details.Destination, details.StartDate, details.EndDate, details.Guests)
		if days := details.DayCount(); days > 0 {
			fmt.Fprintf(&b, " Plan exactly %d days.", days)
		}
		b.WriteString("\n")
	}

	b.WriteString("\nSelections (JSON, in the order they were chosen):\n")
	b.Write(block)
	b.WriteString("\n")
	return b.String(), nil
}
