package services

import (
	"context"
	"log"

	"tripforge/internal/models/request_models"
	"tripforge/internal/models/response_models"
	"tripforge/internal/providers"
	"tripforge/internal/selection"
)

// SearchServiceInterface fronts the external search providers. Provider
// failures never propagate: a failed or empty fetch yields an empty
// candidate list, and each provider degrades independently. Candidates
// are annotated with their current membership in the session's selection
// set so the UI can render its add/remove controls.
type SearchServiceInterface interface {
	SearchFlights(ctx context.Context, ref SessionRef, q request_models.TripQuery) []response_models.FlightCandidate
	SearchHotels(ctx context.Context, ref SessionRef, q request_models.TripQuery) []response_models.HotelCandidate
	SearchTrains(ctx context.Context, ref SessionRef, q request_models.TripQuery) []response_models.TrainCandidate
	SearchPlaces(ctx context.Context, ref SessionRef, q request_models.TripQuery) []response_models.PlaceCandidate
}

type SearchService struct {
	flights          *providers.FlightsClient
	hotels           *providers.HotelsClient
	trains           *providers.TrainsClient
	places           *providers.PlacesClient
	selectionService SelectionServiceInterface
}

func NewSearchService(
	flights *providers.FlightsClient,
	hotels *providers.HotelsClient,
	trains *providers.TrainsClient,
	places *providers.PlacesClient,
	selectionService SelectionServiceInterface,
) SearchServiceInterface {
	return &SearchService{
		flights:          flights,
		hotels:           hotels,
		trains:           trains,
		places:           places,
		selectionService: selectionService,
	}
}

func (s *SearchService) SearchFlights(ctx context.Context, ref SessionRef, q request_models.TripQuery) []response_models.FlightCandidate {
	candidates, err := s.flights.Search(ctx, q)
	if err != nil {
		log.Printf("Flight search failed: %v", err)
		return nil
	}
	for i := range candidates {
		candidates[i].Selected = s.selectionService.Has(ctx, ref, candidates[i].FlightNumber, selection.CategoryFlight)
	}
	return candidates
}

func (s *SearchService) SearchHotels(ctx context.Context, ref SessionRef, q request_models.TripQuery) []response_models.HotelCandidate {
	candidates, err := s.hotels.Search(ctx, q)
	if err != nil {
		log.Printf("Hotel search failed: %v", err)
		return nil
	}
	for i := range candidates {
		candidates[i].Selected = s.selectionService.Has(ctx, ref, candidates[i].Name, selection.CategoryHotel)
	}
	return candidates
}

func (s *SearchService) SearchTrains(ctx context.Context, ref SessionRef, q request_models.TripQuery) []response_models.TrainCandidate {
	candidates, err := s.trains.Search(ctx, q)
	if err != nil {
		log.Printf("Train search failed: %v", err)
		return nil
	}
	for i := range candidates {
		candidates[i].Selected = s.selectionService.Has(ctx, ref, candidates[i].Title, selection.CategoryTrain)
	}
	return candidates
}

func (s *SearchService) SearchPlaces(ctx context.Context, ref SessionRef, q request_models.TripQuery) []response_models.PlaceCandidate {
	candidates, err := s.places.Search(ctx, q)
	if err != nil {
		log.Printf("Places search failed: %v", err)
		return nil
	}
	for i := range candidates {
		candidates[i].Selected = s.selectionService.Has(ctx, ref, candidates[i].Name, selection.CategoryPlace)
	}
	return candidates
}
