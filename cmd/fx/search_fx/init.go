package search_fx

import (
	"go.uber.org/fx"

	"tripforge/internal/api/controllers"
	"tripforge/internal/providers"
	"tripforge/internal/services"
)

var Module = fx.Provide(
	providers.NewFlightsClientFromEnv,
	providers.NewHotelsClientFromEnv,
	providers.NewTrainsClientFromEnv,
	providers.NewPlacesClientFromEnv,
	provideSearchService,
	provideSearchController)

func provideSearchService(
	flights *providers.FlightsClient,
	hotels *providers.HotelsClient,
	trains *providers.TrainsClient,
	places *providers.PlacesClient,
	selectionService services.SelectionServiceInterface,
) services.SearchServiceInterface {
	return services.NewSearchService(flights, hotels, trains, places, selectionService)
}

func provideSearchController(searchService services.SearchServiceInterface) *controllers.SearchController {
	return controllers.NewSearchController(searchService)
}
