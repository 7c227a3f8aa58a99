package itinerary_fx

import (
	"fmt"
	"log"
	"os"
	"strings"

	"go.uber.org/fx"

	"tripforge/internal/api/controllers"
	"tripforge/internal/services"
	"tripforge/pkg/utils"
)

var Module = fx.Provide(
	provideItineraryGenerator,
	provideItineraryService,
	provideItineraryController)

// provideItineraryGenerator creates the generative-text client selected by
// AI_PROVIDER (gemini by default, or openai).
func provideItineraryGenerator() (utils.ItineraryGeneratorInterface, error) {
	provider := getEnvWithDefault("AI_PROVIDER", "gemini")

	switch strings.ToLower(provider) {
	case "gemini":
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			log.Fatal("GEMINI_API_KEY is required when using the Gemini provider")
		}
		return utils.NewGeminiItineraryClient(apiKey, os.Getenv("GEMINI_MODEL"))
	case "openai":
		apiKey := os.Getenv("OPENAI_API_KEY")
		if apiKey == "" {
			log.Fatal("OPENAI_API_KEY is required when using the OpenAI provider")
		}
		return utils.NewOpenAIItineraryClient(apiKey, os.Getenv("OPENAI_MODEL")), nil
	default:
		return nil, fmt.Errorf("unsupported AI provider: %s. Use 'gemini' or 'openai'", provider)
	}
}

func provideItineraryService(
	selectionService services.SelectionServiceInterface,
	generator utils.ItineraryGeneratorInterface,
) services.ItineraryServiceInterface {
	return services.NewItineraryService(selectionService, generator)
}

func provideItineraryController(itineraryService services.ItineraryServiceInterface) *controllers.ItineraryController {
	return controllers.NewItineraryController(itineraryService)
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
