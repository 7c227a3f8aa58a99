package selection_fx

import (
	"log"
	"os"
	"strings"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tripforge/internal/api/controllers"
	"tripforge/internal/repositories"
	"tripforge/internal/services"
)

var Module = fx.Provide(
	provideSelectionRepo, provideSelectionService, provideSelectionController)

// provideSelectionRepo picks the persistence backend with
// SELECTION_BACKEND: postgres (default), redis, or memory for local
// development without either.
func provideSelectionRepo(db *gorm.DB, redisClient *redis.Client) repositories.SelectionRepository {
	backend := strings.ToLower(os.Getenv("SELECTION_BACKEND"))
	switch backend {
	case "", "postgres":
		return repositories.NewSelectionRepository(db)
	case "redis":
		return repositories.NewSelectionCacheRepository(redisClient)
	case "memory":
		log.Println("Selection persistence running in-memory; selections will not survive restarts")
		return repositories.NewSelectionMemoryRepository()
	default:
		log.Fatalf("Unsupported SELECTION_BACKEND: %q (use postgres, redis, or memory)", backend)
		return nil
	}
}

func provideSelectionService(selectionRepo repositories.SelectionRepository) services.SelectionServiceInterface {
	return services.NewSelectionService(selectionRepo)
}

func provideSelectionController(selectionService services.SelectionServiceInterface) *controllers.SelectionController {
	return controllers.NewSelectionController(selectionService)
}
