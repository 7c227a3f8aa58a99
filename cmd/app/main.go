package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"tripforge/cmd/fx/account_fx"
	"tripforge/cmd/fx/cache_fx"
	"tripforge/cmd/fx/db_fx"
	"tripforge/cmd/fx/itinerary_fx"
	"tripforge/cmd/fx/search_fx"
	"tripforge/cmd/fx/selection_fx"
	"tripforge/internal/api/controllers"
	"tripforge/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on process environment")
	}

	app := fx.New(
		db_fx.Module,
		cache_fx.Module,
		account_fx.Module,
		selection_fx.Module,
		search_fx.Module,
		itinerary_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	selectionController *controllers.SelectionController,
	searchController *controllers.SearchController,
	itineraryController *controllers.ItineraryController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, accountController, selectionController, searchController, itineraryController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	selectionController *controllers.SelectionController,
	searchController *controllers.SearchController,
	itineraryController *controllers.ItineraryController) {

	accountsGroup := r.Group("/accounts")
	accountsGroup.POST("/signup", accountController.SignUp)
	accountsGroup.POST("/login", accountController.Login)

	// Planning routes work for signed-in users (persisted selections) and
	// anonymous sessions carrying an X-Session-Key header.
	planningGroup := r.Group("/")
	planningGroup.Use(middleware.SessionContext())

	selectionGroup := planningGroup.Group("/selection")
	selectionGroup.POST("/session", selectionController.SeedSession)
	selectionGroup.DELETE("/session", selectionController.EndSession)
	selectionGroup.POST("/toggle", selectionController.Toggle)
	selectionGroup.GET("", selectionController.List)

	searchGroup := planningGroup.Group("/search")
	searchGroup.GET("/flights", searchController.Flights)
	searchGroup.GET("/hotels", searchController.Hotels)
	searchGroup.GET("/trains", searchController.Trains)
	searchGroup.GET("/places", searchController.Places)

	itineraryGroup := planningGroup.Group("/itinerary")
	itineraryGroup.POST("/generate", itineraryController.Generate)
}
