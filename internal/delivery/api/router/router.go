// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"whatwashere/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	StoryHandler     *handler.StoryHandler
	NarrationHandler *handler.NarrationHandler
	MemoryHandler    *handler.MemoryHandler
	PlaceHandler     *handler.PlaceHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	storyHandler     *handler.StoryHandler
	narrationHandler *handler.NarrationHandler
	memoryHandler    *handler.MemoryHandler
	placeHandler     *handler.PlaceHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		storyHandler:     params.StoryHandler,
		narrationHandler: params.NarrationHandler,
		memoryHandler:    params.MemoryHandler,
		placeHandler:     params.PlaceHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Enrichment
	api.POST("/expand-story", r.storyHandler.ExpandStory)
	api.POST("/summarize-story", r.storyHandler.SummarizeStory)
	api.POST("/narrate", r.narrationHandler.Narrate)

	// Photo memory document
	api.GET("/memories", r.memoryHandler.GetMemories)
	api.POST("/memories", r.memoryHandler.ReplaceMemories)

	placesGroup := api.Group("/places")
	{
		placesGroup.GET("", r.placeHandler.ListPlaces)
		placesGroup.POST("", r.placeHandler.CreatePlace)
		placesGroup.GET("/geojson", r.placeHandler.GeoJSON)
		placesGroup.GET("/:id", r.placeHandler.GetPlace)
		placesGroup.GET("/:id/qr", r.placeHandler.PlaceQR)
	}
}
