package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/christofschnelle/leaflet-demo/internal/service"
)

// SetupRoutes configures all HTTP routes
func SetupRoutes(app *fiber.App, mapSvc *service.MapService) {
	handler := NewHandler(mapSvc)

	// Health check
	app.Get("/health", handler.HealthCheck)

	// API v1 routes
	api := app.Group("/api/v1")
	{
		sessions := api.Group("/sessions")

		sessions.Post("/", handler.CreateSession)
		sessions.Delete("/:id", handler.DeleteSession)

		// View controller events
		sessions.Get("/:id/view", handler.GetView)
		sessions.Post("/:id/click", handler.MapClick)
		sessions.Post("/:id/location", handler.LocationFound)
		sessions.Post("/:id/clear", handler.ClearPoints)
		sessions.Patch("/:id/toggles", handler.UpdateToggles)

		// Direct overlay reads
		sessions.Get("/:id/weather", handler.GetWeather)
		sessions.Get("/:id/traffic", handler.GetTraffic)
	}
}
