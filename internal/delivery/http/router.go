package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cardioscope/backend/internal/service"
)

// SetupRoutes configures all HTTP routes
func SetupRoutes(app *fiber.App, encoder *service.Encoder, inference *service.InferenceService, presenter *service.Presenter) {
	handler := NewHandler(encoder, inference, presenter)

	// Form page and health check
	app.Get("/", handler.Index)
	app.Get("/health", handler.HealthCheck)

	// API v1 routes
	api := app.Group("/api/v1")
	{
		// Prediction pipeline
		api.Post("/predict", handler.Predict)

		// Static model/form metadata
		api.Get("/schema", handler.GetSchema)
		api.Get("/importance", handler.GetImportance)
	}
}
