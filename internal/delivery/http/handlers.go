package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/cardioscope/backend/internal/domain"
	"github.com/cardioscope/backend/internal/service"
)

// Handler contains all HTTP handlers
type Handler struct {
	encoder   *service.Encoder
	inference *service.InferenceService
	presenter *service.Presenter
}

// NewHandler creates a new handler
func NewHandler(encoder *service.Encoder, inference *service.InferenceService, presenter *service.Presenter) *Handler {
	return &Handler{
		encoder:   encoder,
		inference: inference,
		presenter: presenter,
	}
}

// HealthCheck returns service health status
func (h *Handler) HealthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":   "ok",
		"service":  "cardioscope-backend",
		"version":  "1.0.0",
		"features": domain.FeatureCount,
	})
}

// Index renders the prediction form page in its Idle state
func (h *Handler) Index(c *fiber.Ctx) error {
	return c.Render("views/index", fiber.Map{
		"Title":  "Heart Disease Prediction App",
		"Schema": domain.Schema,
	})
}

// GetSchema returns the thirteen input-control definitions
func (h *Handler) GetSchema(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success": true,
		"data":    domain.Schema,
		"count":   len(domain.Schema),
	})
}

// GetImportance returns the model's feature-importance scores, sorted descending
func (h *Handler) GetImportance(c *fiber.Ctx) error {
	data := h.presenter.Importance()
	return c.JSON(fiber.Map{
		"success": true,
		"data":    data,
		"count":   len(data),
	})
}

// Predict runs the full encode -> scale -> predict -> present pipeline
func (h *Handler) Predict(c *fiber.Ctx) error {
	var req domain.PredictRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	rec, err := h.encoder.Encode(req)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	result, err := h.inference.Predict(rec)
	if err != nil {
		// Shape mismatches surface verbatim - the caller needs to see why
		if errors.Is(err, domain.ErrShapeMismatch) {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to get prediction")
	}

	return c.JSON(domain.PredictionViewResponse{
		Data:    h.presenter.Present(rec, result),
		Success: true,
	})
}
