package service

import (
	"github.com/cardioscope/backend/internal/domain"
)

// Classifier and Scaler are re-exported from domain for convenience
type (
	Classifier = domain.Classifier
	Scaler     = domain.Scaler
)
