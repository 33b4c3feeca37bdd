package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/cardioscope/backend/internal/domain"
)

// InferenceService runs a FeatureRecord through the fitted scaler and
// classifier. The two artifact handles are injected once at startup and
// treated as immutable; every call is a full recomputation with no caching.
type InferenceService struct {
	scaler     domain.Scaler
	classifier domain.Classifier
}

// NewInferenceService creates a new inference service.
func NewInferenceService(scaler domain.Scaler, classifier domain.Classifier) *InferenceService {
	return &InferenceService{
		scaler:     scaler,
		classifier: classifier,
	}
}

// Predict scales the record, predicts the class label and the class
// probabilities. Any failure surfaces - no partial results.
func (s *InferenceService) Predict(rec domain.FeatureRecord) (domain.PredictionResult, error) {
	scaled, err := s.scaler.Transform(rec)
	if err != nil {
		return domain.PredictionResult{}, fmt.Errorf("inference: scale input: %w", err)
	}

	label, err := s.classifier.Predict(scaled)
	if err != nil {
		return domain.PredictionResult{}, fmt.Errorf("inference: predict: %w", err)
	}

	proba, err := s.classifier.PredictProba(scaled)
	if err != nil {
		return domain.PredictionResult{}, fmt.Errorf("inference: predict probabilities: %w", err)
	}

	result := domain.PredictionResult{
		ID:            uuid.New(),
		Label:         label,
		Probabilities: proba,
		Timestamp:     time.Now(),
	}

	log.Info().
		Str("prediction_id", result.ID.String()).
		Int("label", label).
		Float64("p_disease", proba[1]).
		Msg("prediction served")

	return result, nil
}
