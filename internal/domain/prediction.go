package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrArtifactLoad marks a model or scaler artifact that could not be loaded.
// Fatal at startup - the process cannot serve any request without both artifacts.
var ErrArtifactLoad = errors.New("artifact load failed")

// ErrShapeMismatch marks an input whose feature count does not match what the
// artifact was fitted on. Fatal to the current request only.
var ErrShapeMismatch = errors.New("feature shape mismatch")

// PredictRequest represents the raw form values for one prediction.
// Fields are pointers so absent fields can be told apart from zeroes.
type PredictRequest struct {
	Age      *float64 `json:"age"`
	Sex      *string  `json:"sex"`
	CP       *float64 `json:"cp"`
	Trestbps *float64 `json:"trestbps"`
	Chol     *float64 `json:"chol"`
	FBS      *string  `json:"fbs"`
	Restecg  *float64 `json:"restecg"`
	Thalach  *float64 `json:"thalach"`
	Exang    *string  `json:"exang"`
	Oldpeak  *float64 `json:"oldpeak"`
	Slope    *float64 `json:"slope"`
	CA       *float64 `json:"ca"`
	Thal     *float64 `json:"thal"`
}

// PredictionResult is the classifier's answer for one FeatureRecord.
// Probabilities[0] is the no-disease class, Probabilities[1] the disease class.
type PredictionResult struct {
	ID            uuid.UUID  `json:"id"`
	Label         int        `json:"label"`
	Probabilities [2]float64 `json:"probabilities"`
	Timestamp     time.Time  `json:"timestamp"`
}

// Scaler is a pre-fitted transform normalizing feature magnitudes to the
// training-time distribution.
type Scaler interface {
	// Transform applies the learned per-feature centering and scaling.
	Transform(rec FeatureRecord) (ScaledRecord, error)

	// FeatureNames returns the feature order the scaler was fitted on.
	FeatureNames() []string
}

// Classifier is a pre-trained binary heart-disease classifier.
// Implementations are immutable for the process lifetime.
type Classifier interface {
	// Predict returns the class label (0 or 1) for a scaled record.
	Predict(rec ScaledRecord) (int, error)

	// PredictProba returns the two-class probability distribution.
	PredictProba(rec ScaledRecord) ([2]float64, error)

	// FeatureImportances returns the static per-feature importance scores,
	// aligned to FeatureNames.
	FeatureImportances() []float64

	// FeatureNames returns the feature order the classifier was trained on.
	FeatureNames() []string
}
