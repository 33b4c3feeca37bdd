package artifact

import (
	"github.com/cardioscope/backend/internal/domain"
)

// MockScaler implements domain.Scaler for testing. It passes records
// through unchanged, or fails with Err when set.
type MockScaler struct {
	Err error
}

// NewMockScaler creates a new identity mock scaler.
func NewMockScaler() *MockScaler {
	return &MockScaler{}
}

// Transform returns the record unchanged.
func (m *MockScaler) Transform(rec domain.FeatureRecord) (domain.ScaledRecord, error) {
	if m.Err != nil {
		return domain.ScaledRecord{}, m.Err
	}
	return domain.ScaledRecord(rec), nil
}

// FeatureNames returns the canonical training order.
func (m *MockScaler) FeatureNames() []string {
	return domain.FeatureNames
}

// MockClassifier implements domain.Classifier for testing. It returns a
// fixed label and probability vector regardless of input.
type MockClassifier struct {
	Label       int
	Proba       [2]float64
	Importances []float64
	Err         error
}

// NewMockClassifier creates a mock with a fixed answer and a plausible
// importance vector.
func NewMockClassifier(label int, pDisease float64) *MockClassifier {
	return &MockClassifier{
		Label: label,
		Proba: [2]float64{1 - pDisease, pDisease},
		Importances: []float64{
			0.09, 0.02, 0.16, 0.06, 0.07, 0.007, 0.013,
			0.14, 0.05, 0.12, 0.03, 0.13, 0.11,
		},
	}
}

// Predict returns the fixed label.
func (m *MockClassifier) Predict(rec domain.ScaledRecord) (int, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	return m.Label, nil
}

// PredictProba returns the fixed probability vector.
func (m *MockClassifier) PredictProba(rec domain.ScaledRecord) ([2]float64, error) {
	if m.Err != nil {
		return [2]float64{}, m.Err
	}
	return m.Proba, nil
}

// FeatureImportances returns the fixed importance vector.
func (m *MockClassifier) FeatureImportances() []float64 {
	return m.Importances
}

// FeatureNames returns the canonical training order.
func (m *MockClassifier) FeatureNames() []string {
	return domain.FeatureNames
}
