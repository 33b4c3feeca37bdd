package artifact

import (
	"fmt"

	"github.com/cardioscope/backend/internal/domain"
)

// ScalerDoc is the on-disk document of a fitted standard scaler.
type ScalerDoc struct {
	FeatureNames []string  `json:"feature_names"`
	Mean         []float64 `json:"mean"`
	Scale        []float64 `json:"scale"`
}

// StandardScaler implements domain.Scaler with learned per-feature
// centering and scaling: (x - mean) / scale.
type StandardScaler struct {
	names []string
	mean  []float64
	scale []float64
}

// NewScaler validates a scaler document and builds a transform from it.
func NewScaler(doc ScalerDoc) (*StandardScaler, error) {
	if len(doc.FeatureNames) == 0 {
		return nil, fmt.Errorf("scaler: no feature names: %w", domain.ErrArtifactLoad)
	}
	if len(doc.Mean) != len(doc.FeatureNames) || len(doc.Scale) != len(doc.FeatureNames) {
		return nil, fmt.Errorf("scaler: mean/scale length %d/%d for %d features: %w",
			len(doc.Mean), len(doc.Scale), len(doc.FeatureNames), domain.ErrArtifactLoad)
	}
	for i, s := range doc.Scale {
		if s == 0 {
			return nil, fmt.Errorf("scaler: zero scale for feature %q: %w", doc.FeatureNames[i], domain.ErrArtifactLoad)
		}
	}

	return &StandardScaler{
		names: doc.FeatureNames,
		mean:  doc.Mean,
		scale: doc.Scale,
	}, nil
}

// Transform applies the fitted centering and scaling to a record.
func (s *StandardScaler) Transform(rec domain.FeatureRecord) (domain.ScaledRecord, error) {
	if len(s.names) != len(rec) {
		return domain.ScaledRecord{}, fmt.Errorf("scaler: fitted on %d features, record has %d: %w",
			len(s.names), len(rec), domain.ErrShapeMismatch)
	}

	var out domain.ScaledRecord
	for i := range rec {
		out[i] = (rec[i] - s.mean[i]) / s.scale[i]
	}
	return out, nil
}

// FeatureNames returns the feature order the scaler was fitted on.
func (s *StandardScaler) FeatureNames() []string {
	return s.names
}
