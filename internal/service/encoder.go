package service

import (
	"fmt"

	"github.com/cardioscope/backend/internal/domain"
	"github.com/cardioscope/backend/pkg/utils"
)

// Encoder maps raw form values onto the numeric encoding the classifier was
// trained with. Pure and deterministic - no hidden state.
type Encoder struct{}

// NewEncoder creates a new feature encoder.
func NewEncoder() *Encoder {
	return &Encoder{}
}

// Encode builds one FeatureRecord from a prediction request. Categorical
// choices translate to the training-time binary integers (Male=1, Yes=1);
// numeric values are clamped to the schema ranges since the JSON API, unlike
// the form's bounded controls, accepts arbitrary numbers.
func (e *Encoder) Encode(req domain.PredictRequest) (domain.FeatureRecord, error) {
	var rec domain.FeatureRecord

	sex, err := encodeChoice("sex", req.Sex, "Male", "Female")
	if err != nil {
		return rec, err
	}
	fbs, err := encodeChoice("fbs", req.FBS, "Yes", "No")
	if err != nil {
		return rec, err
	}
	exang, err := encodeChoice("exang", req.Exang, "Yes", "No")
	if err != nil {
		return rec, err
	}

	numeric := map[string]*float64{
		"age":      req.Age,
		"cp":       req.CP,
		"trestbps": req.Trestbps,
		"chol":     req.Chol,
		"restecg":  req.Restecg,
		"thalach":  req.Thalach,
		"oldpeak":  req.Oldpeak,
		"slope":    req.Slope,
		"ca":       req.CA,
		"thal":     req.Thal,
	}

	for i, name := range domain.FeatureNames {
		switch name {
		case "sex":
			rec[i] = sex
		case "fbs":
			rec[i] = fbs
		case "exang":
			rec[i] = exang
		default:
			v := numeric[name]
			if v == nil {
				return domain.FeatureRecord{}, fmt.Errorf("encoder: missing field %q", name)
			}
			ctrl, _ := domain.ControlByName(name)
			rec[i] = utils.Clamp(*v, ctrl.Min, ctrl.Max)
		}
	}

	return rec, nil
}

// encodeChoice maps a two-option categorical value to 1 (positive) or 0.
func encodeChoice(name string, value *string, positive, negative string) (float64, error) {
	if value == nil {
		return 0, fmt.Errorf("encoder: missing field %q", name)
	}
	switch *value {
	case positive:
		return 1, nil
	case negative:
		return 0, nil
	default:
		return 0, fmt.Errorf("encoder: field %q must be %q or %q, got %q", name, positive, negative, *value)
	}
}
