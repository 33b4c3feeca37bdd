package service

import (
	"sort"

	"github.com/cardioscope/backend/internal/domain"
	"github.com/cardioscope/backend/pkg/utils"
)

// Verdict headings, keyed by the predicted label.
const (
	VerdictPositive = "Heart Disease Detected"
	VerdictNegative = "No Heart Disease"
)

// Gauge colors. The bar uses the alert color only on a positive prediction.
const (
	gaugeAlertColor = "darkred"
	gaugeSafeColor  = "green"
	gaugeReference  = 50
)

var gaugeBands = []domain.GaugeBand{
	{From: 0, To: 50, Color: "lightgreen"},
	{From: 50, To: 100, Color: "pink"},
}

var precautionaryMeasures = domain.Advice{
	Title: "Precautionary Measures",
	Items: []string{
		"Schedule an appointment with a cardiologist immediately.",
		"Adopt a heart-healthy diet (low in saturated fats, high in fiber).",
		"Engage in moderate exercise under medical supervision.",
		"Manage stress through relaxation techniques or therapy.",
		"Monitor and control blood pressure and cholesterol levels regularly.",
	},
}

var healthTips = domain.Advice{
	Title: "Health Tips",
	Items: []string{
		"Maintain a balanced diet rich in vegetables, fruits, and lean proteins.",
		"Exercise regularly to keep your heart healthy.",
		"Avoid smoking and excessive alcohol consumption.",
		"Schedule routine health check-ups to stay informed.",
	},
}

// Presenter assembles the render-ready view of a prediction: verdict text,
// probability gauge, advice list, input echo and importance chart data.
type Presenter struct {
	classifier domain.Classifier
}

// NewPresenter creates a new presenter.
func NewPresenter(classifier domain.Classifier) *Presenter {
	return &Presenter{classifier: classifier}
}

// Present builds the view for one prediction and its originating record.
func (p *Presenter) Present(rec domain.FeatureRecord, result domain.PredictionResult) domain.PredictionView {
	verdict := VerdictNegative
	barColor := gaugeSafeColor
	advice := healthTips
	if result.Label == 1 {
		verdict = VerdictPositive
		barColor = gaugeAlertColor
		advice = precautionaryMeasures
	}

	inputs := make([]domain.EchoEntry, 0, domain.FeatureCount)
	for i, ctrl := range domain.Schema {
		inputs = append(inputs, domain.EchoEntry{
			Name:  ctrl.Name,
			Label: ctrl.Label,
			Value: rec[i],
		})
	}

	return domain.PredictionView{
		ID:            result.ID.String(),
		Verdict:       verdict,
		Label:         result.Label,
		Probabilities: result.Probabilities,
		Gauge: domain.Gauge{
			Value:     utils.RoundTo(result.Probabilities[1]*100, 1),
			Min:       0,
			Max:       100,
			Reference: gaugeReference,
			BarColor:  barColor,
			Bands:     gaugeBands,
		},
		Advice:     advice,
		Inputs:     inputs,
		Importance: p.Importance(),
		Timestamp:  result.Timestamp,
	}
}

// Importance returns the model's static feature-importance scores, one entry
// per trained feature, sorted descending by importance.
func (p *Presenter) Importance() []domain.ImportanceEntry {
	names := p.classifier.FeatureNames()
	scores := p.classifier.FeatureImportances()

	entries := make([]domain.ImportanceEntry, 0, len(names))
	for i, name := range names {
		entries = append(entries, domain.ImportanceEntry{
			Feature:    name,
			Importance: scores[i],
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Importance > entries[j].Importance
	})

	return entries
}
