package domain

import "time"

// GaugeBand is one colored background range on the probability gauge.
type GaugeBand struct {
	From  float64 `json:"from"`
	To    float64 `json:"to"`
	Color string  `json:"color"`
}

// Gauge maps a disease probability onto a 0-100 scale for rendering.
type Gauge struct {
	Value     float64     `json:"value"`
	Min       float64     `json:"min"`
	Max       float64     `json:"max"`
	Reference float64     `json:"reference"`
	BarColor  string      `json:"bar_color"`
	Bands     []GaugeBand `json:"bands"`
}

// Advice is the conditional recommendation list shown under the verdict.
type Advice struct {
	Title string   `json:"title"`
	Items []string `json:"items"`
}

// EchoEntry is one row of the input-summary table.
type EchoEntry struct {
	Name  string  `json:"name"`
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// ImportanceEntry is one bar of the feature-importance chart.
type ImportanceEntry struct {
	Feature    string  `json:"feature"`
	Importance float64 `json:"importance"`
}

// PredictionView is everything the output region renders for one prediction.
type PredictionView struct {
	ID            string            `json:"id"`
	Verdict       string            `json:"verdict"`
	Label         int               `json:"label"`
	Probabilities [2]float64        `json:"probabilities"`
	Gauge         Gauge             `json:"gauge"`
	Advice        Advice            `json:"advice"`
	Inputs        []EchoEntry       `json:"inputs"`
	Importance    []ImportanceEntry `json:"importance"`
	Timestamp     time.Time         `json:"timestamp"`
}

// PredictionViewResponse wraps a prediction view with metadata.
type PredictionViewResponse struct {
	Data    PredictionView `json:"data"`
	Success bool           `json:"success"`
	Message string         `json:"message,omitempty"`
}
