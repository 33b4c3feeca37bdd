package domain

// FeatureCount is the number of clinical measurements the classifier was trained on.
const FeatureCount = 13

// FeatureNames is the exact feature order used during training.
// A FeatureRecord's positions correspond to this list one-to-one.
var FeatureNames = []string{
	"age", "sex", "cp", "trestbps", "chol", "fbs", "restecg",
	"thalach", "exang", "oldpeak", "slope", "ca", "thal",
}

// FeatureRecord is one encoded clinical input vector, ordered as FeatureNames.
// It is built fresh per prediction request and never mutated afterwards.
type FeatureRecord [FeatureCount]float64

// ScaledRecord is a FeatureRecord after the fitted scaler's transform.
type ScaledRecord [FeatureCount]float64

// Values returns the record as a slice in training order.
func (r FeatureRecord) Values() []float64 {
	out := make([]float64, FeatureCount)
	copy(out, r[:])
	return out
}

// ControlKind distinguishes continuous sliders from discrete choices on the form.
type ControlKind string

const (
	ControlSlider ControlKind = "slider"
	ControlChoice ControlKind = "choice"
)

// Control describes one bounded input control on the prediction form.
type Control struct {
	Name          string      `json:"name"`
	Label         string      `json:"label"`
	Kind          ControlKind `json:"kind"`
	Min           float64     `json:"min,omitempty"`
	Max           float64     `json:"max,omitempty"`
	Step          float64     `json:"step,omitempty"`
	Default       float64     `json:"default"`
	Options       []string    `json:"options,omitempty"`
	DefaultOption string      `json:"default_option,omitempty"`
}

// Schema lists the thirteen input controls in FeatureNames order.
// Ranges and defaults match the domains the artifacts were fitted against.
var Schema = []Control{
	{Name: "age", Label: "Age", Kind: ControlSlider, Min: 20, Max: 80, Step: 1, Default: 50},
	{Name: "sex", Label: "Sex", Kind: ControlChoice, Options: []string{"Male", "Female"}, DefaultOption: "Male", Default: 1},
	{Name: "cp", Label: "Chest Pain Type (cp)", Kind: ControlSlider, Min: 0, Max: 4, Step: 1, Default: 2},
	{Name: "trestbps", Label: "Resting Blood Pressure (trestbps)", Kind: ControlSlider, Min: 80, Max: 200, Step: 1, Default: 120},
	{Name: "chol", Label: "Cholesterol (chol)", Kind: ControlSlider, Min: 100, Max: 400, Step: 1, Default: 200},
	{Name: "fbs", Label: "Fasting Blood Sugar > 120 mg/dl (fbs)", Kind: ControlChoice, Options: []string{"Yes", "No"}, DefaultOption: "No", Default: 0},
	{Name: "restecg", Label: "Resting ECG Results (restecg)", Kind: ControlSlider, Min: 0, Max: 2, Step: 1, Default: 1},
	{Name: "thalach", Label: "Max Heart Rate Achieved (thalach)", Kind: ControlSlider, Min: 60, Max: 200, Step: 1, Default: 150},
	{Name: "exang", Label: "Exercise Induced Angina (exang)", Kind: ControlChoice, Options: []string{"Yes", "No"}, DefaultOption: "No", Default: 0},
	{Name: "oldpeak", Label: "ST Depression (oldpeak)", Kind: ControlSlider, Min: 0.0, Max: 5.0, Step: 0.1, Default: 1.0},
	{Name: "slope", Label: "Slope of the Peak Exercise (slope)", Kind: ControlSlider, Min: 0, Max: 2, Step: 1, Default: 1},
	{Name: "ca", Label: "Number of Major Vessels (ca)", Kind: ControlSlider, Min: 0, Max: 4, Step: 1, Default: 1},
	{Name: "thal", Label: "Thalassemia (thal)", Kind: ControlSlider, Min: 0, Max: 3, Step: 1, Default: 2},
}

// ControlByName returns the schema entry for a feature name.
func ControlByName(name string) (Control, bool) {
	for _, c := range Schema {
		if c.Name == name {
			return c, true
		}
	}
	return Control{}, false
}
