// Package artifact loads the two pre-serialized inference artifacts - a fitted
// random-forest classifier and a fitted standard scaler - from JSON documents
// on local disk. Both are loaded once at process start and never mutated.
package artifact

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/cardioscope/backend/internal/domain"
)

// LoadForest reads and validates a classifier artifact from path.
func LoadForest(path string) (*Forest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("artifact: read classifier %s: %v: %w", path, err, domain.ErrArtifactLoad)
	}

	var doc ForestDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("artifact: decode classifier %s: %v: %w", path, err, domain.ErrArtifactLoad)
	}

	return NewForest(doc)
}

// LoadScaler reads and validates a scaler artifact from path.
func LoadScaler(path string) (*StandardScaler, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("artifact: read scaler %s: %v: %w", path, err, domain.ErrArtifactLoad)
	}

	var doc ScalerDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("artifact: decode scaler %s: %v: %w", path, err, domain.ErrArtifactLoad)
	}

	return NewScaler(doc)
}
