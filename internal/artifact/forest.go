package artifact

import (
	"fmt"

	"github.com/cardioscope/backend/internal/domain"
)

// NodeDoc is one serialized decision-tree node. Leaf nodes carry a class
// distribution in Value and have Feature == -1.
type NodeDoc struct {
	Feature   int       `json:"feature"`
	Threshold float64   `json:"threshold"`
	Left      int       `json:"left"`
	Right     int       `json:"right"`
	Value     []float64 `json:"value,omitempty"`
}

// TreeDoc is one serialized decision tree as a flat node array rooted at 0.
type TreeDoc struct {
	Nodes []NodeDoc `json:"nodes"`
}

// ForestDoc is the on-disk document of a fitted random-forest classifier.
type ForestDoc struct {
	FeatureNames       []string  `json:"feature_names"`
	NClasses           int       `json:"n_classes"`
	FeatureImportances []float64 `json:"feature_importances"`
	Trees              []TreeDoc `json:"trees"`
}

// Forest implements domain.Classifier over a fitted random forest.
type Forest struct {
	names       []string
	importances []float64
	trees       []TreeDoc
}

// NewForest validates a forest document and builds a classifier from it.
func NewForest(doc ForestDoc) (*Forest, error) {
	if len(doc.FeatureNames) == 0 {
		return nil, fmt.Errorf("forest: no feature names: %w", domain.ErrArtifactLoad)
	}
	if doc.NClasses != 2 {
		return nil, fmt.Errorf("forest: expected 2 classes, got %d: %w", doc.NClasses, domain.ErrArtifactLoad)
	}
	if len(doc.FeatureImportances) != len(doc.FeatureNames) {
		return nil, fmt.Errorf("forest: %d importances for %d features: %w",
			len(doc.FeatureImportances), len(doc.FeatureNames), domain.ErrArtifactLoad)
	}
	if len(doc.Trees) == 0 {
		return nil, fmt.Errorf("forest: no trees: %w", domain.ErrArtifactLoad)
	}
	for ti, tree := range doc.Trees {
		if len(tree.Nodes) == 0 {
			return nil, fmt.Errorf("forest: tree %d is empty: %w", ti, domain.ErrArtifactLoad)
		}
		for ni, n := range tree.Nodes {
			if n.Feature < 0 {
				if len(n.Value) != doc.NClasses {
					return nil, fmt.Errorf("forest: tree %d leaf %d has %d class values: %w",
						ti, ni, len(n.Value), domain.ErrArtifactLoad)
				}
				continue
			}
			if n.Feature >= len(doc.FeatureNames) {
				return nil, fmt.Errorf("forest: tree %d node %d splits on unknown feature %d: %w",
					ti, ni, n.Feature, domain.ErrArtifactLoad)
			}
			if n.Left < 0 || n.Left >= len(tree.Nodes) || n.Right < 0 || n.Right >= len(tree.Nodes) {
				return nil, fmt.Errorf("forest: tree %d node %d has out-of-range children: %w",
					ti, ni, domain.ErrArtifactLoad)
			}
		}
	}

	return &Forest{
		names:       doc.FeatureNames,
		importances: doc.FeatureImportances,
		trees:       doc.Trees,
	}, nil
}

// Predict returns the class label with the highest averaged probability.
// On an exact tie the lower class index wins.
func (f *Forest) Predict(rec domain.ScaledRecord) (int, error) {
	proba, err := f.PredictProba(rec)
	if err != nil {
		return 0, err
	}
	if proba[1] > proba[0] {
		return 1, nil
	}
	return 0, nil
}

// PredictProba averages the leaf class distributions across all trees.
func (f *Forest) PredictProba(rec domain.ScaledRecord) ([2]float64, error) {
	if len(f.names) != len(rec) {
		return [2]float64{}, fmt.Errorf("forest: fitted on %d features, record has %d: %w",
			len(f.names), len(rec), domain.ErrShapeMismatch)
	}

	var sum [2]float64
	for _, tree := range f.trees {
		leaf := tree.Nodes[0]
		for leaf.Feature >= 0 {
			if rec[leaf.Feature] <= leaf.Threshold {
				leaf = tree.Nodes[leaf.Left]
			} else {
				leaf = tree.Nodes[leaf.Right]
			}
		}
		total := leaf.Value[0] + leaf.Value[1]
		if total <= 0 {
			continue
		}
		sum[0] += leaf.Value[0] / total
		sum[1] += leaf.Value[1] / total
	}

	n := float64(len(f.trees))
	return [2]float64{sum[0] / n, sum[1] / n}, nil
}

// FeatureImportances returns the static per-feature importance scores.
func (f *Forest) FeatureImportances() []float64 {
	out := make([]float64, len(f.importances))
	copy(out, f.importances)
	return out
}

// FeatureNames returns the training feature order.
func (f *Forest) FeatureNames() []string {
	return f.names
}

// TreeCount returns the ensemble size, for health reporting.
func (f *Forest) TreeCount() int {
	return len(f.trees)
}
