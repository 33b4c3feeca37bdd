package artifact

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardioscope/backend/internal/domain"
)

func leaf(n0, n1 float64) NodeDoc {
	return NodeDoc{Feature: -1, Value: []float64{n0, n1}}
}

func testForestDoc() ForestDoc {
	return ForestDoc{
		FeatureNames:       domain.FeatureNames,
		NClasses:           2,
		FeatureImportances: make([]float64, domain.FeatureCount),
		Trees: []TreeDoc{
			{Nodes: []NodeDoc{
				{Feature: 0, Threshold: 0.5, Left: 1, Right: 2},
				leaf(3, 1),
				leaf(1, 3),
			}},
			{Nodes: []NodeDoc{
				{Feature: 12, Threshold: 0, Left: 1, Right: 2},
				leaf(4, 0),
				leaf(0, 4),
			}},
		},
	}
}

func TestNewForestValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ForestDoc)
	}{
		{"no feature names", func(d *ForestDoc) { d.FeatureNames = nil }},
		{"wrong class count", func(d *ForestDoc) { d.NClasses = 3 }},
		{"importances length", func(d *ForestDoc) { d.FeatureImportances = []float64{0.5} }},
		{"no trees", func(d *ForestDoc) { d.Trees = nil }},
		{"empty tree", func(d *ForestDoc) { d.Trees[0].Nodes = nil }},
		{"leaf class values", func(d *ForestDoc) { d.Trees[0].Nodes[1].Value = []float64{1} }},
		{"unknown split feature", func(d *ForestDoc) { d.Trees[0].Nodes[0].Feature = 13 }},
		{"out-of-range child", func(d *ForestDoc) { d.Trees[0].Nodes[0].Right = 9 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := testForestDoc()
			tt.mutate(&doc)
			_, err := NewForest(doc)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrArtifactLoad)
		})
	}
}

func TestForestPredictProba(t *testing.T) {
	forest, err := NewForest(testForestDoc())
	require.NoError(t, err)

	var rec domain.ScaledRecord
	rec[0] = 0 // tree 1 -> [0.75, 0.25]
	rec[12] = 1 // tree 2 -> [0, 1]

	proba, err := forest.PredictProba(rec)
	require.NoError(t, err)
	assert.InDelta(t, 0.375, proba[0], 1e-9)
	assert.InDelta(t, 0.625, proba[1], 1e-9)
	assert.InDelta(t, 1.0, proba[0]+proba[1], 1e-9)

	label, err := forest.Predict(rec)
	require.NoError(t, err)
	assert.Equal(t, 1, label)
}

func TestForestPredictNegative(t *testing.T) {
	forest, err := NewForest(testForestDoc())
	require.NoError(t, err)

	var rec domain.ScaledRecord
	rec[0] = 1  // tree 1 -> [0.25, 0.75]
	rec[12] = -1 // tree 2 -> [1, 0]

	label, err := forest.Predict(rec)
	require.NoError(t, err)
	assert.Equal(t, 0, label)

	proba, err := forest.PredictProba(rec)
	require.NoError(t, err)
	assert.InDelta(t, 0.625, proba[0], 1e-9)
}

func TestForestPredictTieBreaksToZero(t *testing.T) {
	doc := ForestDoc{
		FeatureNames:       domain.FeatureNames,
		NClasses:           2,
		FeatureImportances: make([]float64, domain.FeatureCount),
		Trees:              []TreeDoc{{Nodes: []NodeDoc{leaf(1, 1)}}},
	}
	forest, err := NewForest(doc)
	require.NoError(t, err)

	label, err := forest.Predict(domain.ScaledRecord{})
	require.NoError(t, err)
	assert.Equal(t, 0, label)
}

func TestForestShapeMismatch(t *testing.T) {
	doc := ForestDoc{
		FeatureNames:       domain.FeatureNames[:11],
		NClasses:           2,
		FeatureImportances: make([]float64, 11),
		Trees:              []TreeDoc{{Nodes: []NodeDoc{leaf(2, 3)}}},
	}
	forest, err := NewForest(doc)
	require.NoError(t, err)

	_, err = forest.PredictProba(domain.ScaledRecord{})
	assert.ErrorIs(t, err, domain.ErrShapeMismatch)

	_, err = forest.Predict(domain.ScaledRecord{})
	assert.ErrorIs(t, err, domain.ErrShapeMismatch)
}

func TestForestPredictIsDeterministic(t *testing.T) {
	forest, err := NewForest(testForestDoc())
	require.NoError(t, err)

	var rec domain.ScaledRecord
	rec[0] = 0.4
	rec[12] = 0.9

	first, err := forest.PredictProba(rec)
	require.NoError(t, err)
	second, err := forest.PredictProba(rec)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
