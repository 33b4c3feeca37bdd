package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardioscope/backend/internal/artifact"
	"github.com/cardioscope/backend/internal/domain"
)

func testArtifacts(t *testing.T) (*artifact.StandardScaler, *artifact.Forest) {
	t.Helper()

	mean := make([]float64, domain.FeatureCount)
	scale := make([]float64, domain.FeatureCount)
	for i := range scale {
		scale[i] = 1
	}
	scaler, err := artifact.NewScaler(artifact.ScalerDoc{
		FeatureNames: domain.FeatureNames,
		Mean:         mean,
		Scale:        scale,
	})
	require.NoError(t, err)

	forest, err := artifact.NewForest(artifact.ForestDoc{
		FeatureNames:       domain.FeatureNames,
		NClasses:           2,
		FeatureImportances: make([]float64, domain.FeatureCount),
		Trees: []artifact.TreeDoc{
			{Nodes: []artifact.NodeDoc{
				{Feature: 9, Threshold: 2, Left: 1, Right: 2},
				{Feature: -1, Value: []float64{3, 1}},
				{Feature: -1, Value: []float64{1, 4}},
			}},
		},
	})
	require.NoError(t, err)

	return scaler, forest
}

func TestInferencePredict(t *testing.T) {
	scaler, forest := testArtifacts(t)
	svc := NewInferenceService(scaler, forest)

	var rec domain.FeatureRecord
	rec[9] = 4 // oldpeak past the split threshold

	result, err := svc.Predict(rec)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Label)
	assert.InDelta(t, 0.8, result.Probabilities[1], 1e-9)
	assert.NotEmpty(t, result.ID)
	assert.False(t, result.Timestamp.IsZero())
}

func TestInferenceProbabilityInvariant(t *testing.T) {
	scaler, forest := testArtifacts(t)
	svc := NewInferenceService(scaler, forest)

	for _, oldpeak := range []float64{0, 1, 2, 3, 5} {
		var rec domain.FeatureRecord
		rec[9] = oldpeak

		result, err := svc.Predict(rec)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, result.Probabilities[0], 0.0)
		assert.LessOrEqual(t, result.Probabilities[0], 1.0)
		assert.GreaterOrEqual(t, result.Probabilities[1], 0.0)
		assert.LessOrEqual(t, result.Probabilities[1], 1.0)
		assert.InDelta(t, 1.0, result.Probabilities[0]+result.Probabilities[1], 1e-9)
	}
}

func TestInferenceIdempotent(t *testing.T) {
	scaler, forest := testArtifacts(t)
	svc := NewInferenceService(scaler, forest)

	var rec domain.FeatureRecord
	rec[9] = 1.5

	first, err := svc.Predict(rec)
	require.NoError(t, err)
	second, err := svc.Predict(rec)
	require.NoError(t, err)

	assert.Equal(t, first.Label, second.Label)
	assert.Equal(t, first.Probabilities, second.Probabilities)
}

func TestInferenceShapeMismatchSurfaces(t *testing.T) {
	_, forest := testArtifacts(t)

	shortScaler, err := artifact.NewScaler(artifact.ScalerDoc{
		FeatureNames: domain.FeatureNames[:11],
		Mean:         make([]float64, 11),
		Scale:        []float64{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
	})
	require.NoError(t, err)

	svc := NewInferenceService(shortScaler, forest)
	_, err = svc.Predict(domain.FeatureRecord{})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrShapeMismatch)
}

func TestInferenceClassifierErrorSurfaces(t *testing.T) {
	scaler := artifact.NewMockScaler()
	clf := artifact.NewMockClassifier(0, 0.2)
	clf.Err = domain.ErrShapeMismatch

	svc := NewInferenceService(scaler, clf)
	_, err := svc.Predict(domain.FeatureRecord{})
	assert.ErrorIs(t, err, domain.ErrShapeMismatch)
}
