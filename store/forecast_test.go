package store

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/openaquifer/groundwater-api/schema"
)

func TestSummarizePerfectPrediction(t *testing.T) {
	rows := []schema.ValidationRecord{
		{Actual: 10, Predicted: 10},
		{Actual: 20, Predicted: 20},
		{Actual: 30, Predicted: 30},
	}

	s := summarize(rows)
	assert.Equal(t, 0.0, s.MAE)
	assert.Equal(t, 0.0, s.RMSE)
	assert.Equal(t, 1.0, s.R2)
	assert.Equal(t, 20.0, s.ActualMean)
	assert.Equal(t, 10.0, s.ActualMin)
	assert.Equal(t, 30.0, s.ActualMax)
	assert.Equal(t, 3, s.Samples)
}

func TestSummarizeWithError(t *testing.T) {
	rows := []schema.ValidationRecord{
		{Actual: 10, Predicted: 12},
		{Actual: 20, Predicted: 18},
	}

	s := summarize(rows)
	assert.InDelta(t, 2.0, s.MAE, 1e-9)
	assert.InDelta(t, 2.0, s.RMSE, 1e-9)
	assert.True(t, s.R2 < 1)
}

func TestSummarizeConstantActuals(t *testing.T) {
	rows := []schema.ValidationRecord{
		{Actual: 5, Predicted: 6},
		{Actual: 5, Predicted: 4},
	}

	// zero variance in actuals: R² degenerates to 0, not a division error
	s := summarize(rows)
	assert.Equal(t, 0.0, s.R2)
}
