package customer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bagoessprasetyo/pos-ai-sub001/internal/domain"
)

func TestQuintiles_TenValues(t *testing.T) {
	sorted := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	q := quintiles(sorted)

	assert.Equal(t, [4]float64{3, 5, 7, 9}, q)
}

func TestQuintiles_Degenerate(t *testing.T) {
	assert.Equal(t, [4]float64{}, quintiles(nil))
	assert.Equal(t, [4]float64{7, 7, 7, 7}, quintiles([]float64{7}))
}

func TestScoreAgainst_SequentialCuts(t *testing.T) {
	q := [4]float64{3, 5, 7, 9}

	assert.Equal(t, 1, scoreAgainst(1, q))
	assert.Equal(t, 1, scoreAgainst(3, q))
	assert.Equal(t, 2, scoreAgainst(4, q))
	assert.Equal(t, 3, scoreAgainst(7, q))
	assert.Equal(t, 4, scoreAgainst(8, q))
	assert.Equal(t, 5, scoreAgainst(10, q))
}

func TestScoreAgainst_CollapsedBoundaries(t *testing.T) {
	// A single-value cohort collapses every cut to the same number; the
	// sequential comparisons then put the value itself in the first bucket.
	q := [4]float64{7, 7, 7, 7}
	assert.Equal(t, 1, scoreAgainst(7, q))
	assert.Equal(t, 5, scoreAgainst(8, q))
}

func TestScoreMetrics_SingleCustomer(t *testing.T) {
	metrics := []domain.CustomerMetrics{
		{CustomerID: "c1", Recency: 0, Frequency: 3, Monetary: 300},
	}
	ScoreMetrics(metrics)

	m := metrics[0]
	assert.Equal(t, 5, m.RScore)
	assert.Equal(t, 1, m.FScore)
	assert.Equal(t, 1, m.MScore)
	assert.Equal(t, 511, m.RFMScore)
}

func TestScoreMetrics_ScoresWithinRange(t *testing.T) {
	metrics := make([]domain.CustomerMetrics, 0, 10)
	for i := 0; i < 10; i++ {
		metrics = append(metrics, domain.CustomerMetrics{
			CustomerID: string(rune('a' + i)),
			Recency:    i * 10,
			Frequency:  i + 1,
			Monetary:   float64(i+1) * 50,
		})
	}
	ScoreMetrics(metrics)

	for _, m := range metrics {
		assert.GreaterOrEqual(t, m.RScore, 1)
		assert.LessOrEqual(t, m.RScore, 5)
		assert.GreaterOrEqual(t, m.FScore, 1)
		assert.LessOrEqual(t, m.FScore, 5)
		assert.GreaterOrEqual(t, m.MScore, 1)
		assert.LessOrEqual(t, m.MScore, 5)
		assert.Equal(t, m.RScore*100+m.FScore*10+m.MScore, m.RFMScore)
	}

	// Recency 0 is the best possible, the longest gap the worst.
	require.Equal(t, 5, metrics[0].RScore)
	require.Equal(t, 1, metrics[9].RScore)

	// Highest frequency and spend land in the top bucket.
	assert.Equal(t, 5, metrics[9].FScore)
	assert.Equal(t, 1, metrics[0].FScore)
	assert.Equal(t, 5, metrics[9].MScore)
	assert.Equal(t, 1, metrics[0].MScore)
}

func TestScoreMetrics_Empty(t *testing.T) {
	assert.NotPanics(t, func() { ScoreMetrics(nil) })
}
