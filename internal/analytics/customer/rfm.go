package customer

import (
	"sort"

	"github.com/bagoessprasetyo/pos-ai-sub001/internal/domain"
)

// quintiles returns the four cut points dividing a pre-sorted slice into five
// buckets, taken at floor(n*0.2), floor(n*0.4), floor(n*0.6) and floor(n*0.8).
// Degenerate cohorts (size 0 or 1) collapse to the same value at every cut.
func quintiles(sorted []float64) [4]float64 {
	var q [4]float64
	n := len(sorted)
	if n == 0 {
		return q
	}
	fractions := [4]float64{0.2, 0.4, 0.6, 0.8}
	for i, f := range fractions {
		idx := int(float64(n) * f)
		if idx >= n {
			idx = n - 1
		}
		q[i] = sorted[idx]
	}
	return q
}

// scoreAgainst assigns a 1..5 score by walking the cut points in order. The
// comparisons are sequential, so collapsed boundaries fall through naturally.
func scoreAgainst(v float64, q [4]float64) int {
	switch {
	case v <= q[0]:
		return 1
	case v <= q[1]:
		return 2
	case v <= q[2]:
		return 3
	case v <= q[3]:
		return 4
	}
	return 5
}

// ScoreMetrics fills quintile-based R/F/M scores in place. Recency boundaries
// come from an ascending sort (lower is better) and the raw score is inverted
// so that 5 is always best across all three dimensions; frequency and monetary
// boundaries come from descending sorts.
func ScoreMetrics(metrics []domain.CustomerMetrics) {
	n := len(metrics)
	if n == 0 {
		return
	}

	recency := make([]float64, n)
	frequency := make([]float64, n)
	monetary := make([]float64, n)
	for i, m := range metrics {
		recency[i] = float64(m.Recency)
		frequency[i] = float64(m.Frequency)
		monetary[i] = float64(m.Monetary)
	}

	sort.Float64s(recency)
	sort.Sort(sort.Reverse(sort.Float64Slice(frequency)))
	sort.Sort(sort.Reverse(sort.Float64Slice(monetary)))

	rq := quintiles(recency)
	fq := quintiles(frequency)
	mq := quintiles(monetary)

	for i := range metrics {
		m := &metrics[i]
		m.RScore = 6 - scoreAgainst(float64(m.Recency), rq)
		m.FScore = scoreAgainst(float64(m.Frequency), fq)
		m.MScore = scoreAgainst(float64(m.Monetary), mq)
		m.RFMScore = m.RScore*100 + m.FScore*10 + m.MScore
	}
}
