package inventory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bagoessprasetyo/pos-ai-sub001/internal/domain"
)

var evalNow = time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

func TestEvaluateProduct_CriticalStockout(t *testing.T) {
	in := productInput{
		product:  domain.Product{ID: "p1", Name: "Espresso Beans", Price: 20, Cost: 8},
		stock:    2,
		velocity: domain.ProductVelocity{DailyAverage: 1},
		levels:   ReorderLevels{LeadTimeDemand: 7, SafetyStock: 2, ReorderPoint: 9},
	}

	eval := evaluateProduct(in, evalNow)

	require.True(t, eval.triggered)
	rec := eval.recommendation
	assert.Equal(t, domain.PriorityCritical, rec.Priority)
	assert.Equal(t, domain.IssueStockoutRisk, rec.IssueType)
	// One week of lost sales at current velocity.
	assert.InDelta(t, 140.0, rec.FinancialImpact.RevenueOpportunity, 0.001)
	assert.NotEmpty(t, rec.Actions)
}

func TestEvaluateProduct_ReorderNeeded(t *testing.T) {
	in := productInput{
		product:  domain.Product{ID: "p1", Price: 20},
		stock:    5,
		velocity: domain.ProductVelocity{DailyAverage: 1},
		levels:   ReorderLevels{ReorderPoint: 9},
	}

	eval := evaluateProduct(in, evalNow)

	assert.Equal(t, domain.PriorityHigh, eval.recommendation.Priority)
	assert.Equal(t, domain.IssueReorderNeeded, eval.recommendation.IssueType)
	assert.Zero(t, eval.recommendation.FinancialImpact.RevenueOpportunity)
}

func TestEvaluateProduct_Overstock(t *testing.T) {
	in := productInput{
		product:  domain.Product{ID: "p1", Cost: 10},
		stock:    1000,
		velocity: domain.ProductVelocity{DailyAverage: 2},
		levels:   ReorderLevels{ReorderPoint: 19},
	}

	eval := evaluateProduct(in, evalNow)

	rec := eval.recommendation
	assert.Equal(t, domain.PriorityMedium, rec.Priority)
	assert.Equal(t, domain.IssueOverstock, rec.IssueType)
	// (1000 - 2*45) * 10 * 0.02
	assert.InDelta(t, 182.0, rec.FinancialImpact.CarryingCostReduction, 0.001)
	assert.InDelta(t, 182.0, rec.FinancialImpact.CostSavings, 0.001)
}

func TestEvaluateProduct_SlowMover(t *testing.T) {
	in := productInput{
		product:  domain.Product{ID: "p1", Cost: 10},
		stock:    4,
		velocity: domain.ProductVelocity{DailyAverage: 0.05, Trend: domain.TrendDecreasing},
		levels:   ReorderLevels{},
	}

	eval := evaluateProduct(in, evalNow)

	rec := eval.recommendation
	assert.Equal(t, domain.PriorityMedium, rec.Priority)
	assert.Equal(t, domain.IssueSlowMoving, rec.IssueType)
	// stock * cost * carrying rate
	assert.InDelta(t, 0.8, rec.FinancialImpact.CostSavings, 0.001)
}

func TestEvaluateProduct_DeadStockWithoutTrendIsQuiet(t *testing.T) {
	// Zero usage never divides, so the overstock rule stays silent; without a
	// decreasing trend the slow-mover rule stays silent too.
	in := productInput{
		product: domain.Product{ID: "p1", Cost: 10},
		stock:   500,
	}

	eval := evaluateProduct(in, evalNow)

	assert.False(t, eval.triggered)
	assert.Equal(t, domain.IssueNone, eval.recommendation.IssueType)
	assert.Equal(t, domain.PriorityLow, eval.recommendation.Priority)
}

func TestEvaluateProduct_SeasonalPeakAdvisory(t *testing.T) {
	in := productInput{
		product:     domain.Product{ID: "p1"},
		stock:       20,
		velocity:    domain.ProductVelocity{DailyAverage: 0.5, Trend: domain.TrendStable},
		levels:      ReorderLevels{ReorderPoint: 5},
		seasonality: domain.SeasonalityProfile{PeakMonths: []int{7}}, // August
		hasSeason:   true,
	}

	eval := evaluateProduct(in, evalNow)

	assert.True(t, eval.triggered)
	assert.Equal(t, domain.PriorityMedium, eval.recommendation.Priority)
	// Advisory only: no issue type assigned.
	assert.Equal(t, domain.IssueNone, eval.recommendation.IssueType)
}

func TestEvaluateProduct_ClassAEscalation(t *testing.T) {
	in := productInput{
		product:  domain.Product{ID: "p1"},
		stock:    8,
		velocity: domain.ProductVelocity{DailyAverage: 1},
		levels:   ReorderLevels{ReorderPoint: 9},
		abcClass: domain.ClassA,
		hasClass: true,
	}

	eval := evaluateProduct(in, evalNow)

	// 8 days of stock is past the stockout windows, but class A at the
	// reorder point still warrants high priority.
	assert.Equal(t, domain.PriorityHigh, eval.recommendation.Priority)
	assert.Equal(t, domain.IssueNone, eval.recommendation.IssueType)
}

func TestEvaluateProduct_PriorityNeverDowngrades(t *testing.T) {
	in := productInput{
		product:  domain.Product{ID: "p1", Price: 20, Cost: 8},
		stock:    2,
		velocity: domain.ProductVelocity{DailyAverage: 1},
		levels:   ReorderLevels{ReorderPoint: 9},
		abcClass: domain.ClassA,
		hasClass: true,
	}

	eval := evaluateProduct(in, evalNow)

	// Class A rule fires too but its high priority cannot downgrade critical.
	assert.Equal(t, domain.PriorityCritical, eval.recommendation.Priority)
	assert.Equal(t, domain.IssueStockoutRisk, eval.recommendation.IssueType)
}

func TestEvaluateProduct_ReorderPointDrift(t *testing.T) {
	in := productInput{
		product:  domain.Product{ID: "p1"},
		stock:    100,
		storedRP: 10,
		velocity: domain.ProductVelocity{DailyAverage: 2, Volatility: 0.5},
		levels:   ReorderLevels{ReorderPoint: 19},
	}

	eval := evaluateProduct(in, evalNow)

	assert.True(t, eval.triggered)
	assert.True(t, eval.reorderDrift)
	assert.Contains(t, eval.recommendation.Actions, "Update reorder point from 10 to 19")
	assert.Equal(t, domain.PriorityLow, eval.recommendation.Priority)
}

func TestEvaluateProduct_DriftWithinTolerance(t *testing.T) {
	in := productInput{
		product:  domain.Product{ID: "p1"},
		stock:    100,
		storedRP: 18,
		velocity: domain.ProductVelocity{DailyAverage: 2},
		levels:   ReorderLevels{ReorderPoint: 19},
	}

	eval := evaluateProduct(in, evalNow)
	assert.False(t, eval.reorderDrift)
}

func TestCalculateHealthScore(t *testing.T) {
	assert.Equal(t, 50, CalculateHealthScore(nil, 0))
	assert.Equal(t, 100, CalculateHealthScore(nil, 10))

	recs := []domain.InventoryRecommendation{
		{Priority: domain.PriorityCritical},
		{Priority: domain.PriorityHigh},
		{Priority: domain.PriorityMedium},
		{Priority: domain.PriorityLow},
	}
	// 100 - 40/4 - 20/4 - 10/4 = 82.5, rounded half away from zero.
	assert.Equal(t, 83, CalculateHealthScore(recs, 4))
}

func TestCalculateHealthScore_FloorsAtZero(t *testing.T) {
	recs := make([]domain.InventoryRecommendation, 0, 12)
	for i := 0; i < 12; i++ {
		recs = append(recs, domain.InventoryRecommendation{Priority: domain.PriorityCritical})
	}
	assert.Equal(t, 0, CalculateHealthScore(recs, 4))
}
