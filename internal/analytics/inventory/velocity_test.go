package inventory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bagoessprasetyo/pos-ai-sub001/internal/domain"
)

func sale(productID string, quantity int, lineTotal float64, at time.Time) domain.SaleRecord {
	return domain.SaleRecord{
		ProductID: productID,
		Quantity:  quantity,
		LineTotal: lineTotal,
		SoldAt:    at,
	}
}

func TestCalculateVelocity_DailyAverage(t *testing.T) {
	now := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	sales := []domain.SaleRecord{
		sale("p1", 5, 50, now.AddDate(0, 0, -10)),
		sale("p1", 5, 50, now.AddDate(0, 0, -5)),
		sale("p1", 10, 100, now.AddDate(0, 0, -1)),
	}

	velocities := CalculateVelocity(sales, now)
	require.Contains(t, velocities, "p1")

	v := velocities["p1"]
	assert.Equal(t, 20, v.TotalSold)
	assert.Equal(t, 10, v.DaysTracked)
	assert.InDelta(t, 2.0, v.DailyAverage, 0.001)
	// Three daily points is below the trend minimum.
	assert.Equal(t, domain.TrendStable, v.Trend)
}

func TestCalculateVelocity_IncreasingTrend(t *testing.T) {
	now := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	sales := make([]domain.SaleRecord, 0, 10)
	for i := 0; i < 10; i++ {
		day := now.AddDate(0, 0, -(10 - i))
		sales = append(sales, sale("p1", i+1, float64(i+1)*10, day))
	}

	velocities := CalculateVelocity(sales, now)
	assert.Equal(t, domain.TrendIncreasing, velocities["p1"].Trend)
}

func TestCalculateVelocity_DecreasingTrend(t *testing.T) {
	now := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	sales := make([]domain.SaleRecord, 0, 10)
	for i := 0; i < 10; i++ {
		day := now.AddDate(0, 0, -(10 - i))
		sales = append(sales, sale("p1", 10-i, float64(10-i)*10, day))
	}

	velocities := CalculateVelocity(sales, now)
	assert.Equal(t, domain.TrendDecreasing, velocities["p1"].Trend)
}

func TestCalculateVelocity_ConstantDemandHasZeroVolatility(t *testing.T) {
	now := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	sales := make([]domain.SaleRecord, 0, 10)
	for i := 1; i <= 10; i++ {
		sales = append(sales, sale("p1", 4, 40, now.AddDate(0, 0, -i)))
	}

	velocities := CalculateVelocity(sales, now)
	v := velocities["p1"]
	assert.InDelta(t, 0.0, v.Volatility, 0.0001)
	assert.Equal(t, domain.TrendStable, v.Trend)
}

func TestCalculateVelocity_SameDayFloorsToOneDay(t *testing.T) {
	now := time.Date(2026, 8, 31, 18, 0, 0, 0, time.UTC)
	sales := []domain.SaleRecord{sale("p1", 3, 30, now.Add(-2 * time.Hour))}

	velocities := CalculateVelocity(sales, now)
	v := velocities["p1"]
	assert.Equal(t, 1, v.DaysTracked)
	assert.InDelta(t, 3.0, v.DailyAverage, 0.001)
}

func TestCalculateVelocity_NoSales(t *testing.T) {
	now := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	assert.Empty(t, CalculateVelocity(nil, now))
}

func TestOLSSlope(t *testing.T) {
	assert.InDelta(t, 1.0, olsSlope([]float64{1, 2, 3, 4, 5}), 0.0001)
	assert.InDelta(t, 0.0, olsSlope([]float64{3, 3, 3, 3}), 0.0001)
	assert.Zero(t, olsSlope([]float64{5}))
}

func TestCoefficientOfVariation(t *testing.T) {
	// Population stddev of {2,4,4,4,5,5,7,9} is 2, mean 5.
	cv := coefficientOfVariation([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	assert.InDelta(t, 0.4, cv, 0.0001)

	assert.Zero(t, coefficientOfVariation(nil))
	assert.Zero(t, coefficientOfVariation([]float64{0, 0}))
}
