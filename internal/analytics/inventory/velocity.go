package inventory

import (
	"math"
	"sort"
	"time"

	"github.com/bagoessprasetyo/pos-ai-sub001/internal/domain"
)

// trendWindow is the number of most recent daily points fed to the OLS fit.
// Trends are only classified when strictly more than trendMinPoints days of
// sales exist; thinner series stay stable.
const (
	trendWindow     = 14
	trendMinPoints  = 7
	trendSlopeBound = 0.1
)

// dailySeries groups a product's sales by calendar day, sorted ascending.
type dailySeries struct {
	days       []time.Time
	quantities []float64
}

func buildDailySeries(sales []domain.SaleRecord) dailySeries {
	byDay := make(map[time.Time]float64)
	for _, s := range sales {
		day := time.Date(s.SoldAt.Year(), s.SoldAt.Month(), s.SoldAt.Day(), 0, 0, 0, 0, time.UTC)
		byDay[day] += float64(s.Quantity)
	}

	series := dailySeries{
		days:       make([]time.Time, 0, len(byDay)),
		quantities: make([]float64, 0, len(byDay)),
	}
	for day := range byDay {
		series.days = append(series.days, day)
	}
	sort.Slice(series.days, func(i, j int) bool { return series.days[i].Before(series.days[j]) })
	for _, day := range series.days {
		series.quantities = append(series.quantities, byDay[day])
	}
	return series
}

// olsSlope fits quantity against sequential index with ordinary least squares
// and returns the slope.
func olsSlope(points []float64) float64 {
	n := float64(len(points))
	if n < 2 {
		return 0
	}
	var sumX, sumY, sumXY, sumXX float64
	for i, y := range points {
		x := float64(i)
		sumX += x
		sumY += y
		sumXY += x * y
		sumXX += x * x
	}
	denom := n*sumXX - sumX*sumX
	if denom == 0 {
		return 0
	}
	return (n*sumXY - sumX*sumY) / denom
}

// classifyTrend fits the most recent daily points and buckets the slope.
func classifyTrend(series dailySeries) domain.Trend {
	if len(series.quantities) <= trendMinPoints {
		return domain.TrendStable
	}
	points := series.quantities
	if len(points) > trendWindow {
		points = points[len(points)-trendWindow:]
	}
	slope := olsSlope(points)
	switch {
	case slope > trendSlopeBound:
		return domain.TrendIncreasing
	case slope < -trendSlopeBound:
		return domain.TrendDecreasing
	}
	return domain.TrendStable
}

// coefficientOfVariation is population stddev over mean of the daily totals,
// 0 when the mean is 0.
func coefficientOfVariation(points []float64) float64 {
	if len(points) == 0 {
		return 0
	}
	var sum float64
	for _, v := range points {
		sum += v
	}
	mean := sum / float64(len(points))
	if mean == 0 {
		return 0
	}
	var variance float64
	for _, v := range points {
		d := v - mean
		variance += d * d
	}
	variance /= float64(len(points))
	return math.Sqrt(variance) / mean
}

// CalculateVelocity computes per-product demand velocity over the sales
// window, keyed by product id. Products with no sales are absent from the map.
func CalculateVelocity(sales []domain.SaleRecord, now time.Time) map[string]domain.ProductVelocity {
	byProduct := make(map[string][]domain.SaleRecord)
	for _, s := range sales {
		byProduct[s.ProductID] = append(byProduct[s.ProductID], s)
	}

	velocities := make(map[string]domain.ProductVelocity, len(byProduct))
	for productID, productSales := range byProduct {
		series := buildDailySeries(productSales)

		totalSold := 0
		earliest := productSales[0].SoldAt
		for _, s := range productSales {
			totalSold += s.Quantity
			if s.SoldAt.Before(earliest) {
				earliest = s.SoldAt
			}
		}

		daysTracked := int(now.Sub(earliest).Hours() / 24)
		if daysTracked < 1 {
			daysTracked = 1
		}

		velocities[productID] = domain.ProductVelocity{
			ProductID:    productID,
			DailyAverage: float64(totalSold) / float64(daysTracked),
			Trend:        classifyTrend(series),
			Volatility:   coefficientOfVariation(series.quantities),
			TotalSold:    totalSold,
			DaysTracked:  daysTracked,
		}
	}
	return velocities
}
