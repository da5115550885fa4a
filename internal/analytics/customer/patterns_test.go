package customer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bagoessprasetyo/pos-ai-sub001/internal/domain"
)

func TestSeasonOf(t *testing.T) {
	assert.Equal(t, SeasonWinter, seasonOf(0))  // January
	assert.Equal(t, SeasonWinter, seasonOf(1))  // February
	assert.Equal(t, SeasonSpring, seasonOf(2))  // March
	assert.Equal(t, SeasonSpring, seasonOf(4))  // May
	assert.Equal(t, SeasonSummer, seasonOf(5))  // June
	assert.Equal(t, SeasonSummer, seasonOf(7))  // August
	assert.Equal(t, SeasonFall, seasonOf(8))    // September
	assert.Equal(t, SeasonFall, seasonOf(10))   // November
	assert.Equal(t, SeasonWinter, seasonOf(11)) // December
}

func TestArgmax_TieBreaksToFirstSeen(t *testing.T) {
	assert.Equal(t, 0, argmax([]int{0, 0, 0}, nil))
	assert.Equal(t, 2, argmax([]int{2, 5, 5, 3}, []int{3, 2, 1, 0}))
	assert.Equal(t, 1, argmax([]int{2, 5, 5, 3}, []int{0, 1, 2, 3}))
}

func TestAnalyzePatterns_Distributions(t *testing.T) {
	// Two Saturday afternoon sales and one Monday morning sale in June.
	sat := time.Date(2026, 6, 6, 14, 30, 0, 0, time.UTC)
	mon := time.Date(2026, 6, 8, 9, 0, 0, 0, time.UTC)

	transactions := []domain.Transaction{
		withItems(tx("t1", "c1", 30, sat), item("p1", 2, 30)),
		withItems(tx("t2", "c2", 50, sat.Add(time.Hour)), item("p2", 1, 50)),
		withItems(tx("t3", "c1", 10, mon), item("p1", 3, 10)),
	}

	patterns := AnalyzePatterns(transactions)

	assert.Equal(t, 1, patterns.HourlyDistribution[14])
	assert.Equal(t, 1, patterns.HourlyDistribution[15])
	assert.Equal(t, 1, patterns.HourlyDistribution[9])
	assert.Equal(t, 2, patterns.DailyDistribution[int(time.Saturday)])
	assert.Equal(t, 1, patterns.DailyDistribution[int(time.Monday)])
	assert.Equal(t, 3, patterns.MonthlyDistribution[5])
	assert.Equal(t, 3, patterns.SeasonDistribution[SeasonSummer])

	assert.Equal(t, int(time.Saturday), patterns.PeakDay)
	assert.Equal(t, 5, patterns.PeakMonth)
	// All three hours saw one sale each; the first in the stream wins.
	assert.Equal(t, 14, patterns.PeakHour)
	assert.InDelta(t, 2.0, patterns.AverageBasketSize, 0.001)
	assert.InDelta(t, 30.0, patterns.AverageBasketValue, 0.001)
}

func TestAnalyzePatterns_PeakTieBreaksToFirstTransaction(t *testing.T) {
	// One sale at hour 20, then one at hour 9. The evening hour was seen
	// first, so it is the peak despite the lower index of 9.
	transactions := []domain.Transaction{
		tx("t1", "c1", 15, time.Date(2026, 6, 5, 20, 0, 0, 0, time.UTC)),
		tx("t2", "c2", 25, time.Date(2026, 6, 6, 9, 0, 0, 0, time.UTC)),
	}

	patterns := AnalyzePatterns(transactions)

	assert.Equal(t, 20, patterns.PeakHour)
	assert.Equal(t, int(time.Friday), patterns.PeakDay)
}

func TestAnalyzePatterns_Empty(t *testing.T) {
	patterns := AnalyzePatterns(nil)

	assert.Zero(t, patterns.AverageBasketSize)
	assert.Zero(t, patterns.AverageBasketValue)
	assert.Equal(t, 0, patterns.PeakHour)
	assert.Len(t, patterns.SeasonDistribution, 4)
}

func withItems(transaction domain.Transaction, items ...domain.TransactionItem) domain.Transaction {
	transaction.Items = items
	return transaction
}

func item(productID string, quantity int, lineTotal float64) domain.TransactionItem {
	return domain.TransactionItem{ProductID: productID, Quantity: quantity, LineTotal: lineTotal}
}
