package customer

import "github.com/bagoessprasetyo/pos-ai-sub001/internal/domain"

// Season labels in calendar order starting from spring.
const (
	SeasonSpring = "spring" // Mar-May
	SeasonSummer = "summer" // Jun-Aug
	SeasonFall   = "fall"   // Sep-Nov
	SeasonWinter = "winter" // Dec-Feb
)

// seasonOf maps a zero-based calendar month to its season.
func seasonOf(month int) string {
	switch {
	case month >= 2 && month <= 4:
		return SeasonSpring
	case month >= 5 && month <= 7:
		return SeasonSummer
	case month >= 8 && month <= 10:
		return SeasonFall
	}
	return SeasonWinter
}

// argmax returns the slot with the largest count. seen lists the distinct
// slots in the order the transaction stream first touched them, so ties
// resolve to the slot encountered first, not the lowest index.
func argmax(counts []int, seen []int) int {
	best := -1
	for _, i := range seen {
		if best == -1 || counts[i] > counts[best] {
			best = i
		}
	}
	if best == -1 {
		return 0
	}
	return best
}

// AnalyzePatterns builds temporal frequency tables and basket statistics over
// all completed transactions. Peaks break ties toward the slot seen first in
// the stream. With no transactions every average is 0, never NaN.
func AnalyzePatterns(transactions []domain.Transaction) domain.PurchasePatterns {
	patterns := domain.PurchasePatterns{
		SeasonDistribution: map[string]int{
			SeasonSpring: 0,
			SeasonSummer: 0,
			SeasonFall:   0,
			SeasonWinter: 0,
		},
	}

	completed := completedOnly(transactions)
	var hourOrder, dayOrder, monthOrder []int
	var totalValue float64
	var totalItems int
	for _, tx := range completed {
		hour := tx.CreatedAt.Hour()
		day := int(tx.CreatedAt.Weekday())
		month := int(tx.CreatedAt.Month()) - 1

		if patterns.HourlyDistribution[hour] == 0 {
			hourOrder = append(hourOrder, hour)
		}
		if patterns.DailyDistribution[day] == 0 {
			dayOrder = append(dayOrder, day)
		}
		if patterns.MonthlyDistribution[month] == 0 {
			monthOrder = append(monthOrder, month)
		}
		patterns.HourlyDistribution[hour]++
		patterns.DailyDistribution[day]++
		patterns.MonthlyDistribution[month]++
		patterns.SeasonDistribution[seasonOf(month)]++

		totalValue += tx.Total
		for _, item := range tx.Items {
			totalItems += item.Quantity
		}
	}

	patterns.PeakHour = argmax(patterns.HourlyDistribution[:], hourOrder)
	patterns.PeakDay = argmax(patterns.DailyDistribution[:], dayOrder)
	patterns.PeakMonth = argmax(patterns.MonthlyDistribution[:], monthOrder)

	if n := len(completed); n > 0 {
		patterns.AverageBasketSize = float64(totalItems) / float64(n)
		patterns.AverageBasketValue = totalValue / float64(n)
	}

	return patterns
}
