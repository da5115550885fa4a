package inventory

import "github.com/bagoessprasetyo/pos-ai-sub001/internal/domain"

// peakMonthFactor marks a month as a peak when its sales exceed this multiple
// of the monthly average.
const peakMonthFactor = 1.2

// AnalyzeSeasonality computes per-product monthly demand shape: the average
// over months with recorded sales, the months exceeding 1.2x that average, and
// a (max-min)/average spread factor. Products with no sales are absent.
func AnalyzeSeasonality(sales []domain.SaleRecord) map[string]domain.SeasonalityProfile {
	monthly := make(map[string]map[int]float64)
	for _, s := range sales {
		month := int(s.SoldAt.Month()) - 1
		m := monthly[s.ProductID]
		if m == nil {
			m = make(map[int]float64)
			monthly[s.ProductID] = m
		}
		m[month] += float64(s.Quantity)
	}

	profiles := make(map[string]domain.SeasonalityProfile, len(monthly))
	for productID, months := range monthly {
		var sum, min, max float64
		first := true
		for _, qty := range months {
			sum += qty
			if first || qty < min {
				min = qty
			}
			if first || qty > max {
				max = qty
			}
			first = false
		}
		average := sum / float64(len(months))

		profile := domain.SeasonalityProfile{
			ProductID:           productID,
			PeakMonths:          []int{},
			AverageMonthlySales: average,
		}
		if average > 0 {
			profile.SeasonalFactor = (max - min) / average
		}
		for month := 0; month < 12; month++ {
			if qty, ok := months[month]; ok && qty > peakMonthFactor*average {
				profile.PeakMonths = append(profile.PeakMonths, month)
			}
		}
		profiles[productID] = profile
	}
	return profiles
}
