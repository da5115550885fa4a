package customer

import (
	"sort"

	"github.com/bagoessprasetyo/pos-ai-sub001/internal/domain"
)

const (
	topCategoryLimit = 5
	topAffinityLimit = 5
)

// AnalyzeLoyalty computes repeat purchase, retention and frequency rates over
// the cohort. activeCustomers comes from the churn analysis so the two
// sections of the report agree.
func AnalyzeLoyalty(customers []domain.Customer, transactions []domain.Transaction, activeCustomers int) domain.LoyaltyMetrics {
	counts := make(map[string]int)
	total := 0
	for _, tx := range completedOnly(transactions) {
		total++
		if tx.CustomerID != "" {
			counts[tx.CustomerID]++
		}
	}

	var metrics domain.LoyaltyMetrics
	purchasers := len(counts)
	repeaters := 0
	for _, c := range counts {
		if c >= 2 {
			repeaters++
		}
	}

	if purchasers > 0 {
		metrics.RepeatPurchaseRate = float64(repeaters) / float64(purchasers) * 100
	}
	if n := len(customers); n > 0 {
		metrics.CustomerRetentionRate = float64(activeCustomers) / float64(n) * 100
		metrics.AveragePurchaseFrequency = float64(total) / float64(n)
	}
	return metrics
}

// AnalyzePreferences ranks product categories by revenue and finds product
// pairs that co-occur within the same basket.
func AnalyzePreferences(transactions []domain.Transaction, products []domain.Product) domain.ProductPreferences {
	categoryByProduct := make(map[string]string, len(products))
	for _, p := range products {
		categoryByProduct[p.ID] = p.CategoryID
	}

	type catAccum struct {
		revenue  float64
		quantity int
	}
	categories := make(map[string]*catAccum)
	pairCounts := make(map[[2]string]int)

	for _, tx := range completedOnly(transactions) {
		seen := make([]string, 0, len(tx.Items))
		for _, item := range tx.Items {
			if cat, ok := categoryByProduct[item.ProductID]; ok && cat != "" {
				a := categories[cat]
				if a == nil {
					a = &catAccum{}
					categories[cat] = a
				}
				a.revenue += item.LineTotal
				a.quantity += item.Quantity
			}
			seen = append(seen, item.ProductID)
		}

		// Count unordered product pairs within the basket.
		sort.Strings(seen)
		for i := 0; i < len(seen); i++ {
			for j := i + 1; j < len(seen); j++ {
				if seen[i] == seen[j] {
					continue
				}
				pairCounts[[2]string{seen[i], seen[j]}]++
			}
		}
	}

	prefs := domain.ProductPreferences{
		TopCategories:     []domain.CategoryPreference{},
		ProductAffinities: []domain.ProductAffinity{},
	}

	for id, a := range categories {
		prefs.TopCategories = append(prefs.TopCategories, domain.CategoryPreference{
			CategoryID: id,
			Revenue:    a.revenue,
			Quantity:   a.quantity,
		})
	}
	sort.Slice(prefs.TopCategories, func(i, j int) bool {
		a, b := prefs.TopCategories[i], prefs.TopCategories[j]
		if a.Revenue != b.Revenue {
			return a.Revenue > b.Revenue
		}
		return a.CategoryID < b.CategoryID
	})
	if len(prefs.TopCategories) > topCategoryLimit {
		prefs.TopCategories = prefs.TopCategories[:topCategoryLimit]
	}

	for pair, count := range pairCounts {
		if count < 2 {
			continue
		}
		prefs.ProductAffinities = append(prefs.ProductAffinities, domain.ProductAffinity{
			ProductA:    pair[0],
			ProductB:    pair[1],
			Occurrences: count,
		})
	}
	sort.Slice(prefs.ProductAffinities, func(i, j int) bool {
		a, b := prefs.ProductAffinities[i], prefs.ProductAffinities[j]
		if a.Occurrences != b.Occurrences {
			return a.Occurrences > b.Occurrences
		}
		if a.ProductA != b.ProductA {
			return a.ProductA < b.ProductA
		}
		return a.ProductB < b.ProductB
	})
	if len(prefs.ProductAffinities) > topAffinityLimit {
		prefs.ProductAffinities = prefs.ProductAffinities[:topAffinityLimit]
	}

	return prefs
}

// AnalyzeTrends aggregates transactions by calendar month and reports the
// revenue growth of the most recent month over the one before it.
func AnalyzeTrends(transactions []domain.Transaction) domain.BehavioralTrends {
	trends := domain.BehavioralTrends{
		MonthlyTrends: make(map[string]domain.MonthlyTrend),
	}

	for _, tx := range completedOnly(transactions) {
		key := tx.CreatedAt.Format("2006-01")
		t := trends.MonthlyTrends[key]
		t.Transactions++
		t.Revenue += tx.Total
		trends.MonthlyTrends[key] = t
	}

	if len(trends.MonthlyTrends) < 2 {
		return trends
	}

	keys := make([]string, 0, len(trends.MonthlyTrends))
	for k := range trends.MonthlyTrends {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	last := trends.MonthlyTrends[keys[len(keys)-1]]
	prev := trends.MonthlyTrends[keys[len(keys)-2]]
	if prev.Revenue > 0 {
		trends.MonthOverMonthGrowth = (last.Revenue - prev.Revenue) / prev.Revenue * 100
	}
	return trends
}
