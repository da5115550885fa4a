package inventory

import (
	"sort"

	"github.com/bagoessprasetyo/pos-ai-sub001/internal/domain"
)

// Cumulative revenue share cut points for the ABC partition.
const (
	classACut = 0.80
	classBCut = 0.95
)

// ClassifyABC ranks products by total line-item revenue and walks the ranking
// assigning class A while the cumulative share stays within 80%, B within 95%,
// C beyond. Products with no tracked revenue are omitted from the result.
func ClassifyABC(sales []domain.SaleRecord) map[string]domain.ABCClass {
	revenue := make(map[string]float64)
	var total float64
	for _, s := range sales {
		revenue[s.ProductID] += s.LineTotal
		total += s.LineTotal
	}

	classes := make(map[string]domain.ABCClass, len(revenue))
	if total <= 0 {
		return classes
	}

	type ranked struct {
		productID string
		revenue   float64
	}
	ranking := make([]ranked, 0, len(revenue))
	for id, r := range revenue {
		if r <= 0 {
			continue
		}
		ranking = append(ranking, ranked{productID: id, revenue: r})
	}
	sort.Slice(ranking, func(i, j int) bool {
		if ranking[i].revenue != ranking[j].revenue {
			return ranking[i].revenue > ranking[j].revenue
		}
		return ranking[i].productID < ranking[j].productID
	})

	var cumulative float64
	for _, r := range ranking {
		cumulative += r.revenue
		share := cumulative / total
		switch {
		case share <= classACut:
			classes[r.productID] = domain.ClassA
		case share <= classBCut:
			classes[r.productID] = domain.ClassB
		default:
			classes[r.productID] = domain.ClassC
		}
	}
	return classes
}
