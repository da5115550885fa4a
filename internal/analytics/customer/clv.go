package customer

import (
	"sort"

	"github.com/bagoessprasetyo/pos-ai-sub001/internal/domain"
)

// CLV value tiers.
const (
	TierVIP         = "vip"
	TierHighValue   = "high_value"
	TierMediumValue = "medium_value"
	TierLowValue    = "low_value"
)

// CalculateLifetimeValue ranks customers by total historical spend and buckets
// them into percentile tiers: top 10% vip, next 10% high_value, next 30%
// medium_value, remainder low_value. The reported low_value segment size uses
// total−floor(total·0.7), which does not always reconcile with the other tier
// counts; downstream dashboards depend on the reported numbers as-is.
func CalculateLifetimeValue(customers []domain.Customer, transactions []domain.Transaction) domain.LifetimeValue {
	totals := make(map[string]float64, len(customers))
	for _, tx := range completedOnly(transactions) {
		if tx.CustomerID == "" {
			continue
		}
		totals[tx.CustomerID] += tx.Total
	}

	entries := make([]domain.CLVEntry, 0, len(customers))
	var sum float64
	for _, c := range customers {
		v := totals[c.ID]
		sum += v
		entries = append(entries, domain.CLVEntry{CustomerID: c.ID, TotalValue: v})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].TotalValue > entries[j].TotalValue
	})

	n := len(entries)
	result := domain.LifetimeValue{
		HighValueCustomers: []domain.CLVEntry{},
		CLVSegments: map[string]int{
			TierVIP:         0,
			TierHighValue:   0,
			TierMediumValue: 0,
			TierLowValue:    0,
		},
	}
	if n == 0 {
		return result
	}
	result.AverageCLV = sum / float64(n)

	vipEnd := n / 10
	highEnd := n * 2 / 10
	mediumEnd := n * 5 / 10
	for i := range entries {
		switch {
		case i < vipEnd:
			entries[i].Tier = TierVIP
		case i < highEnd:
			entries[i].Tier = TierHighValue
		case i < mediumEnd:
			entries[i].Tier = TierMediumValue
		default:
			entries[i].Tier = TierLowValue
		}
	}

	result.CLVSegments[TierVIP] = vipEnd
	result.CLVSegments[TierHighValue] = highEnd - vipEnd
	result.CLVSegments[TierMediumValue] = mediumEnd - highEnd
	result.CLVSegments[TierLowValue] = n - n*7/10

	for _, e := range entries {
		if e.Tier == TierVIP || e.Tier == TierHighValue {
			result.HighValueCustomers = append(result.HighValueCustomers, e)
		}
	}

	return result
}
