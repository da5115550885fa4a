package customer

import (
	"time"

	"github.com/bagoessprasetyo/pos-ai-sub001/internal/domain"
)

// noPurchaseRecency is the sentinel recency for customers with no completed
// transactions in the window.
const noPurchaseRecency = 365

// completedOnly filters transactions down to completed ones. The repository
// already scopes its queries, but the core never trusts the caller on status.
func completedOnly(transactions []domain.Transaction) []domain.Transaction {
	out := make([]domain.Transaction, 0, len(transactions))
	for _, tx := range transactions {
		if tx.Status == domain.TransactionCompleted {
			out = append(out, tx)
		}
	}
	return out
}

// ExtractMetrics aggregates completed transactions into per-customer recency,
// frequency and monetary values. Scores are left zero; ScoreMetrics fills
// them. The result preserves the order of the customers slice.
func ExtractMetrics(customers []domain.Customer, transactions []domain.Transaction, now time.Time) []domain.CustomerMetrics {
	type accum struct {
		count  int
		total  float64
		latest time.Time
	}

	byCustomer := make(map[string]*accum, len(customers))
	for _, tx := range completedOnly(transactions) {
		if tx.CustomerID == "" {
			continue
		}
		a := byCustomer[tx.CustomerID]
		if a == nil {
			a = &accum{}
			byCustomer[tx.CustomerID] = a
		}
		a.count++
		a.total += tx.Total
		if tx.CreatedAt.After(a.latest) {
			a.latest = tx.CreatedAt
		}
	}

	metrics := make([]domain.CustomerMetrics, 0, len(customers))
	for _, c := range customers {
		m := domain.CustomerMetrics{CustomerID: c.ID, Recency: noPurchaseRecency}
		if a, ok := byCustomer[c.ID]; ok && a.count > 0 {
			m.Frequency = a.count
			m.Monetary = a.total
			days := int(now.Sub(a.latest).Hours() / 24)
			if days < 0 {
				days = 0
			}
			m.Recency = days
		}
		metrics = append(metrics, m)
	}
	return metrics
}
