package customer

import (
	"fmt"
	"time"

	"github.com/bagoessprasetyo/pos-ai-sub001/internal/domain"
)

// Analyzer runs the full customer analytics pipeline. It is a pure batch
// computation: all inputs arrive as in-memory collections and the reference
// time is injected, so identical inputs always produce identical reports.
type Analyzer struct {
	ChurnThresholdDays int
	WindowMonths       int
}

// NewAnalyzer returns an Analyzer with the standard 90-day churn threshold and
// 6-month analysis window.
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		ChurnThresholdDays: DefaultChurnThresholdDays,
		WindowMonths:       6,
	}
}

// Analyze produces the customer analytics report for one store's cohort.
// AIInsights is left nil; the service layer merges collaborator output when
// available.
func (a *Analyzer) Analyze(customers []domain.Customer, transactions []domain.Transaction, products []domain.Product, now time.Time) domain.CustomerReport {
	metrics := ExtractMetrics(customers, transactions, now)
	ScoreMetrics(metrics)

	segments := ClassifySegments(metrics)
	churn := AnalyzeChurn(customers, transactions, now, a.ChurnThresholdDays)

	identified := 0
	for _, profile := range segments {
		if len(profile.Customers) > 0 {
			identified++
		}
	}

	return domain.CustomerReport{
		Overview: domain.CustomerOverview{
			TotalCustomers:     len(customers),
			ActiveCustomers:    churn.ActiveCustomers,
			AnalysisPeriod:     fmt.Sprintf("%d months", a.WindowMonths),
			SegmentsIdentified: identified,
			LastAnalyzed:       now,
		},
		CustomerSegments:   segments,
		PurchasePatterns:   AnalyzePatterns(transactions),
		LoyaltyMetrics:     AnalyzeLoyalty(customers, transactions, churn.ActiveCustomers),
		ChurnAnalysis:      churn,
		ProductPreferences: AnalyzePreferences(transactions, products),
		BehavioralTrends:   AnalyzeTrends(transactions),
		LifetimeValue:      CalculateLifetimeValue(customers, transactions),
	}
}
