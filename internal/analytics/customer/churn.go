package customer

import (
	"fmt"
	"time"

	"github.com/bagoessprasetyo/pos-ai-sub001/internal/domain"
)

// DefaultChurnThresholdDays is the recency beyond which a customer counts as
// churned.
const DefaultChurnThresholdDays = 90

// AnalyzeChurn classifies the cohort into active, at-risk and churned using a
// fixed recency threshold. A customer is active up to 60% of the threshold,
// at-risk up to the threshold, churned beyond it. Customers with no completed
// transactions are churned unconditionally.
func AnalyzeChurn(customers []domain.Customer, transactions []domain.Transaction, now time.Time, thresholdDays int) domain.ChurnAnalysis {
	if thresholdDays <= 0 {
		thresholdDays = DefaultChurnThresholdDays
	}
	activeCutoff := float64(thresholdDays) * 0.6

	latest := make(map[string]time.Time, len(customers))
	for _, tx := range completedOnly(transactions) {
		if tx.CustomerID == "" {
			continue
		}
		if tx.CreatedAt.After(latest[tx.CustomerID]) {
			latest[tx.CustomerID] = tx.CreatedAt
		}
	}

	result := domain.ChurnAnalysis{
		TotalCustomers:           len(customers),
		RiskFactors:              []string{},
		RetentionRecommendations: []string{},
	}

	for _, c := range customers {
		last, ok := latest[c.ID]
		if !ok {
			result.ChurnedCustomers++
			continue
		}
		days := now.Sub(last).Hours() / 24
		switch {
		case days <= activeCutoff:
			result.ActiveCustomers++
		case days <= float64(thresholdDays):
			result.AtRiskCustomers++
		default:
			result.ChurnedCustomers++
		}
	}

	if result.TotalCustomers > 0 {
		result.ChurnRate = float64(result.ChurnedCustomers) / float64(result.TotalCustomers) * 100
	}

	if result.ChurnRate > 30 {
		result.RiskFactors = append(result.RiskFactors,
			fmt.Sprintf("High churn rate at %.1f%% of the customer base", result.ChurnRate))
	}
	if float64(result.AtRiskCustomers) > 0.2*float64(result.ActiveCustomers) {
		result.RiskFactors = append(result.RiskFactors,
			"At-risk customers exceed 20% of the active base")
	}

	if result.AtRiskCustomers > 0 {
		result.RetentionRecommendations = append(result.RetentionRecommendations,
			"Launch a win-back campaign for at-risk customers before they churn")
	}
	if result.ChurnedCustomers > 0 {
		result.RetentionRecommendations = append(result.RetentionRecommendations,
			"Survey churned customers to identify the main drop-off reasons")
	}

	return result
}
