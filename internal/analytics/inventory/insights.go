package inventory

import (
	"fmt"
	"time"

	"github.com/bagoessprasetyo/pos-ai-sub001/internal/domain"
)

// FallbackInsights builds a deterministic strategic narrative from the
// computed metrics. It stands in whenever the text-generation collaborator is
// disabled or returns something unusable, so the report never depends on an
// external service to be complete.
func FallbackInsights(recommendations []domain.InventoryRecommendation, summary domain.OptimizationSummary, healthScore int, now time.Time) domain.StrategicInsights {
	insights := domain.StrategicInsights{
		KeyInsights:     []string{},
		ActionableSteps: []string{},
		NextReviewDate:  now.AddDate(0, 0, 7),
	}

	switch {
	case healthScore >= 80:
		insights.KeyInsights = append(insights.KeyInsights,
			fmt.Sprintf("Inventory health is good at %d/100", healthScore))
	case healthScore >= 50:
		insights.KeyInsights = append(insights.KeyInsights,
			fmt.Sprintf("Inventory health is fair at %d/100 and needs attention", healthScore))
	default:
		insights.KeyInsights = append(insights.KeyInsights,
			fmt.Sprintf("Inventory health is poor at %d/100 and needs immediate action", healthScore))
	}

	critical := 0
	for _, rec := range recommendations {
		if rec.Priority == domain.PriorityCritical {
			critical++
		}
	}
	if critical > 0 {
		insights.KeyInsights = append(insights.KeyInsights,
			fmt.Sprintf("%d products face imminent stockout", critical))
		insights.ActionableSteps = append(insights.ActionableSteps,
			"Reorder critical products today to avoid lost sales")
	}
	if summary.UnderstockedProducts > 0 {
		insights.KeyInsights = append(insights.KeyInsights,
			fmt.Sprintf("%d products are understocked relative to demand", summary.UnderstockedProducts))
		insights.ActionableSteps = append(insights.ActionableSteps,
			"Review reorder points for understocked products")
	}
	if summary.OverstockedProducts > 0 {
		insights.KeyInsights = append(insights.KeyInsights,
			fmt.Sprintf("%d products carry more than %d days of stock", summary.OverstockedProducts, overstockDays))
		insights.ActionableSteps = append(insights.ActionableSteps,
			"Run promotions to reduce overstocked inventory")
	}
	if summary.SlowMovingProducts > 0 {
		insights.KeyInsights = append(insights.KeyInsights,
			fmt.Sprintf("%d products are slow moving", summary.SlowMovingProducts))
		insights.ActionableSteps = append(insights.ActionableSteps,
			"Consider markdowns or delisting for slow movers")
	}

	if len(insights.ActionableSteps) == 0 {
		insights.ActionableSteps = append(insights.ActionableSteps,
			"Maintain current replenishment cadence and review next week")
	}

	return insights
}
