package insights

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bagoessprasetyo/pos-ai-sub001/internal/domain"
)

// BuildCustomerPrompt formats the computed customer metrics into the prompt
// sent to the text-generation collaborator. The prompt asks for strict JSON so
// the response can be validated before it is merged into the report.
func BuildCustomerPrompt(report domain.CustomerReport) string {
	var b strings.Builder
	b.WriteString("You are a retail analytics assistant. Analyze the customer metrics below and respond with a JSON object ")
	b.WriteString(`{"summary": string, "opportunities": [string], "risks": [string]}. Respond with JSON only.`)
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "Total customers: %d (active %d)\n",
		report.Overview.TotalCustomers, report.Overview.ActiveCustomers)
	fmt.Fprintf(&b, "Churn rate: %.1f%% (%d at risk, %d churned)\n",
		report.ChurnAnalysis.ChurnRate, report.ChurnAnalysis.AtRiskCustomers, report.ChurnAnalysis.ChurnedCustomers)
	fmt.Fprintf(&b, "Repeat purchase rate: %.1f%%, retention %.1f%%\n",
		report.LoyaltyMetrics.RepeatPurchaseRate, report.LoyaltyMetrics.CustomerRetentionRate)
	fmt.Fprintf(&b, "Average CLV: %.2f\n", report.LifetimeValue.AverageCLV)
	fmt.Fprintf(&b, "Peak shopping hour %d, peak day %d, average basket %.2f items / %.2f value\n",
		report.PurchasePatterns.PeakHour, report.PurchasePatterns.PeakDay,
		report.PurchasePatterns.AverageBasketSize, report.PurchasePatterns.AverageBasketValue)

	names := make([]string, 0, len(report.CustomerSegments))
	for name := range report.CustomerSegments {
		names = append(names, string(name))
	}
	sort.Strings(names)
	b.WriteString("Segment sizes:\n")
	for _, name := range names {
		profile := report.CustomerSegments[domain.Segment(name)]
		fmt.Fprintf(&b, "- %s: %d\n", name, len(profile.Customers))
	}

	return b.String()
}

// BuildInventoryPrompt formats inventory metrics into the collaborator prompt.
func BuildInventoryPrompt(report domain.InventoryReport) string {
	var b strings.Builder
	b.WriteString("You are a retail inventory assistant. Analyze the metrics below and respond with a JSON object ")
	b.WriteString(`{"key_insights": [string], "actionable_steps": [string]}. Respond with JSON only.`)
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "Products analyzed: %d, health score %d/100, inventory value %.2f\n",
		report.Overview.ProductsAnalyzed, report.Overview.HealthScore, report.Overview.InventoryValue)
	fmt.Fprintf(&b, "ABC split: %d A / %d B / %d C\n",
		report.ABCAnalysis.AProducts, report.ABCAnalysis.BProducts, report.ABCAnalysis.CProducts)
	fmt.Fprintf(&b, "Understocked %d, overstocked %d, slow moving %d, reorder updates %d\n",
		report.OptimizationSummary.UnderstockedProducts,
		report.OptimizationSummary.OverstockedProducts,
		report.OptimizationSummary.SlowMovingProducts,
		report.OptimizationSummary.ReorderRecommendations)

	limit := len(report.Recommendations)
	if limit > 10 {
		limit = 10
	}
	if limit > 0 {
		b.WriteString("Top recommendations:\n")
	}
	for _, rec := range report.Recommendations[:limit] {
		fmt.Fprintf(&b, "- [%s] %s (%s): %s\n", rec.Priority, rec.ProductName, rec.SKU, rec.IssueType)
	}

	return b.String()
}
