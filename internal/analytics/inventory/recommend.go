package inventory

import (
	"fmt"
	"math"
	"time"

	"github.com/bagoessprasetyo/pos-ai-sub001/internal/domain"
)

// Rule chain thresholds. Priority only escalates as the checks run in order,
// never downgrades.
const (
	stockoutCriticalDays  = 3
	stockoutHighDays      = 7
	overstockDays         = 90
	overstockTargetDays   = 45
	carryingCostRate      = 0.02
	slowMovingUsage       = 0.1
	reorderDriftTolerance = 0.2
	maxRecommendations    = 50
)

// productInput bundles everything the rule chain needs for one product.
type productInput struct {
	product     domain.Product
	stock       float64
	storedRP    float64
	velocity    domain.ProductVelocity
	levels      ReorderLevels
	seasonality domain.SeasonalityProfile
	hasSeason   bool
	abcClass    domain.ABCClass
	hasClass    bool
}

// evaluation is the outcome of running the rule chain for one product.
type evaluation struct {
	recommendation domain.InventoryRecommendation
	triggered      bool
	reorderDrift   bool
}

func escalate(current domain.Priority, to domain.Priority) domain.Priority {
	if to.Rank() > current.Rank() {
		return to
	}
	return current
}

// evaluateProduct runs the ordered rule chain. The sequence matters: priority
// accumulates monotonically and the first rule to assign an issue type wins.
func evaluateProduct(in productInput, now time.Time) evaluation {
	rec := domain.InventoryRecommendation{
		ProductID:               in.product.ID,
		ProductName:             in.product.Name,
		SKU:                     in.product.SKU,
		Priority:                domain.PriorityLow,
		IssueType:               domain.IssueNone,
		RecommendedReorderPoint: in.levels.ReorderPoint,
		RecommendedSafetyStock:  in.levels.SafetyStock,
		Actions:                 []string{},
	}
	eval := evaluation{}
	usage := in.velocity.DailyAverage

	setIssue := func(issue domain.IssueType) {
		if rec.IssueType == domain.IssueNone {
			rec.IssueType = issue
		}
	}

	// 1. Stockout risk / reorder needed.
	if in.stock <= float64(in.levels.ReorderPoint) && usage > 0 {
		daysUntilStockout := in.stock / usage
		switch {
		case daysUntilStockout <= stockoutCriticalDays:
			rec.Priority = escalate(rec.Priority, domain.PriorityCritical)
			setIssue(domain.IssueStockoutRisk)
			rec.FinancialImpact.RevenueOpportunity = usage * in.product.Price * 7
			rec.Actions = append(rec.Actions,
				fmt.Sprintf("Reorder immediately: about %.1f days of stock remain", daysUntilStockout))
			eval.triggered = true
		case daysUntilStockout <= stockoutHighDays:
			rec.Priority = escalate(rec.Priority, domain.PriorityHigh)
			setIssue(domain.IssueReorderNeeded)
			rec.Actions = append(rec.Actions,
				fmt.Sprintf("Place a replenishment order: about %.1f days of stock remain", daysUntilStockout))
			eval.triggered = true
		}
	}

	// 2. Overstock. Zero usage yields zero days of stock per the division
	// guard, so dead stock is caught by the slow-mover rule instead.
	if usage > 0 && in.stock/usage > overstockDays {
		rec.Priority = escalate(rec.Priority, domain.PriorityMedium)
		setIssue(domain.IssueOverstock)
		reduction := (in.stock - usage*overstockTargetDays) * in.product.Cost * carryingCostRate
		if reduction < 0 {
			reduction = 0
		}
		rec.FinancialImpact.CarryingCostReduction = reduction
		rec.FinancialImpact.CostSavings = reduction
		rec.Actions = append(rec.Actions,
			fmt.Sprintf("Reduce stock toward %d days of cover", overstockTargetDays))
		eval.triggered = true
	}

	// 3. Slow mover.
	if in.velocity.Trend == domain.TrendDecreasing && usage < slowMovingUsage {
		rec.Priority = escalate(rec.Priority, domain.PriorityMedium)
		setIssue(domain.IssueSlowMoving)
		if rec.FinancialImpact.CostSavings == 0 {
			rec.FinancialImpact.CostSavings = in.stock * in.product.Cost * carryingCostRate
		}
		rec.Actions = append(rec.Actions, "Consider markdown or bundling to clear slow-moving stock")
		eval.triggered = true
	}

	// 4. Seasonal uplift, advisory only.
	if in.hasSeason && in.velocity.Trend != domain.TrendIncreasing {
		month := int(now.Month()) - 1
		for _, peak := range in.seasonality.PeakMonths {
			if peak == month {
				rec.Priority = escalate(rec.Priority, domain.PriorityMedium)
				rec.Actions = append(rec.Actions, "Peak sales month for this product: verify stock ahead of seasonal demand")
				eval.triggered = true
				break
			}
		}
	}

	// 5. Class A products at or below the reorder point always warrant
	// attention regardless of the stockout math above.
	if in.hasClass && in.abcClass == domain.ClassA && in.stock <= float64(in.levels.ReorderPoint) {
		rec.Priority = escalate(rec.Priority, domain.PriorityHigh)
		rec.Actions = append(rec.Actions, "High-revenue product at reorder level: prioritize replenishment")
		eval.triggered = true
	}

	// 6. Reorder point drift. No priority change.
	if in.storedRP > 0 {
		drift := math.Abs(in.storedRP-float64(in.levels.ReorderPoint)) / in.storedRP
		if drift > reorderDriftTolerance {
			rec.Actions = append(rec.Actions,
				fmt.Sprintf("Update reorder point from %.0f to %d", in.storedRP, in.levels.ReorderPoint))
			eval.triggered = true
			eval.reorderDrift = true
		}
	}

	eval.recommendation = rec
	return eval
}

// CalculateHealthScore aggregates recommendation priorities into a 0-100
// score. An empty analysis returns the neutral 50 rather than 0, so missing
// data does not read as an emergency.
func CalculateHealthScore(recommendations []domain.InventoryRecommendation, analyzed int) int {
	if analyzed == 0 {
		return 50
	}

	var critical, high, medium float64
	for _, rec := range recommendations {
		switch rec.Priority {
		case domain.PriorityCritical:
			critical++
		case domain.PriorityHigh:
			high++
		case domain.PriorityMedium:
			medium++
		}
	}

	n := float64(analyzed)
	score := 100 - 40*(critical/n) - 20*(high/n) - 10*(medium/n)
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return int(math.Round(score))
}
