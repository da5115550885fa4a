package inventory

import (
	"fmt"
	"runtime"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/bagoessprasetyo/pos-ai-sub001/internal/domain"
)

// Engine runs the full inventory analytics pipeline over one store's
// 30-day sales window and current stock snapshot. Per-product work is
// independent; the engine fans it out over a bounded worker group and merges
// the keyed results, so output is deterministic for identical inputs.
type Engine struct {
	Policy     ReorderPolicy
	WindowDays int
	Workers    int
}

// NewEngine returns an Engine with the fixed replenishment policy and a
// 30-day analysis window.
func NewEngine() *Engine {
	return &Engine{
		Policy:     NewReorderPolicy(),
		WindowDays: 30,
		Workers:    runtime.NumCPU(),
	}
}

// Analyze produces the inventory analytics report. Only products with sales
// in the window are analyzed; without demand signals the rule chain has
// nothing to say about a product, so an empty window yields the neutral
// health score and no recommendations. StrategicInsights carries the
// deterministic fallback narrative; the service layer replaces it with
// collaborator output when available.
func (e *Engine) Analyze(products []domain.Product, inventory []domain.InventoryRecord, sales []domain.SaleRecord, now time.Time) domain.InventoryReport {
	velocities := CalculateVelocity(sales, now)
	classes := ClassifyABC(sales)
	seasonality := AnalyzeSeasonality(sales)

	stockByProduct := make(map[string]domain.InventoryRecord, len(inventory))
	for _, rec := range inventory {
		stockByProduct[rec.ProductID] = rec
	}

	analyzed := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if _, ok := velocities[p.ID]; ok {
			analyzed = append(analyzed, p)
		}
	}

	evaluations := make([]evaluation, len(analyzed))
	var inventoryValue float64

	g := new(errgroup.Group)
	workers := e.Workers
	if workers < 1 {
		workers = 1
	}
	g.SetLimit(workers)
	for i := range analyzed {
		g.Go(func() error {
			p := analyzed[i]
			in := productInput{product: p, velocity: velocities[p.ID]}
			if rec, ok := stockByProduct[p.ID]; ok {
				in.stock = rec.Quantity
				in.storedRP = rec.ReorderPoint
			}
			in.levels = e.Policy.Calculate(in.velocity)
			if s, ok := seasonality[p.ID]; ok {
				in.seasonality = s
				in.hasSeason = true
			}
			if c, ok := classes[p.ID]; ok {
				in.abcClass = c
				in.hasClass = true
			}
			evaluations[i] = evaluateProduct(in, now)
			return nil
		})
	}
	// Workers never return errors; the group is used purely as a bounded pool.
	_ = g.Wait()

	for _, p := range products {
		if rec, ok := stockByProduct[p.ID]; ok {
			inventoryValue += rec.Quantity * p.Cost
		}
	}

	summary := domain.OptimizationSummary{}
	triggered := make([]domain.InventoryRecommendation, 0, len(evaluations))
	for _, eval := range evaluations {
		if !eval.triggered {
			continue
		}
		triggered = append(triggered, eval.recommendation)
		switch eval.recommendation.IssueType {
		case domain.IssueOverstock:
			summary.OverstockedProducts++
		case domain.IssueStockoutRisk, domain.IssueReorderNeeded:
			summary.UnderstockedProducts++
		case domain.IssueSlowMoving:
			summary.SlowMovingProducts++
		}
		if eval.reorderDrift {
			summary.ReorderRecommendations++
		}
	}

	sort.SliceStable(triggered, func(i, j int) bool {
		a, b := triggered[i], triggered[j]
		if a.Priority.Rank() != b.Priority.Rank() {
			return a.Priority.Rank() > b.Priority.Rank()
		}
		av := a.FinancialImpact.CostSavings + a.FinancialImpact.RevenueOpportunity
		bv := b.FinancialImpact.CostSavings + b.FinancialImpact.RevenueOpportunity
		return av > bv
	})

	healthScore := CalculateHealthScore(triggered, len(analyzed))
	if len(triggered) > maxRecommendations {
		triggered = triggered[:maxRecommendations]
	}

	abc := domain.ABCAnalysis{}
	for _, class := range classes {
		switch class {
		case domain.ClassA:
			abc.AProducts++
		case domain.ClassB:
			abc.BProducts++
		case domain.ClassC:
			abc.CProducts++
		}
	}

	return domain.InventoryReport{
		Overview: domain.InventoryOverview{
			TotalProducts:    len(products),
			ProductsAnalyzed: len(analyzed),
			InventoryValue:   inventoryValue,
			HealthScore:      healthScore,
			AnalysisPeriod:   fmt.Sprintf("%d days", e.WindowDays),
			LastAnalyzed:     now,
		},
		Recommendations:     triggered,
		StrategicInsights:   FallbackInsights(triggered, summary, healthScore, now),
		ABCAnalysis:         abc,
		OptimizationSummary: summary,
	}
}
