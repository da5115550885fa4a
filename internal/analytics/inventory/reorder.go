package inventory

import (
	"math"

	"github.com/bagoessprasetyo/pos-ai-sub001/internal/domain"
)

// Fixed replenishment assumptions: a 7 day supplier lead time and a 1.65
// z-score, roughly a 95% one-sided service level.
const (
	DefaultLeadTimeDays  = 7
	DefaultServiceZScore = 1.65
)

// ReorderPolicy computes safety stock and reorder points from demand velocity.
type ReorderPolicy struct {
	LeadTimeDays  float64
	ServiceZScore float64
}

// NewReorderPolicy returns the fixed-assumption policy used by the engine.
func NewReorderPolicy() ReorderPolicy {
	return ReorderPolicy{
		LeadTimeDays:  DefaultLeadTimeDays,
		ServiceZScore: DefaultServiceZScore,
	}
}

// ReorderLevels holds the derived replenishment quantities for one product.
type ReorderLevels struct {
	LeadTimeDemand float64
	SafetyStock    int
	ReorderPoint   int
}

// Calculate derives lead-time demand, safety stock and the reorder point from
// a product's velocity. Both outputs are non-negative for any non-negative
// velocity and volatility.
func (p ReorderPolicy) Calculate(v domain.ProductVelocity) ReorderLevels {
	leadTimeDemand := v.DailyAverage * p.LeadTimeDays
	safety := p.ServiceZScore * math.Sqrt(p.LeadTimeDays) * v.DailyAverage * v.Volatility

	levels := ReorderLevels{LeadTimeDemand: leadTimeDemand}
	levels.SafetyStock = int(math.Ceil(math.Max(0, safety)))
	levels.ReorderPoint = int(math.Ceil(math.Max(0, leadTimeDemand+float64(levels.SafetyStock))))
	return levels
}
